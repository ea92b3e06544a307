package sim

import (
	"context"
	"fmt"
)

type Simulator struct {
	grid      Stepper
	metrics   []Metric
	observers []Observer
}

func New(grid Stepper) *Simulator {
	return &Simulator{
		grid:      grid,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Grid returns the stepper driven by the simulator.
func (s *Simulator) Grid() Stepper { return s.grid }

func (s *Simulator) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := s.validateConfig(cfg); err != nil {
		return nil, err
	}
	every := cfg.SampleEvery
	if every <= 0 {
		every = 1
	}

	result := &Result{
		Samples: make([]Sample, 0, cfg.Steps/every+2),
		Metrics: make(map[string]float64),
		Errors:  make([]error, 0),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	start := s.grid.Steps()
	result.Samples = append(result.Samples, NewSample(start, s.grid.Field()))

	for i := 1; i <= cfg.Steps; i++ {
		select {
		case <-ctx.Done():
			if last := start + result.StepsTaken; result.Samples[len(result.Samples)-1].Step != last {
				result.Samples = append(result.Samples, NewSample(last, s.grid.Field()))
			}
			s.finish(result)
			return result, ctx.Err()
		default:
		}

		s.grid.Step()
		f := s.grid.Field()
		step := start + i
		result.StepsTaken++

		for _, m := range s.metrics {
			m.Observe(step, f)
		}
		for _, obs := range s.observers {
			obs.OnStep(step, f)
		}

		if cfg.ValidateField && !f.IsFinite() {
			result.Errors = append(result.Errors, SimError{Step: step, Message: "non-finite temperature (NaN/Inf)"})
			result.Samples = append(result.Samples, NewSample(step, f))
			break
		}

		if i%every == 0 || i == cfg.Steps {
			result.Samples = append(result.Samples, NewSample(step, f))
		}
	}

	s.finish(result)
	return result, nil
}

func (s *Simulator) finish(result *Result) {
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	result.Final = s.grid.Field().Clone()
}

func (s *Simulator) validateConfig(cfg Config) error {
	if cfg.Steps <= 0 {
		return fmt.Errorf("steps must be positive, got %d", cfg.Steps)
	}
	return nil
}

// RunWithCallback steps the grid until callback returns false, steps is
// reached or ctx is done. The callback sees each completed field and must
// not retain it.
func (s *Simulator) RunWithCallback(ctx context.Context, steps int, callback func(step int, f Stepper) bool) error {
	if steps <= 0 {
		return fmt.Errorf("steps must be positive, got %d", steps)
	}

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		s.grid.Step()
		if !callback(s.grid.Steps(), s.grid) {
			return nil
		}
	}

	return nil
}
