package sim

import (
	"fmt"

	"github.com/san-kum/heatsim/internal/field"
)

// Stepper is a field that advances one tick at a time.
type Stepper interface {
	Step()
	Field() *field.Field
	Steps() int
}

type Metric interface {
	Name() string
	Observe(step int, f *field.Field)
	Value() float64
	Reset()
}

type Observer interface {
	OnStep(step int, f *field.Field)
}

type Config struct {
	Steps       int
	SampleEvery int
	// ValidateField stops the run at the first NaN or Inf.
	ValidateField bool
}

func DefaultConfig() Config {
	return Config{
		Steps:         1000,
		SampleEvery:   10,
		ValidateField: true,
	}
}

// Sample is a summary of the field after a given step.
type Sample struct {
	Step  int     `json:"step"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Mean  float64 `json:"mean"`
	Total float64 `json:"total"`
}

func NewSample(step int, f *field.Field) Sample {
	s := f.Stats()
	return Sample{Step: step, Min: s.Min, Max: s.Max, Mean: s.Mean, Total: s.Total}
}

type Result struct {
	Samples    []Sample
	Metrics    map[string]float64
	StepsTaken int
	Final      *field.Field
	Errors     []error
}

// Series extracts one column of the samples, e.g. the mean temperature.
func (r *Result) Series(pick func(Sample) float64) []float64 {
	out := make([]float64, len(r.Samples))
	for i, s := range r.Samples {
		out[i] = pick(s)
	}
	return out
}

type SimError struct {
	Step    int
	Message string
}

func (e SimError) Error() string {
	return fmt.Sprintf("step %d: %s", e.Step, e.Message)
}
