package experiment

import (
	"context"
	"fmt"

	"github.com/san-kum/heatsim/internal/config"
	"github.com/san-kum/heatsim/internal/diffusion"
	"github.com/san-kum/heatsim/internal/field"
	"github.com/san-kum/heatsim/internal/metrics"
	"github.com/san-kum/heatsim/internal/sim"
	"github.com/san-kum/heatsim/internal/source"
)

// Experiment wires a configuration into a source mask, a grid and a
// simulator.
type Experiment struct {
	cfg       *config.Config
	grid      *diffusion.Grid
	simulator *sim.Simulator
}

func New(cfg *config.Config) *Experiment {
	return &Experiment{cfg: cfg.Clone()}
}

// BuildSource returns the source mask described by cfg: the image when one is
// configured, otherwise a centred disc.
func BuildSource(cfg *config.Config) (*field.Field, error) {
	if cfg.Source != "" {
		return source.Load(cfg.Source, cfg.Width, cfg.Height, cfg.Intensity)
	}
	return source.Disc(cfg.Width, cfg.Height, cfg.SourceRadius, cfg.Intensity)
}

// Setup builds the source and grid. Image errors are returned unchanged so
// callers can match them with errors.Is.
func (e *Experiment) Setup(extra ...sim.Metric) error {
	if err := e.cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	src, err := BuildSource(e.cfg)
	if err != nil {
		return err
	}

	grid, err := diffusion.New(src, e.cfg.Alpha)
	if err != nil {
		return err
	}

	e.grid = grid
	e.simulator = sim.New(grid)
	for _, m := range metrics.Default(src.Stats().Max) {
		e.simulator.AddMetric(m)
	}
	for _, m := range extra {
		e.simulator.AddMetric(m)
	}
	return nil
}

func (e *Experiment) Run(ctx context.Context) (*sim.Result, error) {
	if e.simulator == nil {
		return nil, fmt.Errorf("experiment not setup")
	}

	cfg := sim.DefaultConfig()
	cfg.Steps = e.cfg.Steps
	if e.cfg.SampleEvery > 0 {
		cfg.SampleEvery = e.cfg.SampleEvery
	}
	return e.simulator.Run(ctx, cfg)
}

func (e *Experiment) Config() *config.Config { return e.cfg }

// Grid returns the grid built by Setup, or nil before Setup.
func (e *Experiment) Grid() *diffusion.Grid { return e.grid }

// GetSimulator returns the underlying simulator for adding observers
func (e *Experiment) GetSimulator() *sim.Simulator {
	return e.simulator
}
