package automation

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/heatsim/internal/config"
	"github.com/san-kum/heatsim/internal/diffusion"
	"github.com/san-kum/heatsim/internal/experiment"
	"github.com/san-kum/heatsim/internal/metrics"
	"github.com/san-kum/heatsim/internal/sim"
)

// AlphaSweep runs the same source over evenly spaced diffusion rates.
type AlphaSweep struct {
	Base     *config.Config
	AlphaMin float64
	AlphaMax float64
	Count    int
}

type SweepResult struct {
	Alpha float64
	// Stable is the theoretical bound alpha <= 0.25.
	Stable bool
	// Bounded is the fraction of steps whose field stayed within [0, k].
	Bounded    float64
	Peak       float64
	StepsTaken int
	Diverged   bool
}

// Alphas returns the sweep values from AlphaMin to AlphaMax inclusive.
func (s *AlphaSweep) Alphas() []float64 {
	if s.Count <= 1 {
		return []float64{s.AlphaMin}
	}
	out := make([]float64, s.Count)
	step := (s.AlphaMax - s.AlphaMin) / float64(s.Count-1)
	for i := range out {
		out[i] = s.AlphaMin + float64(i)*step
	}
	return out
}

// RunAlphaSweep runs one simulator per alpha concurrently. The source mask is
// built once and shared read-only between the grids.
func RunAlphaSweep(ctx context.Context, sweep *AlphaSweep) ([]SweepResult, error) {
	if sweep.Base == nil {
		return nil, fmt.Errorf("sweep needs a base config")
	}
	if err := sweep.Base.Validate(); err != nil {
		return nil, fmt.Errorf("invalid base config: %w", err)
	}
	if sweep.AlphaMin < 0 || sweep.AlphaMax < sweep.AlphaMin {
		return nil, fmt.Errorf("invalid alpha range [%f, %f]", sweep.AlphaMin, sweep.AlphaMax)
	}

	src, err := experiment.BuildSource(sweep.Base)
	if err != nil {
		return nil, err
	}

	hi := math.Max(sweep.Base.Intensity, 0)
	alphas := sweep.Alphas()
	sims := make([]*sim.Simulator, len(alphas))
	bounded := make([]*metrics.Bounded, len(alphas))
	peaks := make([]*metrics.Peak, len(alphas))

	for i, alpha := range alphas {
		grid, err := diffusion.New(src, alpha)
		if err != nil {
			return nil, fmt.Errorf("alpha %f: %w", alpha, err)
		}
		bounded[i] = metrics.NewBounded(-1e-9, hi+1e-9)
		peaks[i] = metrics.NewPeak()
		sims[i] = sim.New(grid)
		sims[i].AddMetric(bounded[i])
		sims[i].AddMetric(peaks[i])
	}

	results, err := sim.NewEnsemble(sims...).Run(ctx, sim.Config{
		Steps:         sweep.Base.Steps,
		SampleEvery:   sweep.Base.Steps,
		ValidateField: true,
	})
	if err != nil {
		return nil, err
	}

	out := make([]SweepResult, len(alphas))
	for i, res := range results {
		out[i] = SweepResult{
			Alpha:      alphas[i],
			Stable:     diffusion.Stable(alphas[i]),
			Bounded:    bounded[i].Value(),
			Peak:       peaks[i].Value(),
			StepsTaken: res.StepsTaken,
			Diverged:   len(res.Errors) > 0,
		}
	}
	return out, nil
}
