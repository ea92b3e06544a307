package metrics

import "github.com/san-kum/heatsim/internal/sim"

// Default is the metric set attached to every experiment. peak is the hottest
// source cell; no cell of a stable run ever exceeds it.
func Default(peak float64) []sim.Metric {
	const eps = 1e-9
	return []sim.Metric{
		NewBounded(-eps, peak+eps),
		NewPeak(),
		NewMean(),
		NewHeated(peak),
	}
}
