package optim

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/heatsim/internal/config"
	"github.com/san-kum/heatsim/internal/experiment"
)

// GridSearch evaluates every combination of parameter values and keeps the
// one with the best metric.
type GridSearch struct {
	paramNames []string
	ranges     [][]float64
	// Maximize picks the largest metric value instead of the smallest.
	Maximize bool
}

type Best struct {
	Params    map[string]float64
	Value     float64
	Evaluated int
}

func NewGridSearch(params []string, ranges [][]float64) (*GridSearch, error) {
	if len(params) != len(ranges) {
		return nil, fmt.Errorf("got %d parameters but %d ranges", len(params), len(ranges))
	}
	scratch := config.DefaultConfig()
	for i, name := range params {
		if err := scratch.SetParam(name, 0); err != nil {
			return nil, err
		}
		if len(ranges[i]) == 0 {
			return nil, fmt.Errorf("parameter %s has no values", name)
		}
	}
	return &GridSearch{paramNames: params, ranges: ranges}, nil
}

// Search runs one experiment per combination, starting each from base.
func (g *GridSearch) Search(ctx context.Context, base *config.Config, metricName string) (*Best, error) {
	best := &Best{Value: math.Inf(1)}
	if g.Maximize {
		best.Value = math.Inf(-1)
	}

	if err := g.searchRecursive(ctx, 0, make(map[string]float64), base, metricName, best); err != nil {
		return nil, err
	}
	if best.Params == nil {
		return nil, fmt.Errorf("metric %s was not reported by any run", metricName)
	}
	return best, nil
}

func (g *GridSearch) better(v, than float64) bool {
	if g.Maximize {
		return v > than
	}
	return v < than
}

func (g *GridSearch) searchRecursive(
	ctx context.Context,
	depth int,
	current map[string]float64,
	base *config.Config,
	metricName string,
	best *Best,
) error {
	if depth == len(g.paramNames) {
		cfg := base.Clone()
		for k, v := range current {
			if err := cfg.SetParam(k, v); err != nil {
				return err
			}
		}

		exp := experiment.New(cfg)
		if err := exp.Setup(); err != nil {
			return fmt.Errorf("%v: %w", current, err)
		}

		result, err := exp.Run(ctx)
		if err != nil {
			return err
		}
		best.Evaluated++

		val, ok := result.Metrics[metricName]
		if ok && g.better(val, best.Value) {
			best.Value = val
			best.Params = make(map[string]float64)
			for k, v := range current {
				best.Params[k] = v
			}
		}
		return nil
	}

	paramName := g.paramNames[depth]
	for _, val := range g.ranges[depth] {
		newParams := make(map[string]float64)
		for k, v := range current {
			newParams[k] = v
		}
		newParams[paramName] = val

		if err := g.searchRecursive(ctx, depth+1, newParams, base, metricName, best); err != nil {
			return err
		}
	}
	return nil
}
