package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/heatsim/internal/automation"
	"github.com/san-kum/heatsim/internal/config"
	"github.com/san-kum/heatsim/internal/diffusion"
	"github.com/san-kum/heatsim/internal/optim"
	"github.com/san-kum/heatsim/internal/source"
	"github.com/san-kum/heatsim/internal/storage"
)

func benchGrid(cmd *cobra.Command, args []string) error {
	if benchSteps <= 0 {
		return fmt.Errorf("steps must be positive, got %d", benchSteps)
	}
	sizes := [][2]int{{64, 48}, {160, 120}, {320, 240}, {640, 480}}

	fmt.Printf("benchmarking %d steps per grid\n\n", benchSteps)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "GRID\tCELLS\tTIME\tSTEPS/SEC\tMCELLS/SEC")

	for _, size := range sizes {
		src, err := source.Disc(size[0], size[1], float64(size[1])/8, 1)
		if err != nil {
			return err
		}
		grid, err := diffusion.New(src, diffusion.MaxStableAlpha)
		if err != nil {
			return err
		}

		start := time.Now()
		grid.StepN(benchSteps)
		elapsed := time.Since(start)

		cells := size[0] * size[1]
		stepsPerSec := float64(benchSteps) / elapsed.Seconds()
		fmt.Fprintf(w, "%dx%d\t%d\t%v\t%.0f\t%.1f\n",
			size[0], size[1], cells, elapsed, stepsPerSec, stepsPerSec*float64(cells)/1e6)
	}

	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tGRID\tALPHA\tK\tRADIUS\tSTEPS\tPALETTE")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%dx%d\t%.3f\t%.3f\t%.0f\t%d\t%s\n",
			name, p.Width, p.Height, p.Alpha, p.Intensity, p.SourceRadius, p.Steps, p.Palette)
	}
	return w.Flush()
}

func runScenario(cmd *cobra.Command, args []string) error {
	scenario, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if scenario.Name != "" {
		fmt.Printf("scenario: %s\n", scenario.Name)
	}
	r := &automation.Runner{Store: st, Out: os.Stdout}
	results, err := r.RunScenario(ctx, scenario)
	fmt.Printf("completed %d/%d steps\n", len(results), len(scenario.Steps))
	return err
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("sweeping alpha %.3f..%.3f (%d values) on %dx%d for %d steps\n\n",
		alphaMin, alphaMax, alphaCount, cfg.Width, cfg.Height, cfg.Steps)

	results, err := automation.RunAlphaSweep(ctx, &automation.AlphaSweep{
		Base:     cfg,
		AlphaMin: alphaMin,
		AlphaMax: alphaMax,
		Count:    alphaCount,
	})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ALPHA\tSTABLE\tBOUNDED\tPEAK\tSTEPS\tDIVERGED")
	for _, r := range results {
		fmt.Fprintf(w, "%.4f\t%v\t%.3f\t%.4g\t%d\t%v\n",
			r.Alpha, r.Stable, r.Bounded, r.Peak, r.StepsTaken, r.Diverged)
	}
	return w.Flush()
}

// parseParamSpec parses "name=v1,v2,...".
func parseParamSpec(spec string) (string, []float64, error) {
	name, list, ok := strings.Cut(spec, "=")
	if !ok || name == "" {
		return "", nil, fmt.Errorf("invalid --param %q, want name=v1,v2", spec)
	}
	parts := strings.Split(list, ",")
	values := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return "", nil, fmt.Errorf("invalid value in --param %s: %w", name, err)
		}
		values = append(values, v)
	}
	return name, values, nil
}

func runTune(cmd *cobra.Command, args []string) error {
	if len(tuneParams) == 0 {
		return fmt.Errorf("at least one --param is required")
	}
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(tuneParams))
	ranges := make([][]float64, 0, len(tuneParams))
	total := 1
	for _, spec := range tuneParams {
		name, values, err := parseParamSpec(spec)
		if err != nil {
			return err
		}
		names = append(names, name)
		ranges = append(ranges, values)
		total *= len(values)
	}

	search, err := optim.NewGridSearch(names, ranges)
	if err != nil {
		return err
	}
	search.Maximize = tuneMaximize

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("searching %d combinations for %s...\n", total, tuneMetric)
	start := time.Now()
	best, err := search.Search(ctx, cfg, tuneMetric)
	if err != nil {
		return err
	}

	fmt.Printf("evaluated %d runs in %v\n", best.Evaluated, time.Since(start))
	fmt.Printf("best %s: %.6f\n", tuneMetric, best.Value)
	keys := make([]string, 0, len(best.Params))
	for k := range best.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("  %s = %g\n", k, best.Params[k])
	}
	return nil
}
