package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/heatsim/internal/colormap"
	"github.com/san-kum/heatsim/internal/config"
	"github.com/san-kum/heatsim/internal/experiment"
	"github.com/san-kum/heatsim/internal/export"
	"github.com/san-kum/heatsim/internal/sim"
	"github.com/san-kum/heatsim/internal/source"
	"github.com/san-kum/heatsim/internal/storage"
)

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	exp := experiment.New(cfg)
	if err := exp.Setup(); err != nil {
		return err
	}

	var rec *export.Recorder
	if recordPath != "" {
		rec, err = newRecorder(cfg, recordPath)
		if err != nil {
			return err
		}
		exp.GetSimulator().AddObserver(rec)
	}

	result, elapsed, err := execute(exp)
	if rec != nil {
		if cerr := rec.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	if err != nil && result == nil {
		return err
	}

	runID, saveErr := st.Save(cfg, result)
	if saveErr != nil {
		return saveErr
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", result.StepsTaken)
	printMetrics(result)
	for _, e := range result.Errors {
		fmt.Printf("  error: %v\n", e)
	}
	if rec != nil {
		fmt.Printf("video: %s (%d frames)\n", recordPath, rec.Frames())
	}

	if pngPath != "" {
		pal, perr := colormap.Get(cfg.Palette)
		if perr != nil {
			return perr
		}
		if perr := export.WritePNG(pngPath, result.Final, pal, cfg.Scale); perr != nil {
			return perr
		}
		fmt.Printf("image: %s\n", pngPath)
	}

	return err
}

// execute runs the experiment until done or interrupted. An interrupted run
// still returns its partial result.
func execute(exp *experiment.Experiment) (*sim.Result, time.Duration, error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := exp.Config()
	fmt.Printf("running %dx%d grid, alpha=%.3f, k=%.3f, %d active source cells...\n",
		cfg.Width, cfg.Height, cfg.Alpha, cfg.Intensity, source.ActiveCells(exp.Grid().Source()))
	start := time.Now()
	result, err := exp.Run(ctx)
	return result, time.Since(start), err
}

func newRecorder(cfg *config.Config, path string) (*export.Recorder, error) {
	pal, err := colormap.Get(cfg.Palette)
	if err != nil {
		return nil, err
	}
	return export.NewRecorder(path, cfg.Width, cfg.Height, cfg.Scale, cfg.FPS, every, pal)
}

func printMetrics(result *sim.Result) {
	names := make([]string, 0, len(result.Metrics))
	for name := range result.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println("\nmetrics:")
	for _, name := range names {
		fmt.Printf("  %s: %.6f\n", name, result.Metrics[name])
	}
}

func recordVideo(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	exp := experiment.New(cfg)
	if err := exp.Setup(); err != nil {
		return err
	}

	rec, err := newRecorder(cfg, args[0])
	if err != nil {
		return err
	}
	exp.GetSimulator().AddObserver(rec)

	_, elapsed, runErr := execute(exp)
	if err := rec.Close(); err != nil {
		return err
	}

	fmt.Printf("recorded %d frames to %s in %v\n", rec.Frames(), args[0], elapsed)
	return runErr
}
