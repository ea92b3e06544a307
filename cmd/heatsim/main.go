package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	dataDir string
	// Simulation parameters
	width         int
	height        int
	alpha         float64
	intensity     float64
	sourcePath    string
	sourceRadius  float64
	steps         int
	sampleEvery   int
	palette       string
	scale         int
	frameRate     int
	stepsPerFrame int
	// Config file
	configFile string
	// Preset name
	preset string
	// Output files
	renderOut     string
	renderPalette string
	renderScale   int
	chartOut      string
	recordPath    string
	pngPath       string
	every         int
	fieldCSV      bool
	theme         string
	benchSteps    int
	// Sweep range
	alphaMin   float64
	alphaMax   float64
	alphaCount int
	// Grid search
	tuneParams   []string
	tuneMetric   string
	tuneMaximize bool
)

// main registers the heatsim commands and exits with status 1 when a command
// returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:          "heatsim",
		Short:        "2D heat diffusion simulator",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".heatsim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run simulation and save the result",
		Args:  cobra.NoArgs,
		RunE:  runSimulation,
	}
	addSimFlags(runCmd)
	runCmd.Flags().StringVar(&recordPath, "record", "", "also record an MJPEG video to this path")
	runCmd.Flags().IntVar(&every, "every", 10, "record every N-th step")
	runCmd.Flags().StringVar(&pngPath, "png", "", "write the final field as PNG")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot temperature over time",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export sampled series (or final field) to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}
	exportCSVCmd.Flags().BoolVar(&fieldCSV, "field", false, "export the final field instead of the series")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "spatial frequency analysis of the final field",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run simulation in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}
	addSimFlags(liveCmd)
	liveCmd.Flags().StringVar(&theme, "theme", "ember", "sidebar theme")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "run simulation in a window",
		Args:  cobra.NoArgs,
		RunE:  runGUI,
	}
	addSimFlags(guiCmd)

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark the stencil on several grid sizes",
		Args:  cobra.NoArgs,
		RunE:  benchGrid,
	}
	benchCmd.Flags().IntVar(&benchSteps, "steps", 200, "steps per grid size")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	renderCmd := &cobra.Command{
		Use:   "render [run_id]",
		Short: "render the final field of a run as PNG or SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  renderRun,
	}
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "field.png", "output file (.png or .svg)")
	renderCmd.Flags().StringVar(&renderPalette, "palette", "", "palette (default: the run's palette)")
	renderCmd.Flags().IntVar(&renderScale, "scale", 2, "pixels per cell")

	recordCmd := &cobra.Command{
		Use:   "record [out.avi]",
		Short: "run simulation and record an MJPEG video",
		Args:  cobra.ExactArgs(1),
		RunE:  recordVideo,
	}
	addSimFlags(recordCmd)
	recordCmd.Flags().IntVar(&every, "every", 10, "record every N-th step")

	chartCmd := &cobra.Command{
		Use:   "chart [run_id]",
		Short: "render the temperature series of a run as a PNG chart",
		Args:  cobra.ExactArgs(1),
		RunE:  chartRun,
	}
	chartCmd.Flags().StringVarP(&chartOut, "out", "o", "chart.png", "output file")

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file.yaml]",
		Short: "run a scripted scenario",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "run the same source over a range of alphas",
		Args:  cobra.NoArgs,
		RunE:  runSweep,
	}
	addSimFlags(sweepCmd)
	sweepCmd.Flags().Float64Var(&alphaMin, "alpha-min", 0.05, "smallest alpha")
	sweepCmd.Flags().Float64Var(&alphaMax, "alpha-max", 0.3, "largest alpha")
	sweepCmd.Flags().IntVar(&alphaCount, "count", 6, "number of alphas")

	tuneCmd := &cobra.Command{
		Use:   "tune",
		Short: "grid search parameters for the best metric value",
		Args:  cobra.NoArgs,
		RunE:  runTune,
	}
	addSimFlags(tuneCmd)
	tuneCmd.Flags().StringArrayVar(&tuneParams, "param", nil, "parameter values, e.g. alpha=0.05,0.1,0.2 (repeatable)")
	tuneCmd.Flags().StringVar(&tuneMetric, "metric", "mean_temperature", "metric to optimise")
	tuneCmd.Flags().BoolVar(&tuneMaximize, "maximize", false, "maximise instead of minimise")

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, exportCmd, exportCSVCmd, exportJSONCmd, analyzeCmd,
		liveCmd, guiCmd, benchCmd, presetsCmd, renderCmd, recordCmd, chartCmd, scenarioCmd, sweepCmd, tuneCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
