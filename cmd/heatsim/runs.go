package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/heatsim/internal/analysis"
	"github.com/san-kum/heatsim/internal/colormap"
	"github.com/san-kum/heatsim/internal/export"
	"github.com/san-kum/heatsim/internal/sim"
	"github.com/san-kum/heatsim/internal/storage"
)

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tGRID\tALPHA\tK\tSTEPS\tPEAK\tMEAN")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%dx%d\t%.3f\t%.3f\t%d\t%.4f\t%.6f\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Width, run.Height,
			run.Alpha,
			run.Intensity,
			run.StepsTaken,
			run.Metrics["peak_temperature"],
			run.Metrics["mean_temperature"],
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	samples, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}
	if len(samples) < 2 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("grid: %dx%d  alpha: %.3f\n", meta.Width, meta.Height, meta.Alpha)
	fmt.Printf("samples: %d\n\n", len(samples))

	series := []struct {
		caption string
		pick    func(sim.Sample) float64
	}{
		{"mean temperature", func(s sim.Sample) float64 { return s.Mean }},
		{"max temperature", func(s sim.Sample) float64 { return s.Max }},
		{"total heat", func(s sim.Sample) float64 { return s.Total }},
	}

	res := &sim.Result{Samples: samples}
	for _, s := range series {
		graph := asciigraph.Plot(res.Series(s.pick),
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(s.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	if fieldCSV {
		fld, err := st.LoadField(args[0])
		if err != nil {
			return err
		}
		return storage.WriteFieldCSV(os.Stdout, fld)
	}

	samples, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}
	return storage.WriteSeriesCSV(os.Stdout, samples)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	samples, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, meta, samples)
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	fld, err := st.LoadField(runID)
	if err != nil {
		return err
	}

	fmt.Printf("spatial frequency analysis: %s\n", meta.ID)
	fmt.Printf("grid: %dx%d after %d steps\n\n", meta.Width, meta.Height, meta.StepsTaken)

	ps := analysis.RadialSpectrum(fld)
	if len(ps) < 2 {
		return fmt.Errorf("grid too small for spectrum")
	}

	graph := asciigraph.Plot(ps[1:],
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("radial power spectrum (DC removed)"),
	)
	fmt.Println(graph)
	fmt.Println()

	bin := analysis.DominantBin(ps)
	fmt.Printf("dominant bin: %d (%.4f cycles/cell)\n", bin, float64(bin)/float64(2*len(ps)))
	if bin > 0 {
		fmt.Printf("wavelength: %.1f cells\n", float64(2*len(ps))/float64(bin))
	}
	fmt.Printf("high-frequency share: %.2f%%\n", 100*analysis.HighFrequencyRatio(ps))

	return nil
}

func renderRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	fld, err := st.LoadField(args[0])
	if err != nil {
		return err
	}

	name := meta.Palette
	if renderPalette != "" {
		name = renderPalette
	}
	pal, err := colormap.Get(name)
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(renderOut)) {
	case ".svg":
		svg := export.FieldToSVG(fld, pal, float64(renderScale))
		if err := os.WriteFile(renderOut, []byte(svg), 0644); err != nil {
			return err
		}
	case ".png":
		if err := export.WritePNG(renderOut, fld, pal, renderScale); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported output format: %s (use .png or .svg)", renderOut)
	}

	fmt.Printf("wrote %s\n", renderOut)
	return nil
}

func chartRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	samples, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}

	out, err := os.Create(chartOut)
	if err != nil {
		return err
	}
	title := fmt.Sprintf("%s  alpha=%.3f  k=%.3f", meta.ID, meta.Alpha, meta.Intensity)
	if err := export.SeriesChart(out, title, samples, 1024, 480); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	fmt.Printf("wrote %s\n", chartOut)
	return nil
}
