package export

import (
	"errors"
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/san-kum/heatsim/internal/sim"
)

var ErrTooFewSamples = errors.New("need at least two samples")

// SeriesChart renders min, mean and max temperature over time as a PNG.
func SeriesChart(w io.Writer, title string, samples []sim.Sample, width, height int) error {
	if len(samples) < 2 {
		return ErrTooFewSamples
	}

	steps := make([]float64, len(samples))
	mins := make([]float64, len(samples))
	means := make([]float64, len(samples))
	maxs := make([]float64, len(samples))
	for i, s := range samples {
		steps[i] = float64(s.Step)
		mins[i] = s.Min
		means[i] = s.Mean
		maxs[i] = s.Max
	}

	graph := chart.Chart{
		Title:  title,
		Width:  width,
		Height: height,
		XAxis: chart.XAxis{
			Name:  "step",
			Style: chart.Style{FontSize: 10.0},
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%d", int(v.(float64)))
			},
		},
		YAxis: chart.YAxis{
			Name:  "temperature",
			Style: chart.Style{FontSize: 10.0},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "max",
				XValues: steps,
				YValues: maxs,
				Style:   chart.Style{StrokeColor: drawing.Color{R: 252, G: 255, B: 164, A: 255}, StrokeWidth: 2.0},
			},
			chart.ContinuousSeries{
				Name:    "mean",
				XValues: steps,
				YValues: means,
				Style:   chart.Style{StrokeColor: drawing.Color{R: 188, G: 55, B: 84, A: 255}, StrokeWidth: 3.0},
			},
			chart.ContinuousSeries{
				Name:    "min",
				XValues: steps,
				YValues: mins,
				Style:   chart.Style{StrokeColor: drawing.Color{R: 66, G: 10, B: 104, A: 255}, StrokeWidth: 2.0},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}
