package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/heatsim/internal/colormap"
	"github.com/san-kum/heatsim/internal/field"
	"github.com/san-kum/heatsim/internal/sim"
)

// FieldToSVG renders the field as one rect per cell. Intended for small grids.
func FieldToSVG(f *field.Field, pal colormap.Palette, scale float64) string {
	if f == nil {
		return ""
	}
	if scale <= 0 {
		scale = 1
	}
	w, h := f.Width(), f.Height()
	width := float64(w) * scale
	height := float64(h) * scale

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f" shape-rendering="crispEdges">
`, width, height, width, height))

	for y := h - 1; y >= 0; y-- {
		row := float64(h-1-y) * scale
		for x := 0; x < w; x++ {
			c := pal.Color(f.At(x, y))
			sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="#%02x%02x%02x"/>
`, float64(x)*scale, row, scale, scale, c.R, c.G, c.B))
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// SeriesToSVG draws one sampled quantity as a polyline. pick selects the value
// from each sample, e.g. func(s sim.Sample) float64 { return s.Mean }.
func SeriesToSVG(samples []sim.Sample, pick func(sim.Sample) float64, width, height int, strokeColor string) string {
	if len(samples) < 2 {
		return ""
	}

	minX, maxX := float64(samples[0].Step), float64(samples[0].Step)
	minY, maxY := pick(samples[0]), pick(samples[0])
	for _, s := range samples {
		x, y := float64(s.Step), pick(s)
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	rangeY *= 1.2

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i, s := range samples {
		x := (float64(s.Step) - minX) / rangeX * float64(width)
		y := float64(height) - (pick(s)-minY)/rangeY*float64(height)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
