package viz

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/heatsim/internal/colormap"
	"github.com/san-kum/heatsim/internal/field"
)

const halfBlock = "▀"

// FitCells picks a terminal size for a w×h field that fits in maxCols×maxRows
// while keeping the aspect ratio. Each terminal row holds two field rows.
func FitCells(w, h, maxCols, maxRows int) (cols, rows int) {
	scale := 1.0
	if maxCols > 0 && w > maxCols {
		scale = float64(maxCols) / float64(w)
	}
	if maxRows > 0 && float64(h)*scale > float64(2*maxRows) {
		scale = float64(2*maxRows) / float64(h)
	}
	cols = int(float64(w) * scale)
	rows = (int(float64(h)*scale) + 1) / 2
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return cols, rows
}

// Heatmap renders f as cols×rows half-block cells. The foreground of each
// cell is the upper sample and the background the lower one. The first line
// shows the highest y.
func Heatmap(f *field.Field, pal colormap.Palette, cols, rows int) string {
	w, h := f.Width(), f.Height()
	sub := 2 * rows

	sample := func(c, r int) color.RGBA {
		x := c * w / cols
		y := h - 1 - r*h/sub
		if y < 0 {
			y = 0
		}
		return pal.Color(f.At(x, y))
	}

	var sb strings.Builder
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			top := sample(c, 2*r)
			bottom := sample(c, 2*r+1)
			sb.WriteString(lipgloss.NewStyle().
				Foreground(hex(top)).
				Background(hex(bottom)).
				Render(halfBlock))
		}
		if r < rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func hex(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}
