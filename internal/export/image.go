package export

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/san-kum/heatsim/internal/colormap"
	"github.com/san-kum/heatsim/internal/field"
)

// Image colours every cell of f through pal. Values are taken as-is, so the
// palette's clamping decides how out-of-range cells look. Image rows run top
// to bottom, so field row H-1 becomes image row 0.
func Image(f *field.Field, pal colormap.Palette, scale int) *image.RGBA {
	if scale < 1 {
		scale = 1
	}
	w, h := f.Width(), f.Height()
	img := image.NewRGBA(image.Rect(0, 0, w*scale, h*scale))
	for y := 0; y < h; y++ {
		py := (h - 1 - y) * scale
		for x := 0; x < w; x++ {
			c := pal.Color(f.At(x, y))
			px := x * scale
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					img.SetRGBA(px+dx, py+dy, c)
				}
			}
		}
	}
	return img
}

func EncodePNG(w io.Writer, f *field.Field, pal colormap.Palette, scale int) error {
	return png.Encode(w, Image(f, pal, scale))
}

// WritePNG writes the coloured field to path.
func WritePNG(path string, f *field.Field, pal colormap.Palette, scale int) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := EncodePNG(out, f, pal, scale); err != nil {
		out.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return out.Close()
}

// FillRGBA writes the colour of every cell into dst in texture order: row 0
// of dst is the highest y. dst must hold W*H entries.
func FillRGBA(dst []color.RGBA, f *field.Field, pal colormap.Palette) {
	w, h := f.Width(), f.Height()
	vals := f.Values()
	for y := 0; y < h; y++ {
		row := (h - 1 - y) * w
		src := y * w
		for x := 0; x < w; x++ {
			dst[row+x] = pal.Color(vals[src+x])
		}
	}
}
