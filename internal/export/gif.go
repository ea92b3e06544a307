package export

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"os"

	"github.com/san-kum/heatsim/internal/colormap"
	"github.com/san-kum/heatsim/internal/field"
)

// PalettedFrame converts the coloured field to a Plan9-palette image for GIF
// encoding.
func PalettedFrame(f *field.Field, pal colormap.Palette, scale int) *image.Paletted {
	src := Image(f, pal, scale)
	dst := image.NewPaletted(src.Bounds(), palette.Plan9)
	draw.Draw(dst, dst.Bounds(), src, image.Point{}, draw.Src)
	return dst
}

// WriteGIF writes frames as a looping animation. delay is in 1/100 s.
func WriteGIF(path string, frames []*image.Paletted, delay int) error {
	if len(frames) == 0 {
		return fmt.Errorf("no frames to write")
	}
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, delay)
	}
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := gif.EncodeAll(out, &anim); err != nil {
		out.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return out.Close()
}
