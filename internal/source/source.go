package source

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/san-kum/heatsim/internal/field"
)

// FromImage builds a w×h source field from img. The image is centred on the
// grid and flipped vertically so that its top row lands on the highest y.
// Each cell receives k times the pixel's 16-bit Rec. 709 luminance normalised
// to [0,1].
func FromImage(img image.Image, w, h int, k float64) (*field.Field, error) {
	if err := checkIntensity(k); err != nil {
		return nil, err
	}
	b := img.Bounds()
	iw, ih := b.Dx(), b.Dy()
	if iw > w || ih > h {
		return nil, &ImageError{ImageW: iw, ImageH: ih, GridW: w, GridH: h, Wrapped: ErrImageTooLarge}
	}

	src := field.New(w, h)
	offX := (w - iw) / 2
	offY := (h - ih) / 2

	for py := 0; py < ih; py++ {
		y := (ih - 1 - py) + offY
		for px := 0; px < iw; px++ {
			l := luma16(img.At(b.Min.X+px, b.Min.Y+py))
			src.Set(px+offX, y, k*float64(l)/math.MaxUint16)
		}
	}
	return src, nil
}

// luma16 weights the 16-bit channels with the Rec. 709 coefficients. Gray
// pixels map to their own level.
func luma16(c color.Color) uint16 {
	r, g, b, _ := c.RGBA()
	return uint16((2126*r + 7152*g + 722*b) / 10000)
}

func checkIntensity(k float64) error {
	if math.IsNaN(k) || math.IsInf(k, 0) || k < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidIntensity, k)
	}
	return nil
}

// Load decodes the image at path and passes it to FromImage.
func Load(path string, w, h int, k float64) (*field.Field, error) {
	if err := checkIntensity(k); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, &ImageError{Path: path, Wrapped: fmt.Errorf("%w: %v", ErrImageLoad, err)}
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, &ImageError{Path: path, Wrapped: fmt.Errorf("%w: %v", ErrImageLoad, err)}
	}

	src, err := FromImage(img, w, h, k)
	if err != nil {
		if ie, ok := err.(*ImageError); ok {
			ie.Path = path
		}
		return nil, err
	}
	return src, nil
}

// Disc returns a source with a filled disc of intensity k centred on the
// grid. It stands in for an image when none is configured.
func Disc(w, h int, radius, k float64) (*field.Field, error) {
	if err := checkIntensity(k); err != nil {
		return nil, err
	}
	src := field.New(w, h)
	cx, cy := float64(w-1)/2, float64(h-1)/2
	r2 := radius * radius
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx, dy := float64(x)-cx, float64(y)-cy
			if dx*dx+dy*dy <= r2 {
				src.Set(x, y, k)
			}
		}
	}
	return src, nil
}

// ActiveCells counts cells that inject heat.
func ActiveCells(src *field.Field) int {
	n := 0
	for _, v := range src.Values() {
		if v > 0 {
			n++
		}
	}
	return n
}
