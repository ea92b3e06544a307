package colormap

import (
	"fmt"
	"image/color"
	"math"
)

// RGB is a colour with components in [0,1].
type RGB struct {
	R, G, B float64
}

// RGBA converts c to an opaque 8-bit colour.
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: 0xff}
}

func to8(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}

// Palette is an ordered set of anchor colours spread evenly over [0,1].
type Palette struct {
	Name    string
	Anchors []RGB
}

// NewPalette validates that at least two anchors are given.
func NewPalette(name string, anchors ...RGB) (Palette, error) {
	if len(anchors) < 2 {
		return Palette{}, fmt.Errorf("colormap: palette %q needs at least 2 anchors, got %d", name, len(anchors))
	}
	a := make([]RGB, len(anchors))
	copy(a, anchors)
	return Palette{Name: name, Anchors: a}, nil
}

// At maps t to a colour by linear interpolation between neighbouring
// anchors. t is clamped to [0,1]; NaN maps like 0.
func (p Palette) At(t float64) RGB {
	n := len(p.Anchors)
	u := clamp01(t) * float64(n-1)
	i := int(math.Floor(u))
	if i > n-2 {
		i = n - 2
	}
	if i < 0 {
		i = 0
	}
	f := u - float64(i)
	a, b := p.Anchors[i], p.Anchors[i+1]
	return RGB{
		R: lerp(a.R, b.R, f),
		G: lerp(a.G, b.G, f),
		B: lerp(a.B, b.B, f),
	}
}

// Color is At followed by RGBA.
func (p Palette) Color(t float64) color.RGBA {
	return p.At(t).RGBA()
}

// lerp is exact at both ends: f=0 yields a, f=1 yields b.
func lerp(a, b, f float64) float64 {
	return (1-f)*a + f*b
}

func clamp01(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
