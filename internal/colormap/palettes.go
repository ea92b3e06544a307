package colormap

import (
	"fmt"
	"sort"

	"github.com/crazy3lf/colorconv"
)

// Inferno is the default heat palette.
var Inferno = Palette{
	Name: "inferno",
	Anchors: []RGB{
		{0.02, 0.00, 0.06},
		{0.13, 0.05, 0.40},
		{0.48, 0.06, 0.33},
		{0.90, 0.35, 0.01},
		{1.00, 1.00, 0.65},
	},
}

var Grayscale = Palette{
	Name:    "grayscale",
	Anchors: []RGB{{0, 0, 0}, {1, 1, 1}},
}

// Rainbow sweeps hue from blue (cold) to red (hot).
var Rainbow = mustHSV("rainbow", 240, 0, 7)

var palettes = map[string]Palette{
	Inferno.Name:   Inferno,
	Grayscale.Name: Grayscale,
	Rainbow.Name:   Rainbow,
}

// Default is used when no palette is configured.
const Default = "inferno"

// Get returns the palette registered under name.
func Get(name string) (Palette, error) {
	if name == "" {
		name = Default
	}
	p, ok := palettes[name]
	if !ok {
		return Palette{}, fmt.Errorf("unknown palette: %s (available: %v)", name, Names())
	}
	return p, nil
}

// Names lists registered palettes in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Next returns the palette after name in Names order, wrapping around.
func Next(name string) Palette {
	names := Names()
	for i, n := range names {
		if n == name {
			return palettes[names[(i+1)%len(names)]]
		}
	}
	return palettes[names[0]]
}

// HSV builds an n-anchor palette with full saturation and value whose hue
// moves linearly from hueFrom to hueTo degrees.
func HSV(name string, hueFrom, hueTo float64, n int) (Palette, error) {
	if n < 2 {
		return Palette{}, fmt.Errorf("colormap: palette %q needs at least 2 anchors, got %d", name, n)
	}
	anchors := make([]RGB, n)
	for i := range anchors {
		hue := hueFrom + (hueTo-hueFrom)*float64(i)/float64(n-1)
		r, g, b, err := colorconv.HSVToRGB(hue, 1, 1)
		if err != nil {
			return Palette{}, fmt.Errorf("colormap: hue %.1f: %w", hue, err)
		}
		anchors[i] = RGB{float64(r) / 255, float64(g) / 255, float64(b) / 255}
	}
	return NewPalette(name, anchors...)
}

func mustHSV(name string, hueFrom, hueTo float64, n int) Palette {
	p, err := HSV(name, hueFrom, hueTo, n)
	if err != nil {
		panic(err)
	}
	return p
}
