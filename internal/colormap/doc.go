// Package colormap maps scalar temperatures to display colours.
//
// A [Palette] holds N anchor colours evenly spaced over [0,1]; [Palette.At]
// interpolates linearly between the two anchors around t. Palettes are
// immutable values and safe to share between goroutines.
package colormap
