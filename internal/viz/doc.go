// Package viz provides the terminal view of a running diffusion grid.
//
// [Model] is a Bubble Tea program that steps the grid on every tick and draws
// it with half-block characters, two field rows per terminal line, coloured
// through a [colormap.Palette]. A sidebar shows step count, field statistics
// and an asciigraph of the mean temperature.
//
// # Key Bindings
//
//	Space - Pause/Resume simulation
//	N     - Single step while paused
//	R     - Reset temperatures to zero
//	P     - Cycle palettes
//	T     - Cycle color themes
//	+/-   - Change steps per frame
//	G     - Toggle GIF recording
//	?     - Show help overlay
package viz
