// Package diffusion advances a 2D temperature field with an explicit
// finite-difference approximation of the heat equation.
//
// Each [Grid.Step] computes
//
//	T'[x][y] = T[x][y] + alpha * (T[x-1][y] + T[x+1][y] + T[x][y-1] + T[x][y+1] - 4*T[x][y])
//
// for every interior cell, except cells whose source value is positive: those
// are clamped to the source value and act as fixed-temperature reservoirs.
// Edge cells are never updated.
//
// The next field is written into a second buffer and the two are swapped, so
// no cell ever reads a value produced during the same step.
//
// # Stability
//
// The scheme is bounded only for alpha <= 0.25 ([MaxStableAlpha]). The grid
// does not enforce this; use [Stable] to check before running.
package diffusion
