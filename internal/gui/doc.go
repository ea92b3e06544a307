// Package gui renders a diffusion grid in a raylib window. The field is
// uploaded to a texture every frame and scaled up; the HUD on the right shows
// field statistics and a trace of the mean temperature.
package gui
