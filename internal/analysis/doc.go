// Package analysis provides spectral diagnostics for temperature fields.
//
// [RadialSpectrum] takes the 2D FFT of a field (github.com/mjibson/go-dsp) and
// averages power over rings of equal spatial frequency, which makes the
// smoothing effect of diffusion visible as a decaying tail:
//
//	ps := analysis.RadialSpectrum(grid.Field())
//	fmt.Println(analysis.HighFrequencyRatio(ps))
package analysis
