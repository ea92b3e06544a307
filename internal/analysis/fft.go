package analysis

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"

	"github.com/san-kum/heatsim/internal/field"
)

// RadialSpectrum returns the 2D power spectrum of f averaged over rings of
// equal spatial frequency. Bin 0 holds the mean (DC) component; bin i covers
// frequencies around i/(2*len) cycles per cell, where len = min(W,H)/2.
// Diffusion damps high bins first, so the tail shrinks as a run smooths out.
func RadialSpectrum(f *field.Field) []float64 {
	w, h := f.Width(), f.Height()
	rows := make([][]float64, h)
	for y := range rows {
		rows[y] = f.Row(y)
	}
	spec := fft.FFT2Real(rows)

	bins := minInt(w, h) / 2
	if bins < 1 {
		bins = 1
	}
	power := make([]float64, bins)
	counts := make([]int, bins)

	for ky, row := range spec {
		fy := float64(minInt(ky, h-ky)) / float64(h)
		for kx, c := range row {
			fx := float64(minInt(kx, w-kx)) / float64(w)
			r := math.Sqrt(fx*fx + fy*fy)
			bin := int(r / 0.5 * float64(bins))
			if bin >= bins {
				continue
			}
			a := cmplx.Abs(c)
			power[bin] += a * a
			counts[bin]++
		}
	}

	for i := range power {
		if counts[i] > 0 {
			power[i] /= float64(counts[i])
		}
	}
	return power
}

// DominantBin returns the non-DC bin with the most power, or 0 when the
// spectrum has no other bins.
func DominantBin(spectrum []float64) int {
	best, bestPower := 0, 0.0
	for i := 1; i < len(spectrum); i++ {
		if spectrum[i] > bestPower {
			best, bestPower = i, spectrum[i]
		}
	}
	return best
}

// HighFrequencyRatio is the share of non-DC power held by the upper half of
// the bins.
func HighFrequencyRatio(spectrum []float64) float64 {
	if len(spectrum) < 2 {
		return 0
	}
	var total, high float64
	for i := 1; i < len(spectrum); i++ {
		total += spectrum[i]
		if i >= len(spectrum)/2 {
			high += spectrum[i]
		}
	}
	if total == 0 {
		return 0
	}
	return high / total
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
