package metrics

import (
	"github.com/san-kum/heatsim/internal/field"
)

// Peak tracks the highest temperature seen over a run.
type Peak struct {
	peak    float64
	samples int
}

func NewPeak() *Peak { return &Peak{} }

func (p *Peak) Name() string { return "peak_temperature" }

func (p *Peak) Observe(step int, f *field.Field) {
	m := f.Stats().Max
	if p.samples == 0 || m > p.peak {
		p.peak = m
	}
	p.samples++
}

func (p *Peak) Value() float64 { return p.peak }

func (p *Peak) Reset() {
	p.peak = 0
	p.samples = 0
}

// Mean is the time average of the field mean.
type Mean struct {
	sum     float64
	samples int
}

func NewMean() *Mean { return &Mean{} }

func (m *Mean) Name() string { return "mean_temperature" }

func (m *Mean) Observe(step int, f *field.Field) {
	m.sum += f.Stats().Mean
	m.samples++
}

func (m *Mean) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *Mean) Reset() {
	m.sum = 0
	m.samples = 0
}

// HeatedShare is the fraction of the source peak a cell must exceed to count
// as heated.
const HeatedShare = 0.01

// HeatedFraction returns the share of vals strictly above HeatedShare*peak.
// A non-positive peak heats nothing.
func HeatedFraction(vals []float64, peak float64) float64 {
	if peak <= 0 || len(vals) == 0 {
		return 0
	}
	threshold := HeatedShare * peak
	n := 0
	for _, v := range vals {
		if v > threshold {
			n++
		}
	}
	return float64(n) / float64(len(vals))
}

// Heated is the heated fraction of the last observed step, relative to the
// peak source temperature.
type Heated struct {
	peak     float64
	fraction float64
}

func NewHeated(peak float64) *Heated {
	return &Heated{peak: peak}
}

func (h *Heated) Name() string { return "heated_fraction" }

func (h *Heated) Observe(step int, f *field.Field) {
	h.fraction = HeatedFraction(f.Values(), h.peak)
}

func (h *Heated) Value() float64 { return h.fraction }

func (h *Heated) Reset() { h.fraction = 0 }
