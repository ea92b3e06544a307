package metrics

import (
	"github.com/san-kum/heatsim/internal/field"
)

// Bounded reports the fraction of observed steps whose every cell stayed
// within [lo, hi]. 1.0 means the run never left the range.
type Bounded struct {
	name       string
	lo, hi     float64
	violations int
	samples    int
}

func NewBounded(lo, hi float64) *Bounded {
	return &Bounded{
		name: "bounded",
		lo:   lo,
		hi:   hi,
	}
}

func (b *Bounded) Name() string {
	return b.name
}

func (b *Bounded) Observe(step int, f *field.Field) {
	b.samples++
	for _, v := range f.Values() {
		if !(v >= b.lo && v <= b.hi) {
			b.violations++
			break
		}
	}
}

func (b *Bounded) Value() float64 {
	if b.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(b.violations)/float64(b.samples)
}

func (b *Bounded) Reset() {
	b.violations = 0
	b.samples = 0
}
