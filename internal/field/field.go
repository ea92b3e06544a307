package field

import (
	"fmt"
	"math"
)

// Field is a fixed-size 2D grid of float64 values stored row-major.
// x grows to the right, y grows upward; index = y*W + x.
type Field struct {
	w, h int
	data []float64
}

// Stats summarises the values of a field.
type Stats struct {
	Min   float64
	Max   float64
	Mean  float64
	Total float64
}

// New allocates a zeroed w×h field. Non-positive dimensions are bumped to 1.
func New(w, h int) *Field {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Field{w: w, h: h, data: make([]float64, w*h)}
}

func (f *Field) Width() int  { return f.w }
func (f *Field) Height() int { return f.h }

// InBounds reports whether (x, y) addresses a cell of the field.
func (f *Field) InBounds(x, y int) bool {
	return x >= 0 && x < f.w && y >= 0 && y < f.h
}

func (f *Field) At(x, y int) float64 {
	f.check(x, y)
	return f.data[y*f.w+x]
}

func (f *Field) Set(x, y int, v float64) {
	f.check(x, y)
	f.data[y*f.w+x] = v
}

func (f *Field) check(x, y int) {
	if !f.InBounds(x, y) {
		panic(fmt.Sprintf("field: (%d,%d) out of range %dx%d", x, y, f.w, f.h))
	}
}

// Values exposes the backing slice. Callers must treat it as read-only
// unless they own the field.
func (f *Field) Values() []float64 { return f.data }

func (f *Field) Clone() *Field {
	c := &Field{w: f.w, h: f.h, data: make([]float64, len(f.data))}
	copy(c.data, f.data)
	return c
}

// CopyFrom overwrites f with the contents of src. Both fields must have the
// same dimensions.
func (f *Field) CopyFrom(src *Field) error {
	if src.w != f.w || src.h != f.h {
		return fmt.Errorf("field: size mismatch %dx%d vs %dx%d", f.w, f.h, src.w, src.h)
	}
	copy(f.data, src.data)
	return nil
}

func (f *Field) Fill(v float64) {
	for i := range f.data {
		f.data[i] = v
	}
}

// IsFinite reports whether every value is neither NaN nor Inf.
func (f *Field) IsFinite() bool {
	for _, v := range f.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (f *Field) Stats() Stats {
	s := Stats{Min: f.data[0], Max: f.data[0]}
	for _, v := range f.data {
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
		s.Total += v
	}
	s.Mean = s.Total / float64(len(f.data))
	return s
}

// Row returns a copy of row y, left to right.
func (f *Field) Row(y int) []float64 {
	f.check(0, y)
	r := make([]float64, f.w)
	copy(r, f.data[y*f.w:(y+1)*f.w])
	return r
}
