package field

import (
	"math"
	"testing"
)

func TestNewIsZero(t *testing.T) {
	f := New(4, 3)
	if f.Width() != 4 || f.Height() != 3 {
		t.Fatalf("expected 4x3, got %dx%d", f.Width(), f.Height())
	}
	for i, v := range f.Values() {
		if v != 0 {
			t.Fatalf("cell %d = %f, expected 0", i, v)
		}
	}
}

func TestNewClampsDimensions(t *testing.T) {
	f := New(0, -2)
	if f.Width() != 1 || f.Height() != 1 {
		t.Errorf("expected 1x1, got %dx%d", f.Width(), f.Height())
	}
}

func TestSetAtRowMajor(t *testing.T) {
	f := New(3, 2)
	f.Set(2, 1, 7.5)
	if f.At(2, 1) != 7.5 {
		t.Errorf("expected 7.5, got %f", f.At(2, 1))
	}
	if f.Values()[1*3+2] != 7.5 {
		t.Error("expected value at row-major index y*W+x")
	}
}

func TestOutOfBoundsPanics(t *testing.T) {
	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 0},
		{"x too large", 3, 0},
		{"negative y", 0, -1},
		{"y too large", 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := New(3, 2)
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			f.At(tt.x, tt.y)
		})
	}
}

func TestCloneIsIndependent(t *testing.T) {
	f := New(2, 2)
	f.Set(0, 0, 1)
	c := f.Clone()
	c.Set(0, 0, 2)
	if f.At(0, 0) != 1 {
		t.Error("clone aliases original")
	}
}

func TestCopyFromMismatch(t *testing.T) {
	if err := New(2, 2).CopyFrom(New(3, 2)); err == nil {
		t.Error("expected size mismatch error")
	}
}

func TestStats(t *testing.T) {
	f := New(2, 2)
	f.Set(0, 0, -1)
	f.Set(1, 1, 3)
	s := f.Stats()
	if s.Min != -1 || s.Max != 3 {
		t.Errorf("expected min -1 max 3, got %f %f", s.Min, s.Max)
	}
	if s.Total != 2 || math.Abs(s.Mean-0.5) > 1e-12 {
		t.Errorf("expected total 2 mean 0.5, got %f %f", s.Total, s.Mean)
	}
}

func TestIsFinite(t *testing.T) {
	f := New(2, 2)
	if !f.IsFinite() {
		t.Error("zero field should be finite")
	}
	f.Set(1, 0, math.NaN())
	if f.IsFinite() {
		t.Error("NaN should be detected")
	}
}
