package diffusion

import (
	"fmt"
	"math"

	"github.com/san-kum/heatsim/internal/field"
)

// MaxStableAlpha is the largest coefficient for which the explicit 5-point
// scheme stays bounded.
const MaxStableAlpha = 0.25

// Grid is the temperature field advanced by the explicit diffusion stencil.
// It is not safe for concurrent use.
type Grid struct {
	src   *field.Field
	cur   *field.Field
	next  *field.Field
	alpha float64
	steps int
}

// New returns a zeroed grid sized to src. The grid keeps its own copy of src,
// so later writes to src do not reach it.
func New(src *field.Field, alpha float64) (*Grid, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil source", ErrInvalidParams)
	}
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) || alpha < 0 {
		return nil, fmt.Errorf("%w: alpha %v", ErrInvalidParams, alpha)
	}
	w, h := src.Width(), src.Height()
	return &Grid{
		src:   src.Clone(),
		cur:   field.New(w, h),
		next:  field.New(w, h),
		alpha: alpha,
	}, nil
}

// Stable reports whether alpha is within the von Neumann bound of the scheme.
func Stable(alpha float64) bool { return alpha >= 0 && alpha <= MaxStableAlpha }

func (g *Grid) Width() int     { return g.cur.Width() }
func (g *Grid) Height() int    { return g.cur.Height() }
func (g *Grid) Alpha() float64 { return g.alpha }
func (g *Grid) Steps() int     { return g.steps }

// Source returns the injection mask. It is shared with the grid and must be
// treated as read-only.
func (g *Grid) Source() *field.Field { return g.src }

// Field returns the current temperature buffer. It is overwritten two steps
// later, so callers must not hold it across Step.
func (g *Grid) Field() *field.Field { return g.cur }

// At reads the current temperature at (x, y).
func (g *Grid) At(x, y int) float64 { return g.cur.At(x, y) }

// Step advances the field by one tick. Source cells are pinned to their
// source value; other interior cells move by alpha times the discrete
// Laplacian of the previous field. Border cells never change.
func (g *Grid) Step() {
	w, h := g.cur.Width(), g.cur.Height()
	t := g.cur.Values()
	s := g.src.Values()
	out := g.next.Values()

	// The scratch buffer last held the field from two steps ago; bring the
	// fixed edges across so they keep their prior value.
	copy(out[:w], t[:w])
	copy(out[(h-1)*w:], t[(h-1)*w:])
	for y := 1; y < h-1; y++ {
		row := y * w
		out[row] = t[row]
		out[row+w-1] = t[row+w-1]
	}

	for y := 1; y < h-1; y++ {
		row := y * w
		for x := 1; x < w-1; x++ {
			i := row + x
			if s[i] > 0 {
				out[i] = s[i]
				continue
			}
			lap := t[i-1] + t[i+1] + t[i-w] + t[i+w] - 4*t[i]
			out[i] = t[i] + g.alpha*lap
		}
	}

	g.cur, g.next = g.next, g.cur
	g.steps++
}

// StepN runs n steps.
func (g *Grid) StepN(n int) {
	for i := 0; i < n; i++ {
		g.Step()
	}
}

// Reset zeroes the temperature field and the step counter.
func (g *Grid) Reset() {
	g.cur.Fill(0)
	g.next.Fill(0)
	g.steps = 0
}

// Seed installs initial as the current temperature field.
func (g *Grid) Seed(initial *field.Field) error {
	if err := g.cur.CopyFrom(initial); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}
	return g.next.CopyFrom(initial)
}
