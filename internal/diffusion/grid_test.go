package diffusion_test

import (
	"math"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/heatsim/internal/diffusion"
	"github.com/san-kum/heatsim/internal/field"
)

func randomField(rng *rand.Rand, w, h int) *field.Field {
	f := field.New(w, h)
	vals := f.Values()
	for i := range vals {
		vals[i] = rng.Float64()
	}
	return f
}

// referenceStep allocates a fresh output field on every call.
func referenceStep(t, s *field.Field, alpha float64) *field.Field {
	out := t.Clone()
	for y := 1; y < t.Height()-1; y++ {
		for x := 1; x < t.Width()-1; x++ {
			if s.At(x, y) > 0 {
				out.Set(x, y, s.At(x, y))
				continue
			}
			lap := t.At(x-1, y) + t.At(x+1, y) + t.At(x, y-1) + t.At(x, y+1) - 4*t.At(x, y)
			out.Set(x, y, t.At(x, y)+alpha*lap)
		}
	}
	return out
}

func isBorder(f *field.Field, x, y int) bool {
	return x == 0 || y == 0 || x == f.Width()-1 || y == f.Height()-1
}

var _ = Describe("Grid", func() {
	var rng *rand.Rand

	BeforeEach(func() {
		rng = rand.New(rand.NewSource(42))
	})

	Describe("construction", func() {
		It("starts all zero with the source dimensions", func() {
			g, err := diffusion.New(field.New(7, 5), 0.1)
			Expect(err).NotTo(HaveOccurred())
			Expect(g.Width()).To(Equal(7))
			Expect(g.Height()).To(Equal(5))
			Expect(g.Steps()).To(BeZero())
			for _, v := range g.Field().Values() {
				Expect(v).To(BeZero())
			}
		})

		It("rejects a nil source", func() {
			_, err := diffusion.New(nil, 0.1)
			Expect(err).To(MatchError(diffusion.ErrInvalidParams))
		})

		DescribeTable("rejects unusable coefficients",
			func(alpha float64) {
				_, err := diffusion.New(field.New(3, 3), alpha)
				Expect(err).To(MatchError(diffusion.ErrInvalidParams))
			},
			Entry("negative", -0.1),
			Entry("NaN", math.NaN()),
			Entry("Inf", math.Inf(1)),
		)

		It("accepts coefficients above the stability bound", func() {
			_, err := diffusion.New(field.New(3, 3), 0.4)
			Expect(err).NotTo(HaveOccurred())
			Expect(diffusion.Stable(0.4)).To(BeFalse())
			Expect(diffusion.Stable(0.25)).To(BeTrue())
		})
	})

	Describe("stability", func() {
		DescribeTable("stays bounded for 10000 steps",
			func(alpha float64) {
				const eps = 1e-9
				g, err := diffusion.New(field.New(24, 18), alpha)
				Expect(err).NotTo(HaveOccurred())
				Expect(g.Seed(randomField(rng, 24, 18))).To(Succeed())

				g.StepN(10000)

				s := g.Field().Stats()
				Expect(s.Min).To(BeNumerically(">=", -eps))
				Expect(s.Max).To(BeNumerically("<=", 1+eps))
			},
			Entry("alpha 0.05", 0.05),
			Entry("alpha 0.1", 0.1),
			Entry("alpha 0.2", 0.2),
			Entry("alpha 0.25", 0.25),
		)

		It("blows up above the bound", func() {
			g, _ := diffusion.New(field.New(24, 18), 0.3)
			Expect(g.Seed(randomField(rng, 24, 18))).To(Succeed())
			g.StepN(300)
			s := g.Field().Stats()
			Expect(math.Max(math.Abs(s.Min), math.Abs(s.Max))).To(BeNumerically(">", 10))
		})
	})

	Describe("source cells", func() {
		It("pins every source cell to its source value after one step", func() {
			src := field.New(12, 9)
			src.Set(3, 3, 0.4)
			src.Set(8, 5, 0.9)
			src.Set(6, 6, 1e-6)

			g, _ := diffusion.New(src, 0.2)
			Expect(g.Seed(randomField(rng, 12, 9))).To(Succeed())
			g.Step()

			Expect(g.At(3, 3)).To(Equal(0.4))
			Expect(g.At(8, 5)).To(Equal(0.9))
			Expect(g.At(6, 6)).To(Equal(1e-6))
		})

		It("holds peak intensity instead of accumulating", func() {
			src := field.New(5, 5)
			src.Set(2, 2, 0.5)
			g, _ := diffusion.New(src, 0.25)
			g.StepN(500)
			Expect(g.At(2, 2)).To(Equal(0.5))
		})

		It("ignores writes to the caller's source after construction", func() {
			src := field.New(5, 5)
			src.Set(2, 2, 0.5)
			g, _ := diffusion.New(src, 0.2)

			src.Set(2, 2, 0.9)
			src.Set(1, 1, 0.7)
			g.Step()

			Expect(g.At(2, 2)).To(Equal(0.5))
			Expect(g.At(1, 1)).To(Equal(0.0))
			Expect(g.Source().At(2, 2)).To(Equal(0.5))
		})
	})

	Describe("borders", func() {
		It("never change, whatever the field or source", func() {
			initial := randomField(rng, 10, 8)
			src := randomField(rng, 10, 8)

			g, _ := diffusion.New(src, 0.25)
			Expect(g.Seed(initial)).To(Succeed())
			g.StepN(37)

			for y := 0; y < 8; y++ {
				for x := 0; x < 10; x++ {
					if isBorder(initial, x, y) {
						Expect(g.At(x, y)).To(Equal(initial.At(x, y)), "border (%d,%d)", x, y)
					}
				}
			}
		})
	})

	Describe("zero steady state", func() {
		It("keeps an all-zero field at zero", func() {
			g, _ := diffusion.New(field.New(16, 16), 0.25)
			g.StepN(1000)
			for _, v := range g.Field().Values() {
				Expect(v).To(BeZero())
			}
		})
	})

	Describe("double buffering", func() {
		It("matches a step computed into a freshly allocated field", func() {
			initial := randomField(rng, 15, 11)
			src := field.New(15, 11)
			src.Set(7, 5, 0.8)
			src.Set(2, 9, 0.3)

			g, _ := diffusion.New(src, 0.2)
			Expect(g.Seed(initial)).To(Succeed())

			want := initial
			for i := 0; i < 25; i++ {
				want = referenceStep(want, src, 0.2)
				g.Step()
				got := g.Field().Values()
				for j, v := range want.Values() {
					Expect(got[j]).To(BeNumerically("~", v, 1e-12), "step %d cell %d", i+1, j)
				}
			}
		})
	})

	Describe("five by five scenario", func() {
		var g *diffusion.Grid

		BeforeEach(func() {
			src := field.New(5, 5)
			src.Set(2, 2, 0.8)
			var err error
			g, err = diffusion.New(src, 0.2)
			Expect(err).NotTo(HaveOccurred())
		})

		It("clamps the source on the first step and leaves neighbours cold", func() {
			g.Step()
			Expect(g.At(2, 2)).To(Equal(0.8))
			for _, p := range [][2]int{{1, 2}, {3, 2}, {2, 1}, {2, 3}} {
				Expect(g.At(p[0], p[1])).To(BeZero())
			}
		})

		It("spreads heat to the four neighbours on the second step", func() {
			g.StepN(2)
			Expect(g.At(2, 2)).To(Equal(0.8))
			for _, p := range [][2]int{{1, 2}, {3, 2}, {2, 1}, {2, 3}} {
				Expect(g.At(p[0], p[1])).To(BeNumerically("~", 0.16, 1e-12))
			}
			Expect(g.At(1, 1)).To(BeZero())
			for x := 0; x < 5; x++ {
				Expect(g.At(x, 0)).To(BeZero())
				Expect(g.At(x, 4)).To(BeZero())
			}
			Expect(g.Steps()).To(Equal(2))
		})

		It("returns to zero on reset", func() {
			g.StepN(3)
			g.Reset()
			Expect(g.Steps()).To(BeZero())
			Expect(g.At(2, 2)).To(BeZero())
		})
	})
})
