package export

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/heatsim/internal/colormap"
	"github.com/san-kum/heatsim/internal/field"
	"github.com/san-kum/heatsim/internal/sim"
)

func testField() *field.Field {
	f := field.New(4, 3)
	f.Set(0, 0, 1)
	return f
}

func TestImageOrientation(t *testing.T) {
	img := Image(testField(), colormap.Grayscale, 1)

	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
		t.Fatalf("expected 4x3 image, got %v", b)
	}
	// field (0,0) is the bottom-left cell
	if c := img.RGBAAt(0, 2); c.R != 255 {
		t.Errorf("expected hot pixel at bottom-left, got %v", c)
	}
	if c := img.RGBAAt(0, 0); c.R != 0 {
		t.Errorf("expected cold pixel at top-left, got %v", c)
	}
}

func TestImageScale(t *testing.T) {
	img := Image(testField(), colormap.Grayscale, 3)
	if b := img.Bounds(); b.Dx() != 12 || b.Dy() != 9 {
		t.Fatalf("expected 12x9 image, got %v", b)
	}
	for dy := 0; dy < 3; dy++ {
		for dx := 0; dx < 3; dx++ {
			if img.RGBAAt(dx, 6+dy).R != 255 {
				t.Errorf("pixel (%d,%d) not part of hot block", dx, 6+dy)
			}
		}
	}
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "field.png")
	if err := WritePNG(path, testField(), colormap.Inferno, 2); err != nil {
		t.Fatal(err)
	}

	in, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer in.Close()
	img, err := png.Decode(in)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 6 {
		t.Errorf("unexpected bounds %v", b)
	}
}

func TestFieldToSVG(t *testing.T) {
	svg := FieldToSVG(testField(), colormap.Grayscale, 10)

	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Error("not a complete svg document")
	}
	if n := strings.Count(svg, "<rect"); n != 12 {
		t.Errorf("expected 12 rects, got %d", n)
	}
	if !strings.Contains(svg, `<rect x="0.0" y="20.0" width="10.0" height="10.0" fill="#ffffff"/>`) {
		t.Error("hot cell not drawn at bottom-left")
	}
	if FieldToSVG(nil, colormap.Grayscale, 1) != "" {
		t.Error("expected empty output for nil field")
	}
}

func samples() []sim.Sample {
	return []sim.Sample{
		{Step: 0, Min: 0, Max: 1, Mean: 0.1},
		{Step: 10, Min: 0, Max: 1, Mean: 0.2},
		{Step: 20, Min: 0, Max: 1, Mean: 0.25},
	}
}

func TestSeriesToSVG(t *testing.T) {
	svg := SeriesToSVG(samples(), func(s sim.Sample) float64 { return s.Mean }, 200, 100, "#ff0000")
	if !strings.Contains(svg, `stroke="#ff0000"`) {
		t.Error("missing stroke colour")
	}
	if strings.Count(svg, " L") != 2 {
		t.Error("expected two line segments")
	}
	if SeriesToSVG(samples()[:1], func(s sim.Sample) float64 { return s.Mean }, 200, 100, "#fff") != "" {
		t.Error("expected empty output for a single sample")
	}
}

func TestSeriesChart(t *testing.T) {
	var buf bytes.Buffer
	if err := SeriesChart(&buf, "test", samples(), 400, 300); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("chart is not a png: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 400 || b.Dy() != 300 {
		t.Errorf("unexpected chart size %v", b)
	}

	if err := SeriesChart(&buf, "test", samples()[:1], 400, 300); err != ErrTooFewSamples {
		t.Errorf("expected ErrTooFewSamples, got %v", err)
	}
}

func TestRecorder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.avi")
	rec, err := NewRecorder(path, 4, 3, 2, 10, 2, colormap.Inferno)
	if err != nil {
		t.Fatal(err)
	}

	f := testField()
	for step := 1; step <= 6; step++ {
		rec.OnStep(step, f)
	}
	if rec.Frames() != 3 {
		t.Errorf("expected 3 frames, got %d", rec.Frames())
	}
	if err := rec.Close(); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("video file is empty")
	}
}

func TestWriteGIF(t *testing.T) {
	frames := []*image.Paletted{
		PalettedFrame(testField(), colormap.Inferno, 2),
		PalettedFrame(field.New(4, 3), colormap.Inferno, 2),
	}
	path := filepath.Join(t.TempDir(), "run.gif")
	if err := WriteGIF(path, frames, 5); err != nil {
		t.Fatal(err)
	}

	in, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer in.Close()
	anim, err := gif.DecodeAll(in)
	if err != nil {
		t.Fatal(err)
	}
	if len(anim.Image) != 2 {
		t.Errorf("expected 2 frames, got %d", len(anim.Image))
	}

	if err := WriteGIF(path, nil, 5); err == nil {
		t.Error("expected error for empty frame list")
	}
}

func TestFillRGBA(t *testing.T) {
	f := testField()
	dst := make([]color.RGBA, 12)
	FillRGBA(dst, f, colormap.Grayscale)

	// bottom-left cell lands in the last texture row
	if dst[8].R != 255 {
		t.Errorf("expected hot texel at index 8, got %v", dst[8])
	}
	for i, c := range dst {
		if i != 8 && c.R != 0 {
			t.Errorf("texel %d should be cold, got %v", i, c)
		}
	}

	img := Image(f, colormap.Grayscale, 1)
	for i, c := range dst {
		if img.RGBAAt(i%4, i/4) != c {
			t.Errorf("texel %d disagrees with Image", i)
		}
	}
}
