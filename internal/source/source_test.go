package source

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"math"
	"path/filepath"
	"strings"
	"testing"
)

func whiteImage(w, h int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	return img
}

func TestFromImageCentersBlock(t *testing.T) {
	src, err := FromImage(whiteImage(4, 4), 10, 10, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			want := 0.0
			if x >= 3 && x <= 6 && y >= 3 && y <= 6 {
				want = 1.0
			}
			if got := src.At(x, y); got != want {
				t.Fatalf("cell (%d,%d) = %f, expected %f", x, y, got, want)
			}
		}
	}
}

func TestFromImageFlipsRows(t *testing.T) {
	// Only the top image row is lit; it must land on the highest y.
	img := image.NewGray(image.Rect(0, 0, 2, 2))
	img.SetGray(0, 0, color.Gray{Y: 0xff})
	img.SetGray(1, 0, color.Gray{Y: 0xff})

	src, err := FromImage(img, 2, 2, 0.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if src.At(0, 1) != 0.5 || src.At(1, 1) != 0.5 {
		t.Errorf("expected top row at y=1, got %f %f", src.At(0, 1), src.At(1, 1))
	}
	if src.At(0, 0) != 0 || src.At(1, 0) != 0 {
		t.Errorf("expected bottom row dark, got %f %f", src.At(0, 0), src.At(1, 0))
	}
}

func TestFromImageOddOffsetFloors(t *testing.T) {
	src, err := FromImage(whiteImage(1, 1), 4, 4, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if src.At(1, 1) != 1 {
		t.Errorf("expected lit cell at offset (1,1)")
	}
	if ActiveCells(src) != 1 {
		t.Errorf("expected 1 active cell, got %d", ActiveCells(src))
	}
}

func TestFromImageNonZeroOrigin(t *testing.T) {
	img := whiteImage(6, 6).SubImage(image.Rect(2, 2, 4, 4))
	src, err := FromImage(img, 2, 2, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ActiveCells(src) != 4 {
		t.Errorf("expected 4 active cells, got %d", ActiveCells(src))
	}
}

func TestFromImageLuminanceScale(t *testing.T) {
	img := image.NewGray16(image.Rect(0, 0, 1, 1))
	img.SetGray16(0, 0, color.Gray16{Y: 0x8000})
	src, err := FromImage(img, 1, 1, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 2 * float64(0x8000) / 65535
	if src.At(0, 0) != want {
		t.Errorf("expected %f, got %f", want, src.At(0, 0))
	}
}

func TestFromImageTooLarge(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"too wide", 11, 4},
		{"too tall", 4, 11},
		{"both", 12, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromImage(whiteImage(tt.w, tt.h), 10, 10, 1)
			if !errors.Is(err, ErrImageTooLarge) {
				t.Fatalf("expected ErrImageTooLarge, got %v", err)
			}
			var ie *ImageError
			if !errors.As(err, &ie) || ie.ImageW != tt.w || ie.ImageH != tt.h {
				t.Errorf("expected ImageError with image size, got %#v", err)
			}
		})
	}
}

func TestLoadPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "src.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, whiteImage(4, 4)); err != nil {
		t.Fatal(err)
	}
	f.Close()

	src, err := Load(path, 10, 10, 1)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if ActiveCells(src) != 16 {
		t.Errorf("expected 16 active cells, got %d", ActiveCells(src))
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "garbage.png")
	if err := os.WriteFile(garbage, []byte("not an image"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"missing", filepath.Join(dir, "missing.png")},
		{"corrupt", garbage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path, 10, 10, 1)
			if !errors.Is(err, ErrImageLoad) {
				t.Fatalf("expected ErrImageLoad, got %v", err)
			}
		})
	}
}

func TestLoadTooLargeKeepsPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	png.Encode(f, whiteImage(8, 8))
	f.Close()

	_, err = Load(path, 4, 4, 1)
	var ie *ImageError
	if !errors.As(err, &ie) || ie.Path != path {
		t.Fatalf("expected ImageError carrying path, got %v", err)
	}
	if !errors.Is(err, ErrImageTooLarge) {
		t.Errorf("expected ErrImageTooLarge, got %v", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("expected message to name %s, got %q", path, err.Error())
	}
}

func TestDisc(t *testing.T) {
	src, err := Disc(11, 11, 2, 0.7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if src.At(5, 5) != 0.7 {
		t.Errorf("expected centre lit")
	}
	if src.At(0, 0) != 0 {
		t.Errorf("expected corner dark")
	}
	// radius 2 around an integer centre covers 13 cells
	if n := ActiveCells(src); n != 13 {
		t.Errorf("expected 13 active cells, got %d", n)
	}
}

func TestFromImageRec709Luma(t *testing.T) {
	tests := []struct {
		name string
		c    color.Color
		want uint16
	}{
		{"red", color.RGBA64{R: 0xffff, A: 0xffff}, 13932},
		{"green", color.RGBA64{G: 0xffff, A: 0xffff}, 46870},
		{"blue", color.RGBA64{B: 0xffff, A: 0xffff}, 4731},
		{"white", color.RGBA64{R: 0xffff, G: 0xffff, B: 0xffff, A: 0xffff}, 0xffff},
		{"gray", color.Gray16{Y: 0x1234}, 0x1234},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := image.NewRGBA64(image.Rect(0, 0, 1, 1))
			img.Set(0, 0, tt.c)
			src, err := FromImage(img, 1, 1, 1)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			want := float64(tt.want) / math.MaxUint16
			if got := src.At(0, 0); got != want {
				t.Errorf("expected %v, got %v", want, got)
			}
		})
	}
}

func TestRejectsInvalidIntensity(t *testing.T) {
	for _, k := range []float64{-0.5, math.NaN(), math.Inf(1)} {
		if _, err := FromImage(whiteImage(2, 2), 4, 4, k); !errors.Is(err, ErrInvalidIntensity) {
			t.Errorf("FromImage k=%v: expected ErrInvalidIntensity, got %v", k, err)
		}
		if _, err := Load("unused.png", 4, 4, k); !errors.Is(err, ErrInvalidIntensity) {
			t.Errorf("Load k=%v: expected ErrInvalidIntensity, got %v", k, err)
		}
		if _, err := Disc(4, 4, 1, k); !errors.Is(err, ErrInvalidIntensity) {
			t.Errorf("Disc k=%v: expected ErrInvalidIntensity, got %v", k, err)
		}
	}
	if _, err := Disc(4, 4, 1, 0); err != nil {
		t.Errorf("expected zero intensity to be accepted, got %v", err)
	}
}
