package source

import (
	"errors"
	"fmt"
)

var (
	// ErrImageLoad indicates the source image could not be opened or decoded.
	ErrImageLoad = errors.New("source: cannot load image")

	// ErrImageTooLarge indicates the image does not fit inside the grid.
	ErrImageTooLarge = errors.New("source: image larger than grid")

	// ErrInvalidIntensity indicates a negative, NaN or infinite scale factor.
	ErrInvalidIntensity = errors.New("source: intensity must be finite and non-negative")
)

// ImageError wraps a source failure with the offending path and sizes.
type ImageError struct {
	Path         string
	ImageW       int
	ImageH       int
	GridW, GridH int
	Wrapped      error
}

func (e *ImageError) Error() string {
	if errors.Is(e.Wrapped, ErrImageTooLarge) {
		msg := fmt.Sprintf("%v: %dx%d image does not fit %dx%d grid", ErrImageTooLarge, e.ImageW, e.ImageH, e.GridW, e.GridH)
		if e.Path != "" {
			return e.Path + ": " + msg
		}
		return msg
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Wrapped)
	}
	return e.Wrapped.Error()
}

func (e *ImageError) Unwrap() error {
	return e.Wrapped
}
