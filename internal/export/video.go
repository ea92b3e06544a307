package export

import (
	"bytes"
	"fmt"
	"image/jpeg"

	"github.com/icza/mjpeg"

	"github.com/san-kum/heatsim/internal/colormap"
	"github.com/san-kum/heatsim/internal/field"
)

// Recorder appends coloured frames of a field to an MJPEG AVI file.
// It implements sim.Observer so it can be attached to a Simulator.
type Recorder struct {
	aw      mjpeg.AviWriter
	palette colormap.Palette
	scale   int
	every   int
	frames  int
	buf     bytes.Buffer
	opts    *jpeg.Options
	err     error
}

// NewRecorder opens path for a w×h grid. Every N-th observed step becomes a
// frame; every <= 1 records all of them.
func NewRecorder(path string, w, h, scale, fps, every int, pal colormap.Palette) (*Recorder, error) {
	if scale < 1 {
		scale = 1
	}
	if every < 1 {
		every = 1
	}
	aw, err := mjpeg.New(path, int32(w*scale), int32(h*scale), int32(fps))
	if err != nil {
		return nil, fmt.Errorf("create video %s: %w", path, err)
	}
	return &Recorder{
		aw:      aw,
		palette: pal,
		scale:   scale,
		every:   every,
		opts:    &jpeg.Options{Quality: 90},
	}, nil
}

// AddFrame encodes f as one video frame.
func (r *Recorder) AddFrame(f *field.Field) error {
	r.buf.Reset()
	if err := jpeg.Encode(&r.buf, Image(f, r.palette, r.scale), r.opts); err != nil {
		return fmt.Errorf("encode frame %d: %w", r.frames, err)
	}
	if err := r.aw.AddFrame(r.buf.Bytes()); err != nil {
		return fmt.Errorf("write frame %d: %w", r.frames, err)
	}
	r.frames++
	return nil
}

// OnStep records a frame on every N-th step. The first error is kept and
// returned by Close; later steps are ignored.
func (r *Recorder) OnStep(step int, f *field.Field) {
	if r.err != nil || step%r.every != 0 {
		return
	}
	r.err = r.AddFrame(f)
}

func (r *Recorder) Frames() int { return r.frames }

func (r *Recorder) Close() error {
	closeErr := r.aw.Close()
	if r.err != nil {
		return r.err
	}
	return closeErr
}
