package rage

import (
	"errors"
	"fmt"
	"math"
)

// Animation table validation errors.
var (
	ErrEmptyAnimation = errors.New("rage: animation has no frames")
	ErrInvalidFrame   = errors.New("rage: invalid animation frame")
)

// AnimationFrame is one source rectangle within a sprite sheet.
type AnimationFrame struct {
	ClipX, ClipY          float64
	ClipWidth, ClipHeight float64
}

// Rect returns the frame as a Rect.
func (f AnimationFrame) Rect() Rect {
	return Rect{X: f.ClipX, Y: f.ClipY, Width: f.ClipWidth, Height: f.ClipHeight}
}

// Valid reports whether every field is finite and the size is positive.
func (f AnimationFrame) Valid() bool {
	for _, v := range [...]float64{f.ClipX, f.ClipY, f.ClipWidth, f.ClipHeight} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return f.ClipWidth > 0 && f.ClipHeight > 0
}

// GridFrames cuts count frames of size w×h from a sheet laid out left to
// right, top to bottom, starting at cell index start, with cols cells per row.
func GridFrames(w, h float64, cols, start, count int) []AnimationFrame {
	if cols <= 0 || count <= 0 {
		return nil
	}
	frames := make([]AnimationFrame, count)
	for i := range frames {
		idx := start + i
		frames[i] = AnimationFrame{
			ClipX:      float64(idx%cols) * w,
			ClipY:      float64(idx/cols) * h,
			ClipWidth:  w,
			ClipHeight: h,
		}
	}
	return frames
}

// AnimationTable maps animation names to their frame sequences.
type AnimationTable map[string][]AnimationFrame

// Validate checks every sequence is non-empty and every frame valid.
func (t AnimationTable) Validate() error {
	for name, frames := range t {
		if err := validateFrames(name, frames); err != nil {
			return err
		}
	}
	return nil
}

func validateFrames(name string, frames []AnimationFrame) error {
	if len(frames) == 0 {
		return fmt.Errorf("%w: %q", ErrEmptyAnimation, name)
	}
	for i, f := range frames {
		if !f.Valid() {
			return fmt.Errorf("%w: %q frame %d: %+v", ErrInvalidFrame, name, i, f)
		}
	}
	return nil
}
