// Package sheet loads sprite sheet animation definitions from YAML and
// watches sheet directories for changes.
//
// A sheet names its image and frame grid, then lists animations either as a
// run of grid cells or as explicit rectangles:
//
//	image: hero.png
//	frame_w: 32
//	frame_h: 48
//	columns: 4
//	animations:
//	  walk_right: {row: 1, col_start: 0, frame_count: 4}
//	  idle:
//	    frames:
//	      - {x: 0, y: 0, w: 32, h: 48}
package sheet

import (
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"github.com/phanxgames/rage"
)

// Sheet is a decoded sheet file.
type Sheet struct {
	Image      string                   `yaml:"image"`
	FrameW     float64                  `yaml:"frame_w"`
	FrameH     float64                  `yaml:"frame_h"`
	Columns    int                      `yaml:"columns"`
	Animations map[string]AnimationSpec `yaml:"animations"`
}

// AnimationSpec is one animation. When Frames is set it wins; otherwise
// FrameCount cells starting at (Row, ColStart) are cut from the grid.
type AnimationSpec struct {
	Row        int         `yaml:"row"`
	ColStart   int         `yaml:"col_start"`
	FrameCount int         `yaml:"frame_count"`
	Frames     []FrameSpec `yaml:"frames"`
}

// FrameSpec is an explicit source rectangle.
type FrameSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// Parse decodes a sheet and checks that its animations build a valid table.
func Parse(data []byte) (*Sheet, error) {
	var s Sheet
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("sheet: unmarshal: %w", err)
	}
	if _, err := s.Table(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and parses name from fsys.
func Load(fsys fs.FS, name string) (*Sheet, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("sheet: load %s: %w", name, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("sheet: %s: %w", name, err)
	}
	return s, nil
}

// Table builds the animation table. Errors wrap rage.ErrEmptyAnimation or
// rage.ErrInvalidFrame.
func (s *Sheet) Table() (rage.AnimationTable, error) {
	table := make(rage.AnimationTable, len(s.Animations))
	for name, a := range s.Animations {
		table[name] = s.frames(a)
	}
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("sheet: %w", err)
	}
	return table, nil
}

func (s *Sheet) frames(a AnimationSpec) []rage.AnimationFrame {
	if len(a.Frames) > 0 {
		out := make([]rage.AnimationFrame, len(a.Frames))
		for i, f := range a.Frames {
			out[i] = rage.AnimationFrame{ClipX: f.X, ClipY: f.Y, ClipWidth: f.W, ClipHeight: f.H}
		}
		return out
	}
	cols := s.Columns
	if cols <= 0 {
		// A single-row strip.
		cols = a.ColStart + a.FrameCount
	}
	return rage.GridFrames(s.FrameW, s.FrameH, cols, a.Row*cols+a.ColStart, a.FrameCount)
}

// Apply stores the sheet's animations on m. Nothing is stored on error.
func (s *Sheet) Apply(m *rage.MovieClip) error {
	table, err := s.Table()
	if err != nil {
		return err
	}
	return m.SetAnimations(table)
}
