package rage

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Atlas maps frame names from a TexturePacker export to animation frames on a
// single sheet image.
type Atlas struct {
	// Image is the sheet file name recorded in the export's meta block.
	Image  string
	frames map[string]AnimationFrame
}

// LoadAtlas parses TexturePacker JSON. Both the hash export ("frames" is an
// object keyed by name) and the array export ("frames" is a list of entries
// carrying "filename") are accepted. Rotated frames are rejected since the
// surface draws clips unrotated.
func LoadAtlas(jsonData []byte) (*Atlas, error) {
	var doc struct {
		Frames json.RawMessage `json:"frames"`
		Meta   struct {
			Image string `json:"image"`
		} `json:"meta"`
	}
	if err := json.Unmarshal(jsonData, &doc); err != nil {
		return nil, fmt.Errorf("rage: parse atlas JSON: %w", err)
	}
	if len(doc.Frames) == 0 {
		return nil, errors.New("rage: atlas JSON has no \"frames\" key")
	}

	a := &Atlas{Image: doc.Meta.Image, frames: make(map[string]AnimationFrame)}
	var err error
	if strings.HasPrefix(strings.TrimSpace(string(doc.Frames)), "[") {
		err = a.parseArray(doc.Frames)
	} else {
		err = a.parseHash(doc.Frames)
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

// --- JSON structure types ---

type jsonRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type jsonFrame struct {
	Filename string   `json:"filename"`
	Frame    jsonRect `json:"frame"`
	Rotated  bool     `json:"rotated"`
}

// parseHash parses {"name": {frame...}, ...}
func (a *Atlas) parseHash(raw json.RawMessage) error {
	var frames map[string]jsonFrame
	if err := json.Unmarshal(raw, &frames); err != nil {
		return fmt.Errorf("rage: parse atlas frames: %w", err)
	}
	for name, f := range frames {
		if err := a.add(name, f); err != nil {
			return err
		}
	}
	return nil
}

// parseArray parses [{"filename": "name", "frame": {...}}, ...]
func (a *Atlas) parseArray(raw json.RawMessage) error {
	var frames []jsonFrame
	if err := json.Unmarshal(raw, &frames); err != nil {
		return fmt.Errorf("rage: parse atlas frames: %w", err)
	}
	for _, f := range frames {
		if f.Filename == "" {
			return errors.New("rage: atlas frame without filename")
		}
		if err := a.add(f.Filename, f); err != nil {
			return err
		}
	}
	return nil
}

func (a *Atlas) add(name string, f jsonFrame) error {
	if f.Rotated {
		return fmt.Errorf("rage: atlas frame %q is rotated", name)
	}
	frame := AnimationFrame{
		ClipX:      float64(f.Frame.X),
		ClipY:      float64(f.Frame.Y),
		ClipWidth:  float64(f.Frame.W),
		ClipHeight: float64(f.Frame.H),
	}
	if !frame.Valid() {
		return fmt.Errorf("%w: atlas frame %q", ErrInvalidFrame, name)
	}
	a.frames[name] = frame
	return nil
}

// Len returns the number of frames.
func (a *Atlas) Len() int {
	return len(a.frames)
}

// Frame returns the named frame.
func (a *Atlas) Frame(name string) (AnimationFrame, bool) {
	f, ok := a.frames[name]
	return f, ok
}

// Sequence returns the named frames in order. It fails on the first unknown
// name.
func (a *Atlas) Sequence(names ...string) ([]AnimationFrame, error) {
	out := make([]AnimationFrame, 0, len(names))
	for _, name := range names {
		f, ok := a.frames[name]
		if !ok {
			return nil, fmt.Errorf("rage: atlas frame %q not found", name)
		}
		out = append(out, f)
	}
	return out, nil
}

// Prefix returns every frame whose name starts with prefix, ordered by name.
// Exports name frames like "walk_00.png", "walk_01.png", so name order is
// playback order.
func (a *Atlas) Prefix(prefix string) []AnimationFrame {
	var names []string
	for name := range a.frames {
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	out := make([]AnimationFrame, len(names))
	for i, name := range names {
		out[i] = a.frames[name]
	}
	return out
}
