package rage

import "log/slog"

// MovieClip is a sprite with named frame animations. While playing, it
// advances one frame on every logic tick of its stage (EventAnimUpdate).
//
// Frame state: the current animation name (empty for none), the frame index
// and the playing flag. After any NextFrame or PrevFrame the index is within
// the current animation.
type MovieClip struct {
	Sprite

	animations AnimationTable
	current    string
	frame      int
	playing    bool

	tick CallbackHandle
}

// NewMovieClip creates a movie clip on stage. It starts playing, with no
// animation selected.
func NewMovieClip(stage *Stage, img Image, x, y, width, height float64) *MovieClip {
	m := &MovieClip{}
	m.initMovieClip(m, stage, img, x, y, width, height)
	return m
}

func (m *MovieClip) initMovieClip(self DisplayObject, stage *Stage, img Image, x, y, width, height float64) {
	m.initSprite(self, stage, img, x, y, width, height)
	m.Name = "movieclip"
	m.animations = make(AnimationTable)
	m.playing = true
	if stage != nil {
		m.tick = stage.On(EventAnimUpdate, func(Event) {
			if m.playing {
				m.NextFrame()
			}
		})
	}
}

func (m *MovieClip) logger() *slog.Logger {
	if m.stage != nil {
		return m.stage.logger
	}
	return slog.Default()
}

// SetAnimation stores frames under name. The sequence must be non-empty and
// every frame valid; otherwise nothing is stored and the error wraps
// ErrEmptyAnimation or ErrInvalidFrame.
func (m *MovieClip) SetAnimation(name string, frames []AnimationFrame) error {
	if err := validateFrames(name, frames); err != nil {
		return err
	}
	m.animations[name] = append([]AnimationFrame(nil), frames...)
	return nil
}

// SetAnimations stores every entry of table. The table is validated as a
// whole first, so either all entries are stored or none.
func (m *MovieClip) SetAnimations(table AnimationTable) error {
	if err := table.Validate(); err != nil {
		return err
	}
	for name, frames := range table {
		m.animations[name] = append([]AnimationFrame(nil), frames...)
	}
	return nil
}

// Animation returns the frames stored under name.
func (m *MovieClip) Animation(name string) ([]AnimationFrame, bool) {
	frames, ok := m.animations[name]
	return frames, ok
}

// PlayAnimation selects a stored animation. Unknown names are logged and
// leave the state unchanged. Switching to a different animation restarts at
// frame 0.
func (m *MovieClip) PlayAnimation(name string) bool {
	if _, ok := m.animations[name]; !ok {
		m.logger().Warn("unknown animation", "node", m.Name, "animation", name)
		return false
	}
	if name != m.current {
		m.current = name
		m.frame = 0
	}
	return true
}

// CurrentAnimation returns the selected animation name, or "".
func (m *MovieClip) CurrentAnimation() string { return m.current }

// CurrentFrameIndex returns the frame index.
func (m *MovieClip) CurrentFrameIndex() int { return m.frame }

// Playing reports whether the clip advances on logic ticks.
func (m *MovieClip) Playing() bool { return m.playing }

// CurrentFrame returns the frame to draw. It reports false when nothing is
// selected or the clip is stopped.
func (m *MovieClip) CurrentFrame() (AnimationFrame, bool) {
	if !m.playing || m.current == "" {
		return AnimationFrame{}, false
	}
	frames := m.animations[m.current]
	if m.frame < 0 || m.frame >= len(frames) {
		return AnimationFrame{}, false
	}
	return frames[m.frame], true
}

// length is the size of the current animation, or 1 when none is selected.
func (m *MovieClip) length() int {
	if frames, ok := m.animations[m.current]; ok && len(frames) > 0 {
		return len(frames)
	}
	return 1
}

// NextFrame advances one frame, wrapping to 0 after the last.
func (m *MovieClip) NextFrame() {
	m.frame++
	if n := m.length(); m.frame >= n || m.frame < 0 {
		m.frame = 0
	}
}

// PrevFrame steps back one frame, wrapping to the last from 0.
func (m *MovieClip) PrevFrame() {
	m.frame--
	if n := m.length(); m.frame < 0 || m.frame >= n {
		m.frame = n - 1
	}
}

// GotoAndPlay jumps to frame and resumes playback.
func (m *MovieClip) GotoAndPlay(frame int) {
	m.frame = frame
	m.playing = true
}

// GotoAndStop jumps to frame and stops playback.
func (m *MovieClip) GotoAndStop(frame int) {
	m.frame = frame
	m.playing = false
}

// Render draws the current animation frame. When the clip is stopped, has no
// frame, or its image is not loaded it renders as a plain Sprite.
func (m *MovieClip) Render() {
	if !m.Visible {
		return
	}
	frame, ok := m.CurrentFrame()
	if !ok || m.image == nil || !m.image.Loaded() {
		m.Sprite.Render()
		return
	}
	m.events.Emit(EventRenderStart)
	m.Clip = frame.Rect()
	m.draw(m.Clip, true)
	m.events.Emit(EventRenderDone)
}

// Dispose detaches the clip from its parent and from the stage clock.
func (m *MovieClip) Dispose() {
	m.tick.Remove()
	m.tick = CallbackHandle{}
	m.Remove()
}
