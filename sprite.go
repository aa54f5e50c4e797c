package rage

// Sprite is a node that draws an Image into its box, optionally through a
// clip rectangle selecting a region of the image.
type Sprite struct {
	Node

	// Clip is the source rectangle used when ClipEnabled is set.
	Clip        Rect
	ClipEnabled bool

	stage *Stage
	image Image
}

// NewSprite creates a sprite drawing img on stage's surface. img may be nil or
// still loading; when it loads, a zero width or height is replaced by the
// image's natural size and EventLoad is dispatched on the sprite.
func NewSprite(stage *Stage, img Image, x, y, width, height float64) *Sprite {
	s := &Sprite{}
	s.initSprite(s, stage, img, x, y, width, height)
	return s
}

func (s *Sprite) initSprite(self DisplayObject, stage *Stage, img Image, x, y, width, height float64) {
	s.Node.init(self, "sprite", x, y, width, height)
	s.stage = stage
	s.Clip = Rect{Width: width, Height: height}
	s.SetImage(img)
}

// Stage returns the stage the sprite draws on.
func (s *Sprite) Stage() *Stage {
	return s.stage
}

// Image returns the sprite's image, or nil.
func (s *Sprite) Image() Image {
	return s.image
}

// SetImage replaces the image. The load hook runs once img is ready, even if
// that is immediately.
func (s *Sprite) SetImage(img Image) {
	s.image = img
	if img == nil {
		return
	}
	img.OnLoad(func() {
		if s.image != img {
			return
		}
		s.imageLoaded()
	})
}

func (s *Sprite) imageLoaded() {
	s.AutoSize()
	w, h := s.image.Size()
	if s.Clip.Width <= 0 {
		s.Clip.Width = w
	}
	if s.Clip.Height <= 0 {
		s.Clip.Height = h
	}
	s.events.Emit(EventLoad)
}

// AutoSize replaces a non-positive width or height with the image's natural
// size. No-op while the image is not loaded.
func (s *Sprite) AutoSize() {
	if s.image == nil || !s.image.Loaded() {
		return
	}
	w, h := s.image.Size()
	if s.Width() <= 0 {
		s.SetWidth(w)
	}
	if s.Height() <= 0 {
		s.SetHeight(h)
	}
}

// Render draws the image between EventRenderStart and EventRenderDone.
// Without a loaded image only the two events are dispatched.
func (s *Sprite) Render() {
	if !s.Visible {
		return
	}
	if s.image == nil || !s.image.Loaded() {
		s.Node.Render()
		return
	}
	s.events.Emit(EventRenderStart)
	s.draw(s.Clip, s.ClipEnabled)
	s.events.Emit(EventRenderDone)
}

func (s *Sprite) draw(src Rect, clip bool) {
	if s.stage == nil {
		return
	}
	s.stage.surface.DrawImage(s.image, DrawOptions{
		Dst:   s.Bounds(),
		Src:   src,
		Clip:  clip,
		Alpha: s.Alpha,
	})
}
