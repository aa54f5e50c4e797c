package rage

import "image/color"

// Surface is the drawing target the scene graph renders into. The Stage clears
// it once per refresh and resizes it whenever its own size changes.
type Surface interface {
	Clear(r Rect)
	Resize(width, height int)
	DrawImage(img Image, op DrawOptions)
	DrawText(text string, op TextOptions)
}

// DrawOptions describes one image draw. When Clip is false Src is ignored and
// the whole image is stretched over Dst.
type DrawOptions struct {
	Dst   Rect
	Src   Rect
	Clip  bool
	Alpha float64
}

// TextOptions describes one text draw at (X, Y).
type TextOptions struct {
	X, Y   float64
	Fill   color.Color
	Stroke color.Color
	Alpha  float64
}

// Image is a drawable resource that may become available after creation.
// Size reports (0, 0) until the image is loaded.
type Image interface {
	Size() (width, height float64)
	Loaded() bool
	// OnLoad registers fn to run once the image is ready. If it is already
	// loaded fn runs immediately.
	OnLoad(fn func())
}

// Host schedules a callback for the next display refresh.
type Host interface {
	RequestFrame(fn func())
}

// nopSurface swallows draws until a real surface is attached.
type nopSurface struct{}

func (nopSurface) Clear(Rect)                    {}
func (nopSurface) Resize(int, int)               {}
func (nopSurface) DrawImage(Image, DrawOptions)  {}
func (nopSurface) DrawText(string, TextOptions) {}
