package rage

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// ebitenSource is implemented by images backed by an *ebiten.Image.
type ebitenSource interface {
	EbitenImage() *ebiten.Image
}

// EbitenSurface draws into the *ebiten.Image handed to Game.Draw.
type EbitenSurface struct {
	target        *ebiten.Image
	face          text.Face
	width, height int
	op            ebiten.DrawImageOptions
}

// NewEbitenSurface creates a surface that draws text with the 7x13 bitmap face.
func NewEbitenSurface() *EbitenSurface {
	return &EbitenSurface{face: text.NewGoXFace(basicfont.Face7x13)}
}

// SetTarget sets the image drawn into until the next call.
func (s *EbitenSurface) SetTarget(img *ebiten.Image) {
	s.target = img
}

// Size returns the logical size requested by the last Resize.
func (s *EbitenSurface) Size() (width, height int) {
	return s.width, s.height
}

// Clear clears r on the target.
func (s *EbitenSurface) Clear(r Rect) {
	if s.target == nil {
		return
	}
	rect := image.Rect(int(r.X), int(r.Y), int(r.Right()), int(r.Bottom()))
	if sub, ok := s.target.SubImage(rect).(*ebiten.Image); ok {
		sub.Clear()
	}
}

// Resize records the logical screen size reported by Game.Layout.
func (s *EbitenSurface) Resize(width, height int) {
	s.width, s.height = width, height
}

// DrawImage draws img (or its op.Src region when op.Clip is set) stretched
// over op.Dst. Images not backed by Ebitengine are skipped.
func (s *EbitenSurface) DrawImage(img Image, op DrawOptions) {
	es, ok := img.(ebitenSource)
	if !ok || s.target == nil {
		return
	}
	src := es.EbitenImage()
	if src == nil {
		return
	}
	if op.Clip {
		rect := image.Rect(int(op.Src.X), int(op.Src.Y), int(op.Src.Right()), int(op.Src.Bottom()))
		sub, ok := src.SubImage(rect).(*ebiten.Image)
		if !ok {
			return
		}
		src = sub
	}
	b := src.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}

	s.op.GeoM.Reset()
	s.op.GeoM.Scale(op.Dst.Width/float64(b.Dx()), op.Dst.Height/float64(b.Dy()))
	s.op.GeoM.Translate(op.Dst.X, op.Dst.Y)
	s.op.ColorScale.Reset()
	s.op.ColorScale.ScaleAlpha(float32(op.Alpha))
	s.target.DrawImage(src, &s.op)
}

// strokeOffsets are the one-pixel shifts used to fake a text outline.
var strokeOffsets = [...][2]float64{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// DrawText draws text with its baseline at (op.X, op.Y). A non-nil stroke is
// drawn as a one-pixel outline under the fill.
func (s *EbitenSurface) DrawText(str string, op TextOptions) {
	if s.target == nil {
		return
	}
	y := op.Y - s.face.Metrics().HAscent
	if op.Stroke != nil {
		for _, d := range strokeOffsets {
			s.drawText(str, op.X+d[0], y+d[1], op.Stroke, op.Alpha)
		}
	}
	if op.Fill != nil {
		s.drawText(str, op.X, y, op.Fill, op.Alpha)
	}
}

func (s *EbitenSurface) drawText(str string, x, y float64, c color.Color, alpha float64) {
	top := &text.DrawOptions{}
	top.GeoM.Translate(x, y)
	top.ColorScale.ScaleWithColor(c)
	top.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(s.target, str, s.face, top)
}

// --- Game ---

// Game adapts a Stage to ebiten.Game. It is also the stage's Host: the frame
// requested by the stage runs inside Draw, once per display refresh.
type Game struct {
	stage   *Stage
	surface *EbitenSurface
	keys    *KeyState
	update  func() error
	pending func()

	cursorX, cursorY int
}

// NewGame attaches an EbitenSurface to stage and returns a game driving it.
// Call stage.Start(game) to begin rendering.
func NewGame(stage *Stage) *Game {
	g := &Game{
		stage:   stage,
		surface: NewEbitenSurface(),
		keys:    NewKeyState(),
		cursorX: -1,
		cursorY: -1,
	}
	stage.SetSurface(g.surface)
	return g
}

// Keys returns the keyboard state updated every tick.
func (g *Game) Keys() *KeyState {
	return g.keys
}

// SetUpdateFunc sets a callback run at the end of every Update.
func (g *Game) SetUpdateFunc(fn func() error) {
	g.update = fn
}

// RequestFrame implements Host.
func (g *Game) RequestFrame(fn func()) {
	g.pending = fn
}

// Update polls the keyboard and mouse, forwards pointer events to the stage
// and runs the update callback.
func (g *Game) Update() error {
	g.keys.poll()

	x, y := ebiten.CursorPosition()
	if x != g.cursorX || y != g.cursorY {
		g.cursorX, g.cursorY = x, y
		g.stage.HandlePointerMove(float64(x), float64(y))
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.stage.HandleClick(float64(x), float64(y))
	}

	if g.update != nil {
		return g.update()
	}
	return nil
}

// Draw runs the frame the stage requested, drawing into screen, then writes
// any screenshots queued on the stage.
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.SetTarget(screen)
	fn := g.pending
	g.pending = nil
	if fn != nil {
		fn()
	}
	g.stage.flushScreenshots(screen)
}

// Layout returns the stage size as the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.surface.Size()
	if w <= 0 || h <= 0 {
		return outsideWidth, outsideHeight
	}
	return w, h
}
