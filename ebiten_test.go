package rage

import (
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestGameDrawRunsRequestedFrame(t *testing.T) {
	stage := NewStage(64, 48)
	stage.SetLogicRate(1)
	g := NewGame(stage)
	ticks := 0
	stage.On(EventAnimUpdate, func(Event) { ticks++ })

	stage.Start(g)
	screen := ebiten.NewImage(64, 48)
	g.Draw(screen)
	g.Draw(screen)

	if ticks != 2 {
		t.Errorf("ticks = %d, want 2", ticks)
	}

	stage.Stop()
	g.Draw(screen)
	g.Draw(screen)
	if ticks != 2 {
		t.Errorf("ticks after Stop = %d, want 2", ticks)
	}
}

func TestGameAttachesSurface(t *testing.T) {
	stage := NewStage(64, 48)
	NewGame(stage)
	if _, ok := stage.Surface().(*EbitenSurface); !ok {
		t.Fatalf("Surface = %T, want *EbitenSurface", stage.Surface())
	}
}

func TestGameLayoutFollowsStage(t *testing.T) {
	stage := NewStage(64, 48)
	g := NewGame(stage)
	if w, h := g.Layout(800, 600); w != 64 || h != 48 {
		t.Errorf("Layout = (%d, %d), want (64, 48)", w, h)
	}
	stage.SetSize(320, 200)
	if w, h := g.Layout(800, 600); w != 320 || h != 200 {
		t.Errorf("Layout after resize = (%d, %d), want (320, 200)", w, h)
	}
}

func TestGameUpdateFunc(t *testing.T) {
	g := NewGame(NewStage(10, 10))
	calls := 0
	g.SetUpdateFunc(func() error {
		calls++
		return ebiten.Termination
	})
	if err := g.Update(); err != ebiten.Termination {
		t.Errorf("Update = %v, want Termination", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if g.Keys() == nil {
		t.Error("Keys should not be nil")
	}
}

func TestEbitenSurfaceDraws(t *testing.T) {
	stage := NewStage(64, 64)
	g := NewGame(stage)
	sheet := NewImageResource(ebiten.NewImage(64, 32))
	m := NewMovieClip(stage, sheet, 4, 4, 32, 32)
	if err := m.SetAnimation("spin", GridFrames(32, 32, 2, 0, 2)); err != nil {
		t.Fatal(err)
	}
	m.PlayAnimation("spin")
	stage.AddChild(m)
	label := NewTextField(stage, "hello", 2, 60)
	label.SetColors(color.White, color.Black)
	stage.AddChild(label)

	stage.Start(g)
	screen := ebiten.NewImage(64, 64)
	// Exercises clear, clipped image and stroked text drawing.
	g.Draw(screen)
}

func TestEbitenSurfaceSkipsForeignImages(t *testing.T) {
	s := NewEbitenSurface()
	s.SetTarget(ebiten.NewImage(8, 8))
	s.DrawImage(newLoadedImage(4, 4), DrawOptions{Dst: Rect{Width: 4, Height: 4}, Alpha: 1})
	s.DrawImage(&ImageResource{}, DrawOptions{Dst: Rect{Width: 4, Height: 4}, Alpha: 1})
}

func TestEbitenSurfaceWithoutTarget(t *testing.T) {
	s := NewEbitenSurface()
	s.Clear(Rect{Width: 10, Height: 10})
	s.DrawText("x", TextOptions{Fill: color.White, Alpha: 1})
	s.Resize(5, 6)
	if w, h := s.Size(); w != 5 || h != 6 {
		t.Errorf("Size = (%d, %d), want (5, 6)", w, h)
	}
}
