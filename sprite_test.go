package rage

import "testing"

func TestNewSpriteDefaults(t *testing.T) {
	stage := NewStage(100, 100)
	img := newLoadedImage(64, 32)
	s := NewSprite(stage, img, 1, 2, 16, 8)

	if s.Stage() != stage {
		t.Error("Stage not set")
	}
	if s.Image() != img {
		t.Error("Image not set")
	}
	if s.Clip != (Rect{Width: 16, Height: 8}) {
		t.Errorf("Clip = %+v, want {0 0 16 8}", s.Clip)
	}
	if s.ClipEnabled {
		t.Error("ClipEnabled should default to false")
	}
}

func TestSpriteAutoSizeOnLoad(t *testing.T) {
	stage := NewStage(100, 100)
	img := &fakeImage{w: 64, h: 32}
	s := NewSprite(stage, img, 0, 0, 0, 0)
	loads := 0
	s.On(EventLoad, func(e Event) {
		loads++
		if e.Source != s {
			t.Errorf("Source = %v, want sprite", e.Source)
		}
	})

	img.finish()

	if s.Width() != 64 || s.Height() != 32 {
		t.Errorf("size = (%v, %v), want (64, 32)", s.Width(), s.Height())
	}
	if s.Clip.Width != 64 || s.Clip.Height != 32 {
		t.Errorf("Clip = %+v, want full image", s.Clip)
	}
	if loads != 1 {
		t.Errorf("load events = %d, want 1", loads)
	}
}

func TestSpriteKeepsExplicitSizeOnLoad(t *testing.T) {
	img := &fakeImage{w: 64, h: 32}
	s := NewSprite(NewStage(100, 100), img, 0, 0, 10, 0)
	img.finish()
	if s.Width() != 10 || s.Height() != 32 {
		t.Errorf("size = (%v, %v), want (10, 32)", s.Width(), s.Height())
	}
}

func TestSpriteReplacedImageIgnoresOldLoad(t *testing.T) {
	old := &fakeImage{w: 64, h: 32}
	s := NewSprite(NewStage(100, 100), old, 0, 0, 0, 0)
	s.SetImage(newLoadedImage(8, 8))

	old.finish()

	if s.Width() != 8 {
		t.Errorf("Width = %v, want 8 from the current image", s.Width())
	}
}

func TestSpriteRender(t *testing.T) {
	stage := NewStage(100, 100)
	surf := &recordingSurface{}
	stage.SetSurface(surf)
	img := newLoadedImage(64, 64)
	s := NewSprite(stage, img, 5, 6, 20, 30)
	s.Alpha = 0.5
	s.ClipEnabled = true
	s.Clip = Rect{X: 32, Y: 0, Width: 32, Height: 32}

	s.Render()

	draws := surf.draws()
	if len(draws) != 1 {
		t.Fatalf("draws = %d, want 1", len(draws))
	}
	op := draws[0].draw
	if op.Dst != (Rect{X: 5, Y: 6, Width: 20, Height: 30}) {
		t.Errorf("Dst = %+v", op.Dst)
	}
	if !op.Clip || op.Src != s.Clip {
		t.Errorf("Src = %+v clip=%v, want %+v", op.Src, op.Clip, s.Clip)
	}
	if op.Alpha != 0.5 {
		t.Errorf("Alpha = %v, want 0.5", op.Alpha)
	}
}

func TestSpriteRenderWithoutImage(t *testing.T) {
	stage := NewStage(100, 100)
	surf := &recordingSurface{}
	stage.SetSurface(surf)
	s := NewSprite(stage, &fakeImage{w: 1, h: 1}, 0, 0, 1, 1)

	var events []EventType
	s.On(EventRenderStart, func(Event) { events = append(events, EventRenderStart) })
	s.On(EventRenderDone, func(Event) { events = append(events, EventRenderDone) })
	s.Render()

	if len(surf.draws()) != 0 {
		t.Error("unloaded image should not be drawn")
	}
	if len(events) != 2 {
		t.Errorf("events = %v, want start and done", events)
	}
}

func TestSpriteRenderInvisible(t *testing.T) {
	stage := NewStage(100, 100)
	surf := &recordingSurface{}
	stage.SetSurface(surf)
	s := NewSprite(stage, newLoadedImage(4, 4), 0, 0, 4, 4)
	s.Visible = false
	s.Render()
	if len(surf.draws()) != 0 {
		t.Error("invisible sprite drew")
	}
}
