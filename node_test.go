package rage

import (
	"math"
	"testing"
)

func TestNewNodeDefaults(t *testing.T) {
	n := NewNode("test", 1, 2, 3, 4)
	if n.ID == 0 {
		t.Error("ID should be non-zero")
	}
	if n.Name != "test" {
		t.Errorf("Name = %q, want %q", n.Name, "test")
	}
	if !n.Visible {
		t.Error("Visible should default to true")
	}
	if n.Alpha != 1 {
		t.Errorf("Alpha = %v, want 1", n.Alpha)
	}
	if n.X() != 1 || n.Y() != 2 || n.Width() != 3 || n.Height() != 4 {
		t.Errorf("geometry = %+v, want {1 2 3 4}", n.Bounds())
	}
	if n.Parent() != nil {
		t.Error("new node should be detached")
	}
}

func TestNodeIDsUnique(t *testing.T) {
	a := NewNode("a", 0, 0, 0, 0)
	b := NewNode("b", 0, 0, 0, 0)
	if a.ID == b.ID {
		t.Errorf("IDs should differ, both %d", a.ID)
	}
}

func TestNodeDerivedGeometry(t *testing.T) {
	n := NewNode("n", 10, 20, 30, 40)
	if n.Right() != 40 {
		t.Errorf("Right = %v, want 40", n.Right())
	}
	if n.Bottom() != 60 {
		t.Errorf("Bottom = %v, want 60", n.Bottom())
	}
	if n.CenterX() != 25 || n.CenterY() != 40 {
		t.Errorf("Center = (%v, %v), want (25, 40)", n.CenterX(), n.CenterY())
	}
}

func TestSetXFiresRepositionOnce(t *testing.T) {
	values := []float64{0, -3.5, 1e9, math.Inf(1)}
	for _, v := range values {
		n := NewNode("n", 7, 0, 1, 1)
		count := 0
		n.On(EventReposition, func(Event) { count++ })

		n.SetX(v)

		if n.X() != v {
			t.Errorf("SetX(%v): X = %v", v, n.X())
		}
		if count != 1 {
			t.Errorf("SetX(%v): reposition events = %d, want 1", v, count)
		}
	}
}

func TestSetXNaNKeepsValueButFires(t *testing.T) {
	n := NewNode("n", 7, 0, 1, 1)
	count := 0
	n.On(EventReposition, func(Event) { count++ })

	n.SetX(math.NaN())

	if n.X() != 7 {
		t.Errorf("X = %v, want 7", n.X())
	}
	if count != 1 {
		t.Errorf("reposition events = %d, want 1", count)
	}
}

func TestSetSizeNaN(t *testing.T) {
	n := NewNode("n", 0, 0, 5, 6)
	count := 0
	n.On(EventResize, func(Event) { count++ })

	n.SetSize(math.NaN(), 9)

	if n.Width() != 5 || n.Height() != 9 {
		t.Errorf("size = (%v, %v), want (5, 9)", n.Width(), n.Height())
	}
	if count != 2 {
		t.Errorf("resize events = %d, want 2", count)
	}
}

func TestSetPositionFiresTwice(t *testing.T) {
	n := NewNode("n", 0, 0, 1, 1)
	count := 0
	n.On(EventReposition, func(Event) { count++ })
	n.SetPosition(3, 4)
	if count != 2 {
		t.Errorf("reposition events = %d, want 2", count)
	}
	if n.X() != 3 || n.Y() != 4 {
		t.Errorf("position = (%v, %v), want (3, 4)", n.X(), n.Y())
	}
}

func TestNodeRenderEvents(t *testing.T) {
	n := NewNode("n", 0, 0, 1, 1)
	var order []EventType
	n.On(EventRenderStart, func(Event) { order = append(order, EventRenderStart) })
	n.On(EventRenderDone, func(Event) { order = append(order, EventRenderDone) })

	n.Render()
	if len(order) != 2 || order[0] != EventRenderStart || order[1] != EventRenderDone {
		t.Errorf("order = %v, want [render_start render_done]", order)
	}

	order = nil
	n.Visible = false
	n.Render()
	if len(order) != 0 {
		t.Errorf("invisible render dispatched %v", order)
	}
}

// --- Hit testing ---

func TestHitTestObjectEdgeTouch(t *testing.T) {
	a := NewNode("a", 0, 0, 10, 10)
	b := NewNode("b", 10, 0, 10, 10)
	if !a.HitTestObject(b) || !b.HitTestObject(a) {
		t.Error("touching edges should overlap")
	}
}

func TestHitTestObject(t *testing.T) {
	a := NewNode("a", 0, 0, 10, 10)
	tests := []struct {
		name string
		b    *Node
		want bool
	}{
		{"inside", NewNode("b", 2, 2, 2, 2), true},
		{"overlap", NewNode("b", 5, 5, 10, 10), true},
		{"corner touch", NewNode("b", 10, 10, 5, 5), true},
		{"right of", NewNode("b", 10.5, 0, 5, 5), false},
		{"below", NewNode("b", 0, 11, 5, 5), false},
		{"above", NewNode("b", 0, -6, 5, 5), false},
	}
	for _, tt := range tests {
		if got := a.HitTestObject(tt.b); got != tt.want {
			t.Errorf("%s: HitTestObject = %v, want %v", tt.name, got, tt.want)
		}
	}
	if a.HitTestObject(nil) {
		t.Error("HitTestObject(nil) should be false")
	}
}

func TestHitTestGroupFirstInOrder(t *testing.T) {
	n := NewNode("n", 0, 0, 10, 10)
	far := NewNode("far", 100, 100, 5, 5)
	first := NewNode("first", 8, 8, 5, 5)
	second := NewNode("second", 1, 1, 2, 2)

	got := n.HitTestGroup([]DisplayObject{far, first, second})
	if got != first {
		t.Errorf("HitTestGroup = %v, want first", got)
	}
	if n.HitTestGroup([]DisplayObject{far}) != nil {
		t.Error("HitTestGroup with no overlap should be nil")
	}
	if n.HitTestGroup(nil) != nil {
		t.Error("HitTestGroup(nil) should be nil")
	}
}

func TestHitTestGroupSkipsSelf(t *testing.T) {
	n := NewNode("n", 0, 0, 10, 10)
	other := NewNode("o", 5, 5, 10, 10)
	if got := n.HitTestGroup([]DisplayObject{n, other}); got != other {
		t.Errorf("HitTestGroup = %v, want other", got)
	}
}

// --- Hierarchy ---

func TestNodeRemove(t *testing.T) {
	c := NewContainer("c", 0, 0, 10, 10)
	n := NewNode("n", 0, 0, 1, 1)
	c.AddChild(n)

	n.Remove()

	if c.NumChildren() != 0 {
		t.Errorf("NumChildren = %d, want 0", c.NumChildren())
	}
	if n.Parent() != nil {
		t.Error("parent should be cleared")
	}
	n.Remove() // unparented: no-op
}

func TestEmbeddedRemoveUsesOuterIdentity(t *testing.T) {
	stage := NewStage(100, 100)
	s := NewSprite(stage, nil, 0, 0, 1, 1)
	stage.AddChild(s)

	s.Remove()

	if stage.Contains(s) {
		t.Error("sprite should have been removed via embedded Remove")
	}
}
