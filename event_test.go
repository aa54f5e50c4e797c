package rage

import "testing"

func TestEventTypeString(t *testing.T) {
	tests := []struct {
		t    EventType
		want string
	}{
		{EventAnimUpdate, "anim_update"},
		{EventClick, "click"},
		{EventRemovedFromParent, "removed_from_parent"},
		{EventType(200), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.t.String(); got != tt.want {
			t.Errorf("EventType(%d).String() = %q, want %q", tt.t, got, tt.want)
		}
	}
}

func TestDispatchOrder(t *testing.T) {
	n := NewNode("n", 0, 0, 1, 1)
	var order []int
	n.On(EventClick, func(Event) { order = append(order, 1) })
	n.On(EventClick, func(Event) { order = append(order, 2) })
	n.On(EventClick, func(Event) { order = append(order, 3) })

	n.Events().Emit(EventClick)

	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("order = %v, want [1 2 3]", order)
	}
}

func TestDispatchSetsSource(t *testing.T) {
	c := NewContainer("c", 0, 0, 1, 1)
	var src DisplayObject
	c.On(EventClick, func(e Event) { src = e.Source })

	c.Dispatch(Event{Type: EventClick})

	if src != c {
		t.Errorf("Source = %v, want the container", src)
	}
}

func TestDispatchNoSubscribers(t *testing.T) {
	n := NewNode("n", 0, 0, 1, 1)
	n.Events().Emit(EventHoverOn) // must not panic
	if n.Events().HasHandlers(EventHoverOn) {
		t.Error("HasHandlers = true with no handlers")
	}
}

func TestDispatchOnlyMatchingType(t *testing.T) {
	n := NewNode("n", 0, 0, 1, 1)
	count := 0
	n.On(EventClick, func(Event) { count++ })
	n.Events().Emit(EventHoverOn)
	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}
}

func TestRemoveHandler(t *testing.T) {
	n := NewNode("n", 0, 0, 1, 1)
	var calls []string
	n.On(EventClick, func(Event) { calls = append(calls, "a") })
	h := n.On(EventClick, func(Event) { calls = append(calls, "b") })

	if !h.Remove() {
		t.Fatal("Remove = false")
	}
	if h.Remove() {
		t.Error("second Remove should report false")
	}
	n.Events().Emit(EventClick)
	if len(calls) != 1 || calls[0] != "a" {
		t.Errorf("calls = %v, want [a]", calls)
	}
}

func TestRemoveHandlerWrongDispatcher(t *testing.T) {
	a := NewNode("a", 0, 0, 1, 1)
	b := NewNode("b", 0, 0, 1, 1)
	h := a.On(EventClick, func(Event) {})
	if b.Events().RemoveHandler(h) {
		t.Error("removing a foreign handle should fail")
	}
	if !a.Events().HasHandlers(EventClick) {
		t.Error("handler should still be registered on a")
	}
}

func TestZeroHandleRemove(t *testing.T) {
	var h CallbackHandle
	if h.Remove() {
		t.Error("zero handle Remove should report false")
	}
}

func TestRemoveAllHandlers(t *testing.T) {
	n := NewNode("n", 0, 0, 1, 1)
	n.On(EventClick, func(Event) {})
	n.On(EventClick, func(Event) {})
	n.On(EventHoverOn, func(Event) {})

	n.Events().RemoveAllHandlers(EventClick)

	if n.Events().HasHandlers(EventClick) {
		t.Error("click handlers remain")
	}
	if !n.Events().HasHandlers(EventHoverOn) {
		t.Error("hover handler should be untouched")
	}
}

func TestDispatchAddDuringDispatchRunsNextTime(t *testing.T) {
	n := NewNode("n", 0, 0, 1, 1)
	added := 0
	once := false
	n.On(EventClick, func(Event) {
		if !once {
			once = true
			n.On(EventClick, func(Event) { added++ })
		}
	})

	n.Events().Emit(EventClick)
	if added != 0 {
		t.Errorf("handler added during dispatch ran %d times, want 0", added)
	}
	n.Events().Emit(EventClick)
	if added != 1 {
		t.Errorf("added handler ran %d times on next dispatch, want 1", added)
	}
}

func TestDispatchRemoveDuringDispatchStillRuns(t *testing.T) {
	n := NewNode("n", 0, 0, 1, 1)
	var second CallbackHandle
	secondRuns := 0
	n.On(EventClick, func(Event) { second.Remove() })
	second = n.On(EventClick, func(Event) { secondRuns++ })

	n.Events().Emit(EventClick)
	if secondRuns != 1 {
		t.Errorf("removed handler ran %d times in flight, want 1", secondRuns)
	}
	n.Events().Emit(EventClick)
	if secondRuns != 1 {
		t.Errorf("removed handler ran again: %d, want 1", secondRuns)
	}
}

func TestDispatchSelfRemovingHandler(t *testing.T) {
	n := NewNode("n", 0, 0, 1, 1)
	runs := 0
	var h CallbackHandle
	h = n.On(EventClick, func(Event) {
		runs++
		h.Remove()
	})
	n.Events().Emit(EventClick)
	n.Events().Emit(EventClick)
	if runs != 1 {
		t.Errorf("runs = %d, want 1", runs)
	}
}

func TestDispatchReentrant(t *testing.T) {
	n := NewNode("n", 0, 0, 1, 1)
	var order []EventType
	n.On(EventClick, func(Event) {
		order = append(order, EventClick)
		n.Events().Emit(EventHoverOn)
	})
	n.On(EventHoverOn, func(Event) { order = append(order, EventHoverOn) })

	n.Events().Emit(EventClick)

	if len(order) != 2 || order[0] != EventClick || order[1] != EventHoverOn {
		t.Errorf("order = %v, want [click hover_on]", order)
	}
}
