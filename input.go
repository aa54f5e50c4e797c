package rage

// clickBoxSize is the side of the square hit box built around a click.
const clickBoxSize = 3

// HandleClick dispatches EventClick on every top-level child of the stage
// whose box overlaps a small box at (x, y), in child order. Grandchildren are
// not tested. x and y are stage-local.
func (s *Stage) HandleClick(x, y float64) {
	box := pointerBox(x, y)
	for _, child := range s.Children() {
		if !box.HitTestObject(child) {
			continue
		}
		child.node().events.Emit(EventClick)
		s.emitInteraction(EventClick, child, x, y)
	}
}

// HandlePointerMove dispatches EventHoverOn on top-level children the pointer
// has just entered and EventHoverOff on those it has just left.
func (s *Stage) HandlePointerMove(x, y float64) {
	box := pointerBox(x, y)
	children := s.Children()

	// Forget children that left the stage while hovered.
	for obj := range s.hovered {
		if !s.Contains(obj) {
			delete(s.hovered, obj)
		}
	}

	for _, child := range children {
		over := box.HitTestObject(child)
		was := s.hovered[child]
		switch {
		case over && !was:
			s.hovered[child] = true
			child.node().events.Emit(EventHoverOn)
			s.emitInteraction(EventHoverOn, child, x, y)
		case !over && was:
			delete(s.hovered, child)
			child.node().events.Emit(EventHoverOff)
			s.emitInteraction(EventHoverOff, child, x, y)
		}
	}
}

func pointerBox(x, y float64) *Node {
	return &Node{x: x, y: y, width: clickBoxSize, height: clickBoxSize}
}

func (s *Stage) emitInteraction(t EventType, obj DisplayObject, x, y float64) {
	if s.store == nil {
		return
	}
	n := obj.node()
	s.store.EmitEvent(InteractionEvent{Type: t, NodeID: n.ID, Name: n.Name, X: x, Y: y})
}
