package rage

type syntheticKind uint8

const (
	syntheticClick syntheticKind = iota
	syntheticMove
)

// syntheticPointerEvent represents a single injected pointer event in
// stage-local coordinates.
type syntheticPointerEvent struct {
	kind syntheticKind
	x, y float64
}

// InjectClick queues a click at (x, y). It is handled at the start of the
// next Refresh, exactly like a real click. One event is consumed per refresh.
func (s *Stage) InjectClick(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{kind: syntheticClick, x: x, y: y})
}

// InjectMove queues a pointer move to (x, y).
func (s *Stage) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{kind: syntheticMove, x: x, y: y})
}

// InjectPath queues pointer moves from (fromX, fromY) to (toX, toY) spread
// over frames refreshes, both endpoints included. Minimum frames is 2.
func (s *Stage) InjectPath(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames-1)
		s.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
}

// processInput advances the test runner and consumes one injected event.
func (s *Stage) processInput() {
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInjectedInput()
}

// processInjectedInput pops one event from the inject queue and feeds it to
// the pointer handlers. Returns true if an event was consumed.
func (s *Stage) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	switch evt.kind {
	case syntheticClick:
		s.HandleClick(evt.x, evt.y)
	case syntheticMove:
		s.HandlePointerMove(evt.x, evt.y)
	}
	return true
}
