package rage

// EventType identifies a kind of display event.
type EventType uint8

const (
	EventAnimUpdate        EventType = iota // periodic logic tick, dispatched on the Stage
	EventClick                              // pointer clicked over a top-level child
	EventHoverOn                            // pointer entered a top-level child
	EventHoverOff                           // pointer left a top-level child
	EventRenderStart                        // node is about to draw
	EventRenderDone                         // node (and its subtree) finished drawing
	EventResize                             // width or height setter was called
	EventReposition                         // x or y setter was called
	EventLoad                               // an image resource finished loading
	EventAddedToParent                      // node was attached to a container
	EventRemovedFromParent                  // node was detached from a container
)

var eventTypeNames = [...]string{
	EventAnimUpdate:        "anim_update",
	EventClick:             "click",
	EventHoverOn:           "hover_on",
	EventHoverOff:          "hover_off",
	EventRenderStart:       "render_start",
	EventRenderDone:        "render_done",
	EventResize:            "resize",
	EventReposition:        "reposition",
	EventLoad:              "load",
	EventAddedToParent:     "added_to_parent",
	EventRemovedFromParent: "removed_from_parent",
}

func (t EventType) String() string {
	if int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return "unknown"
}

// Event is delivered to handlers registered on an EventDispatcher.
// Source is filled in by the dispatcher at dispatch time.
type Event struct {
	Type   EventType
	Source DisplayObject
}

// Handler receives dispatched events.
type Handler func(Event)

type handlerEntry struct {
	id uint32
	fn Handler
}

// CallbackHandle identifies one registration on an EventDispatcher.
// Handlers are func values and cannot be compared, so the handle is the
// identity used for removal.
type CallbackHandle struct {
	id    uint32
	event EventType
	d     *EventDispatcher
}

// Remove unregisters the handler. Returns false if it was already removed.
func (h CallbackHandle) Remove() bool {
	if h.d == nil {
		return false
	}
	return h.d.RemoveHandler(h)
}

// EventDispatcher is an ordered, synchronous publish/subscribe table owned by
// exactly one display object.
//
// Handler slices are treated as immutable: every mutation builds a new slice.
// Dispatch therefore always walks the slice that was current when it started;
// handlers added during a dispatch first run on the next dispatch, handlers
// removed during a dispatch still run for the one in flight.
type EventDispatcher struct {
	owner    DisplayObject
	handlers map[EventType][]handlerEntry
	nextID   uint32
}

// On appends fn to the handlers for t. Registration order is delivery order.
func (d *EventDispatcher) On(t EventType, fn Handler) CallbackHandle {
	if d.handlers == nil {
		d.handlers = make(map[EventType][]handlerEntry)
	}
	d.nextID++
	old := d.handlers[t]
	// Full slice expression forces a copy so in-flight dispatches keep their view.
	d.handlers[t] = append(old[:len(old):len(old)], handlerEntry{id: d.nextID, fn: fn})
	return CallbackHandle{id: d.nextID, event: t, d: d}
}

// Dispatch stamps e.Source with the owner and invokes every handler registered
// for e.Type. Dispatching with no subscribers is a no-op.
func (d *EventDispatcher) Dispatch(e Event) {
	e.Source = d.owner
	for _, h := range d.handlers[e.Type] {
		h.fn(e)
	}
}

// Emit is shorthand for Dispatch(Event{Type: t}).
func (d *EventDispatcher) Emit(t EventType) {
	d.Dispatch(Event{Type: t})
}

// RemoveHandler removes the registration identified by h.
func (d *EventDispatcher) RemoveHandler(h CallbackHandle) bool {
	if h.d != d {
		return false
	}
	old := d.handlers[h.event]
	for i := range old {
		if old[i].id == h.id {
			next := make([]handlerEntry, 0, len(old)-1)
			next = append(next, old[:i]...)
			next = append(next, old[i+1:]...)
			if len(next) == 0 {
				delete(d.handlers, h.event)
			} else {
				d.handlers[h.event] = next
			}
			return true
		}
	}
	return false
}

// RemoveAllHandlers clears every handler registered for t.
func (d *EventDispatcher) RemoveAllHandlers(t EventType) {
	delete(d.handlers, t)
}

// HasHandlers reports whether any handler is registered for t.
func (d *EventDispatcher) HasHandlers(t EventType) bool {
	return len(d.handlers[t]) > 0
}
