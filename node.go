package rage

import "math"

// DisplayObject is anything that can live in the scene graph: a type that
// embeds Node and knows how to render itself. Identity is pointer identity.
type DisplayObject interface {
	node() *Node
	Render()
}

// nodeIDCounter is a plain counter (no atomic, the scene graph is driven from
// a single loop).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is the base scene graph element: a positioned, sized box with
// visibility, alpha, a parent back-reference and its own EventDispatcher.
//
// Geometry is only reachable through setters so that every change is
// announced: SetX/SetY dispatch EventReposition, SetWidth/SetHeight dispatch
// EventResize. Child positions are absolute; there is no transform
// inheritance.
type Node struct {
	ID   uint32
	Name string

	Visible bool
	Alpha   float64

	x, y          float64
	width, height float64

	parent *Container
	events EventDispatcher
}

// NewNode creates a detached node with the given geometry.
func NewNode(name string, x, y, width, height float64) *Node {
	n := &Node{}
	n.init(n, name, x, y, width, height)
	return n
}

// init sets defaults and binds the dispatcher to self, the outermost value
// embedding n, so events carry the concrete object as their source.
func (n *Node) init(self DisplayObject, name string, x, y, width, height float64) {
	n.ID = nextNodeID()
	n.Name = name
	n.Visible = true
	n.Alpha = 1
	n.x, n.y = x, y
	n.width, n.height = width, height
	n.events.owner = self
}

func (n *Node) node() *Node { return n }

// self returns the display object that embeds n.
func (n *Node) self() DisplayObject {
	if n.events.owner != nil {
		return n.events.owner
	}
	return n
}

// Events returns the node's dispatcher.
func (n *Node) Events() *EventDispatcher {
	return &n.events
}

// On registers fn for events of type t on this node.
func (n *Node) On(t EventType, fn Handler) CallbackHandle {
	return n.events.On(t, fn)
}

// Dispatch delivers e to this node's handlers.
func (n *Node) Dispatch(e Event) {
	n.events.Dispatch(e)
}

// Parent returns the owning container, or nil.
func (n *Node) Parent() *Container {
	return n.parent
}

// --- Geometry ---

func (n *Node) X() float64      { return n.x }
func (n *Node) Y() float64      { return n.y }
func (n *Node) Width() float64  { return n.width }
func (n *Node) Height() float64 { return n.height }

func (n *Node) Right() float64   { return n.x + n.width }
func (n *Node) Bottom() float64  { return n.y + n.height }
func (n *Node) CenterX() float64 { return n.x + n.width*0.5 }
func (n *Node) CenterY() float64 { return n.y + n.height*0.5 }

// Bounds returns the node's box as a Rect.
func (n *Node) Bounds() Rect {
	return Rect{X: n.x, Y: n.y, Width: n.width, Height: n.height}
}

// SetX stores x unless it is NaN. EventReposition fires either way.
func (n *Node) SetX(x float64) {
	if !math.IsNaN(x) {
		n.x = x
	}
	n.events.Emit(EventReposition)
}

// SetY stores y unless it is NaN. EventReposition fires either way.
func (n *Node) SetY(y float64) {
	if !math.IsNaN(y) {
		n.y = y
	}
	n.events.Emit(EventReposition)
}

// SetWidth stores w unless it is NaN. EventResize fires either way.
func (n *Node) SetWidth(w float64) {
	if !math.IsNaN(w) {
		n.width = w
	}
	n.events.Emit(EventResize)
}

// SetHeight stores h unless it is NaN. EventResize fires either way.
func (n *Node) SetHeight(h float64) {
	if !math.IsNaN(h) {
		n.height = h
	}
	n.events.Emit(EventResize)
}

// SetPosition calls SetX then SetY.
func (n *Node) SetPosition(x, y float64) {
	n.SetX(x)
	n.SetY(y)
}

// SetSize calls SetWidth then SetHeight.
func (n *Node) SetSize(width, height float64) {
	n.SetWidth(width)
	n.SetHeight(height)
}

// --- Rendering ---

// Render dispatches EventRenderStart then EventRenderDone. A plain node draws
// nothing in between; containers render their children from the start event.
func (n *Node) Render() {
	if !n.Visible {
		return
	}
	n.events.Emit(EventRenderStart)
	n.events.Emit(EventRenderDone)
}

// --- Hit testing ---

// HitTestObject reports whether the boxes of n and other overlap.
// Touching edges count as overlapping.
func (n *Node) HitTestObject(other DisplayObject) bool {
	if other == nil {
		return false
	}
	o := other.node()
	return n.x <= o.Right() && o.x <= n.Right() &&
		n.y <= o.Bottom() && o.y <= n.Bottom()
}

// HitTestGroup returns the first member of group that overlaps n, in
// iteration order, or nil. n itself is never reported.
func (n *Node) HitTestGroup(group []DisplayObject) DisplayObject {
	for _, obj := range group {
		if obj == nil || obj.node() == n {
			continue
		}
		if n.HitTestObject(obj) {
			return obj
		}
	}
	return nil
}

// --- Hierarchy ---

// Remove asks the current parent to detach this node. No-op when unparented.
func (n *Node) Remove() {
	if n.parent == nil {
		return
	}
	n.parent.RemoveChild(n.self())
}
