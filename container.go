package rage

// Container is a node that owns an ordered, duplicate-free set of children.
// Children render in order (index 0 first), so later children draw on top.
type Container struct {
	Node
	children List[DisplayObject]
}

// NewContainer creates a detached, empty container.
func NewContainer(name string, x, y, width, height float64) *Container {
	c := &Container{}
	c.initContainer(c, name, x, y, width, height)
	return c
}

func (c *Container) initContainer(self DisplayObject, name string, x, y, width, height float64) {
	c.Node.init(self, name, x, y, width, height)
	c.Node.On(EventRenderStart, func(Event) { c.renderChildren() })
}

func (c *Container) renderChildren() {
	// Snapshot: a child may detach itself or a sibling while rendering.
	for _, child := range c.children.Slice() {
		child.Render()
	}
}

// --- Tree manipulation ---

// AddChild appends obj and makes c its parent. It returns false when obj is
// nil, already a child of c, c itself, or an ancestor of c. A node owned by
// another container is detached from it first.
func (c *Container) AddChild(obj DisplayObject) bool {
	return c.AddChildAt(obj, c.children.Len())
}

// AddChildAt inserts obj at index (0 <= index <= NumChildren()). Same rules as
// AddChild; reports true whenever the child was inserted.
func (c *Container) AddChildAt(obj DisplayObject, index int) bool {
	if !c.canAdopt(obj) || index < 0 || index > c.children.Len() {
		return false
	}
	n := obj.node()
	if n.parent != nil {
		n.parent.RemoveChild(obj)
	}
	if !c.children.AddAt(obj, index) {
		return false
	}
	n.parent = c
	n.events.Emit(EventAddedToParent)
	if stage := c.stage(); stage != nil && stage.debug {
		stage.debugCheckTreeDepth(n)
		stage.debugCheckChildCount(c)
	}
	return true
}

func (c *Container) canAdopt(obj DisplayObject) bool {
	if obj == nil || c.children.Contains(obj) {
		return false
	}
	// obj must not be c or any ancestor of c.
	n := obj.node()
	if n == &c.Node {
		return false
	}
	for p := c.parent; p != nil; p = p.parent {
		if &p.Node == n {
			return false
		}
	}
	return true
}

// RemoveChild detaches obj and returns it, or nil if obj is not a child.
func (c *Container) RemoveChild(obj DisplayObject) DisplayObject {
	if obj == nil {
		return nil
	}
	return c.RemoveChildAt(c.children.IndexOf(obj))
}

// RemoveChildAt detaches and returns the child at index, or nil when out of range.
func (c *Container) RemoveChildAt(index int) DisplayObject {
	obj, ok := c.children.RemoveAt(index)
	if !ok {
		return nil
	}
	n := obj.node()
	n.parent = nil
	n.events.Emit(EventRemovedFromParent)
	return obj
}

// RemoveChildren detaches every child, in order.
func (c *Container) RemoveChildren() {
	for c.children.Len() > 0 {
		c.RemoveChildAt(0)
	}
}

// SwapChildren exchanges the positions of two children.
func (c *Container) SwapChildren(a, b DisplayObject) bool {
	return c.children.Swap(a, b)
}

// SwapChildrenAt exchanges the children at two indices.
func (c *Container) SwapChildrenAt(i, j int) bool {
	return c.children.SwapAt(i, j)
}

// ChildAt returns the child at index, or nil when out of range.
func (c *Container) ChildAt(index int) DisplayObject {
	obj, _ := c.children.At(index)
	return obj
}

// ChildIndex returns the position of obj, or -1.
func (c *Container) ChildIndex(obj DisplayObject) int {
	return c.children.IndexOf(obj)
}

// Contains reports whether obj is a direct child.
func (c *Container) Contains(obj DisplayObject) bool {
	return c.children.Contains(obj)
}

// NumChildren returns the number of children.
func (c *Container) NumChildren() int {
	return c.children.Len()
}

// Children returns a copy of the child list.
func (c *Container) Children() []DisplayObject {
	return c.children.Slice()
}

// ForEachChild calls fn for every child in order over a snapshot of the list.
func (c *Container) ForEachChild(fn func(obj DisplayObject, index int)) {
	for i, obj := range c.children.Slice() {
		fn(obj, i)
	}
}

// stage walks up to the root and returns it if the root is a Stage.
func (c *Container) stage() *Stage {
	root := c
	for root.parent != nil {
		root = root.parent
	}
	s, _ := root.events.owner.(*Stage)
	return s
}

func (c *Container) container() *Container { return c }
