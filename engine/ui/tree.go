package ui

import (
	"image"
	"math"
	"strconv"
)

// WidgetID names a node for the lifetime of its tree. Ids are never reused.
type WidgetID uint32

const (
	// Root is the implicit top-level container present in every tree.
	Root WidgetID = 0
	// Invalid is never assigned; it is the root's parent.
	Invalid WidgetID = math.MaxUint32
)

func (id WidgetID) String() string {
	switch id {
	case Root:
		return "root"
	case Invalid:
		return "invalid"
	}
	return "#" + strconv.FormatUint(uint64(id), 10)
}

const (
	DefaultCapacity    = 32
	DefaultMaxChildren = 8
)

// Node is one slot of the tree. A node without a widget is a pure
// container: it groups and offsets its children but is never hit.
type Node[M any] struct {
	id       WidgetID
	parent   WidgetID
	children []WidgetID
	bounds   image.Rectangle
	visible  bool
	widget   Widget[M]
	live     bool
}

func (n *Node[M]) ID() WidgetID     { return n.id }
func (n *Node[M]) Parent() WidgetID { return n.parent }
func (n *Node[M]) Visible() bool    { return n.visible }

// Children lists child ids in insertion order. The slice aliases tree
// storage and is only valid until the next mutation.
func (n *Node[M]) Children() []WidgetID { return n.children }

func (n *Node[M]) Widget() (Widget[M], bool) { return n.widget, n.widget != nil }

func (n *Node[M]) IsContainer() bool { return n.widget == nil }

// LocalBounds is the node's rectangle relative to its parent's origin.
func (n *Node[M]) LocalBounds() image.Rectangle {
	if n.widget != nil {
		return n.widget.BoundingBox()
	}
	return n.bounds
}

type treeConfig struct {
	maxChildren int
	rootBounds  image.Rectangle
}

type TreeOption func(*treeConfig)

// WithMaxChildren bounds the child list of every node.
func WithMaxChildren(n int) TreeOption {
	return func(c *treeConfig) {
		if n > 0 {
			c.maxChildren = n
		}
	}
}

// WithRootBounds sets the root container's rectangle. By default the root
// spans every non-negative coordinate.
func WithRootBounds(r image.Rectangle) TreeOption {
	return func(c *treeConfig) { c.rootBounds = r.Canon() }
}

// Tree is a fixed-capacity arena of widget and container nodes. All storage
// is allocated by NewTree; inserting never grows it.
type Tree[M any] struct {
	slots       []Node[M]
	free        []int
	index       map[WidgetID]int
	next        WidgetID
	maxChildren int
	count       int
}

// NewTree allocates a tree holding at most capacity nodes, the root
// included. A capacity below one is raised to one.
func NewTree[M any](capacity int, opts ...TreeOption) *Tree[M] {
	if capacity < 1 {
		capacity = 1
	}
	cfg := treeConfig{
		maxChildren: DefaultMaxChildren,
		rootBounds:  image.Rect(0, 0, math.MaxInt32, math.MaxInt32),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	t := &Tree[M]{
		slots:       make([]Node[M], capacity),
		free:        make([]int, 0, capacity),
		index:       make(map[WidgetID]int, capacity),
		maxChildren: cfg.maxChildren,
	}
	backing := make([]WidgetID, capacity*cfg.maxChildren)
	for i := range t.slots {
		lo := i * cfg.maxChildren
		t.slots[i].children = backing[lo : lo : lo+cfg.maxChildren]
	}
	for i := capacity - 1; i > 0; i-- {
		t.free = append(t.free, i)
	}

	t.slots[0] = Node[M]{
		id:       Root,
		parent:   Invalid,
		children: t.slots[0].children,
		bounds:   cfg.rootBounds,
		visible:  true,
		live:     true,
	}
	t.index[Root] = 0
	t.next = Root + 1
	t.count = 1
	return t
}

// Len is the number of live nodes, the root included.
func (t *Tree[M]) Len() int { return t.count }

// Cap is the node capacity, the root included.
func (t *Tree[M]) Cap() int { return len(t.slots) }

func (t *Tree[M]) MaxChildren() int { return t.maxChildren }

// AddWidget attaches w under parent. On error the tree is unchanged.
func (t *Tree[M]) AddWidget(parent WidgetID, w Widget[M]) (WidgetID, error) {
	if w == nil {
		return Invalid, treeErr("AddWidget", parent, ErrNilWidget)
	}
	return t.insert("AddWidget", parent, w, image.Rectangle{})
}

// AddContainer attaches an empty grouping node with the given local bounds.
func (t *Tree[M]) AddContainer(parent WidgetID, bounds image.Rectangle) (WidgetID, error) {
	return t.insert("AddContainer", parent, nil, bounds.Canon())
}

func (t *Tree[M]) insert(op string, parent WidgetID, w Widget[M], bounds image.Rectangle) (WidgetID, error) {
	p := t.node(parent)
	if p == nil {
		return Invalid, treeErr(op, parent, ErrParentNotFound)
	}
	if len(p.children) == cap(p.children) {
		return Invalid, treeErr(op, parent, ErrParentFull)
	}
	if len(t.free) == 0 || t.next == Invalid {
		return Invalid, treeErr(op, parent, ErrTreeFull)
	}

	slot := t.free[len(t.free)-1]
	t.free = t.free[:len(t.free)-1]
	id := t.next
	t.next++

	n := &t.slots[slot]
	*n = Node[M]{
		id:       id,
		parent:   parent,
		children: n.children[:0],
		bounds:   bounds,
		visible:  true,
		widget:   w,
		live:     true,
	}
	p.children = append(p.children, id)
	t.index[id] = slot
	t.count++
	return id, nil
}

// RemoveWidget removes id and all its descendants. It reports false for the
// root and for unknown ids.
func (t *Tree[M]) RemoveWidget(id WidgetID) bool {
	if id == Root {
		return false
	}
	n := t.node(id)
	if n == nil {
		return false
	}
	if p := t.node(n.parent); p != nil {
		p.children = without(p.children, id)
	}
	t.release(id)
	return true
}

// release frees id's subtree post-order.
func (t *Tree[M]) release(id WidgetID) {
	slot, ok := t.index[id]
	if !ok {
		return
	}
	n := &t.slots[slot]
	for len(n.children) > 0 {
		last := n.children[len(n.children)-1]
		n.children = n.children[:len(n.children)-1]
		t.release(last)
	}
	*n = Node[M]{id: Invalid, parent: Invalid, children: n.children[:0]}
	delete(t.index, id)
	t.free = append(t.free, slot)
	t.count--
}

func without(ids []WidgetID, id WidgetID) []WidgetID {
	for i, c := range ids {
		if c == id {
			copy(ids[i:], ids[i+1:])
			return ids[:len(ids)-1]
		}
	}
	return ids
}

func (t *Tree[M]) node(id WidgetID) *Node[M] {
	slot, ok := t.index[id]
	if !ok {
		return nil
	}
	return &t.slots[slot]
}

// Node returns the node for id. The pointer is valid until the next
// insertion or removal.
func (t *Tree[M]) Node(id WidgetID) (*Node[M], bool) {
	n := t.node(id)
	return n, n != nil
}

func (t *Tree[M]) Contains(id WidgetID) bool {
	_, ok := t.index[id]
	return ok
}

// Widget returns the payload of id; containers and unknown ids report false.
func (t *Tree[M]) Widget(id WidgetID) (Widget[M], bool) {
	n := t.node(id)
	if n == nil || n.widget == nil {
		return nil, false
	}
	return n.widget, true
}

// Update runs fn on the payload of id.
func (t *Tree[M]) Update(id WidgetID, fn func(Widget[M])) error {
	w, ok := t.Widget(id)
	if !ok {
		return treeErr("Update", id, ErrNotFound)
	}
	fn(w)
	return nil
}

// Children lists id's children in insertion order; see Node.Children.
func (t *Tree[M]) Children(id WidgetID) []WidgetID {
	n := t.node(id)
	if n == nil {
		return nil
	}
	return n.children
}

// Parent returns id's parent, Invalid for the root.
func (t *Tree[M]) Parent(id WidgetID) (WidgetID, bool) {
	n := t.node(id)
	if n == nil {
		return Invalid, false
	}
	return n.parent, true
}

// SetVisible sets the node's own visibility flag. It reports false for
// unknown ids.
func (t *Tree[M]) SetVisible(id WidgetID, visible bool) bool {
	n := t.node(id)
	if n == nil {
		return false
	}
	n.visible = visible
	return true
}

// IsVisible reports whether id and every ancestor up to the root are visible.
func (t *Tree[M]) IsVisible(id WidgetID) bool {
	for n := t.node(id); ; {
		if n == nil || !n.visible {
			return false
		}
		if n.id == Root {
			return true
		}
		n = t.node(n.parent)
	}
}

// SetLocalBounds moves or resizes a node. Containers store the rectangle;
// widgets must implement Resizable.
func (t *Tree[M]) SetLocalBounds(id WidgetID, r image.Rectangle) error {
	n := t.node(id)
	if n == nil {
		return treeErr("SetLocalBounds", id, ErrNotFound)
	}
	if n.widget == nil {
		n.bounds = r.Canon()
		return nil
	}
	rs, ok := n.widget.(Resizable)
	if !ok {
		return treeErr("SetLocalBounds", id, ErrNotResizable)
	}
	rs.SetBounds(r)
	return nil
}

// LocalBounds returns id's rectangle relative to its parent.
func (t *Tree[M]) LocalBounds(id WidgetID) (image.Rectangle, bool) {
	n := t.node(id)
	if n == nil {
		return image.Rectangle{}, false
	}
	return n.LocalBounds(), true
}
