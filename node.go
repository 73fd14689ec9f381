package tactile

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// HitShape is used for custom hit testing regions.
type HitShape interface {
	Contains(x, y float64) bool
}

// PointerContext carries pointer event data.
type PointerContext struct {
	Node      *Node
	EntityID  uint32
	UserData  any
	GlobalX   float64
	GlobalY   float64
	LocalX    float64
	LocalY    float64
	Button    MouseButton
	PointerID int
	Modifiers KeyModifiers
}

// ClickContext carries click event data.
type ClickContext struct {
	Node      *Node
	EntityID  uint32
	UserData  any
	GlobalX   float64
	GlobalY   float64
	LocalX    float64
	LocalY    float64
	Button    MouseButton
	PointerID int
	Modifiers KeyModifiers
}

// nodeIDCounter is a plain counter (no atomic, tactile is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is the fundamental scene graph element. A single flat struct is used for
// all node types.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Type NodeType

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local)
	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
	PivotX   float64
	PivotY   float64

	// Computed during UpdateTransforms.
	worldTransform [6]float64
	transformDirty bool

	// Visibility & interaction
	Visible      bool
	Renderable   bool
	Interactable bool

	// Metadata
	UserData any
	EntityID uint32

	// Sprite and text fields. Width and Height are the local-space size used
	// for drawing and default hit testing.
	Width, Height float64
	Color         Color
	customImage   *ebiten.Image
	Content       string
	Face          text.Face

	// Hit testing
	HitShape HitShape

	// Attached components, queried with ComponentOf.
	components []any

	// Per-node callbacks (nil by default; zero cost when unused)
	OnPointerDown  func(PointerContext)
	OnPointerUp    func(PointerContext)
	OnClick        func(ClickContext)
	OnPointerEnter func(PointerContext)
	OnPointerLeave func(PointerContext)

	// Multi-listener hooks used by components; allocated on first use.
	listeners *nodeListeners

	disposed bool
}

// nodeListeners lets several components observe the same node's pointer
// events without competing for the single On* callback fields.
type nodeListeners struct {
	pointerDown  registry[PointerContext]
	pointerUp    registry[PointerContext]
	pointerEnter registry[PointerContext]
	pointerLeave registry[PointerContext]
	click        registry[ClickContext]
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.ScaleX = 1
	n.ScaleY = 1
	n.Color = ColorWhite
	n.Visible = true
	n.Renderable = true
	n.transformDirty = true
}

// NewContainer creates a container node with no visual representation.
func NewContainer(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeContainer}
	nodeDefaults(n)
	return n
}

// NewSprite creates a sprite node that renders a solid color quad of the given
// local size. Use SetCustomImage to draw an image instead.
func NewSprite(name string, width, height float64) *Node {
	n := &Node{Name: name, Type: NodeTypeSprite, Width: width, Height: height}
	nodeDefaults(n)
	return n
}

// NewText creates a text node. Face may be left nil and assigned later; text
// nodes without a face are skipped when drawing.
func NewText(name, content string, face text.Face) *Node {
	n := &Node{Name: name, Type: NodeTypeText, Content: content, Face: face}
	nodeDefaults(n)
	if face != nil {
		n.Width, n.Height = text.Measure(content, face, 0)
	}
	return n
}

// SetCustomImage sets an image to display instead of the solid color quad.
func (n *Node) SetCustomImage(img *ebiten.Image) {
	n.customImage = img
	if img != nil && n.Width == 0 && n.Height == 0 {
		b := img.Bounds()
		n.Width, n.Height = float64(b.Dx()), float64(b.Dy())
	}
}

// CustomImage returns the user-provided image, or nil if not set.
func (n *Node) CustomImage() *ebiten.Image {
	return n.customImage
}

// IsGraphic reports whether the node produces visual output of its own.
// Containers never do; sprites and text do unless Renderable is false.
func (n *Node) IsGraphic() bool {
	return n.Type != NodeTypeContainer && n.Renderable
}

// Scale returns the node's local scale as a vector.
func (n *Node) Scale() Vec2 {
	return Vec2{n.ScaleX, n.ScaleY}
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("tactile: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("tactile: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	markSubtreeDirty(child)
	if globalDebug {
		debugCheckTreeDepth(child)
	}
}

// AddChildAt inserts child at the given index.
// Same reparenting and cycle-check behavior as AddChild.
func (n *Node) AddChildAt(child *Node, index int) {
	if child == nil {
		panic("tactile: cannot add nil child")
	}
	if isAncestor(child, n) {
		panic("tactile: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	if index < 0 || index > len(n.children) {
		panic("tactile: child index out of range")
	}
	child.Parent = n
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	markSubtreeDirty(child)
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("tactile: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	markSubtreeDirty(child)
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// RemoveChildren detaches all children from this node.
// Children are NOT disposed.
func (n *Node) RemoveChildren() {
	for _, child := range n.children {
		child.Parent = nil
		markSubtreeDirty(child)
	}
	n.children = n.children[:0]
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// Walk visits n and its descendants depth-first in child order. Returning
// false from fn stops the walk.
func (n *Node) Walk(fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, child := range n.children {
		if !child.Walk(fn) {
			return false
		}
	}
	return true
}

// --- Components ---

// AddComponent attaches c to the node. Components are how optional
// interaction sources (buttons, interactables, UI widgets) are carried by a
// node without the node knowing their types.
func (n *Node) AddComponent(c any) {
	if c == nil {
		return
	}
	n.components = append(n.components, c)
}

// RemoveComponent detaches c. Returns false if c was not attached.
func (n *Node) RemoveComponent(c any) bool {
	for i, existing := range n.components {
		if existing == c {
			copy(n.components[i:], n.components[i+1:])
			n.components[len(n.components)-1] = nil
			n.components = n.components[:len(n.components)-1]
			return true
		}
	}
	return false
}

// Components returns the attached components. The returned slice MUST NOT be
// mutated by the caller.
func (n *Node) Components() []any {
	return n.components
}

// ComponentOf returns the first component attached to n that has type T
// (or implements T when T is an interface).
func ComponentOf[T any](n *Node) (T, bool) {
	var zero T
	if n == nil {
		return zero, false
	}
	for _, c := range n.components {
		if v, ok := c.(T); ok {
			return v, true
		}
	}
	return zero, false
}

// AddPointerListener subscribes fn to the node's pointer events of the given
// kind (down, up, enter or leave). Listeners run after the On* callback.
// Panics for EventClick; use AddClickListener.
func (n *Node) AddPointerListener(kind EventType, fn func(PointerContext)) Unsubscribe {
	if n.listeners == nil {
		n.listeners = &nodeListeners{}
	}
	switch kind {
	case EventPointerDown:
		return n.listeners.pointerDown.add(fn)
	case EventPointerUp:
		return n.listeners.pointerUp.add(fn)
	case EventPointerEnter:
		return n.listeners.pointerEnter.add(fn)
	case EventPointerLeave:
		return n.listeners.pointerLeave.add(fn)
	}
	panic("tactile: AddPointerListener does not accept " + kind.String())
}

// AddClickListener subscribes fn to clicks on the node.
func (n *Node) AddClickListener(fn func(ClickContext)) Unsubscribe {
	if n.listeners == nil {
		n.listeners = &nodeListeners{}
	}
	return n.listeners.click.add(fn)
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.HitShape = nil
	n.customImage = nil
	n.Face = nil
	n.UserData = nil
	n.components = nil
	n.listeners = nil
	n.OnPointerDown = nil
	n.OnPointerUp = nil
	n.OnClick = nil
	n.OnPointerEnter = nil
	n.OnPointerLeave = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// markSubtreeDirty sets transformDirty on node and all its descendants.
func markSubtreeDirty(node *Node) {
	node.transformDirty = true
	for _, child := range node.children {
		markSubtreeDirty(child)
	}
}
