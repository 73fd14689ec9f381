package tactile

import (
	"github.com/hajimehoshi/ebiten/v2"
)

const maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

// --- Built-in HitShape types ---

// HitRect is an axis-aligned rectangular hit area in local coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area in local coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// HitPolygon is a convex polygon hit area in local coordinates.
// Points must define a convex polygon in either winding order.
type HitPolygon struct {
	Points []Vec2
}

// Contains reports whether (x, y) lies inside a convex polygon using cross-product sign test.
func (p HitPolygon) Contains(x, y float64) bool {
	n := len(p.Points)
	if n < 3 {
		return false
	}
	var positive, negative bool
	for i := 0; i < n; i++ {
		x1, y1 := p.Points[i].X, p.Points[i].Y
		j := (i + 1) % n
		x2, y2 := p.Points[j].X, p.Points[j].Y

		cross := (x2-x1)*(y-y1) - (y2-y1)*(x-x1)
		if cross > 0 {
			positive = true
		} else if cross < 0 {
			negative = true
		}
		if positive && negative {
			return false
		}
	}
	return true
}

// --- Per-pointer state ---

type pointerState struct {
	down      bool
	lastX     float64
	lastY     float64
	hitNode   *Node
	hoverNode *Node
	button    MouseButton // button captured at press time
}

// handlerRegistry holds scene-level callbacks.
type handlerRegistry struct {
	pointerDown  registry[PointerContext]
	pointerUp    registry[PointerContext]
	pointerEnter registry[PointerContext]
	pointerLeave registry[PointerContext]
	click        registry[ClickContext]
}

// CallbackHandle allows removing a registered scene-level callback.
type CallbackHandle struct {
	remove Unsubscribe
}

// Remove unregisters this callback so it no longer fires. Removing twice is a no-op.
func (h CallbackHandle) Remove() {
	if h.remove == nil {
		return
	}
	_ = h.remove()
}

// OnPointerDown registers a scene-level callback for pointer down events.
func (s *Scene) OnPointerDown(fn func(PointerContext)) CallbackHandle {
	return CallbackHandle{remove: s.handlers.pointerDown.add(fn)}
}

// OnPointerUp registers a scene-level callback for pointer up events.
func (s *Scene) OnPointerUp(fn func(PointerContext)) CallbackHandle {
	return CallbackHandle{remove: s.handlers.pointerUp.add(fn)}
}

// OnPointerEnter registers a scene-level callback fired when the pointer
// moves over a new node.
func (s *Scene) OnPointerEnter(fn func(PointerContext)) CallbackHandle {
	return CallbackHandle{remove: s.handlers.pointerEnter.add(fn)}
}

// OnPointerLeave registers a scene-level callback fired when the pointer
// leaves a node.
func (s *Scene) OnPointerLeave(fn func(PointerContext)) CallbackHandle {
	return CallbackHandle{remove: s.handlers.pointerLeave.add(fn)}
}

// OnClick registers a scene-level callback for click events.
func (s *Scene) OnClick(fn func(ClickContext)) CallbackHandle {
	return CallbackHandle{remove: s.handlers.click.add(fn)}
}

// --- Hit testing ---

// nodeContainsLocal tests whether (lx, ly) falls inside a node's hit region.
// Uses HitShape if set; otherwise the node's Width and Height.
func nodeContainsLocal(n *Node, lx, ly float64) bool {
	if n.HitShape != nil {
		return n.HitShape.Contains(lx, ly)
	}
	if n.Width == 0 && n.Height == 0 {
		return false
	}
	return lx >= 0 && lx <= n.Width && ly >= 0 && ly <= n.Height
}

// collectInteractable walks the tree in painter order, appending interactable
// nodes to buf. Skips Visible=false or Interactable=false subtrees.
func collectInteractable(n *Node, buf []*Node) []*Node {
	if !n.Visible || !n.Interactable {
		return buf
	}
	if n.HitShape != nil || n.Type != NodeTypeContainer {
		buf = append(buf, n)
	}
	for _, child := range n.children {
		buf = collectInteractable(child, buf)
	}
	return buf
}

// hitTest finds the topmost interactable node at (worldX, worldY).
// Returns nil if nothing is hit.
func (s *Scene) hitTest(worldX, worldY float64) *Node {
	s.hitBuf = collectInteractable(s.root, s.hitBuf[:0])
	for i := len(s.hitBuf) - 1; i >= 0; i-- {
		n := s.hitBuf[i]
		lx, ly := n.WorldToLocal(worldX, worldY)
		if nodeContainsLocal(n, lx, ly) {
			return n
		}
	}
	return nil
}

// --- Input processing ---

func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= ModMeta
	}
	return mods
}

// processInput is called from Scene.Update. An injected event, when queued,
// replaces real input for the frame.
func (s *Scene) processInput() {
	if s.processInjectedInput() {
		return
	}
	if !s.LiveInput {
		return
	}
	mods := readModifiers()
	s.processMousePointer(mods)
	s.processTouchPointers(mods)
}

// processMousePointer handles mouse input (pointer 0).
func (s *Scene) processMousePointer(mods KeyModifiers) {
	mx, my := ebiten.CursorPosition()

	var pressed bool
	var button MouseButton
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		pressed, button = true, MouseButtonLeft
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		pressed, button = true, MouseButtonRight
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle):
		pressed, button = true, MouseButtonMiddle
	}

	s.processPointer(0, float64(mx), float64(my), pressed, button, mods)
}

// processTouchPointers handles touch input (pointers 1-9).
func (s *Scene) processTouchPointers(mods KeyModifiers) {
	touchIDs := ebiten.AppendTouchIDs(s.prevTouchIDs[:0])
	s.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := s.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true
		tx, ty := ebiten.TouchPosition(tid)
		s.processPointer(slot, float64(tx), float64(ty), true, MouseButtonLeft, mods)
	}

	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && !activeSlots[i] {
			ps := &s.pointers[i]
			if ps.down {
				s.processPointer(i, ps.lastX, ps.lastY, false, MouseButtonLeft, mods)
			}
			s.touchUsed[i] = false
			s.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (s *Scene) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && s.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !s.touchUsed[i] {
			s.touchUsed[i] = true
			s.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// processPointer runs the pointer state machine for a single pointer.
func (s *Scene) processPointer(pointerID int, wx, wy float64, pressed bool, button MouseButton, mods KeyModifiers) {
	ps := &s.pointers[pointerID]
	target := s.hitTest(wx, wy)

	if target != ps.hoverNode {
		if ps.hoverNode != nil {
			s.firePointer(EventPointerLeave, ps.hoverNode, pointerID, wx, wy, button, mods)
		}
		if target != nil {
			s.firePointer(EventPointerEnter, target, pointerID, wx, wy, button, mods)
		}
		ps.hoverNode = target
	}

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.button = button
		ps.hitNode = target
		s.firePointer(EventPointerDown, target, pointerID, wx, wy, button, mods)
	case !pressed && ps.down:
		// Release: the pressed node always sees its pointer up, even when the
		// pointer slid off, so press state never sticks.
		if ps.hitNode != nil && ps.hitNode == target {
			s.fireClick(target, pointerID, wx, wy, ps.button, mods)
		}
		upNode := target
		if ps.hitNode != nil {
			upNode = ps.hitNode
		}
		s.firePointer(EventPointerUp, upNode, pointerID, wx, wy, ps.button, mods)
		ps.down = false
		ps.hitNode = nil
	}
	ps.lastX = wx
	ps.lastY = wy
}

// --- Event dispatch ---

func (s *Scene) firePointer(kind EventType, node *Node, pointerID int, wx, wy float64, button MouseButton, mods KeyModifiers) {
	ctx := PointerContext{
		Node: node, GlobalX: wx, GlobalY: wy,
		Button: button, PointerID: pointerID, Modifiers: mods,
	}
	if node != nil {
		ctx.LocalX, ctx.LocalY = node.WorldToLocal(wx, wy)
		ctx.EntityID = node.EntityID
		ctx.UserData = node.UserData
	}

	var reg, nodeReg *registry[PointerContext]
	var cb func(PointerContext)
	nl := nodeListenersOf(node)
	switch kind {
	case EventPointerDown:
		reg, nodeReg = &s.handlers.pointerDown, &nl.pointerDown
		if node != nil {
			cb = node.OnPointerDown
		}
	case EventPointerUp:
		reg, nodeReg = &s.handlers.pointerUp, &nl.pointerUp
		if node != nil {
			cb = node.OnPointerUp
		}
	case EventPointerEnter:
		reg, nodeReg = &s.handlers.pointerEnter, &nl.pointerEnter
		if node != nil {
			cb = node.OnPointerEnter
		}
	case EventPointerLeave:
		reg, nodeReg = &s.handlers.pointerLeave, &nl.pointerLeave
		if node != nil {
			cb = node.OnPointerLeave
		}
	default:
		return
	}

	// Scene-level handlers first, then the per-node callback, then components.
	reg.emit(ctx)
	if cb != nil {
		cb(ctx)
	}
	nodeReg.emit(ctx)
	s.emitInteractionEvent(kind, node, wx, wy, ctx.LocalX, ctx.LocalY, button, mods)
}

func (s *Scene) fireClick(node *Node, pointerID int, wx, wy float64, button MouseButton, mods KeyModifiers) {
	ctx := ClickContext{
		Node: node, GlobalX: wx, GlobalY: wy,
		Button: button, PointerID: pointerID, Modifiers: mods,
	}
	if node != nil {
		ctx.LocalX, ctx.LocalY = node.WorldToLocal(wx, wy)
		ctx.EntityID = node.EntityID
		ctx.UserData = node.UserData
	}
	s.handlers.click.emit(ctx)
	if node != nil && node.OnClick != nil {
		node.OnClick(ctx)
	}
	nodeListenersOf(node).click.emit(ctx)
	s.emitInteractionEvent(EventClick, node, wx, wy, ctx.LocalX, ctx.LocalY, button, mods)
}

// emptyListeners stands in for nodes without listeners so dispatch needs no nil checks.
var emptyListeners nodeListeners

func nodeListenersOf(n *Node) *nodeListeners {
	if n == nil || n.listeners == nil {
		return &emptyListeners
	}
	return n.listeners
}

// --- ECS bridge ---

func (s *Scene) emitInteractionEvent(eventType EventType, node *Node, wx, wy, lx, ly float64,
	button MouseButton, mods KeyModifiers) {
	if s.store == nil || node == nil || node.EntityID == 0 {
		return
	}
	s.store.EmitEvent(InteractionEvent{
		Type:      eventType,
		EntityID:  node.EntityID,
		GlobalX:   wx,
		GlobalY:   wy,
		LocalX:    lx,
		LocalY:    ly,
		Button:    button,
		Modifiers: mods,
	})
}
