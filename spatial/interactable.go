package spatial

import (
	"github.com/phanxgames/tactile"
)

// CapabilityName is the name Interactable is registered under.
const CapabilityName = "spatial.Interactable"

func init() {
	tactile.RegisterCapability(CapabilityName, tactile.ProbeComponent(func(i *Interactable) tactile.Source {
		return i
	}))
}

// SelectEnterArgs describes a pointer starting to select an Interactable.
type SelectEnterArgs struct {
	Interactable *Interactable
	PointerID    int
	X, Y         float64
}

// SelectExitArgs describes a pointer releasing an Interactable. Canceled is
// true when the release did not complete a click.
type SelectExitArgs struct {
	Interactable *Interactable
	PointerID    int
	Canceled     bool
}

// HoverArgs describes a pointer entering or leaving an Interactable.
type HoverArgs struct {
	Interactable *Interactable
	PointerID    int
}

// Interactable tracks which pointers hover and select a node.
//
// SelectEntered and SelectExited fire for every pointer; FirstSelectEntered
// fires only when the first pointer starts selecting and LastSelectExited
// only when the last one lets go.
type Interactable struct {
	OnClicked          tactile.Event
	SelectEntered      tactile.EventOf[SelectEnterArgs]
	SelectExited       tactile.EventOf[SelectExitArgs]
	FirstSelectEntered tactile.EventOf[SelectEnterArgs]
	LastSelectExited   tactile.EventOf[SelectExitArgs]
	HoverEntered       tactile.EventOf[HoverArgs]
	HoverExited        tactile.EventOf[HoverArgs]

	// Disabled ignores new hovers and selections. Pointers already selecting
	// still exit normally.
	Disabled bool

	node      *tactile.Node
	selecting map[int]bool // pointer -> clicked before its release
	hovering  map[int]struct{}
	unsubs    []tactile.Unsubscribe
}

// Attach adds an Interactable to node and makes the node interactable.
func Attach(node *tactile.Node) *Interactable {
	i := &Interactable{
		node:      node,
		selecting: make(map[int]bool),
		hovering:  make(map[int]struct{}),
	}
	node.Interactable = true
	node.AddComponent(i)
	i.unsubs = append(i.unsubs,
		node.AddPointerListener(tactile.EventPointerDown, i.pointerDown),
		node.AddPointerListener(tactile.EventPointerUp, i.pointerUp),
		node.AddPointerListener(tactile.EventPointerEnter, i.pointerEnter),
		node.AddPointerListener(tactile.EventPointerLeave, i.pointerLeave),
		node.AddClickListener(i.click),
	)
	return i
}

// Detach removes the Interactable from its node and drops every listener of
// its events.
func (i *Interactable) Detach() {
	for _, u := range i.unsubs {
		_ = u()
	}
	i.unsubs = nil
	i.OnClicked.Clear()
	i.SelectEntered.Clear()
	i.SelectExited.Clear()
	i.FirstSelectEntered.Clear()
	i.LastSelectExited.Clear()
	i.HoverEntered.Clear()
	i.HoverExited.Clear()
	i.node.RemoveComponent(i)
}

// Node returns the node the Interactable is attached to.
func (i *Interactable) Node() *tactile.Node { return i.node }

// IsSelected reports whether any pointer is selecting.
func (i *Interactable) IsSelected() bool { return len(i.selecting) > 0 }

// IsHovered reports whether any pointer is hovering.
func (i *Interactable) IsHovered() bool { return len(i.hovering) > 0 }

// Signal exposes the events by name. Implements tactile.Source.
func (i *Interactable) Signal(name string) (any, bool) {
	switch name {
	case "OnClicked", "Clicked":
		return &i.OnClicked, true
	case "SelectEntered":
		return &i.SelectEntered, true
	case "SelectExited":
		return &i.SelectExited, true
	case "FirstSelectEntered":
		return &i.FirstSelectEntered, true
	case "LastSelectExited":
		return &i.LastSelectExited, true
	case "HoverEntered":
		return &i.HoverEntered, true
	case "HoverExited":
		return &i.HoverExited, true
	}
	return nil, false
}

func (i *Interactable) pointerDown(ctx tactile.PointerContext) {
	if i.Disabled {
		return
	}
	if _, ok := i.selecting[ctx.PointerID]; ok {
		return
	}
	first := len(i.selecting) == 0
	i.selecting[ctx.PointerID] = false
	args := SelectEnterArgs{Interactable: i, PointerID: ctx.PointerID, X: ctx.GlobalX, Y: ctx.GlobalY}
	i.SelectEntered.Emit(args)
	if first {
		i.FirstSelectEntered.Emit(args)
	}
}

// click runs before the matching pointer up.
func (i *Interactable) click(ctx tactile.ClickContext) {
	if _, ok := i.selecting[ctx.PointerID]; !ok {
		return
	}
	i.selecting[ctx.PointerID] = true
	if !i.Disabled {
		i.OnClicked.Emit()
	}
}

func (i *Interactable) pointerUp(ctx tactile.PointerContext) {
	clicked, ok := i.selecting[ctx.PointerID]
	if !ok {
		return
	}
	delete(i.selecting, ctx.PointerID)
	args := SelectExitArgs{Interactable: i, PointerID: ctx.PointerID, Canceled: !clicked}
	i.SelectExited.Emit(args)
	if len(i.selecting) == 0 {
		i.LastSelectExited.Emit(args)
	}
}

func (i *Interactable) pointerEnter(ctx tactile.PointerContext) {
	if i.Disabled {
		return
	}
	i.hovering[ctx.PointerID] = struct{}{}
	i.HoverEntered.Emit(HoverArgs{Interactable: i, PointerID: ctx.PointerID})
}

func (i *Interactable) pointerLeave(ctx tactile.PointerContext) {
	if _, ok := i.hovering[ctx.PointerID]; !ok {
		return
	}
	delete(i.hovering, ctx.PointerID)
	i.HoverExited.Emit(HoverArgs{Interactable: i, PointerID: ctx.PointerID})
}
