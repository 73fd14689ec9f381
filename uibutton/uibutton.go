// Package uibutton lets an ebitenui button drive tactile press feedback.
//
// Attach an ebitenui *widget.Button to the scene node whose face should
// react, then enable a tactile.PressFeedback on that node. Importing the
// package registers the "ebitenui.Button" capability.
package uibutton

import (
	"errors"

	"github.com/ebitenui/ebitenui/event"
	"github.com/ebitenui/ebitenui/widget"

	"github.com/phanxgames/tactile"
)

// CapabilityName is the name Button is registered under.
const CapabilityName = "ebitenui.Button"

func init() {
	tactile.RegisterCapability(CapabilityName, tactile.ProbeComponent(func(b *Button) tactile.Source {
		return b
	}))
}

// Button is the node component wrapping an ebitenui button.
type Button struct {
	Widget *widget.Button

	node    *tactile.Node
	handles []*handle
}

// handle is one handler added to a widget event through a Signal channel.
type handle struct {
	remove  func()
	removed bool
}

func (h *handle) drop() bool {
	if h.removed {
		return false
	}
	h.removed = true
	h.remove()
	return true
}

// Attach adds w to node as a component.
func Attach(node *tactile.Node, w *widget.Button) *Button {
	b := &Button{Widget: w, node: node}
	node.AddComponent(b)
	return b
}

// Detach removes the component from its node and removes every handler
// added to the widget through its channels.
func (b *Button) Detach() {
	for _, h := range b.handles {
		h.drop()
	}
	b.handles = nil
	b.node.RemoveComponent(b)
}

func (b *Button) track(h *handle) {
	live := b.handles[:0]
	for _, old := range b.handles {
		if !old.removed {
			live = append(live, old)
		}
	}
	b.handles = append(live, h)
}

// Node returns the node the button is attached to.
func (b *Button) Node() *tactile.Node { return b.node }

// Signal exposes the widget's pressed, released and clicked events as
// one-argument channels. Implements tactile.Source.
func (b *Button) Signal(name string) (any, bool) {
	if b.Widget == nil {
		return nil, false
	}
	var ev *event.Event
	switch name {
	case "PressedEvent", "Pressed":
		ev = b.Widget.PressedEvent
	case "ReleasedEvent", "Released":
		ev = b.Widget.ReleasedEvent
	case "ClickedEvent", "Clicked":
		ev = b.Widget.ClickedEvent
	}
	if ev == nil {
		return nil, false
	}
	return eventSignal{ev: ev, owner: b}, true
}

var errNilEvent = errors.New("uibutton: nil event")

// eventSignal adapts an ebitenui event to tactile.ArgSignal. Handlers are
// tracked on owner, when set, so Detach can remove them.
type eventSignal struct {
	ev    *event.Event
	owner *Button
}

func (s eventSignal) SubscribeArg(fn func(any)) (tactile.Unsubscribe, error) {
	if s.ev == nil || fn == nil {
		return nil, errNilEvent
	}
	h := &handle{remove: s.ev.AddHandler(func(args interface{}) { fn(args) })}
	if s.owner != nil {
		s.owner.track(h)
	}
	return func() error {
		if !h.drop() {
			return tactile.ErrNotSubscribed
		}
		return nil
	}, nil
}
