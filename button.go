package tactile

// Button is the conventional 2D button component. It turns the pointer
// callbacks of its node into Pressed, Released and Clicked events.
type Button struct {
	Pressed  Event
	Released Event
	Clicked  Event

	// Disabled suppresses all three events.
	Disabled bool

	node    *Node
	pressed bool
	unsubs  []Unsubscribe
}

// NewButton attaches a Button to node, making it interactable.
func NewButton(node *Node) *Button {
	b := &Button{node: node}
	node.Interactable = true
	node.AddComponent(b)
	b.unsubs = append(b.unsubs,
		node.AddPointerListener(EventPointerDown, func(PointerContext) {
			if b.Disabled {
				return
			}
			b.pressed = true
			b.Pressed.Emit()
		}),
		node.AddPointerListener(EventPointerUp, func(PointerContext) {
			if !b.pressed {
				return
			}
			b.pressed = false
			if !b.Disabled {
				b.Released.Emit()
			}
		}),
		node.AddClickListener(func(ClickContext) {
			if !b.Disabled {
				b.Clicked.Emit()
			}
		}),
	)
	return b
}

// Node returns the node the button is attached to.
func (b *Button) Node() *Node {
	return b.node
}

// IsPressed reports whether a pointer is currently held on the button.
func (b *Button) IsPressed() bool {
	return b.pressed
}

// Click emits Clicked as if the button had been clicked, e.g. from a keyboard
// shortcut.
func (b *Button) Click() {
	if !b.Disabled {
		b.Clicked.Emit()
	}
}

// Detach removes the button from its node, stops listening to it and drops
// every listener of its events. Controllers bound to it keep a stale binding
// until their next Rebind or Disable.
func (b *Button) Detach() {
	for _, u := range b.unsubs {
		_ = u()
	}
	b.unsubs = nil
	b.Pressed.Clear()
	b.Released.Clear()
	b.Clicked.Clear()
	b.node.RemoveComponent(b)
}
