package tactile

import (
	"errors"
	"fmt"
	"log"
)

// Candidate channel names per role, tried in order; the first channel that
// exists, has a supported shape and accepts the subscription is bound. The
// lists cover the spellings used by different interaction toolkits and their
// versions. Append to support a new backend.
var (
	// ClickChannels map to a full pulse.
	ClickChannels = []string{
		"OnClicked", "onClicked", "m_OnClicked",
		"Clicked", "ClickedEvent",
	}

	// PressChannels map to PressDown.
	PressChannels = []string{
		"OnSelectEntered", "onSelectEntered", "m_OnSelectEntered",
		"FirstSelectEntered", "m_FirstSelectEntered",
		"SelectEntered", "selectEntered", "m_SelectEntered",
		"Pressed", "PressedEvent",
	}

	// ReleaseChannels map to ReleaseUp.
	ReleaseChannels = []string{
		"OnSelectExited", "onSelectExited", "m_OnSelectExited",
		"LastSelectExited", "m_LastSelectExited",
		"SelectExited", "selectExited", "m_SelectExited",
		"Released", "ReleasedEvent",
	}
)

// ButtonCapability is the capability name reported for bindings made to a
// node's Button component.
const ButtonCapability = "tactile.Button"

// Binding is one subscription from an interaction source channel to a
// controller action.
type Binding struct {
	Capability string
	Channel    string

	unsubscribe Unsubscribe
}

// bindSources subscribes to every interaction source found on the controller's
// node. Nothing here can fail: an absent capability, an absent channel or a
// channel of the wrong shape just means that binding is skipped.
func (p *PressFeedback) bindSources() {
	if p.node == nil {
		return
	}
	if b, ok := ComponentOf[*Button](p.node); ok {
		p.bindSignal(ButtonCapability, "Clicked", &b.Clicked, p.Pulse)
	}
	for _, name := range p.capabilityNames() {
		probe, ok := LookupCapability(name)
		if !ok {
			continue
		}
		src, ok := safeProbe(probe, p.node)
		if !ok {
			continue
		}
		p.bindRole(name, src, ClickChannels, p.Pulse)
		p.bindRole(name, src, PressChannels, p.PressDown)
		p.bindRole(name, src, ReleaseChannels, p.ReleaseUp)
	}
}

func (p *PressFeedback) capabilityNames() []string {
	if p.cfg.Capabilities != nil {
		return p.cfg.Capabilities
	}
	return Capabilities()
}

// bindRole binds the first usable channel among candidates.
func (p *PressFeedback) bindRole(capName string, src Source, candidates []string, action func()) bool {
	for _, ch := range candidates {
		sig, ok := safeSignal(src, ch)
		if !ok {
			continue
		}
		if p.bindSignal(capName, ch, sig, action) {
			return true
		}
	}
	return false
}

// bindSignal subscribes action to sig through the adapter matching its arity.
// One-argument channels get a listener that drops the payload, so the same
// action serves every payload type.
func (p *PressFeedback) bindSignal(capName, channel string, sig any, action func()) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()

	var unsub Unsubscribe
	var err error
	switch s := sig.(type) {
	case Signal:
		unsub, err = s.Subscribe(action)
	case ArgSignal:
		unsub, err = s.SubscribeArg(func(any) { action() })
	default:
		return false
	}
	if err != nil || unsub == nil {
		return false
	}
	p.bindings = append(p.bindings, Binding{
		Capability:  capName,
		Channel:     channel,
		unsubscribe: unsub,
	})
	return true
}

// unbindAll runs every unsubscribe exactly once. A failing or panicking
// unsubscribe is logged and does not stop the rest. ErrNotSubscribed means the
// source already dropped the listener, usually because it was detached.
func (p *PressFeedback) unbindAll() {
	for _, b := range p.bindings {
		if err := safeUnsubscribe(b.unsubscribe); err != nil && !errors.Is(err, ErrNotSubscribed) {
			log.Printf("[tactile] press feedback %q: unbind %s.%s: %v", p.name(), b.Capability, b.Channel, err)
		}
	}
	clear(p.bindings)
	p.bindings = p.bindings[:0]
}

func safeProbe(probe ProbeFunc, n *Node) (src Source, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			src, ok = nil, false
		}
	}()
	src, ok = probe(n)
	return src, ok && src != nil
}

func safeSignal(src Source, name string) (sig any, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			sig, ok = nil, false
		}
	}()
	sig, ok = src.Signal(name)
	return sig, ok && sig != nil
}

func safeUnsubscribe(u Unsubscribe) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return u()
}
