package tactile

// PressFeedback scales a node's visible face down while it is pressed and
// back up on release, and plays a short down-then-up pulse on click. It binds
// itself to every interaction source it can find on its node when enabled and
// drops those bindings when disabled.
//
// PressFeedback implements Behavior; add it to the scene with AddBehavior so
// it is ticked once per frame:
//
//	pf := tactile.NewPressFeedback(btn, tactile.PressConfig{})
//	pf.Enable()
//	scene.AddBehavior(pf)
//
// All methods must be called from the goroutine that runs the scene.
type PressFeedback struct {
	node *Node
	cfg  PressConfig

	target      *Node
	resting     Vec2
	initialized bool
	enabled     bool
	disposed    bool

	anim     scaleAnimator
	bindings []Binding
	owner    ownerCheck
}

// NewPressFeedback creates a disabled controller for node. Zero fields in cfg
// take their defaults.
func NewPressFeedback(node *Node, cfg PressConfig) *PressFeedback {
	return &PressFeedback{node: node, cfg: cfg.normalized()}
}

// Node returns the node the controller listens on.
func (p *PressFeedback) Node() *Node {
	return p.node
}

// Config returns the normalized configuration.
func (p *PressFeedback) Config() PressConfig {
	return p.cfg
}

// Enable resolves the target on first use, records its resting scale, and
// subscribes to the node's interaction sources. Enabling an enabled
// controller does nothing.
func (p *PressFeedback) Enable() {
	p.owner.check("Enable", p.name())
	if p.disposed || p.enabled {
		return
	}
	p.init()
	p.enabled = true
	p.bindSources()
}

// Disable unsubscribes from every source, stops any run and puts the target
// back at its resting scale. A run started by a direct call while disabled is
// stopped too.
func (p *PressFeedback) Disable() {
	p.owner.check("Disable", p.name())
	if p.enabled {
		p.enabled = false
		p.unbindAll()
	}
	p.rest()
}

// SetEnabled calls Enable or Disable.
func (p *PressFeedback) SetEnabled(enabled bool) {
	if enabled {
		p.Enable()
	} else {
		p.Disable()
	}
}

// Enabled reports whether the controller is bound to its sources.
func (p *PressFeedback) Enabled() bool {
	return p.enabled
}

// Dispose disables the controller for good. Later calls to Enable, PressDown,
// ReleaseUp and Pulse are ignored.
func (p *PressFeedback) Dispose() {
	p.Disable()
	p.disposed = true
}

// Rebind drops and re-creates the bindings, picking up sources added to or
// detached from the node since Enable.
func (p *PressFeedback) Rebind() {
	p.owner.check("Rebind", p.name())
	if !p.enabled {
		return
	}
	p.unbindAll()
	p.bindSources()
}

// PressDown eases the target to its pressed scale.
func (p *PressFeedback) PressDown() {
	p.owner.check("PressDown", p.name())
	if p.disposed {
		return
	}
	p.init()
	p.anim.start(p.pressedScale(), p.cfg.StepDuration)
}

// ReleaseUp eases the target back to its resting scale.
func (p *PressFeedback) ReleaseUp() {
	p.owner.check("ReleaseUp", p.name())
	if p.disposed {
		return
	}
	p.init()
	p.anim.start(p.resting, p.cfg.StepDuration)
}

// Pulse eases the target to its pressed scale and then back to rest.
func (p *PressFeedback) Pulse() {
	p.owner.check("Pulse", p.name())
	if p.disposed {
		return
	}
	p.init()
	p.anim.startPulse(p.pressedScale(), p.resting, p.cfg.StepDuration)
}

// Update advances the active run by dt seconds. It implements Behavior.
func (p *PressFeedback) Update(dt float64) {
	p.anim.tick(dt)
}

// Target returns the node whose scale is animated, or nil before the first
// Enable or operation.
func (p *PressFeedback) Target() *Node {
	return p.target
}

// RestingScale returns the scale recorded when the target was resolved.
func (p *PressFeedback) RestingScale() Vec2 {
	return p.resting
}

// Running reports whether a scale run is in flight.
func (p *PressFeedback) Running() bool {
	return p.anim.running()
}

// Bindings returns a copy of the active bindings.
func (p *PressFeedback) Bindings() []Binding {
	out := make([]Binding, len(p.bindings))
	copy(out, p.bindings)
	return out
}

// BindingCount returns the number of active bindings.
func (p *PressFeedback) BindingCount() int {
	return len(p.bindings)
}

// init resolves the target and its resting scale exactly once.
func (p *PressFeedback) init() {
	if p.initialized {
		return
	}
	p.initialized = true

	t := p.cfg.Target
	if t == nil && p.node != nil {
		if p.cfg.DisableAutoTarget {
			t = p.node
		} else {
			t = ResolveTarget(p.node, p.cfg.TargetNames)
		}
	}
	p.target = t
	p.resting = Vec2{X: 1, Y: 1}
	if t != nil {
		p.resting = t.Scale()
	}
	p.anim = scaleAnimator{target: t, curve: p.cfg.Ease}
}

// rest cancels any run and restores the resting scale once a target exists.
func (p *PressFeedback) rest() {
	p.anim.cancel()
	if !p.initialized || p.target == nil || p.target.IsDisposed() {
		return
	}
	p.target.SetScale(p.resting.X, p.resting.Y)
}

func (p *PressFeedback) pressedScale() Vec2 {
	return p.resting.Scale(p.cfg.PressedScale)
}

func (p *PressFeedback) name() string {
	if p.node == nil {
		return ""
	}
	return p.node.Name
}
