package preset

import (
	"errors"
	"fmt"
	"log"

	"github.com/tanema/gween/ease"

	"github.com/phanxgames/tactile"
)

// Manager saves and restores the poses of Targets.
type Manager struct {
	Targets []*tactile.Node
	Store   Store

	defaults map[*tactile.Node]Pose
}

// NewManager creates a manager and captures the current poses of targets as
// the reset defaults.
func NewManager(store Store, targets ...*tactile.Node) *Manager {
	m := &Manager{Targets: targets, Store: store}
	m.CaptureDefaults()
	return m
}

// CaptureDefaults records the current pose of every target for Reset.
func (m *Manager) CaptureDefaults() {
	m.defaults = make(map[*tactile.Node]Pose, len(m.Targets))
	for _, t := range m.Targets {
		if live(t) {
			m.defaults[t] = PoseOf(t)
		}
	}
}

// Capture builds a payload from the targets' current poses.
func (m *Manager) Capture(name string) Payload {
	p := Payload{Name: name, Objects: make([]ObjectPose, 0, len(m.Targets))}
	for _, t := range m.Targets {
		if !live(t) {
			continue
		}
		pose := PoseOf(t)
		p.Objects = append(p.Objects, ObjectPose{Name: t.Name, World: &pose})
	}
	return p
}

// Save stores the targets' current poses under name.
func (m *Manager) Save(name string) error {
	if err := checkName(name); err != nil {
		return err
	}
	data, err := Encode(m.Capture(name))
	if err != nil {
		return err
	}
	if err := m.Store.Save(name, data); err != nil {
		return fmt.Errorf("preset: save %q: %w", name, err)
	}
	log.Printf("[preset] saved %q", name)
	return nil
}

// Load reads the preset and applies it. A missing preset is logged as a
// warning and returns an error wrapping ErrPresetNotFound; no target moves.
func (m *Manager) Load(name string) error {
	p, err := m.read(name)
	if err != nil {
		return err
	}
	m.Apply(p)
	log.Printf("[preset] loaded %q", name)
	return nil
}

// Apply moves every target named in p to its saved pose, in payload order.
// Unknown names are ignored. Returns the number of targets moved.
func (m *Manager) Apply(p Payload) int {
	moved := 0
	for _, op := range p.Objects {
		t := m.find(op.Name)
		if t == nil {
			continue
		}
		if op.World == nil {
			log.Printf("[preset] warning: object %q in %q has no world pose, re-save the preset", op.Name, p.Name)
			continue
		}
		op.World.ApplyTo(t)
		moved++
	}
	return moved
}

// LoadAnimated reads the preset and returns one tween per matched target
// easing it to its saved pose over duration seconds. The caller advances the
// tweens, usually with Scene.AddTween. Local targets are computed from each
// parent's pose at call time.
func (m *Manager) LoadAnimated(name string, duration float32, fn ease.TweenFunc) ([]*tactile.TweenGroup, error) {
	p, err := m.read(name)
	if err != nil {
		return nil, err
	}
	var groups []*tactile.TweenGroup
	for _, op := range p.Objects {
		t := m.find(op.Name)
		if t == nil || op.World == nil {
			continue
		}
		w := op.World
		groups = append(groups, tactile.TweenTransform(t,
			t.LocalPositionFor(w.X, w.Y),
			t.LocalRotationFor(w.Rotation),
			tactile.Vec2{X: w.ScaleX, Y: w.ScaleY},
			duration, fn))
	}
	return groups, nil
}

// Reset puts every target back at the pose captured by CaptureDefaults.
func (m *Manager) Reset() {
	for _, t := range m.Targets {
		pose, ok := m.defaults[t]
		if !ok || !live(t) {
			continue
		}
		pose.ApplyTo(t)
	}
	log.Printf("[preset] reset to defaults")
}

// SaveDefault saves the "default" preset.
func (m *Manager) SaveDefault() error { return m.Save(DefaultName) }

// LoadDefault loads the "default" preset.
func (m *Manager) LoadDefault() error { return m.Load(DefaultName) }

// ResetDefault is Reset, named to pair with SaveDefault and LoadDefault.
func (m *Manager) ResetDefault() { m.Reset() }

// Encoded returns the JSON of the targets' current poses under name.
func (m *Manager) Encoded(name string) ([]byte, error) {
	return Encode(m.Capture(name))
}

func (m *Manager) read(name string) (Payload, error) {
	if err := checkName(name); err != nil {
		return Payload{}, err
	}
	data, err := m.Store.Load(name)
	if errors.Is(err, ErrPresetNotFound) {
		log.Printf("[preset] warning: preset %q not found", name)
		return Payload{}, err
	}
	if err != nil {
		return Payload{}, fmt.Errorf("preset: load %q: %w", name, err)
	}
	p, err := Decode(data)
	if err != nil {
		return Payload{}, fmt.Errorf("preset: load %q: %w", name, err)
	}
	return p, nil
}

// find returns the first live target called name.
func (m *Manager) find(name string) *tactile.Node {
	for _, t := range m.Targets {
		if live(t) && t.Name == name {
			return t
		}
	}
	return nil
}

func live(n *tactile.Node) bool {
	return n != nil && !n.IsDisposed()
}
