package tactile

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// EntityStore is the interface for optional ECS integration.
// When set on a Scene, interaction events are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries interaction data for the ECS bridge.
type InteractionEvent struct {
	Type      EventType
	EntityID  uint32
	GlobalX   float64
	GlobalY   float64
	LocalX    float64
	LocalY    float64
	Button    MouseButton
	Modifiers KeyModifiers
}

// Behavior is per-frame logic attached to a scene. Update receives unscaled
// frame time in seconds: Scene.TimeScale never applies to behaviors, so UI
// feedback keeps its pace while gameplay is slowed or paused.
type Behavior interface {
	Update(dt float64)
}

// Scene is the top-level object that owns the node tree, input state, attached
// behaviors and scene-time tweens.
type Scene struct {
	root  *Node
	store EntityStore
	debug bool

	// ClearColor fills the screen before drawing when its alpha is non-zero.
	ClearColor Color

	// TimeScale scales the dt given to tweens added with AddTween. Defaults to 1.
	TimeScale float64

	// LiveInput enables reading the mouse and touch screen. Injected events
	// are processed either way. Defaults to true.
	LiveInput bool

	behaviors   []Behavior
	behaviorBuf []Behavior
	tweens      []*TweenGroup
	updateFunc  func() error
	drawFunc    func(screen *ebiten.Image)
	drawBuf     []*Node

	// Input state
	handlers     handlerRegistry
	pointers     [maxPointers]pointerState
	hitBuf       []*Node
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID
	injectQueue  []syntheticPointerEvent
	testRunner   *TestRunner
}

// NewScene creates a new scene with a pre-created root container.
func NewScene() *Scene {
	root := NewContainer("root")
	root.Interactable = true
	return &Scene{
		root:      root,
		TimeScale: 1,
		LiveInput: true,
	}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Update advances the scene by one tick of 1/TPS seconds.
func (s *Scene) Update() error {
	return s.UpdateWithDelta(1.0 / float64(ebiten.TPS()))
}

// UpdateWithDelta advances the scene by dt seconds of unscaled time: it runs
// the test runner, refreshes transforms, processes input, ticks behaviors,
// advances scene-time tweens and finally calls the update func.
func (s *Scene) UpdateWithDelta(dt float64) error {
	if s.testRunner != nil {
		s.testRunner.step(s)
	}

	// Refresh world transforms first so hit testing has accurate positions.
	s.root.UpdateTransforms()
	s.processInput()

	// Behaviors may add or remove behaviors while running.
	s.behaviorBuf = append(s.behaviorBuf[:0], s.behaviors...)
	for _, b := range s.behaviorBuf {
		b.Update(dt)
	}
	clear(s.behaviorBuf)

	s.advanceTweens(float32(dt * s.TimeScale))

	if s.updateFunc != nil {
		return s.updateFunc()
	}
	return nil
}

// SetUpdateFunc sets a callback run at the end of every Update.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// AddBehavior attaches b. Adding the same behavior twice is a no-op.
func (s *Scene) AddBehavior(b Behavior) {
	for _, existing := range s.behaviors {
		if existing == b {
			return
		}
	}
	s.behaviors = append(s.behaviors, b)
}

// RemoveBehavior detaches b. Returns false if b was not attached.
func (s *Scene) RemoveBehavior(b Behavior) bool {
	for i, existing := range s.behaviors {
		if existing == b {
			copy(s.behaviors[i:], s.behaviors[i+1:])
			s.behaviors[len(s.behaviors)-1] = nil
			s.behaviors = s.behaviors[:len(s.behaviors)-1]
			return true
		}
	}
	return false
}

// AddTween schedules g to advance in scene time each Update until it is Done.
func (s *Scene) AddTween(g *TweenGroup) {
	if g == nil || g.Done {
		return
	}
	s.tweens = append(s.tweens, g)
}

// advanceTweens updates scheduled tweens and drops finished ones in place.
func (s *Scene) advanceTweens(dt float32) {
	kept := s.tweens[:0]
	for _, g := range s.tweens {
		g.Update(dt)
		if !g.Done {
			kept = append(kept, g)
		}
	}
	clear(s.tweens[len(kept):])
	s.tweens = kept
}

// SetEntityStore sets the optional ECS bridge.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.store = store
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, deep trees are reported on stderr, and press-feedback
// controllers panic when used from a goroutine other than their owner's.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply.
var globalDebug bool
