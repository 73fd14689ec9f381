package tactile

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"
)

// Press feedback defaults and bounds.
const (
	DefaultPressedScale = 0.94
	DefaultStepDuration = 0.06

	MinPressedScale = 0.6
	MaxPressedScale = 1.0
	MinStepDuration = 0.01
	MaxStepDuration = 0.25
)

// PressConfig configures a PressFeedback.
type PressConfig struct {
	// Target is the node to scale. When nil the target is resolved from the
	// controller's node.
	Target *Node

	// DisableAutoTarget makes a nil Target fall back to the controller's own
	// node instead of searching its subtree.
	DisableAutoTarget bool

	// TargetNames overrides DefaultTargetNames for the subtree search.
	TargetNames []string

	// PressedScale is the fraction of the resting scale held while pressed.
	// Zero means DefaultPressedScale; other values are clamped to
	// [MinPressedScale, MaxPressedScale].
	PressedScale float64

	// StepDuration is the length in seconds of one ease. Zero means
	// DefaultStepDuration; other values are clamped to
	// [MinStepDuration, MaxStepDuration].
	StepDuration float64

	// Ease maps progress to interpolation weight. Nil means linear.
	Ease ease.TweenFunc

	// Capabilities restricts which registered capabilities are probed. Nil
	// probes all of them; an empty non-nil slice probes none.
	Capabilities []string
}

func (c PressConfig) normalized() PressConfig {
	if c.PressedScale == 0 || !finite(c.PressedScale) {
		c.PressedScale = DefaultPressedScale
	}
	c.PressedScale = clamp(c.PressedScale, MinPressedScale, MaxPressedScale)
	if c.StepDuration == 0 || !finite(c.StepDuration) {
		c.StepDuration = DefaultStepDuration
	}
	c.StepDuration = clamp(c.StepDuration, MinStepDuration, MaxStepDuration)
	if c.TargetNames == nil {
		c.TargetNames = DefaultTargetNames
	}
	return c
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

var easeByName = map[string]ease.TweenFunc{
	"linear":     ease.Linear,
	"inQuad":     ease.InQuad,
	"outQuad":    ease.OutQuad,
	"inOutQuad":  ease.InOutQuad,
	"inCubic":    ease.InCubic,
	"outCubic":   ease.OutCubic,
	"inOutCubic": ease.InOutCubic,
	"inSine":     ease.InSine,
	"outSine":    ease.OutSine,
	"inOutSine":  ease.InOutSine,
	"inBack":     ease.InBack,
	"outBack":    ease.OutBack,
	"inOutBack":  ease.InOutBack,
	"outBounce":  ease.OutBounce,
	"outElastic": ease.OutElastic,
}

// easeByLowerName indexes easeByName by lowercased name.
var easeByLowerName = func() map[string]ease.TweenFunc {
	m := make(map[string]ease.TweenFunc, len(easeByName))
	for k, fn := range easeByName {
		m[strings.ToLower(k)] = fn
	}
	return m
}()

// EaseByName returns the easing curve registered under name. Lookup is
// case-insensitive; the empty name is linear.
func EaseByName(name string) (ease.TweenFunc, bool) {
	if name == "" {
		return ease.Linear, true
	}
	fn, ok := easeByLowerName[strings.ToLower(name)]
	return fn, ok
}

// EaseNames returns the names accepted by EaseByName, sorted.
func EaseNames() []string {
	names := make([]string, 0, len(easeByName))
	for k := range easeByName {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// pressConfigFile is the YAML form of PressConfig.
type pressConfigFile struct {
	PressedScale float64  `yaml:"pressedScale"`
	StepDuration float64  `yaml:"stepDuration"`
	Ease         string   `yaml:"ease"`
	AutoTarget   *bool    `yaml:"autoTarget"`
	TargetNames  []string `yaml:"targetNames"`
	Capabilities []string `yaml:"capabilities"`
}

// LoadPressConfig parses a YAML press configuration:
//
//	pressedScale: 0.9
//	stepDuration: 0.08
//	ease: outQuad
//	autoTarget: true
//	targetNames: [Face, Label]
//	capabilities: [spatial.Interactable]
//
// Every key is optional. The result is normalized.
func LoadPressConfig(data []byte) (PressConfig, error) {
	var f pressConfigFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return PressConfig{}, fmt.Errorf("tactile: press config: %w", err)
	}
	fn, ok := EaseByName(f.Ease)
	if !ok {
		return PressConfig{}, fmt.Errorf("tactile: press config: unknown ease %q", f.Ease)
	}
	cfg := PressConfig{
		PressedScale: f.PressedScale,
		StepDuration: f.StepDuration,
		Ease:         fn,
		TargetNames:  f.TargetNames,
		Capabilities: f.Capabilities,
	}
	if f.AutoTarget != nil {
		cfg.DisableAutoTarget = !*f.AutoTarget
	}
	return cfg.normalized(), nil
}
