package preset

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/phanxgames/tactile"
)

// DefaultName is the preset used by the *Default convenience methods.
const DefaultName = "default"

var (
	// ErrPresetNotFound is returned when a store has no preset by that name.
	ErrPresetNotFound = errors.New("preset: not found")

	// ErrInvalidName is returned for names that cannot be used as a file name.
	ErrInvalidName = errors.New("preset: invalid name")
)

// Pose is a node's world position and rotation plus its local scale.
type Pose struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Rotation float64 `json:"rotation"`
	ScaleX   float64 `json:"scaleX"`
	ScaleY   float64 `json:"scaleY"`
}

// ObjectPose is the saved pose of one node, matched by name on load. World
// is nil in documents written by older tools; such entries are skipped.
type ObjectPose struct {
	Name  string `json:"name"`
	World *Pose  `json:"world"`
}

// Payload is a whole preset document.
type Payload struct {
	Name    string       `json:"name"`
	Objects []ObjectPose `json:"objects"`
}

// PoseOf reads n's current pose.
func PoseOf(n *tactile.Node) Pose {
	wp := n.WorldPosition()
	return Pose{
		X:        wp.X,
		Y:        wp.Y,
		Rotation: n.WorldRotation(),
		ScaleX:   n.ScaleX,
		ScaleY:   n.ScaleY,
	}
}

// ApplyTo moves n to the pose under its current parent.
func (p Pose) ApplyTo(n *tactile.Node) {
	n.SetWorldPosition(p.X, p.Y)
	n.SetWorldRotation(p.Rotation)
	n.SetScale(p.ScaleX, p.ScaleY)
}

// Encode writes the payload as indented JSON.
func Encode(p Payload) ([]byte, error) {
	if p.Objects == nil {
		p.Objects = []ObjectPose{}
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("preset: encode %q: %w", p.Name, err)
	}
	return data, nil
}

// Decode parses a payload.
func Decode(data []byte) (Payload, error) {
	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return Payload{}, fmt.Errorf("preset: decode: %w", err)
	}
	return p, nil
}

// ValidName reports whether name can be stored: non-empty, no path
// separators, not a dot name.
func ValidName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`)
}

func checkName(name string) error {
	if !ValidName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}
