package tactile

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const maxTweenFields = 5

// TweenGroup animates up to five float64 transform fields on a Node
// simultaneously. Create one via the convenience constructors (TweenPosition,
// TweenScale, TweenRotation, TweenTransform) and either call Update(dt) each
// frame or hand it to Scene.AddTween. The group auto-applies values and marks
// the node dirty. If the target node is disposed, the group stops immediately.
//
// On completion every field is written with its exact float64 target, so
// float32 tween arithmetic never leaves residue.
type TweenGroup struct {
	tweens  [maxTweenFields]*gween.Tween
	fields  [maxTweenFields]*float64
	targets [maxTweenFields]float64
	count   int
	target  *Node
	Done    bool
}

func (g *TweenGroup) add(field *float64, to float64, duration float32, fn ease.TweenFunc) {
	if fn == nil {
		fn = ease.Linear
	}
	g.tweens[g.count] = gween.New(float32(*field), float32(to), duration, fn)
	g.fields[g.count] = field
	g.targets[g.count] = to
	g.count++
}

// Update advances all tweens by dt seconds, writes values to the target fields,
// and marks the node dirty. If the target node has been disposed, Done is set
// to true and no writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	if allDone {
		for i := 0; i < g.count; i++ {
			*g.fields[i] = g.targets[i]
		}
	}
	g.Done = allDone

	if g.target != nil {
		g.target.MarkDirty()
	}
}

// TweenPosition creates a TweenGroup that animates node.X and node.Y to the
// given target coordinates over the specified duration using the easing function.
func TweenPosition(node *Node, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: node}
	g.add(&node.X, toX, duration, fn)
	g.add(&node.Y, toY, duration, fn)
	return g
}

// TweenScale creates a TweenGroup that animates node.ScaleX and node.ScaleY.
func TweenScale(node *Node, toSX, toSY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: node}
	g.add(&node.ScaleX, toSX, duration, fn)
	g.add(&node.ScaleY, toSY, duration, fn)
	return g
}

// TweenRotation creates a TweenGroup that animates node.Rotation.
func TweenRotation(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: node}
	g.add(&node.Rotation, to, duration, fn)
	return g
}

// TweenTransform creates a TweenGroup that animates the node's local position,
// rotation and scale together.
func TweenTransform(node *Node, pos Vec2, rotation float64, scale Vec2, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: node}
	g.add(&node.X, pos.X, duration, fn)
	g.add(&node.Y, pos.Y, duration, fn)
	g.add(&node.Rotation, rotation, duration, fn)
	g.add(&node.ScaleX, scale.X, duration, fn)
	g.add(&node.ScaleY, scale.Y, duration, fn)
	return g
}
