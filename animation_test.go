package tactile

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenPositionReachesExactTarget(t *testing.T) {
	n := NewContainer("n")
	g := TweenPosition(n, 100.1, -33.3, 0.5, ease.InOutQuad)

	g.Update(0.25)
	if g.Done {
		t.Fatal("done too early")
	}
	if n.X <= 0 || n.X >= 100.1 {
		t.Errorf("mid X = %v", n.X)
	}
	if !n.transformDirty {
		t.Error("tween should mark the node dirty")
	}

	g.Update(0.5)
	if !g.Done || n.X != 100.1 || n.Y != -33.3 {
		t.Errorf("X=%v Y=%v Done=%v", n.X, n.Y, g.Done)
	}
	g.Update(1) // no-op once done
	if n.X != 100.1 {
		t.Error("finished tween wrote again")
	}
}

func TestTweenConstructors(t *testing.T) {
	tests := []struct {
		name  string
		make  func(n *Node) *TweenGroup
		check func(n *Node) bool
	}{
		{"scale", func(n *Node) *TweenGroup { return TweenScale(n, 2, 3, 0.1, nil) },
			func(n *Node) bool { return n.ScaleX == 2 && n.ScaleY == 3 }},
		{"rotation", func(n *Node) *TweenGroup { return TweenRotation(n, 1.5, 0.1, ease.OutCubic) },
			func(n *Node) bool { return n.Rotation == 1.5 }},
		{"transform", func(n *Node) *TweenGroup {
			return TweenTransform(n, Vec2{5, 6}, 0.7, Vec2{0.5, 0.25}, 0.1, ease.Linear)
		}, func(n *Node) bool {
			return n.X == 5 && n.Y == 6 && n.Rotation == 0.7 && n.ScaleX == 0.5 && n.ScaleY == 0.25
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewContainer("n")
			g := tt.make(n)
			g.Update(0.2)
			if !g.Done || !tt.check(n) {
				t.Errorf("node = %+v, done = %v", *n, g.Done)
			}
		})
	}
}

func TestTweenStopsOnDisposedNode(t *testing.T) {
	n := NewContainer("n")
	g := TweenPosition(n, 100, 100, 1, nil)
	n.Dispose()
	g.Update(0.5)
	if !g.Done {
		t.Error("tween on disposed node should be done")
	}
	if n.X != 0 {
		t.Error("tween wrote to a disposed node")
	}
}
