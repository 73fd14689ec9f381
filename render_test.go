package tactile

import (
	"math"
	"testing"
)

func TestGeoMMatchesTransformPoint(t *testing.T) {
	n := NewSprite("s", 40, 20)
	n.SetPosition(100, 50)
	n.SetPivot(20, 10)
	n.SetScale(1.5, 0.5)
	n.SetRotation(math.Pi / 6)
	m := computeLocalTransform(n)
	g := geoM(m)

	for _, p := range [][2]float64{{0, 0}, {40, 20}, {20, 10}, {-3, 7}} {
		wx, wy := transformPoint(m, p[0], p[1])
		gx, gy := g.Apply(p[0], p[1])
		if !approxEqual(wx, gx) || !approxEqual(wy, gy) {
			t.Errorf("point %v: geoM = (%v, %v), transformPoint = (%v, %v)", p, gx, gy, wx, wy)
		}
	}
}

func TestCollectDrawables(t *testing.T) {
	root := NewContainer("root")
	a := NewSprite("a", 1, 1)
	hidden := NewContainer("hidden")
	hidden.Visible = false
	hiddenChild := NewSprite("hiddenChild", 1, 1)
	hidden.AddChild(hiddenChild)
	ghost := NewSprite("ghost", 1, 1)
	ghost.Renderable = false
	ghostChild := NewSprite("ghostChild", 1, 1)
	ghost.AddChild(ghostChild)
	b := NewText("b", "hi", nil)
	root.AddChild(a)
	root.AddChild(hidden)
	root.AddChild(ghost)
	root.AddChild(b)

	got := collectDrawables(root, nil)
	want := []*Node{a, ghostChild, b}
	if len(got) != len(want) {
		names := make([]string, len(got))
		for i, n := range got {
			names[i] = n.Name
		}
		t.Fatalf("drawables = %v", names)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("drawables[%d] = %q, want %q", i, got[i].Name, want[i].Name)
		}
	}
}

func TestCollectDrawablesSkipsDisposed(t *testing.T) {
	root := NewContainer("root")
	child := NewSprite("child", 1, 1)
	root.AddChild(child)
	child.Dispose()
	if got := collectDrawables(root, nil); len(got) != 0 {
		t.Errorf("disposed node drawn: %d", len(got))
	}
}

func TestSpriteSizeWithoutImage(t *testing.T) {
	n := NewSprite("s", 32, 8)
	img, sx, sy := spriteSize(n)
	if img != nil || sx != 32 || sy != 8 {
		t.Errorf("spriteSize = (%v, %v, %v), want (nil, 32, 8)", img, sx, sy)
	}
}
