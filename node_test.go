package tactile

import "testing"

// --- Constructor defaults ---

func TestNewContainerDefaults(t *testing.T) {
	n := NewContainer("test")
	assertNodeDefaults(t, n, "test", NodeTypeContainer)
	if n.IsGraphic() {
		t.Error("containers are never graphic")
	}
}

func TestNewSpriteDefaults(t *testing.T) {
	n := NewSprite("spr", 32, 16)
	assertNodeDefaults(t, n, "spr", NodeTypeSprite)
	if n.Width != 32 || n.Height != 16 {
		t.Errorf("size = (%v, %v), want (32, 16)", n.Width, n.Height)
	}
	if !n.IsGraphic() {
		t.Error("sprite should be graphic")
	}
	n.Renderable = false
	if n.IsGraphic() {
		t.Error("non-renderable sprite should not be graphic")
	}
}

func TestNewTextDefaults(t *testing.T) {
	n := NewText("text", "hello", nil)
	assertNodeDefaults(t, n, "text", NodeTypeText)
	if n.Content != "hello" {
		t.Errorf("Content = %q", n.Content)
	}
	if !n.IsGraphic() {
		t.Error("text should be graphic")
	}
}

func assertNodeDefaults(t *testing.T, n *Node, name string, typ NodeType) {
	t.Helper()
	if n.ID == 0 {
		t.Error("ID should be non-zero")
	}
	if n.Name != name {
		t.Errorf("Name = %q, want %q", n.Name, name)
	}
	if n.Type != typ {
		t.Errorf("Type = %d, want %d", n.Type, typ)
	}
	if n.ScaleX != 1 || n.ScaleY != 1 {
		t.Errorf("Scale = (%v, %v), want (1, 1)", n.ScaleX, n.ScaleY)
	}
	if n.Scale() != (Vec2{1, 1}) {
		t.Errorf("Scale() = %v", n.Scale())
	}
	if !n.Visible || !n.Renderable {
		t.Error("Visible and Renderable should default to true")
	}
	if n.Interactable {
		t.Error("Interactable should default to false")
	}
	if n.Color != ColorWhite {
		t.Errorf("Color = %v, want white", n.Color)
	}
}

func TestNodeIDsUnique(t *testing.T) {
	a, b := NewContainer("a"), NewContainer("b")
	if a.ID == b.ID {
		t.Error("IDs should be unique")
	}
}

// --- Tree manipulation ---

func TestAddChild(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	parent.AddChild(child)

	if child.Parent != parent {
		t.Error("child.Parent not set")
	}
	if parent.NumChildren() != 1 || parent.ChildAt(0) != child {
		t.Error("child not in parent's list")
	}
}

func TestAddChildReparents(t *testing.T) {
	a := NewContainer("a")
	b := NewContainer("b")
	child := NewContainer("child")
	a.AddChild(child)
	b.AddChild(child)

	if a.NumChildren() != 0 {
		t.Errorf("old parent still has %d children", a.NumChildren())
	}
	if child.Parent != b {
		t.Error("child should belong to b")
	}
}

func TestAddChildCyclePanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"self", func() {
			n := NewContainer("n")
			n.AddChild(n)
		}},
		{"ancestor", func() {
			a := NewContainer("a")
			b := NewContainer("b")
			a.AddChild(b)
			b.AddChild(a)
		}},
		{"nil", func() { NewContainer("n").AddChild(nil) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tt.fn()
		})
	}
}

func TestAddChildAt(t *testing.T) {
	p := NewContainer("p")
	a, b, c := NewContainer("a"), NewContainer("b"), NewContainer("c")
	p.AddChild(a)
	p.AddChild(c)
	p.AddChildAt(b, 1)

	want := []*Node{a, b, c}
	for i, w := range want {
		if p.ChildAt(i) != w {
			t.Errorf("child %d = %q, want %q", i, p.ChildAt(i).Name, w.Name)
		}
	}
}

func TestRemoveChild(t *testing.T) {
	p := NewContainer("p")
	c := NewContainer("c")
	p.AddChild(c)
	p.RemoveChild(c)

	if c.Parent != nil || p.NumChildren() != 0 {
		t.Error("child not removed")
	}

	defer func() {
		if recover() == nil {
			t.Error("removing a non-child should panic")
		}
	}()
	p.RemoveChild(c)
}

func TestRemoveFromParentAndChildren(t *testing.T) {
	p := NewContainer("p")
	a, b := NewContainer("a"), NewContainer("b")
	p.AddChild(a)
	p.AddChild(b)

	a.RemoveFromParent()
	a.RemoveFromParent() // no-op
	if p.NumChildren() != 1 {
		t.Errorf("NumChildren = %d, want 1", p.NumChildren())
	}

	p.RemoveChildren()
	if p.NumChildren() != 0 || b.Parent != nil {
		t.Error("RemoveChildren did not detach")
	}
	if b.IsDisposed() {
		t.Error("RemoveChildren should not dispose")
	}
}

func TestWalk(t *testing.T) {
	root := NewContainer("root")
	a := NewContainer("a")
	a1 := NewContainer("a1")
	b := NewContainer("b")
	root.AddChild(a)
	a.AddChild(a1)
	root.AddChild(b)

	var names []string
	root.Walk(func(n *Node) bool {
		names = append(names, n.Name)
		return true
	})
	want := "root a a1 b"
	got := ""
	for i, n := range names {
		if i > 0 {
			got += " "
		}
		got += n
	}
	if got != want {
		t.Errorf("walk order = %q, want %q", got, want)
	}

	visited := 0
	completed := root.Walk(func(n *Node) bool {
		visited++
		return n != a
	})
	if completed || visited != 2 {
		t.Errorf("stopped walk: completed=%v visited=%d", completed, visited)
	}
}

func TestDispose(t *testing.T) {
	p := NewContainer("p")
	c := NewSprite("c", 1, 1)
	gc := NewSprite("gc", 1, 1)
	p.AddChild(c)
	c.AddChild(gc)
	c.AddComponent(&testComponent{})
	c.OnClick = func(ClickContext) {}

	c.Dispose()
	c.Dispose() // idempotent

	if !c.IsDisposed() || !gc.IsDisposed() {
		t.Error("subtree not disposed")
	}
	if p.NumChildren() != 0 {
		t.Error("disposed node still attached")
	}
	if len(c.Components()) != 0 || c.OnClick != nil {
		t.Error("dispose should clear components and callbacks")
	}
}

// --- Components ---

type namer interface{ name() string }

type namedComponent struct{ n string }

func (c *namedComponent) name() string { return c.n }

func TestComponents(t *testing.T) {
	n := NewContainer("n")
	first := &namedComponent{"first"}
	second := &namedComponent{"second"}
	n.AddComponent(first)
	n.AddComponent(second)
	n.AddComponent(nil)

	if len(n.Components()) != 2 {
		t.Fatalf("Components len = %d, want 2", len(n.Components()))
	}
	got, ok := ComponentOf[*namedComponent](n)
	if !ok || got != first {
		t.Error("ComponentOf should return the first match")
	}
	iface, ok := ComponentOf[namer](n)
	if !ok || iface.name() != "first" {
		t.Error("ComponentOf should match interfaces")
	}
	if _, ok := ComponentOf[*Button](n); ok {
		t.Error("unexpected Button")
	}
	if _, ok := ComponentOf[*Button](nil); ok {
		t.Error("nil node has no components")
	}

	if !n.RemoveComponent(first) || n.RemoveComponent(first) {
		t.Error("RemoveComponent should succeed once")
	}
	got, _ = ComponentOf[*namedComponent](n)
	if got != second {
		t.Error("second component should remain")
	}
}

func TestAddPointerListenerRejectsClick(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	NewContainer("n").AddPointerListener(EventClick, func(PointerContext) {})
}
