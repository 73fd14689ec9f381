package tactile

import "testing"

func TestResolveTarget(t *testing.T) {
	tests := []struct {
		name  string
		build func() (root, want *Node)
		names []string
	}{
		{"priority order beats child order", func() (*Node, *Node) {
			root := NewContainer("btn")
			root.AddChild(NewSprite("Label", 1, 1))
			back := NewSprite("Backplate", 1, 1)
			root.AddChild(back)
			return root, back
		}, []string{"Frontplate", "Backplate"}},
		{"case insensitive", func() (*Node, *Node) {
			root := NewContainer("btn")
			face := NewContainer("FRONTPLATE")
			root.AddChild(face)
			return root, face
		}, DefaultTargetNames},
		{"nearest match wins", func() (*Node, *Node) {
			root := NewContainer("btn")
			deep := NewContainer("wrap")
			deep.AddChild(NewSprite("Icon", 1, 1))
			root.AddChild(deep)
			near := NewSprite("icon", 1, 1)
			root.AddChild(near)
			return root, near
		}, DefaultTargetNames},
		{"root itself is not a match", func() (*Node, *Node) {
			root := NewSprite("Frontplate", 1, 1)
			child := NewSprite("Label", 1, 1)
			root.AddChild(child)
			return root, child
		}, DefaultTargetNames},
		{"first graphic depth first", func() (*Node, *Node) {
			root := NewContainer("btn")
			wrap := NewContainer("wrap")
			art := NewSprite("art", 1, 1)
			wrap.AddChild(art)
			root.AddChild(wrap)
			root.AddChild(NewSprite("other", 1, 1))
			return root, art
		}, DefaultTargetNames},
		{"non-renderable is not graphic", func() (*Node, *Node) {
			root := NewContainer("btn")
			hidden := NewSprite("hidden", 1, 1)
			hidden.Renderable = false
			root.AddChild(hidden)
			shown := NewText("caption", "ok", nil)
			root.AddChild(shown)
			return root, shown
		}, DefaultTargetNames},
		{"falls back to root", func() (*Node, *Node) {
			root := NewSprite("btn", 1, 1)
			root.AddChild(NewContainer("empty"))
			return root, root
		}, DefaultTargetNames},
		{"empty name list", func() (*Node, *Node) {
			root := NewContainer("btn")
			face := NewSprite("Frontplate", 1, 1)
			root.AddChild(face)
			return root, face
		}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, want := tt.build()
			if got := ResolveTarget(root, tt.names); got != want {
				t.Errorf("ResolveTarget = %q, want %q", nodeName(got), nodeName(want))
			}
		})
	}
}

func TestResolveTargetNil(t *testing.T) {
	if ResolveTarget(nil, DefaultTargetNames) != nil {
		t.Error("nil root should resolve to nil")
	}
}
