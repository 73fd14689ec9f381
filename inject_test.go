package tactile

import "testing"

func TestInjectQueue(t *testing.T) {
	s := newTestScene()
	s.InjectPress(1, 1)
	s.InjectRelease(1, 1)
	s.InjectClick(2, 2)
	if got := s.PendingInjections(); got != 4 {
		t.Fatalf("PendingInjections = %d, want 4", got)
	}

	// One event per frame.
	for want := 3; want >= 0; want-- {
		stepFrames(t, s, 1)
		if got := s.PendingInjections(); got != want {
			t.Errorf("PendingInjections = %d, want %d", got, want)
		}
	}
}

func TestInjectClickFiresOnce(t *testing.T) {
	s := newTestScene()
	n := NewSprite("n", 20, 20)
	n.Interactable = true
	s.Root().AddChild(n)

	clicks := 0
	n.OnClick = func(ClickContext) { clicks++ }

	s.InjectClick(5, 5)
	stepFrames(t, s, 1)
	if clicks != 0 {
		t.Error("click should fire on the release frame")
	}
	stepFrames(t, s, 5)
	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
}

func TestInjectMissesEmptySpace(t *testing.T) {
	s := newTestScene()
	downs := 0
	s.OnPointerDown(func(ctx PointerContext) {
		downs++
		if ctx.Node != nil {
			t.Errorf("expected no node, got %q", ctx.Node.Name)
		}
	})
	s.InjectClick(5, 5)
	stepFrames(t, s, 2)
	if downs != 1 {
		t.Errorf("downs = %d, want 1", downs)
	}
}
