package tactile

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func newAnimator(curve ease.TweenFunc) (*scaleAnimator, *Node) {
	n := NewSprite("face", 10, 10)
	return &scaleAnimator{target: n, curve: curve}, n
}

func TestScaleRunSnapsExactly(t *testing.T) {
	a, n := newAnimator(ease.InOutSine)
	a.start(Vec2{0.94, 0.94}, 0.06)

	for i := 0; i < 5; i++ {
		a.tick(1.0 / 60)
	}
	if n.ScaleX != 0.94 || n.ScaleY != 0.94 {
		t.Errorf("scale = (%v, %v), want exactly 0.94", n.ScaleX, n.ScaleY)
	}
	if a.running() {
		t.Error("run should be idle")
	}
}

func TestScaleRunInterpolates(t *testing.T) {
	a, n := newAnimator(nil)
	a.start(Vec2{0.5, 0.5}, 0.1)
	if n.ScaleX != 1 {
		t.Error("start should not write")
	}
	a.tick(0.05)
	if !approxEqual(n.ScaleX, 0.75) {
		t.Errorf("linear midpoint = %v, want 0.75", n.ScaleX)
	}

	b, m := newAnimator(ease.InQuad)
	b.start(Vec2{0.5, 0.5}, 0.1)
	b.tick(0.05)
	if !approxEqual(m.ScaleX, 0.875) {
		t.Errorf("inQuad midpoint = %v, want 0.875", m.ScaleX)
	}
}

func TestScaleRunNonPositiveDurationSnaps(t *testing.T) {
	for _, d := range []float64{0, -1, math.NaN()} {
		a, n := newAnimator(nil)
		a.start(Vec2{0.9, 0.8}, d)
		if n.ScaleX != 0.9 || n.ScaleY != 0.8 {
			t.Errorf("d=%v: scale = (%v, %v)", d, n.ScaleX, n.ScaleY)
		}
		if a.running() {
			t.Errorf("d=%v: no frames should be scheduled", d)
		}
		a.tick(1)
		if n.ScaleX != 0.9 {
			t.Errorf("d=%v: tick after snap changed scale", d)
		}
	}
}

func TestScaleRunRestartFromMidFlight(t *testing.T) {
	a, n := newAnimator(nil)
	a.start(Vec2{0.94, 0.94}, 0.06)
	a.tick(0.03)
	if !approxEqual(n.ScaleX, 0.97) {
		t.Fatalf("midpoint = %v, want 0.97", n.ScaleX)
	}

	a.start(Vec2{1, 1}, 0.06)
	if !approxEqual(a.run.from.X, 0.97) {
		t.Errorf("restart from = %v, want 0.97", a.run.from.X)
	}
	a.tick(0.03)
	if !approxEqual(n.ScaleX, 0.985) {
		t.Errorf("after restart tick = %v, want 0.985", n.ScaleX)
	}
	a.tick(0.03)
	if n.ScaleX != 1 || a.running() {
		t.Errorf("scale = %v running = %v", n.ScaleX, a.running())
	}
}

func TestScaleRunOvershootIsNotClamped(t *testing.T) {
	a, n := newAnimator(ease.OutBack)
	a.start(Vec2{0.5, 0.5}, 1)
	a.tick(0.8)
	if n.ScaleX >= 0.5 {
		t.Errorf("outBack at 0.8 = %v, want below 0.5", n.ScaleX)
	}
	a.tick(0.2)
	if n.ScaleX != 0.5 {
		t.Errorf("final = %v, want 0.5", n.ScaleX)
	}
}

func TestPulseLegs(t *testing.T) {
	a, n := newAnimator(nil)
	a.startPulse(Vec2{0.9, 0.9}, Vec2{1, 1}, 0.1)

	a.tick(0.05)
	if !approxEqual(n.ScaleX, 0.95) {
		t.Errorf("leg one midpoint = %v, want 0.95", n.ScaleX)
	}
	a.tick(0.05)
	if n.ScaleX != 0.9 {
		t.Errorf("leg one end = %v, want 0.9", n.ScaleX)
	}
	if !a.running() {
		t.Fatal("leg two should be scheduled")
	}
	if a.run.from.X != 0.9 {
		t.Errorf("leg two starts from %v, want 0.9", a.run.from.X)
	}
	a.tick(0.05)
	if !approxEqual(n.ScaleX, 0.95) {
		t.Errorf("leg two midpoint = %v, want 0.95", n.ScaleX)
	}
	a.tick(0.05)
	if n.ScaleX != 1 || a.running() {
		t.Errorf("pulse end = %v running = %v", n.ScaleX, a.running())
	}
}

func TestPulseZeroDuration(t *testing.T) {
	a, n := newAnimator(nil)
	a.startPulse(Vec2{0.9, 0.9}, Vec2{1, 1}, 0)
	if n.ScaleX != 1 || a.running() {
		t.Errorf("scale = %v running = %v", n.ScaleX, a.running())
	}
}

func TestStartCancelsPendingPulseLeg(t *testing.T) {
	a, n := newAnimator(nil)
	a.startPulse(Vec2{0.9, 0.9}, Vec2{1, 1}, 0.1)
	a.tick(0.05)
	a.start(Vec2{0.8, 0.8}, 0.1)
	a.tick(0.2)
	if n.ScaleX != 0.8 || a.running() {
		t.Errorf("scale = %v running = %v, pending leg should be dropped", n.ScaleX, a.running())
	}
}

func TestScaleRunDisposedTarget(t *testing.T) {
	a, n := newAnimator(nil)
	a.start(Vec2{0.5, 0.5}, 0.1)
	n.Dispose()
	a.tick(0.05)
	if a.running() {
		t.Error("run should stop on a disposed target")
	}
	if n.ScaleX != 1 {
		t.Error("disposed target was written")
	}
}

func TestScaleRunNilTarget(t *testing.T) {
	a := &scaleAnimator{}
	a.start(Vec2{0.5, 0.5}, 0.1)
	a.startPulse(Vec2{0.5, 0.5}, Vec2{1, 1}, 0.1)
	a.tick(0.05)
	if a.running() {
		t.Error("nil target should never run")
	}
}

func TestScaleRunNonUniform(t *testing.T) {
	a, n := newAnimator(nil)
	n.SetScale(2, 4)
	a.start(Vec2{1, 2}, 0.1)
	a.tick(0.05)
	if !approxEqual(n.ScaleX, 1.5) || !approxEqual(n.ScaleY, 3) {
		t.Errorf("scale = (%v, %v), want (1.5, 3)", n.ScaleX, n.ScaleY)
	}
	if math.IsNaN(n.ScaleX) {
		t.Error("NaN scale")
	}
}
