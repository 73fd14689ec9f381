package tactile

import (
	"errors"
	"testing"
)

func TestEventSubscribeEmit(t *testing.T) {
	var e Event
	var order []int
	if _, err := e.Subscribe(func() { order = append(order, 1) }); err != nil {
		t.Fatal(err)
	}
	if _, err := e.Subscribe(func() { order = append(order, 2) }); err != nil {
		t.Fatal(err)
	}
	e.Emit()
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("order = %v, want [1 2]", order)
	}
	if e.Len() != 2 {
		t.Errorf("Len = %d, want 2", e.Len())
	}
}

func TestEventSubscribeNil(t *testing.T) {
	var e Event
	if _, err := e.Subscribe(nil); err == nil {
		t.Error("Subscribe(nil) should fail")
	}
	if e.Len() != 0 {
		t.Errorf("Len = %d, want 0", e.Len())
	}
}

func TestUnsubscribeTwice(t *testing.T) {
	var e Event
	calls := 0
	unsub, _ := e.Subscribe(func() { calls++ })

	if err := unsub(); err != nil {
		t.Fatalf("first unsubscribe: %v", err)
	}
	if err := unsub(); !errors.Is(err, ErrNotSubscribed) {
		t.Errorf("second unsubscribe = %v, want ErrNotSubscribed", err)
	}
	e.Emit()
	if calls != 0 {
		t.Errorf("calls = %d after unsubscribe", calls)
	}
}

func TestUnsubscribeDuringEmit(t *testing.T) {
	var e Event
	var unsubA Unsubscribe
	var a, b int
	unsubA, _ = e.Subscribe(func() {
		a++
		_ = unsubA()
	})
	_, _ = e.Subscribe(func() { b++ })

	e.Emit()
	e.Emit()
	if a != 1 || b != 2 {
		t.Errorf("a=%d b=%d, want a=1 b=2", a, b)
	}
}

func TestEventOfListenAndSubscribeArg(t *testing.T) {
	var e EventOf[string]
	var typed string
	var erased any
	e.Listen(func(s string) { typed = s })
	unsub, err := e.SubscribeArg(func(v any) { erased = v })
	if err != nil {
		t.Fatal(err)
	}

	e.Emit("hello")
	if typed != "hello" || erased != "hello" {
		t.Errorf("typed=%q erased=%v", typed, erased)
	}

	_ = unsub()
	if e.Len() != 1 {
		t.Errorf("Len = %d, want 1", e.Len())
	}
	if _, err := e.SubscribeArg(nil); err == nil {
		t.Error("SubscribeArg(nil) should fail")
	}
}

func TestSignalInterfaces(t *testing.T) {
	var _ Signal = &Event{}
	var _ ArgSignal = &EventOf[int]{}
	var _ ArgSignal = &EventOf[struct{ X float64 }]{}
}

func TestEventClear(t *testing.T) {
	var e Event
	calls := 0
	unsub, _ := e.Subscribe(func() { calls++ })
	e.Clear()
	e.Emit()
	if calls != 0 || e.Len() != 0 {
		t.Errorf("calls = %d, Len = %d after Clear", calls, e.Len())
	}
	if err := unsub(); !errors.Is(err, ErrNotSubscribed) {
		t.Errorf("unsubscribe after Clear = %v, want ErrNotSubscribed", err)
	}

	var typed EventOf[int]
	typedUnsub := typed.Listen(func(int) { calls++ })
	typed.Clear()
	typed.Emit(1)
	if calls != 0 {
		t.Error("typed listener ran after Clear")
	}
	if err := typedUnsub(); !errors.Is(err, ErrNotSubscribed) {
		t.Errorf("typed unsubscribe after Clear = %v", err)
	}
}
