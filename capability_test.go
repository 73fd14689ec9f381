package tactile

import (
	"testing"
)

type testComponent struct {
	Clicked Event
}

func registerTestCapability(t *testing.T, name string, probe ProbeFunc) {
	t.Helper()
	RegisterCapability(name, probe)
	t.Cleanup(func() { UnregisterCapability(name) })
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}

func TestRegisterCapabilityOrder(t *testing.T) {
	none := func(*Node) (Source, bool) { return nil, false }
	registerTestCapability(t, "test.first", none)
	registerTestCapability(t, "test.second", none)

	names := Capabilities()
	i, j := indexOf(names, "test.first"), indexOf(names, "test.second")
	if i < 0 || j < 0 || i > j {
		t.Errorf("Capabilities() = %v, want test.first before test.second", names)
	}
}

func TestRegisterCapabilityReplaces(t *testing.T) {
	registerTestCapability(t, "test.replace", func(*Node) (Source, bool) { return nil, false })
	before := len(Capabilities())

	RegisterCapability("test.replace", func(*Node) (Source, bool) { return SignalMap{}, true })
	if len(Capabilities()) != before {
		t.Error("re-registering should not add a name")
	}
	probe, ok := LookupCapability("test.replace")
	if !ok {
		t.Fatal("capability not found")
	}
	if _, found := probe(NewContainer("n")); !found {
		t.Error("probe was not replaced")
	}
}

func TestUnregisterCapability(t *testing.T) {
	RegisterCapability("test.gone", func(*Node) (Source, bool) { return nil, false })
	if !UnregisterCapability("test.gone") {
		t.Fatal("UnregisterCapability should report true")
	}
	if UnregisterCapability("test.gone") {
		t.Error("second UnregisterCapability should report false")
	}
	if _, ok := LookupCapability("test.gone"); ok {
		t.Error("capability still registered")
	}
}

func TestRegisterCapabilityNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	RegisterCapability("test.nil", nil)
}

func TestProbeComponent(t *testing.T) {
	probe := ProbeComponent(func(c *testComponent) Source {
		return SignalMap{"Clicked": &c.Clicked}
	})

	n := NewContainer("n")
	if _, ok := probe(n); ok {
		t.Error("probe found a component on a bare node")
	}

	c := &testComponent{}
	n.AddComponent(c)
	src, ok := probe(n)
	if !ok {
		t.Fatal("probe did not find the component")
	}
	sig, ok := src.Signal("Clicked")
	if !ok || sig != &c.Clicked {
		t.Errorf("Signal(Clicked) = %v, %v", sig, ok)
	}
}

func TestSignalMap(t *testing.T) {
	var e Event
	m := SignalMap{"a": &e, "nil": nil}
	if _, ok := m.Signal("a"); !ok {
		t.Error("a should exist")
	}
	if _, ok := m.Signal("nil"); ok {
		t.Error("nil entries should be absent")
	}
	if _, ok := m.Signal("missing"); ok {
		t.Error("missing should be absent")
	}
}
