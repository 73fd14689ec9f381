package tactile

import "sync"

// Source is an interaction source discovered on a node: anything offering
// press, release or click-like channels. Signal returns the channel registered
// under name, or false when the source has no such channel. Channels are
// expected to implement Signal or ArgSignal; anything else is ignored.
type Source interface {
	Signal(name string) (any, bool)
}

// ProbeFunc reports whether a node carries a capability and returns the
// source that exposes its channels.
type ProbeFunc func(n *Node) (Source, bool)

var (
	capabilitiesMu sync.RWMutex
	capabilities   []capability
)

type capability struct {
	name  string
	probe ProbeFunc
}

// RegisterCapability makes an optional interaction capability discoverable by
// name. Backend packages call it from init, so a program links a backend in
// with a blank import and the core never depends on it:
//
//	import _ "github.com/phanxgames/tactile/spatial"
//
// Registering an existing name replaces its probe.
func RegisterCapability(name string, probe ProbeFunc) {
	if probe == nil {
		panic("tactile: RegisterCapability probe is nil")
	}
	capabilitiesMu.Lock()
	defer capabilitiesMu.Unlock()
	for i := range capabilities {
		if capabilities[i].name == name {
			capabilities[i].probe = probe
			return
		}
	}
	capabilities = append(capabilities, capability{name: name, probe: probe})
}

// UnregisterCapability removes a capability. Returns false if it was unknown.
func UnregisterCapability(name string) bool {
	capabilitiesMu.Lock()
	defer capabilitiesMu.Unlock()
	for i := range capabilities {
		if capabilities[i].name == name {
			capabilities = append(capabilities[:i], capabilities[i+1:]...)
			return true
		}
	}
	return false
}

// Capabilities returns the registered capability names in registration order.
func Capabilities() []string {
	capabilitiesMu.RLock()
	defer capabilitiesMu.RUnlock()
	names := make([]string, len(capabilities))
	for i, c := range capabilities {
		names[i] = c.name
	}
	return names
}

// LookupCapability returns the probe registered under name.
func LookupCapability(name string) (ProbeFunc, bool) {
	capabilitiesMu.RLock()
	defer capabilitiesMu.RUnlock()
	for _, c := range capabilities {
		if c.name == name {
			return c.probe, true
		}
	}
	return nil, false
}

// ProbeComponent builds a ProbeFunc that finds the first component of type T
// on the node and adapts it to a Source with wrap.
func ProbeComponent[T any](wrap func(T) Source) ProbeFunc {
	return func(n *Node) (Source, bool) {
		c, ok := ComponentOf[T](n)
		if !ok {
			return nil, false
		}
		src := wrap(c)
		return src, src != nil
	}
}

// SignalMap is a Source backed by a fixed name-to-channel map.
type SignalMap map[string]any

// Signal implements Source.
func (m SignalMap) Signal(name string) (any, bool) {
	ch, ok := m[name]
	return ch, ok && ch != nil
}
