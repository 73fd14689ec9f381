package tactile

import "errors"

// ErrNotSubscribed is returned by an Unsubscribe that has already run.
var ErrNotSubscribed = errors.New("tactile: listener not subscribed")

// Unsubscribe removes a previously added listener. It returns
// ErrNotSubscribed when called more than once.
type Unsubscribe func() error

// Signal is a zero-argument channel that can be subscribed to.
type Signal interface {
	Subscribe(fn func()) (Unsubscribe, error)
}

// ArgSignal is a one-argument channel whose payload type is erased. Any
// EventOf[T] satisfies it, whatever T is.
type ArgSignal interface {
	SubscribeArg(fn func(any)) (Unsubscribe, error)
}

type listener[T any] struct {
	id uint32
	fn func(T)
}

// registry is the id-keyed listener list shared by Event and EventOf.
type registry[T any] struct {
	listeners []listener[T]
	nextID    uint32
}

func (r *registry[T]) add(fn func(T)) Unsubscribe {
	r.nextID++
	id := r.nextID
	r.listeners = append(r.listeners, listener[T]{id: id, fn: fn})
	return func() error {
		return r.remove(id)
	}
}

// remove deletes the entry from the slice to avoid nil iteration waste.
func (r *registry[T]) remove(id uint32) error {
	for i := range r.listeners {
		if r.listeners[i].id == id {
			copy(r.listeners[i:], r.listeners[i+1:])
			r.listeners[len(r.listeners)-1] = listener[T]{}
			r.listeners = r.listeners[:len(r.listeners)-1]
			return nil
		}
	}
	return ErrNotSubscribed
}

// clear drops every listener; their Unsubscribe funcs then report
// ErrNotSubscribed.
func (r *registry[T]) clear() {
	clear(r.listeners)
	r.listeners = r.listeners[:0]
}

// emit calls listeners in subscription order. The list is snapshotted first
// so a listener may unsubscribe itself or others while the event fires.
func (r *registry[T]) emit(v T) {
	switch len(r.listeners) {
	case 0:
		return
	case 1:
		r.listeners[0].fn(v)
		return
	}
	snapshot := make([]listener[T], len(r.listeners))
	copy(snapshot, r.listeners)
	for _, l := range snapshot {
		l.fn(v)
	}
}

// Event is a multi-listener zero-argument event.
// The zero value is ready to use.
type Event struct {
	reg registry[struct{}]
}

// Subscribe adds fn. It never fails; the error return satisfies Signal.
func (e *Event) Subscribe(fn func()) (Unsubscribe, error) {
	if fn == nil {
		return nil, errors.New("tactile: nil listener")
	}
	return e.reg.add(func(struct{}) { fn() }), nil
}

// Emit calls every listener.
func (e *Event) Emit() {
	e.reg.emit(struct{}{})
}

// Clear removes every listener.
func (e *Event) Clear() {
	e.reg.clear()
}

// Len returns the number of subscribed listeners.
func (e *Event) Len() int {
	return len(e.reg.listeners)
}

// EventOf is a multi-listener event carrying a payload of type T.
// The zero value is ready to use.
type EventOf[T any] struct {
	reg registry[T]
}

// Listen adds a typed listener.
func (e *EventOf[T]) Listen(fn func(T)) Unsubscribe {
	return e.reg.add(fn)
}

// SubscribeArg adds a listener that receives the payload as any.
func (e *EventOf[T]) SubscribeArg(fn func(any)) (Unsubscribe, error) {
	if fn == nil {
		return nil, errors.New("tactile: nil listener")
	}
	return e.reg.add(func(v T) { fn(v) }), nil
}

// Emit calls every listener with v.
func (e *EventOf[T]) Emit(v T) {
	e.reg.emit(v)
}

// Clear removes every listener.
func (e *EventOf[T]) Clear() {
	e.reg.clear()
}

// Len returns the number of subscribed listeners.
func (e *EventOf[T]) Len() int {
	return len(e.reg.listeners)
}
