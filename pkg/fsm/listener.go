package fsm

import "reflect"

// Listener is notified every time a transition lands on the state it was
// registered for.
type Listener interface {
	OnTransition(m *Machine, from, to State)
}

// ListenerFunc adapts a plain function to the Listener interface.
// Func values are not comparable, so a ListenerFunc registered directly
// cannot be removed with Off. Use Listen to get a removable handle.
type ListenerFunc func(m *Machine, from, to State)

func (f ListenerFunc) OnTransition(m *Machine, from, to State) {
	f(m, from, to)
}

// funcListener gives a function pointer identity.
type funcListener struct {
	fn ListenerFunc
}

func (l *funcListener) OnTransition(m *Machine, from, to State) {
	l.fn(m, from, to)
}

// Listen wraps fn in a handle that can later be passed to Off.
// Each call returns a distinct handle, even for the same fn.
func Listen(fn func(m *Machine, from, to State)) Listener {
	return &funcListener{fn: fn}
}

// sameListener reports whether a and b are the same registration.
// Dynamic types that are not comparable never match instead of panicking.
func sameListener(a, b Listener) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}
