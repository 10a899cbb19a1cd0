// Package fsm provides a minimal finite-state-machine primitive: a current
// state, a registry of named transitions, and listeners keyed by the state a
// transition lands on.
//
// A transition maps a set of permitted source states to a single destination.
// A source list containing Wildcard ("*") makes the transition legal from any
// state; the explicit sources next to it are discarded.
//
// # Usage
//
//	import "github.com/dmitrymomot/minifsm/pkg/fsm"
//
//	m := fsm.MustNew("idle",
//	    fsm.WithTransition("start", []fsm.State{"idle"}, "running"),
//	    fsm.WithTransition("stop", []fsm.State{"running"}, "idle"),
//	)
//
//	m.OnFunc("running", func(m *fsm.Machine, from, to fsm.State) {
//	    log.Printf("%s -> %s", from, to)
//	})
//
//	if m.Can("start") {
//	    _ = m.Move("start")
//	}
//
// # Listeners
//
// Listeners are bound to a destination state, not to a transition name, and
// run synchronously inside Move in registration order. Move takes a snapshot
// of the listener list before dispatch: On and Off called from a listener
// apply to later landings. A listener may call Move itself; the nested
// transition happens immediately.
//
// Go function values cannot be compared, so Off identifies listeners by the
// handle returned from Listen or OnFunc (or by any comparable Listener
// implementation).
//
// # Error Handling
//
// Set and Move return *RangeError for misuse. Inspect it with the helpers:
//
//	if fsm.IsUnknownTransitionError(err) { /* ... */ }
//	if fsm.IsIllegalTransitionError(err) { /* ... */ }
//	if fsm.IsTransitionExistsError(err)  { /* ... */ }
//
// Can never fails and Off ignores listeners that are not registered.
//
// # Definitions
//
// Machines can be described in YAML and built with LoadDefinition or
// ParseDefinition followed by Definition.Build.
//
// # Concurrency
//
// A Machine performs no locking. Listeners may re-enter the machine, which
// a mutex would turn into a deadlock, so callers sharing a Machine between
// goroutines serialize access themselves.
package fsm
