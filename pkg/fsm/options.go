package fsm

import (
	"fmt"
	"log/slog"
)

// Option configures a machine during construction.
type Option func(*options)

// TransitionDef describes a transition for bulk registration.
type TransitionDef struct {
	Name    string
	Sources []State
	Dest    State
}

type options struct {
	id     string
	logger *slog.Logger
	setup  []func(*Machine) error
}

// WithID overrides the generated machine identifier used in log records.
func WithID(id string) Option {
	return func(o *options) {
		o.id = id
	}
}

// WithLogger sets the logger. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithTransition registers a transition as if Set had been called.
func WithTransition(name string, sources []State, dest State) Option {
	return func(o *options) {
		o.setup = append(o.setup, func(m *Machine) error {
			return m.Set(name, sources, dest)
		})
	}
}

// WithTransitions registers several transitions in order.
func WithTransitions(defs []TransitionDef) Option {
	return func(o *options) {
		o.setup = append(o.setup, func(m *Machine) error {
			for i, d := range defs {
				if err := m.Set(d.Name, d.Sources, d.Dest); err != nil {
					return fmt.Errorf("failed to add transition[%d] %q: %w", i, d.Name, err)
				}
			}
			return nil
		})
	}
}

// WithListener registers l for state as if On had been called.
func WithListener(state State, l Listener) Option {
	return func(o *options) {
		o.setup = append(o.setup, func(m *Machine) error {
			m.On(state, l)
			return nil
		})
	}
}
