package fsm

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrTransitionExists  = errors.New("transition already exists")
	ErrUnknownTransition = errors.New("unknown transition")
	ErrIllegalTransition = errors.New("transition not permitted from current state")
	ErrEmptyName         = errors.New("transition name cannot be empty")
	ErrInvalidDefinition = errors.New("invalid machine definition")
)

// RangeError reports a transition name or state that is outside the range
// of what the machine currently accepts. It is the only error kind returned
// by Set and Move; the wrapped sentinel tells the cases apart.
type RangeError struct {
	Op         string
	Transition string
	Expected   []State // sources of the transition, for illegal moves
	Actual     State   // current state at the time of the call
	Err        error
}

func (e *RangeError) Error() string {
	switch {
	case errors.Is(e.Err, ErrIllegalTransition):
		return fmt.Sprintf("%s %q: %v: expected one of [%s], current state is %q",
			e.Op, e.Transition, e.Err, joinStates(e.Expected), e.Actual)
	case e.Transition != "":
		return fmt.Sprintf("%s %q: %v", e.Op, e.Transition, e.Err)
	default:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
}

func (e *RangeError) Unwrap() error {
	return e.Err
}

func newRangeError(op, name string, err error) *RangeError {
	return &RangeError{Op: op, Transition: name, Err: err}
}

func IsRangeError(err error) bool {
	var e *RangeError
	return errors.As(err, &e)
}

func IsUnknownTransitionError(err error) bool {
	return errors.Is(err, ErrUnknownTransition)
}

func IsIllegalTransitionError(err error) bool {
	return errors.Is(err, ErrIllegalTransition)
}

func IsTransitionExistsError(err error) bool {
	return errors.Is(err, ErrTransitionExists)
}

func joinStates(states []State) string {
	parts := make([]string, len(states))
	for i, s := range states {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}
