package fsm

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/dmitrymomot/minifsm/pkg/logger"
)

// State identifies a point in the machine's configuration space.
type State string

// Wildcard in a source list makes a transition legal from any state.
const Wildcard State = "*"

// Transition is a named rule moving the machine from one of Sources to Dest.
type Transition struct {
	Name     string
	Sources  []State // exactly [Wildcard] for wildcard transitions
	Dest     State
	wildcard bool
}

func newTransition(name string, sources []State, dest State) Transition {
	if slices.Contains(sources, Wildcard) {
		return Transition{Name: name, Sources: []State{Wildcard}, Dest: dest, wildcard: true}
	}
	return Transition{Name: name, Sources: slices.Clone(sources), Dest: dest}
}

// IsWildcard reports whether the transition ignores the current state.
func (t Transition) IsWildcard() bool {
	return t.wildcard
}

// Permits reports whether the transition may fire while the machine is in state s.
func (t Transition) Permits(s State) bool {
	return t.wildcard || slices.Contains(t.Sources, s)
}

// Machine holds the current state, the registered transitions and the
// listeners keyed by destination state.
//
// A Machine is not safe for concurrent use. Listeners run synchronously
// inside Move and may call back into the machine, so callers that share
// a Machine between goroutines must serialize every call themselves.
type Machine struct {
	id      string
	current State
	logger  *slog.Logger

	states      map[State]struct{}
	transitions map[string]Transition
	paths       map[State]map[State]struct{}
	listeners   map[State][]Listener
}

// New creates a machine positioned at initial. Options are applied in order;
// the first failing option aborts construction.
func New(initial State, opts ...Option) (*Machine, error) {
	cfg := &options{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.id == "" {
		cfg.id = uuid.NewString()
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	m := &Machine{
		id:          cfg.id,
		current:     initial,
		logger:      cfg.logger.With(logger.MachineID(cfg.id)),
		states:      map[State]struct{}{initial: {}},
		transitions: make(map[string]Transition),
		paths:       make(map[State]map[State]struct{}),
		listeners:   make(map[State][]Listener),
	}

	for _, setup := range cfg.setup {
		if err := setup(m); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// MustNew is like New but panics if any option fails.
func MustNew(initial State, opts ...Option) *Machine {
	m, err := New(initial, opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to create state machine: %v", err))
	}
	return m
}

func (m *Machine) ID() string {
	return m.id
}

// State returns the current state.
func (m *Machine) State() State {
	return m.current
}

// Set registers a transition named name from any of sources to dest.
// A source equal to Wildcard turns the whole transition into a wildcard
// transition and the other sources are dropped. Names are unique: a second
// Set with the same name fails and leaves the first registration intact.
func (m *Machine) Set(name string, sources []State, dest State) error {
	if name == "" {
		return newRangeError("set", name, ErrEmptyName)
	}
	if _, exists := m.transitions[name]; exists {
		err := newRangeError("set", name, ErrTransitionExists)
		m.logger.Debug("transition rejected", logger.Transition(name), logger.Error(err))
		return err
	}

	t := newTransition(name, sources, dest)
	m.transitions[name] = t
	m.addState(dest)
	if !t.wildcard {
		for _, src := range t.Sources {
			m.addState(src)
			m.addPath(src, dest)
		}
	}

	m.logger.Debug("transition registered",
		logger.Group("transition",
			slog.String("name", name),
			slog.Any("from", t.Sources),
			logger.State("to", dest),
		),
	)
	return nil
}

// SetFrom registers a transition with a single source state.
func (m *Machine) SetFrom(name string, source, dest State) error {
	return m.Set(name, []State{source}, dest)
}

// SetAny registers a wildcard transition to dest.
func (m *Machine) SetAny(name string, dest State) error {
	return m.Set(name, []State{Wildcard}, dest)
}

// MustSet is like Set but panics on error.
func (m *Machine) MustSet(name string, sources []State, dest State) *Machine {
	if err := m.Set(name, sources, dest); err != nil {
		panic(err)
	}
	return m
}

// Can reports whether Move(name) would succeed from the current state.
// Unknown names yield false.
func (m *Machine) Can(name string) bool {
	t, ok := m.transitions[name]
	if !ok {
		return false
	}
	return t.Permits(m.current)
}

// Move fires the named transition. On success the current state becomes the
// transition's destination and every listener registered for that
// destination runs, in registration order, before Move returns.
func (m *Machine) Move(name string) error {
	t, ok := m.transitions[name]
	if !ok {
		err := newRangeError("move", name, ErrUnknownTransition)
		m.logger.Debug("move rejected", logger.State("state", m.current), logger.Error(err))
		return err
	}
	if !t.Permits(m.current) {
		err := &RangeError{
			Op:         "move",
			Transition: name,
			Expected:   slices.Clone(t.Sources),
			Actual:     m.current,
			Err:        ErrIllegalTransition,
		}
		m.logger.Debug("move rejected", logger.State("state", m.current), logger.Error(err))
		return err
	}

	from := m.current
	m.current = t.Dest

	m.logger.Debug("transition executed",
		logger.Transition(name),
		logger.State("from", from),
		logger.State("to", t.Dest),
	)

	m.dispatch(from, t.Dest)
	return nil
}

// MustMove is like Move but panics on error.
func (m *Machine) MustMove(name string) *Machine {
	if err := m.Move(name); err != nil {
		panic(err)
	}
	return m
}

// dispatch runs a snapshot of the listeners for to. Registrations changed
// by a listener take effect from the next landing on to.
func (m *Machine) dispatch(from, to State) {
	registered := m.listeners[to]
	if len(registered) == 0 {
		return
	}
	snapshot := slices.Clone(registered)

	m.logger.Debug("dispatching listeners",
		logger.State("state", to),
		slog.Int("listeners", len(snapshot)),
	)
	for _, l := range snapshot {
		l.OnTransition(m, from, to)
	}
}

// On registers l to run every time a transition lands on state.
// Registering the same listener twice makes it run twice.
func (m *Machine) On(state State, l Listener) *Machine {
	if l == nil {
		return m
	}
	m.listeners[state] = append(m.listeners[state], l)
	return m
}

// OnFunc registers fn for state and returns the handle needed to remove it.
func (m *Machine) OnFunc(state State, fn func(m *Machine, from, to State)) Listener {
	l := Listen(fn)
	m.On(state, l)
	return l
}

// Off removes listeners for state. Without a listener argument every listener
// for state is removed. Otherwise only the first registration identical to
// the given listener goes; unknown listeners are ignored.
func (m *Machine) Off(state State, l ...Listener) *Machine {
	if len(l) == 0 {
		delete(m.listeners, state)
		return m
	}

	registered := m.listeners[state]
	for i, r := range registered {
		if sameListener(r, l[0]) {
			m.listeners[state] = slices.Delete(registered, i, i+1)
			break
		}
	}
	if len(m.listeners[state]) == 0 {
		delete(m.listeners, state)
	}
	return m
}

// Listeners returns the number of listeners registered for state.
func (m *Machine) Listeners(state State) int {
	return len(m.listeners[state])
}

// Transition returns the registered transition with the given name.
func (m *Machine) Transition(name string) (Transition, bool) {
	t, ok := m.transitions[name]
	if !ok {
		return Transition{}, false
	}
	t.Sources = slices.Clone(t.Sources)
	return t, true
}

// Transitions returns all registered transitions ordered by name.
func (m *Machine) Transitions() []Transition {
	out := make([]Transition, 0, len(m.transitions))
	for _, t := range m.transitions {
		t.Sources = slices.Clone(t.Sources)
		out = append(out, t)
	}
	slices.SortFunc(out, func(a, b Transition) int { return cmp.Compare(a.Name, b.Name) })
	return out
}

// States returns every state the machine knows about, sorted.
func (m *Machine) States() []State {
	return sortedStates(m.states)
}

// Reachable returns the destinations registered from the concrete state
// from, sorted. Wildcard transitions do not contribute. The index is
// informational; Can and Move never consult it.
func (m *Machine) Reachable(from State) []State {
	return sortedStates(m.paths[from])
}

func (m *Machine) String() string {
	return fmt.Sprintf("Machine { ID = %s, State = %s }", m.id, m.current)
}

func (m *Machine) addState(s State) {
	m.states[s] = struct{}{}
}

func (m *Machine) addPath(from, to State) {
	dests, ok := m.paths[from]
	if !ok {
		dests = make(map[State]struct{})
		m.paths[from] = dests
	}
	dests[to] = struct{}{}
}

func sortedStates(set map[State]struct{}) []State {
	out := make([]State, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	slices.Sort(out)
	return out
}
