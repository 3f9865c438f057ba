package machine

import (
	"fmt"
	"io"
	"log/slog"
)

// Status reports where a run currently stands.
type Status int

const (
	// StatusRunning means the machine has not reached a halting state yet.
	StatusRunning Status = iota
	// StatusAccepted means the machine halted in an accepting state.
	StatusAccepted
	// StatusRejected means the machine halted in a rejecting state, or was
	// implicitly rejected on an unmatched symbol.
	StatusRejected
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusAccepted:
		return "accepted"
	case StatusRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Machine is a deterministic single-tape Turing Machine. It owns its state
// table, tape and head position, and assumes exclusive, sequential ownership
// by one caller: it is not safe for concurrent use.
type Machine struct {
	states    map[string]*State
	order     []*State
	accepting []*State
	rejecting []*State

	tape    *Tape
	headPos int
	empty   Symbol

	implicitReject bool
	current        *State
	status         Status
	steps          int

	logger *slog.Logger
}

// Option configures a Machine at construction.
type Option func(*Machine)

// WithEmptySymbol overrides the symbol that marks empty tape cells.
func WithEmptySymbol(sym Symbol) Option {
	return func(m *Machine) {
		m.empty = sym
	}
}

// WithImplicitReject makes an unmatched (state, symbol) pair halt the run as
// rejected instead of failing with ErrNoTransition. It also lifts the
// requirement for an explicit rejecting state.
func WithImplicitReject() Option {
	return func(m *Machine) {
		m.implicitReject = true
	}
}

// WithLogger sets a structured logger for step-level debug traces.
// The default logger discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Machine) {
		m.logger = logger
	}
}

// New assembles a runnable machine from a state list and an initial tape.
//
// It validates the whole configuration up front: state names must be unique,
// exactly one state must carry the start role, at least one must be
// accepting, at least one must be rejecting unless implicit reject is
// enabled, and no state may hold two transitions for the same trigger.
// Either every check passes and the returned machine is fully usable, or an
// error is returned and no machine escapes.
//
// The tape is copied; an empty tape materializes as a single empty cell.
// Transition targets are deliberately not resolved here: a dangling target
// is only an error if execution actually reaches it (see Step).
func New(states []*State, tape []Symbol, opts ...Option) (*Machine, error) {
	m := &Machine{
		empty:  DefaultEmptySymbol,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(m)
	}

	m.states = make(map[string]*State, len(states))
	var start *State
	startCount := 0
	for _, s := range states {
		if s == nil {
			continue
		}
		if _, exists := m.states[s.name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateState, s.name)
		}
		m.states[s.name] = s
		m.order = append(m.order, s)

		seen := make(map[Symbol]bool, len(s.transitions))
		for _, t := range s.transitions {
			if seen[t.trigger] {
				return nil, fmt.Errorf("%w: state %q has two transitions on %q",
					ErrDuplicateTrigger, s.name, t.trigger)
			}
			seen[t.trigger] = true
		}

		switch s.role {
		case RoleStart:
			start = s
			startCount++
		case RoleAccepting:
			m.accepting = append(m.accepting, s)
		case RoleRejecting:
			m.rejecting = append(m.rejecting, s)
		}
	}

	if startCount != 1 {
		return nil, fmt.Errorf("%w: found %d", ErrNoStartState, startCount)
	}
	if len(m.accepting) == 0 {
		return nil, ErrNoAcceptingState
	}
	if !m.implicitReject && len(m.rejecting) == 0 {
		return nil, ErrNoRejectingState
	}

	m.tape = NewTape(tape, m.empty)
	m.current = start
	m.status = StatusRunning
	return m, nil
}

// Tape returns a copy of the materialized tape.
func (m *Machine) Tape() []Symbol { return m.tape.Cells() }

// HeadPos returns the head's position within the materialized tape.
func (m *Machine) HeadPos() int { return m.headPos }

// Current returns the currently active state.
func (m *Machine) Current() *State { return m.current }

// Status returns the run status.
func (m *Machine) Status() Status { return m.status }

// Steps returns the number of transitions executed so far.
func (m *Machine) Steps() int { return m.steps }

// EmptySymbol returns the symbol marking empty tape cells.
func (m *Machine) EmptySymbol() Symbol { return m.empty }

// ImplicitReject reports whether unmatched symbols halt the run as rejected.
func (m *Machine) ImplicitReject() bool { return m.implicitReject }

// States returns the machine's states in construction order.
func (m *Machine) States() []*State {
	out := make([]*State, len(m.order))
	copy(out, m.order)
	return out
}

// AcceptingStates returns the states with the accepting role.
func (m *Machine) AcceptingStates() []*State {
	out := make([]*State, len(m.accepting))
	copy(out, m.accepting)
	return out
}

// RejectingStates returns the states with the rejecting role.
func (m *Machine) RejectingStates() []*State {
	out := make([]*State, len(m.rejecting))
	copy(out, m.rejecting)
	return out
}
