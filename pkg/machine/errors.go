package machine

import "errors"

// Configuration errors are reported by New before any execution happens.
var (
	// ErrNoStartState is returned when zero or more than one state carries
	// the start role.
	ErrNoStartState = errors.New("machine must have exactly one start state")

	// ErrNoAcceptingState is returned when no state carries the accepting role.
	ErrNoAcceptingState = errors.New("machine must have at least one accepting state")

	// ErrNoRejectingState is returned when no state carries the rejecting role
	// and implicit reject is disabled.
	ErrNoRejectingState = errors.New("machine must have at least one rejecting state")

	// ErrDuplicateState is returned when two states share a name.
	ErrDuplicateState = errors.New("duplicate state name")

	// ErrDuplicateTrigger is returned when one state holds two transitions
	// for the same trigger symbol, which would make the machine
	// nondeterministic.
	ErrDuplicateTrigger = errors.New("duplicate trigger symbol")
)

// Runtime errors surface from Step when the machine reaches a configuration
// its transition table does not describe.
var (
	// ErrNoTransition is returned when the current state has no transition
	// for the read symbol and implicit reject is disabled.
	ErrNoTransition = errors.New("no transition matches the current symbol")

	// ErrUnknownState is returned when a transition targets a state name
	// missing from the machine's state table.
	ErrUnknownState = errors.New("transition targets an unknown state")

	// ErrHalted is returned when Step is called after the machine reached a
	// halting state.
	ErrHalted = errors.New("machine has already halted")
)
