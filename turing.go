package turing

import "github.com/jkinley/turing/pkg/machine"

// Version is the release version reported by the CLI.
const Version = "0.1.0"

// Aliases for the core machine API, so embedding programs can depend on a
// single import path. The definitions live in pkg/machine.
type (
	Machine      = machine.Machine
	State        = machine.State
	Transition   = machine.Transition
	Tape         = machine.Tape
	Symbol       = machine.Symbol
	Direction    = machine.Direction
	StateRole    = machine.StateRole
	Status       = machine.Status
	Snapshot     = machine.Snapshot
	Observer     = machine.Observer
	ObserverFunc = machine.ObserverFunc
)

const (
	Left  = machine.Left
	Right = machine.Right

	RoleNormal    = machine.RoleNormal
	RoleStart     = machine.RoleStart
	RoleAccepting = machine.RoleAccepting
	RoleRejecting = machine.RoleRejecting

	DefaultEmptySymbol = machine.DefaultEmptySymbol
	DefaultMaxSteps    = machine.DefaultMaxSteps
)

// NewState creates a state with the given name and role.
func NewState(name string, role StateRole) *State {
	return machine.NewState(name, role)
}

// New assembles and validates a machine; see machine.New.
func New(states []*State, tape []Symbol, opts ...machine.Option) (*Machine, error) {
	return machine.New(states, tape, opts...)
}

// Construction and run options, re-exported from pkg/machine.
var (
	WithEmptySymbol    = machine.WithEmptySymbol
	WithImplicitReject = machine.WithImplicitReject
	WithLogger         = machine.WithLogger
	WithMaxSteps       = machine.WithMaxSteps
	WithObserver       = machine.WithObserver
)
