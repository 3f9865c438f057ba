/*
Package machine implements a deterministic single-tape Turing Machine.

It defines the fundamental entities of the engine (Symbols, Directions,
StateRoles, States, Transitions and the Tape) plus the Machine that executes
them step by step. The package is kept pure and free of I/O: diagnostics flow
through the Observer interface, and logging goes to an injectable slog.Logger
that defaults to a no-op.

# Key Entities

  - Symbol: an atomic tape cell value; one designated symbol marks empty cells.
  - State: a named vertex with a role (start, accepting, rejecting, normal)
    and an ordered list of outgoing transitions.
  - Transition: a rule mapping a read symbol to (write symbol, head move,
    next state).
  - Machine: owns the state table, the tape and the head; validates the
    configuration once at construction and then advances via Step or Run.

# Usage

	states := []*machine.State{
		machine.NewState("start", machine.RoleStart).
			AddTransition("a", "one_a", "a", machine.Right),
		machine.NewState("one_a", machine.RoleNormal).
			AddTransition("b", "one_b", "b", machine.Right),
		machine.NewState("one_b", machine.RoleNormal).
			AddTransition("a", "one_b", "a", machine.Right).
			AddTransition("_", "accept", "_", machine.Right),
		machine.NewState("accept", machine.RoleAccepting),
	}

	m, err := machine.New(states, []machine.Symbol{"a", "b", "a"},
		machine.WithImplicitReject())
	if err != nil {
		log.Fatal(err)
	}

	accepted, err := m.Run(machine.WithMaxSteps(100))
*/
package machine
