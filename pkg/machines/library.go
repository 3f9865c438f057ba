// Package machines ships ready-made machine definitions. They double as
// examples of the fluent construction API and back the CLI's run, list and
// describe commands.
package machines

import (
	"sort"

	"github.com/jkinley/turing/pkg/machine"
)

// Definition couples a named machine builder with its documentation and a
// default tape. States returns fresh state values on every call, so each
// built machine owns its own graph.
type Definition struct {
	Name           string
	Summary        string
	DefaultTape    []machine.Symbol
	ImplicitReject bool
	States         func() []*machine.State
}

// New builds a machine from the definition. A nil tape falls back to the
// definition's default tape.
func (d Definition) New(tape []machine.Symbol, opts ...machine.Option) (*machine.Machine, error) {
	if tape == nil {
		tape = d.DefaultTape
	}
	if d.ImplicitReject {
		opts = append(opts, machine.WithImplicitReject())
	}
	return machine.New(d.States(), tape, opts...)
}

var library = map[string]Definition{
	"ab-run":           abRun,
	"binary-increment": binaryIncrement,
	"zero-one":         zeroOne,
}

// All returns every definition sorted by name.
func All() []Definition {
	names := make([]string, 0, len(library))
	for name := range library {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]Definition, 0, len(names))
	for _, name := range names {
		out = append(out, library[name])
	}
	return out
}

// Lookup finds a definition by name.
func Lookup(name string) (Definition, bool) {
	d, ok := library[name]
	return d, ok
}

// abRun accepts tapes of the form "ab" followed by zero or more "a"s.
var abRun = Definition{
	Name:           "ab-run",
	Summary:        `Accepts "ab" followed by any run of "a"s (ab, aba, abaa, ...).`,
	DefaultTape:    []machine.Symbol{"a", "b", "a"},
	ImplicitReject: true,
	States: func() []*machine.State {
		return []*machine.State{
			machine.NewState("start", machine.RoleStart).
				AddTransition("a", "one_a", "a", machine.Right),
			machine.NewState("one_a", machine.RoleNormal).
				AddTransition("b", "one_b", "b", machine.Right),
			machine.NewState("one_b", machine.RoleNormal).
				AddTransition("a", "one_b", "a", machine.Right).
				AddTransition("_", "accept", "_", machine.Right),
			machine.NewState("accept", machine.RoleAccepting),
		}
	},
}

// binaryIncrement adds one to the binary number on the tape. The head starts
// on the most significant bit; the scan state walks to the end of the number
// and the carry state ripples back until a zero (or the left edge) absorbs
// the carry.
var binaryIncrement = Definition{
	Name:           "binary-increment",
	Summary:        "Increments the binary number on the tape by one.",
	DefaultTape:    []machine.Symbol{"1", "0", "1", "1"},
	ImplicitReject: true,
	States: func() []*machine.State {
		return []*machine.State{
			machine.NewState("scan", machine.RoleStart).
				AddTransition("0", "scan", "0", machine.Right).
				AddTransition("1", "scan", "1", machine.Right).
				AddTransition("_", "carry", "_", machine.Left),
			machine.NewState("carry", machine.RoleNormal).
				AddTransition("1", "carry", "0", machine.Left).
				AddTransition("0", "done", "1", machine.Right).
				AddTransition("_", "done", "1", machine.Right),
			machine.NewState("done", machine.RoleAccepting),
		}
	},
}

// zeroOne recognizes the language 0ⁿ1ⁿ with the classic marking scheme:
// cross off one "0" (as X), find and cross off a matching "1" (as Y),
// rewind, repeat. Mismatches land in an explicit rejecting state.
var zeroOne = Definition{
	Name:        "zero-one",
	Summary:     "Accepts tapes of n zeros followed by exactly n ones.",
	DefaultTape: []machine.Symbol{"0", "0", "1", "1"},
	States: func() []*machine.State {
		return []*machine.State{
			machine.NewState("mark", machine.RoleStart).
				AddTransition("0", "seek", "X", machine.Right).
				AddTransition("Y", "verify", "Y", machine.Right).
				AddTransition("_", "accept", "_", machine.Right).
				AddTransition("1", "reject", "1", machine.Right),
			machine.NewState("seek", machine.RoleNormal).
				AddTransition("0", "seek", "0", machine.Right).
				AddTransition("Y", "seek", "Y", machine.Right).
				AddTransition("1", "rewind", "Y", machine.Left).
				AddTransition("_", "reject", "_", machine.Right),
			machine.NewState("rewind", machine.RoleNormal).
				AddTransition("0", "rewind", "0", machine.Left).
				AddTransition("Y", "rewind", "Y", machine.Left).
				AddTransition("X", "mark", "X", machine.Right),
			machine.NewState("verify", machine.RoleNormal).
				AddTransition("Y", "verify", "Y", machine.Right).
				AddTransition("_", "accept", "_", machine.Right).
				AddTransition("0", "reject", "0", machine.Right).
				AddTransition("1", "reject", "1", machine.Right),
			machine.NewState("accept", machine.RoleAccepting),
			machine.NewState("reject", machine.RoleRejecting),
		}
	},
}
