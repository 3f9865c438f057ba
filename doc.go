/*
Package turing is a deterministic single-tape Turing Machine execution engine.

It executes a machine defined as a finite set of named states with
symbol-triggered transitions over a dynamically growing tape, step by step,
until the machine halts in an accepting or rejecting state, exhausts a step
budget, or reaches a configuration its transition table does not describe.

The engine proper lives in pkg/machine; this package re-exports the common
names so small programs need a single import. pkg/machines ships ready-made
example machines, and pkg/observability provides observer plumbing for
per-step diagnostics.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/jkinley/turing"
	)

	func main() {
		states := []*turing.State{
			turing.NewState("start", turing.RoleStart).
				AddTransition("a", "one_a", "a", turing.Right),
			turing.NewState("one_a", turing.RoleNormal).
				AddTransition("b", "one_b", "b", turing.Right),
			turing.NewState("one_b", turing.RoleNormal).
				AddTransition("a", "one_b", "a", turing.Right).
				AddTransition("_", "accept", "_", turing.Right),
			turing.NewState("accept", turing.RoleAccepting),
		}

		m, err := turing.New(states, []turing.Symbol{"a", "b", "a"},
			turing.WithImplicitReject())
		if err != nil {
			log.Fatal(err)
		}

		accepted, err := m.Run(turing.WithMaxSteps(100))
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println("accepted:", accepted)
	}
*/
package turing
