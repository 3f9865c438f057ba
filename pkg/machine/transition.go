package machine

import "fmt"

// Transition is an immutable edge in the machine graph: when the owning
// state reads the trigger symbol, write the new symbol, move the head and
// hand control to the target state.
//
// The owner is stored by name, never as a reference: it exists purely for
// diagnostics. Target resolution always goes through the Machine's state
// table.
type Transition struct {
	owner     string
	trigger   Symbol
	target    string
	write     Symbol
	direction Direction
}

// Owner returns the name of the state this transition belongs to.
func (t Transition) Owner() string { return t.owner }

// Trigger returns the symbol that activates this transition.
func (t Transition) Trigger() Symbol { return t.trigger }

// Target returns the name of the state control moves to.
func (t Transition) Target() string { return t.target }

// Write returns the symbol written to the tape before the head moves.
func (t Transition) Write() Symbol { return t.write }

// Direction returns the head movement performed after the write.
func (t Transition) Direction() Direction { return t.direction }

func (t Transition) String() string {
	return fmt.Sprintf("%s: on %q write %q move %s to %s",
		t.owner, t.trigger, t.write, t.direction, t.target)
}
