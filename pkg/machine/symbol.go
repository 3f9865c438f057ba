package machine

// Symbol is an atomic tape cell value. Symbols are compared by equality;
// multi-character symbols are allowed, single characters are the norm.
type Symbol string

// DefaultEmptySymbol marks an empty tape cell unless the machine is
// constructed with WithEmptySymbol.
const DefaultEmptySymbol Symbol = "_"

// Direction tells the head which way to move after a write.
// The numeric value is the head displacement per step.
type Direction int

const (
	Left  Direction = -1
	Right Direction = 1
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "LEFT"
	case Right:
		return "RIGHT"
	default:
		return "UNKNOWN"
	}
}

// StateRole classifies a state's part in the run: where execution begins
// and where it halts. A state has exactly one role.
type StateRole int

const (
	RoleNormal StateRole = iota
	RoleStart
	RoleAccepting
	RoleRejecting
)

func (r StateRole) String() string {
	switch r {
	case RoleNormal:
		return "NORMAL"
	case RoleStart:
		return "START"
	case RoleAccepting:
		return "ACCEPTING"
	case RoleRejecting:
		return "REJECTING"
	default:
		return "UNKNOWN"
	}
}

// Halting reports whether reaching a state with this role stops the run.
func (r StateRole) Halting() bool {
	return r == RoleAccepting || r == RoleRejecting
}
