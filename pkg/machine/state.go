package machine

// State is a named vertex in the machine graph. Its name and role are fixed
// at construction; outgoing transitions are appended with AddTransition.
type State struct {
	name        string
	role        StateRole
	transitions []Transition
}

// NewState creates a state with the given name and role.
func NewState(name string, role StateRole) *State {
	return &State{name: name, role: role}
}

// AddTransition appends an outgoing transition and returns the state itself,
// so several transitions can be chained fluently during construction.
//
// Neither the target name nor trigger uniqueness is checked here; both are
// validated when the state is handed to New.
func (s *State) AddTransition(trigger Symbol, target string, write Symbol, direction Direction) *State {
	s.transitions = append(s.transitions, Transition{
		owner:     s.name,
		trigger:   trigger,
		target:    target,
		write:     write,
		direction: direction,
	})
	return s
}

// Name returns the state's unique name.
func (s *State) Name() string { return s.name }

// Role returns the state's role.
func (s *State) Role() StateRole { return s.role }

// Transitions returns a copy of the outgoing transitions in insertion order.
func (s *State) Transitions() []Transition {
	out := make([]Transition, len(s.transitions))
	copy(out, s.transitions)
	return out
}

func (s *State) String() string { return s.name }

// transitionFor finds the transition triggered by the given symbol.
// Construction-time validation guarantees at most one candidate.
func (s *State) transitionFor(sym Symbol) (Transition, bool) {
	for _, t := range s.transitions {
		if t.trigger == sym {
			return t, true
		}
	}
	return Transition{}, false
}
