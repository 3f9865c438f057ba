package machine

// Snapshot is a read-only view of the machine configuration. The tape slice
// is a copy; observers may retain it freely.
type Snapshot struct {
	// Step counts the transitions executed so far.
	Step int
	// Tape holds the materialized tape cells.
	Tape []Symbol
	// HeadPos is the head's position within Tape.
	HeadPos int
	// State is the current state's name.
	State string
	// Role is the current state's role.
	Role StateRole
	// Status is the run status after this step.
	Status Status
}

// Observer receives the machine configuration after every executed step of a
// Run. Observers are purely diagnostic and cannot influence the run.
type Observer interface {
	OnStep(Snapshot)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(Snapshot)

func (f ObserverFunc) OnStep(s Snapshot) { f(s) }

// Snapshot captures the current configuration. Reading a snapshot never
// mutates the machine.
func (m *Machine) Snapshot() Snapshot {
	return Snapshot{
		Step:    m.steps,
		Tape:    m.tape.Cells(),
		HeadPos: m.headPos,
		State:   m.current.name,
		Role:    m.current.role,
		Status:  m.status,
	}
}
