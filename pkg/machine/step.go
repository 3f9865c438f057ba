package machine

import "fmt"

// DefaultMaxSteps bounds a Run when no budget is given.
const DefaultMaxSteps = 1000

// Step executes a single transition: read the symbol under the head, find
// the matching transition on the current state, write, move, and activate
// the target state. Reaching an accepting or rejecting state halts the run.
//
// When no transition matches the read symbol, the machine either halts as
// rejected (implicit reject enabled) or fails with ErrNoTransition. A
// transition naming a state missing from the table fails with
// ErrUnknownState. On error the machine's last known configuration stays
// inspectable.
func (m *Machine) Step() error {
	if m.status != StatusRunning {
		return fmt.Errorf("%w: %s", ErrHalted, m.status)
	}

	sym := m.tape.Read(m.headPos)
	tr, ok := m.current.transitionFor(sym)
	if !ok {
		if m.implicitReject {
			m.status = StatusRejected
			m.logger.Debug("implicit reject",
				"state", m.current.name, "symbol", string(sym), "step", m.steps)
			return nil
		}
		return fmt.Errorf("%w: state %q reading %q", ErrNoTransition, m.current.name, sym)
	}

	// Grow the window before the write and move so both always land in
	// range. Prepending shifts every cell right, so the head index moves
	// with its cell.
	switch {
	case tr.direction == Right && m.headPos == m.tape.Len()-1:
		m.tape.GrowRight()
	case tr.direction == Left && m.headPos == 0:
		m.tape.GrowLeft()
		m.headPos++
	}

	m.tape.Write(m.headPos, tr.write)
	m.headPos += int(tr.direction)

	next, ok := m.states[tr.target]
	if !ok {
		return fmt.Errorf("%w: %q -> %q", ErrUnknownState, tr.owner, tr.target)
	}
	m.current = next
	m.steps++

	switch next.role {
	case RoleAccepting:
		m.status = StatusAccepted
	case RoleRejecting:
		m.status = StatusRejected
	}

	m.logger.Debug("step",
		"read", string(sym),
		"write", string(tr.write),
		"move", tr.direction.String(),
		"state", next.name,
		"head", m.headPos,
		"step", m.steps,
	)
	return nil
}

// RunOption configures a single call to Run.
type RunOption func(*runConfig)

type runConfig struct {
	maxSteps  int
	observers []Observer
}

// WithMaxSteps sets the step budget for a run. The budget is the only
// mechanism bounding machines that never halt; exceeding it is not an error.
func WithMaxSteps(n int) RunOption {
	return func(c *runConfig) {
		c.maxSteps = n
	}
}

// WithObserver registers an observer that receives the machine configuration
// after every executed step. The option may be repeated.
func WithObserver(o Observer) RunOption {
	return func(c *runConfig) {
		if o != nil {
			c.observers = append(c.observers, o)
		}
	}
}

// Run drives the machine until it halts or the step budget runs out.
//
// It reports true only when the machine halts in an accepting state;
// rejection and budget exhaustion both report false. Budget exhaustion
// leaves the machine running, so a caller may extend the budget and call
// Run again. Errors from Step propagate unchanged.
func (m *Machine) Run(opts ...RunOption) (bool, error) {
	cfg := runConfig{maxSteps: DefaultMaxSteps}
	for _, opt := range opts {
		opt(&cfg)
	}

	for i := 0; i < cfg.maxSteps; i++ {
		if m.status != StatusRunning {
			break
		}
		if err := m.Step(); err != nil {
			return false, err
		}
		if len(cfg.observers) > 0 {
			snap := m.Snapshot()
			for _, o := range cfg.observers {
				o.OnStep(snap)
			}
		}
	}
	return m.status == StatusAccepted, nil
}
