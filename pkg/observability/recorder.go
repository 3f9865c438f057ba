package observability

import "github.com/jkinley/turing/pkg/machine"

// Recorder keeps the full step history of a run for later inspection.
// It is handy in tests and for post-mortem diagnosis of rejected runs.
type Recorder struct {
	history []machine.Snapshot
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// OnStep appends the snapshot to the history.
func (r *Recorder) OnStep(s machine.Snapshot) {
	r.history = append(r.history, s)
}

// Len returns the number of recorded steps.
func (r *Recorder) Len() int { return len(r.history) }

// History returns a copy of the recorded snapshots in step order.
func (r *Recorder) History() []machine.Snapshot {
	out := make([]machine.Snapshot, len(r.history))
	copy(out, r.history)
	return out
}

// Last returns the most recent snapshot, if any.
func (r *Recorder) Last() (machine.Snapshot, bool) {
	if len(r.history) == 0 {
		return machine.Snapshot{}, false
	}
	return r.history[len(r.history)-1], true
}
