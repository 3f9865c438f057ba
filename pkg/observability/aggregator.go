package observability

import "github.com/jkinley/turing/pkg/machine"

// Aggregator fans each step snapshot out to multiple observers in
// registration order, so a run can feed a renderer, a recorder and a logger
// through a single Observer slot.
type Aggregator struct {
	observers []machine.Observer
}

// NewAggregator creates an aggregator over the given observers.
func NewAggregator(observers ...machine.Observer) *Aggregator {
	return &Aggregator{observers: observers}
}

// Add registers another observer. Nil observers are ignored.
func (a *Aggregator) Add(o machine.Observer) {
	if o != nil {
		a.observers = append(a.observers, o)
	}
}

// OnStep forwards the snapshot to every registered observer.
func (a *Aggregator) OnStep(s machine.Snapshot) {
	for _, o := range a.observers {
		o.OnStep(s)
	}
}
