package observability

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkinley/turing/pkg/machine"
)

func snap(step int, state string) machine.Snapshot {
	return machine.Snapshot{Step: step, State: state, Tape: []machine.Symbol{"_"}}
}

func TestAggregatorFanOut(t *testing.T) {
	var order []string
	first := machine.ObserverFunc(func(s machine.Snapshot) {
		order = append(order, "first")
	})
	second := machine.ObserverFunc(func(s machine.Snapshot) {
		order = append(order, "second")
	})

	agg := NewAggregator(first)
	agg.Add(second)
	agg.Add(nil)

	agg.OnStep(snap(1, "S"))
	assert.Equal(t, []string{"first", "second"}, order,
		"observers fire in registration order")
}

func TestRecorder(t *testing.T) {
	rec := NewRecorder()
	_, ok := rec.Last()
	assert.False(t, ok)

	rec.OnStep(snap(1, "S"))
	rec.OnStep(snap(2, "A"))

	assert.Equal(t, 2, rec.Len())
	last, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, "A", last.State)

	history := rec.History()
	require.Len(t, history, 2)
	assert.Equal(t, 1, history[0].Step)

	// History hands out a copy.
	history[0] = snap(99, "ghost")
	assert.Equal(t, 1, rec.History()[0].Step)
}

func TestRecorderDuringRun(t *testing.T) {
	states := []*machine.State{
		machine.NewState("start", machine.RoleStart).
			AddTransition("a", "start", "a", machine.Right).
			AddTransition("_", "accept", "_", machine.Right),
		machine.NewState("accept", machine.RoleAccepting),
	}
	m, err := machine.New(states, []machine.Symbol{"a", "a"}, machine.WithImplicitReject())
	require.NoError(t, err)

	rec := NewRecorder()
	accepted, err := m.Run(machine.WithObserver(rec))
	require.NoError(t, err)
	assert.True(t, accepted)

	assert.Equal(t, 3, rec.Len())
	last, _ := rec.Last()
	assert.Equal(t, "accept", last.State)
	assert.Equal(t, machine.StatusAccepted, last.Status)
}

func TestLogObserver(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	obs := NewLogObserver(logger, slog.LevelDebug)
	obs.OnStep(machine.Snapshot{Step: 3, State: "one_b", Role: machine.RoleNormal, HeadPos: 2})

	out := buf.String()
	assert.Contains(t, out, "machine step")
	assert.Contains(t, out, "state=one_b")
	assert.Contains(t, out, "step=3")
}
