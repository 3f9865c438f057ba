package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepTapeGrowth(t *testing.T) {
	t.Run("right growth at the window edge", func(t *testing.T) {
		s, a, r := trio()
		s.AddTransition("a", "A", "b", Right)
		m, err := New([]*State{s, a, r}, []Symbol{"a"})
		require.NoError(t, err)

		require.NoError(t, m.Step())
		assert.Equal(t, []Symbol{"b", "_"}, m.Tape())
		assert.Equal(t, 1, m.HeadPos())
	})

	t.Run("left growth preserves the logical head cell", func(t *testing.T) {
		s, a, r := trio()
		s.AddTransition("a", "A", "b", Left)
		m, err := New([]*State{s, a, r}, []Symbol{"a"})
		require.NoError(t, err)

		require.NoError(t, m.Step())
		assert.Equal(t, []Symbol{"_", "b"}, m.Tape())
		assert.Equal(t, 0, m.HeadPos())
	})

	t.Run("no growth when moving left inside the window", func(t *testing.T) {
		bounce := NewState("S", RoleStart).
			AddTransition("a", "mid", "a", Right)
		mid := NewState("mid", RoleNormal).
			AddTransition("x", "A", "y", Left)
		a := NewState("A", RoleAccepting)
		m, err := New([]*State{bounce, mid, a}, []Symbol{"a", "x"}, WithImplicitReject())
		require.NoError(t, err)

		require.NoError(t, m.Step())
		require.NoError(t, m.Step())
		assert.Equal(t, []Symbol{"a", "y"}, m.Tape())
		assert.Equal(t, 0, m.HeadPos())
	})
}

func TestStepNoTransition(t *testing.T) {
	t.Run("implicit reject halts as rejected", func(t *testing.T) {
		s := NewState("S", RoleStart)
		a := NewState("A", RoleAccepting)
		m, err := New([]*State{s, a}, []Symbol{"z"}, WithImplicitReject())
		require.NoError(t, err)

		require.NoError(t, m.Step())
		assert.Equal(t, StatusRejected, m.Status())
		assert.Equal(t, "S", m.Current().Name(), "implicit reject leaves the state unchanged")
		assert.Equal(t, 0, m.Steps())
	})

	t.Run("explicit mode fails with ErrNoTransition", func(t *testing.T) {
		s, a, r := trio()
		m, err := New([]*State{s, a, r}, []Symbol{"z"})
		require.NoError(t, err)

		err = m.Step()
		assert.ErrorIs(t, err, ErrNoTransition)
		assert.Equal(t, StatusRunning, m.Status())
	})
}

func TestStepDanglingTarget(t *testing.T) {
	s, a, r := trio()
	s.AddTransition("_", "ghost", "_", Right)
	m, err := New([]*State{s, a, r}, nil)
	require.NoError(t, err)

	err = m.Step()
	assert.ErrorIs(t, err, ErrUnknownState)
	// The failed step still leaves the last known configuration inspectable.
	assert.Equal(t, "S", m.Current().Name())
	assert.Equal(t, 1, m.HeadPos())
}

func TestStepAfterHalt(t *testing.T) {
	s, a, r := trio()
	s.AddTransition("_", "A", "_", Right)
	m, err := New([]*State{s, a, r}, nil)
	require.NoError(t, err)

	require.NoError(t, m.Step())
	assert.Equal(t, StatusAccepted, m.Status())

	err = m.Step()
	assert.ErrorIs(t, err, ErrHalted)
}

func TestRun(t *testing.T) {
	t.Run("accepting halt", func(t *testing.T) {
		s, a, r := trio()
		s.AddTransition("_", "A", "_", Right)
		m, err := New([]*State{s, a, r}, nil)
		require.NoError(t, err)

		accepted, err := m.Run()
		require.NoError(t, err)
		assert.True(t, accepted)
	})

	t.Run("rejecting halt", func(t *testing.T) {
		s, a, r := trio()
		s.AddTransition("_", "R", "_", Right)
		m, err := New([]*State{s, a, r}, nil)
		require.NoError(t, err)

		accepted, err := m.Run()
		require.NoError(t, err)
		assert.False(t, accepted)
	})

	t.Run("step budget exhaustion is not an error", func(t *testing.T) {
		ping := NewState("ping", RoleStart).
			AddTransition("_", "pong", "_", Right)
		pong := NewState("pong", RoleNormal).
			AddTransition("_", "ping", "_", Left)
		a := NewState("A", RoleAccepting)
		m, err := New([]*State{ping, pong, a}, nil, WithImplicitReject())
		require.NoError(t, err)

		accepted, err := m.Run(WithMaxSteps(25))
		require.NoError(t, err)
		assert.False(t, accepted)
		assert.Equal(t, 25, m.Steps(), "the budget bounds the executed steps exactly")
		assert.Equal(t, StatusRunning, m.Status(), "an exhausted run stays resumable")
	})

	t.Run("step errors propagate", func(t *testing.T) {
		s, a, r := trio()
		m, err := New([]*State{s, a, r}, nil)
		require.NoError(t, err)

		_, err = m.Run()
		assert.ErrorIs(t, err, ErrNoTransition)
	})
}

func TestRunObservers(t *testing.T) {
	s, a, r := trio()
	s.AddTransition("_", "A", "x", Right)
	m, err := New([]*State{s, a, r}, nil)
	require.NoError(t, err)

	var seen []Snapshot
	accepted, err := m.Run(WithObserver(ObserverFunc(func(snap Snapshot) {
		seen = append(seen, snap)
	})))
	require.NoError(t, err)
	assert.True(t, accepted)

	require.Len(t, seen, 1)
	assert.Equal(t, 1, seen[0].Step)
	assert.Equal(t, []Symbol{"x", "_"}, seen[0].Tape)
	assert.Equal(t, 1, seen[0].HeadPos)
	assert.Equal(t, "A", seen[0].State)
	assert.Equal(t, RoleAccepting, seen[0].Role)
	assert.Equal(t, StatusAccepted, seen[0].Status)
}

func TestInspectionIsIdempotent(t *testing.T) {
	s, a, r := trio()
	s.AddTransition("a", "S", "a", Right).
		AddTransition("_", "A", "_", Right)
	m, err := New([]*State{s, a, r}, []Symbol{"a", "a"})
	require.NoError(t, err)

	require.NoError(t, m.Step())
	tape := m.Tape()
	head := m.HeadPos()
	state := m.Current().Name()

	// Mutating the returned tape copy must not leak into the machine.
	tape[0] = "z"

	assert.Equal(t, []Symbol{"a", "a"}, m.Tape())
	assert.Equal(t, head, m.HeadPos())
	assert.Equal(t, state, m.Current().Name())
	assert.Equal(t, m.Snapshot(), m.Snapshot())
}

// The a·b·a* scenario from the package documentation, run end to end.
func TestRunEndToEnd(t *testing.T) {
	states := []*State{
		NewState("start", RoleStart).
			AddTransition("a", "one_a", "a", Right),
		NewState("one_a", RoleNormal).
			AddTransition("b", "one_b", "b", Right),
		NewState("one_b", RoleNormal).
			AddTransition("a", "one_b", "a", Right).
			AddTransition("_", "accept", "_", Right),
		NewState("accept", RoleAccepting),
	}
	m, err := New(states, []Symbol{"a", "b", "a"}, WithImplicitReject())
	require.NoError(t, err)

	accepted, err := m.Run()
	require.NoError(t, err)
	assert.True(t, accepted)
	assert.Equal(t, "accept", m.Current().Name())
	assert.Equal(t, 4, m.HeadPos())
	assert.Equal(t, []Symbol{"a", "b", "a", "_", "_"}, m.Tape())
}
