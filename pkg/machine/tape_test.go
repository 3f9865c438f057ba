package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTape(t *testing.T) {
	t.Run("reads outside the window yield the empty symbol", func(t *testing.T) {
		tape := NewTape([]Symbol{"a", "b"}, "_")
		assert.Equal(t, Symbol("a"), tape.Read(0))
		assert.Equal(t, Symbol("b"), tape.Read(1))
		assert.Equal(t, Symbol("_"), tape.Read(-1))
		assert.Equal(t, Symbol("_"), tape.Read(2))
	})

	t.Run("empty input materializes one empty cell", func(t *testing.T) {
		tape := NewTape(nil, "0")
		assert.Equal(t, 1, tape.Len())
		assert.Equal(t, Symbol("0"), tape.Read(0))
	})

	t.Run("grow right appends", func(t *testing.T) {
		tape := NewTape([]Symbol{"a"}, "_")
		tape.GrowRight()
		assert.Equal(t, []Symbol{"a", "_"}, tape.Cells())
	})

	t.Run("grow left prepends and shifts", func(t *testing.T) {
		tape := NewTape([]Symbol{"a"}, "_")
		tape.GrowLeft()
		assert.Equal(t, []Symbol{"_", "a"}, tape.Cells())
	})

	t.Run("input slice is copied", func(t *testing.T) {
		in := []Symbol{"a"}
		tape := NewTape(in, "_")
		in[0] = "z"
		assert.Equal(t, Symbol("a"), tape.Read(0))
		out := tape.Cells()
		out[0] = "z"
		assert.Equal(t, Symbol("a"), tape.Read(0))
	})

	t.Run("string form", func(t *testing.T) {
		tape := NewTape([]Symbol{"a", "_", "b"}, "_")
		assert.Equal(t, "a _ b", tape.String())
	})
}
