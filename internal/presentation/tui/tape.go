package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/jkinley/turing/pkg/machine"
)

// TapeObserver renders one line per executed step: the step counter, the
// materialized tape with the head cell highlighted, and the current state.
type TapeObserver struct {
	w   io.Writer
	out *termenv.Output
}

// NewTapeObserver creates an observer writing to w. Output options allow
// tests to pin the color profile.
func NewTapeObserver(w io.Writer, opts ...termenv.OutputOption) *TapeObserver {
	return &TapeObserver{w: w, out: termenv.NewOutput(w, opts...)}
}

// OnStep writes the configuration line for one step.
func (o *TapeObserver) OnStep(s machine.Snapshot) {
	fmt.Fprintf(o.w, "step %4d  %s  state=%s\n", s.Step, o.renderTape(s), s.State)
}

func (o *TapeObserver) renderTape(s machine.Snapshot) string {
	cells := make([]string, len(s.Tape))
	for i, sym := range s.Tape {
		if i == s.HeadPos {
			cells[i] = o.out.String("[" + string(sym) + "]").Reverse().Bold().String()
		} else {
			cells[i] = " " + string(sym) + " "
		}
	}
	return strings.Join(cells, "")
}
