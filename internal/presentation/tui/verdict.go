package tui

import (
	"io"

	"github.com/muesli/termenv"

	"github.com/jkinley/turing/pkg/machine"
)

// Verdict renders the run outcome for terminal display: green for accepted,
// red for rejected, yellow when the step budget ran out before a halt.
func Verdict(w io.Writer, status machine.Status, opts ...termenv.OutputOption) string {
	out := termenv.NewOutput(w, opts...)
	p := out.ColorProfile()
	switch status {
	case machine.StatusAccepted:
		return out.String("ACCEPTED").Bold().Foreground(p.Color("#22c55e")).String()
	case machine.StatusRejected:
		return out.String("REJECTED").Bold().Foreground(p.Color("#ef4444")).String()
	default:
		return out.String("INCONCLUSIVE").Bold().Foreground(p.Color("#eab308")).String()
	}
}
