package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/jkinley/turing/pkg/machine"
)

// Progress paints a single-line step-count display, rewritten in place with
// a carriage return after every step. It is purely cosmetic and has no
// effect on the run; call Finish to terminate the line once the run ends.
type Progress struct {
	w        io.Writer
	maxSteps int
	barWidth int
	active   bool
}

// NewProgress creates a progress display for a run bounded by maxSteps.
// The bar is sized to the terminal when w is one; otherwise a fixed width
// is used.
func NewProgress(w io.Writer, maxSteps int) *Progress {
	barWidth := 24
	if f, ok := w.(*os.File); ok {
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 30 {
			barWidth = cols - 30
			if barWidth > 48 {
				barWidth = 48
			}
		}
	}
	return &Progress{w: w, maxSteps: maxSteps, barWidth: barWidth}
}

// OnStep repaints the progress line.
func (p *Progress) OnStep(s machine.Snapshot) {
	p.active = true
	fmt.Fprintf(p.w, "\r%s %d/%d steps", p.bar(s.Step), s.Step, p.maxSteps)
}

// Finish terminates the progress line if anything was painted.
func (p *Progress) Finish() {
	if p.active {
		fmt.Fprintln(p.w)
	}
}

func (p *Progress) bar(step int) string {
	filled := p.barWidth
	if p.maxSteps > 0 && step < p.maxSteps {
		filled = step * p.barWidth / p.maxSteps
	}
	return "[" + strings.Repeat("=", filled) + strings.Repeat(" ", p.barWidth-filled) + "]"
}
