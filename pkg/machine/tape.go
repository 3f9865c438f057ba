package machine

import "strings"

// Tape is the machine's working memory: a finite materialized window of a
// conceptually unbounded sequence of symbols. Cells outside the window read
// as the empty symbol; the window grows one cell at a time as the head walks
// off either end.
type Tape struct {
	cells []Symbol
	empty Symbol
}

// NewTape copies the given cells into an owned tape. An empty input
// materializes as a single empty cell so that position 0 is always valid.
func NewTape(cells []Symbol, empty Symbol) *Tape {
	owned := make([]Symbol, len(cells))
	copy(owned, cells)
	if len(owned) == 0 {
		owned = append(owned, empty)
	}
	return &Tape{cells: owned, empty: empty}
}

// Len returns the number of materialized cells.
func (t *Tape) Len() int { return len(t.cells) }

// Read returns the symbol at position i, or the empty symbol when i lies
// outside the materialized window.
func (t *Tape) Read(i int) Symbol {
	if i < 0 || i >= len(t.cells) {
		return t.empty
	}
	return t.cells[i]
}

// Write stores sym at position i. The position must be materialized.
func (t *Tape) Write(i int, sym Symbol) {
	t.cells[i] = sym
}

// GrowRight appends one empty cell at the end of the window.
func (t *Tape) GrowRight() {
	t.cells = append(t.cells, t.empty)
}

// GrowLeft inserts one empty cell before the start of the window. Existing
// cells shift one position to the right.
func (t *Tape) GrowLeft() {
	t.cells = append([]Symbol{t.empty}, t.cells...)
}

// Cells returns a copy of the materialized window.
func (t *Tape) Cells() []Symbol {
	out := make([]Symbol, len(t.cells))
	copy(out, t.cells)
	return out
}

func (t *Tape) String() string {
	parts := make([]string, len(t.cells))
	for i, c := range t.cells {
		parts[i] = string(c)
	}
	return strings.Join(parts, " ")
}
