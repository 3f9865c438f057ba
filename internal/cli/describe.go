package cli

import (
	"fmt"
	"strings"

	"github.com/jkinley/turing/pkg/machines"
)

// Markdown builds a machine description: name, summary, empty symbol and the
// full transition table grouped by state. Building the machine on its default
// tape doubles as validation of the definition.
func Markdown(def machines.Definition) (string, error) {
	m, err := def.New(nil)
	if err != nil {
		return "", fmt.Errorf("definition %q does not build: %w", def.Name, err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n%s\n\n", def.Name, def.Summary)
	fmt.Fprintf(&b, "Empty symbol `%s`, implicit reject: %v, default tape `%s`.\n\n",
		m.EmptySymbol(), m.ImplicitReject(), FormatTape(def.DefaultTape))

	b.WriteString("| State | Role | Read | Write | Move | Next |\n")
	b.WriteString("|-------|------|------|-------|------|------|\n")
	for _, s := range m.States() {
		ts := s.Transitions()
		if len(ts) == 0 {
			fmt.Fprintf(&b, "| %s | %s | | | | |\n", s.Name(), s.Role())
			continue
		}
		for _, t := range ts {
			fmt.Fprintf(&b, "| %s | %s | `%s` | `%s` | %s | %s |\n",
				s.Name(), s.Role(), t.Trigger(), t.Write(), t.Direction(), t.Target())
		}
	}
	return b.String(), nil
}
