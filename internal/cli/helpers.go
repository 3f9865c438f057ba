package cli

import (
	"strings"

	"github.com/jkinley/turing/pkg/machine"
)

// ParseTape turns a flag value into tape symbols. A plain string is read
// rune by rune ("aba" -> a, b, a); values containing spaces or commas are
// split on them instead, which allows multi-character symbols.
func ParseTape(s string) []machine.Symbol {
	if s == "" {
		return nil
	}
	if strings.ContainsAny(s, ", ") {
		fields := strings.FieldsFunc(s, func(r rune) bool {
			return r == ',' || r == ' '
		})
		out := make([]machine.Symbol, 0, len(fields))
		for _, f := range fields {
			out = append(out, machine.Symbol(f))
		}
		return out
	}
	out := make([]machine.Symbol, 0, len(s))
	for _, r := range s {
		out = append(out, machine.Symbol(string(r)))
	}
	return out
}

// FormatTape is the inverse of ParseTape for display: cells joined by a
// single space.
func FormatTape(cells []machine.Symbol) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = string(c)
	}
	return strings.Join(parts, " ")
}
