package graph

import (
	"fmt"
	"strings"

	"github.com/jkinley/turing/pkg/machine"
)

// GenerateMermaid produces a Mermaid flowchart of a machine's state graph.
// It applies semantic styling:
// - Start: ((Circle))
// - Accepting: [[Subroutine]]
// - Rejecting: [/Parallelogram/]
// - Normal: [Rectangle]
// Edges carry "read/write,move" labels. When a machine is given, its current
// state is highlighted.
func GenerateMermaid(states []*machine.State, current string) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, s := range states {
		safeID := sanitizeMermaidID(s.Name())

		opener, closer := "[", "]"
		switch s.Role() {
		case machine.RoleStart:
			opener, closer = "((", "))"
		case machine.RoleAccepting:
			opener, closer = "[[", "]]"
		case machine.RoleRejecting:
			opener, closer = "[/", "/]"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, s.Name(), closer))

		for _, t := range s.Transitions() {
			label := fmt.Sprintf("%s/%s,%s",
				escapeMermaidLabel(string(t.Trigger())),
				escapeMermaidLabel(string(t.Write())),
				t.Direction())
			sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n",
				safeID, label, sanitizeMermaidID(t.Target())))
		}
	}

	if current != "" {
		sb.WriteString("\n    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
		sb.WriteString(fmt.Sprintf("    class %s current;\n", sanitizeMermaidID(current)))
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}

func escapeMermaidLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}
