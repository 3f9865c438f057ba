package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jkinley/turing/pkg/machine"
)

// Report is the machine's observable state after a run, shaped for the CLI
// consumer. It reads the inspection API only; it never touches the run.
type Report struct {
	Machine    string `json:"machine" yaml:"machine"`
	Accepted   bool   `json:"accepted" yaml:"accepted"`
	Status     string `json:"status" yaml:"status"`
	Steps      int    `json:"steps" yaml:"steps"`
	FinalState string `json:"final_state" yaml:"final_state"`
	HeadPos    int    `json:"head_pos" yaml:"head_pos"`
	Tape       string `json:"tape" yaml:"tape"`
}

// NewReport captures the machine's state after a run.
func NewReport(name string, accepted bool, m *machine.Machine) Report {
	return Report{
		Machine:    name,
		Accepted:   accepted,
		Status:     m.Status().String(),
		Steps:      m.Steps(),
		FinalState: m.Current().Name(),
		HeadPos:    m.HeadPos(),
		Tape:       FormatTape(m.Tape()),
	}
}

// WriteReport renders the report in the requested format: "text" (default),
// "json" or "yaml".
func WriteReport(w io.Writer, r Report, format string) error {
	switch format {
	case "", "text":
		fmt.Fprintf(w, "machine:     %s\n", r.Machine)
		fmt.Fprintf(w, "status:      %s\n", r.Status)
		fmt.Fprintf(w, "steps:       %d\n", r.Steps)
		fmt.Fprintf(w, "final state: %s\n", r.FinalState)
		fmt.Fprintf(w, "head:        %d\n", r.HeadPos)
		fmt.Fprintf(w, "tape:        %s\n", r.Tape)
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "yaml":
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
	}
}
