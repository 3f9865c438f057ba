package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/jkinley/turing/internal/logging"
	"github.com/jkinley/turing/internal/presentation/tui"
	"github.com/jkinley/turing/pkg/machine"
	"github.com/jkinley/turing/pkg/machines"
	"github.com/jkinley/turing/pkg/observability"
)

// RunOptions carries the flag values of the run command.
type RunOptions struct {
	MachineName string
	Tape        string
	MaxSteps    int
	Verbose     bool
	Progress    bool
	Output      string
	Logger      *slog.Logger
}

// Run builds the named library machine, executes it and writes a report to
// stdout. Verbose and progress diagnostics go to stderr so they never mix
// with the report. The returned exit code is 0 for accept, 1 for reject or
// an exhausted step budget, and 2 for configuration or runtime errors.
func Run(opts RunOptions, stdout, stderr io.Writer) (int, error) {
	def, ok := machines.Lookup(opts.MachineName)
	if !ok {
		return 2, fmt.Errorf("unknown machine %q (see 'turing list')", opts.MachineName)
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	if opts.MaxSteps <= 0 {
		opts.MaxSteps = machine.DefaultMaxSteps
	}

	m, err := def.New(ParseTape(opts.Tape), machine.WithLogger(logger))
	if err != nil {
		return 2, err
	}

	agg := observability.NewAggregator()
	if opts.Verbose {
		agg.Add(tui.NewTapeObserver(stderr))
	}
	var progress *tui.Progress
	if opts.Progress {
		progress = tui.NewProgress(stderr, opts.MaxSteps)
		agg.Add(progress)
	}

	accepted, runErr := m.Run(
		machine.WithMaxSteps(opts.MaxSteps),
		machine.WithObserver(agg),
	)
	if progress != nil {
		progress.Finish()
	}
	if runErr != nil {
		return 2, runErr
	}

	if opts.Output == "" || opts.Output == "text" {
		fmt.Fprintf(stdout, "%s\n", tui.Verdict(stdout, m.Status()))
	}
	if err := WriteReport(stdout, NewReport(opts.MachineName, accepted, m), opts.Output); err != nil {
		return 2, err
	}
	if accepted {
		return 0, nil
	}
	return 1, nil
}
