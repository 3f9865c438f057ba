package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jkinley/turing/internal/cli"
	"github.com/jkinley/turing/internal/logging"
	"github.com/jkinley/turing/pkg/machine"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run <machine>",
	Short: "Run a library machine on a tape",
	Long: `Builds one of the built-in machines, runs it until it halts or the
step budget is exhausted, and prints a report of the final configuration.

The exit code is 0 when the machine accepts, 1 when it rejects or the
budget runs out, and 2 on configuration or runtime errors.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		tape, _ := cmd.Flags().GetString("tape")
		maxSteps, _ := cmd.Flags().GetInt("max-steps")
		verbose, _ := cmd.Flags().GetBool("verbose")
		progress, _ := cmd.Flags().GetBool("progress")
		output, _ := cmd.Flags().GetString("output")
		debug, _ := cmd.Flags().GetBool("debug")

		logger := logging.NewNop()
		if debug {
			logger = logging.New(slog.LevelDebug)
		}

		code, err := cli.Run(cli.RunOptions{
			MachineName: args[0],
			Tape:        tape,
			MaxSteps:    maxSteps,
			Verbose:     verbose,
			Progress:    progress,
			Output:      output,
			Logger:      logger,
		}, os.Stdout, os.Stderr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(code)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("tape", "t", "", "Initial tape (runes, or comma/space separated symbols); defaults to the machine's sample tape")
	runCmd.Flags().Int("max-steps", machine.DefaultMaxSteps, "Step budget before the run is abandoned as inconclusive")
	runCmd.Flags().BoolP("verbose", "v", false, "Print the tape, head and state after every step")
	runCmd.Flags().Bool("progress", false, "Show a step-count progress display")
	runCmd.Flags().StringP("output", "o", "text", "Report format: text, json or yaml")
}
