package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jkinley/turing/internal/cli"
	"github.com/jkinley/turing/internal/presentation/graph"
	"github.com/jkinley/turing/internal/presentation/tui"
	"github.com/jkinley/turing/pkg/machines"
)

var describeCmd = &cobra.Command{
	Use:   "describe <machine>",
	Short: "Show a machine's transition table",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		def, ok := machines.Lookup(args[0])
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown machine %q (see 'turing list')\n", args[0])
			os.Exit(2)
		}

		if mermaid, _ := cmd.Flags().GetBool("graph"); mermaid {
			m, err := def.New(nil)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(2)
			}
			fmt.Print(graph.GenerateMermaid(m.States(), ""))
			return
		}

		md, err := cli.Markdown(def)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}

		rendered, err := tui.NewRenderer()(md)
		if err != nil {
			// Fall back to the raw markdown rather than failing the command.
			rendered = md
		}
		fmt.Print(rendered)
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)

	describeCmd.Flags().Bool("graph", false, "Emit a Mermaid state diagram instead of the rendered table")
}
