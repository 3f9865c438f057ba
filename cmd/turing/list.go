package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jkinley/turing/pkg/machines"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the built-in machines",
	Run: func(cmd *cobra.Command, args []string) {
		for _, def := range machines.All() {
			fmt.Printf("%-18s %s\n", def.Name, def.Summary)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
