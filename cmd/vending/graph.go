package main

import (
	"github.com/aretw0/vending/internal/cli"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the selection flowchart",
	Long:  `Outputs a Mermaid diagram (graph TD) of how a selection code is resolved and dispatched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.RunGraph(runOptions(cmd))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
