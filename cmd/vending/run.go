package main

import (
	"context"

	"github.com/aretw0/vending/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Operate the machine interactively",
	Long: `Reads commands from stdin (insert N, choose N, return, status, menu, stats, quit)
and prints the machine display to stdout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sigCtx := cli.NewSignalContext(context.Background())
		defer sigCtx.Cancel()

		return cli.RunSession(sigCtx, runOptions(cmd))
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	// 'run' is the default when no command is provided.
	rootCmd.RunE = runCmd.RunE
}
