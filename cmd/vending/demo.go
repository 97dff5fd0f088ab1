package main

import (
	"context"

	"github.com/aretw0/vending/internal/cli"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Replay a scripted purchase on an extended machine",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.RunDemo(context.Background(), runOptions(cmd))
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
