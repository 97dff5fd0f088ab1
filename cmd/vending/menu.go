package main

import (
	"github.com/aretw0/vending/internal/cli"
	"github.com/spf13/cobra"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Show the selection codes and prices",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.RunMenu(runOptions(cmd))
	},
}

func init() {
	rootCmd.AddCommand(menuCmd)
}
