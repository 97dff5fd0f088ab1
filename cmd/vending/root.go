package main

import (
	"fmt"
	"os"

	"github.com/aretw0/vending/internal/cli"
	"github.com/aretw0/vending/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "vending",
	Short: "Vending is a single-process vending machine simulator",
	Long: `Vending simulates a machine stocked with two items. Insert coins, press a
selection code and read the machine display.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("config", "c", config.DefaultPath, "Machine configuration file (YAML)")
	rootCmd.PersistentFlags().Bool("debug", false, "Log machine events to stderr")
	rootCmd.PersistentFlags().Bool("extended", false, "Enable the report-issue selection (100)")
}

// runOptions reads the persistent flags.
func runOptions(cmd *cobra.Command) cli.RunOptions {
	path, _ := cmd.Flags().GetString("config")
	debug, _ := cmd.Flags().GetBool("debug")
	extended, _ := cmd.Flags().GetBool("extended")

	return cli.RunOptions{
		ConfigPath:     path,
		ConfigRequired: cmd.Flags().Changed("config"),
		Debug:          debug,
		Extended:       extended,
		Input:          cmd.InOrStdin(),
		Output:         cmd.OutOrStdout(),
	}
}
