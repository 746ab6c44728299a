package main

import (
	"os"

	"github.com/spf13/cobra"
)

// @title POS Ledger API
// @version 1.0
// @description Double-entry bookkeeping core of a small-shop point-of-sale system.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCommand creates the root CLI command with all subcommands registered.
func newRootCommand() *cobra.Command {
	var configFile string

	rootCmd := &cobra.Command{
		Use:   "pos_ledger",
		Short: "Point-of-sale bookkeeping ledger",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "optional config file (yaml, toml, json or env)")

	rootCmd.AddCommand(
		newServeCommand(&configFile),
		newReportCommand(&configFile),
		newChartCommand(&configFile),
	)
	return rootCmd
}
