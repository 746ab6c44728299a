package main

import (
	"fmt"
	"os"

	"github.com/SscSPs/pos_ledger/internal/core/chart"
	"github.com/SscSPs/pos_ledger/internal/platform/config"
	"github.com/spf13/cobra"
)

func newChartCommand(configFile *string) *cobra.Command {
	chartCmd := &cobra.Command{
		Use:   "chart",
		Short: "Inspect the chart of accounts",
	}
	chartCmd.AddCommand(newChartExportCommand(configFile))
	return chartCmd
}

func newChartExportCommand(configFile *string) *cobra.Command {
	var format, output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the active chart of accounts as YAML or CSV",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig(*configFile)
			if err != nil {
				return err
			}
			ledgerChart, err := loadChart(cfg, newLogger(cfg, cmd.ErrOrStderr()))
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}

			switch format {
			case "yaml", "yml":
				return chart.WriteYAML(w, ledgerChart.Accounts())
			case "csv":
				return chart.WriteCSV(w, ledgerChart.Accounts())
			default:
				return fmt.Errorf("unsupported format %q, use yaml or csv", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "output format: yaml or csv")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}
