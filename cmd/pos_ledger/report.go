package main

import (
	"encoding/json"
	"log/slog"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/SscSPs/pos_ledger/internal/core/services"
	"github.com/SscSPs/pos_ledger/internal/dto"
	"github.com/SscSPs/pos_ledger/internal/platform/config"
	"github.com/spf13/cobra"
)

func newReportCommand(configFile *string) *cobra.Command {
	var startDate, endDate string
	var balances bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the financial summary of the configured store as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig(*configFile)
			if err != nil {
				return err
			}
			logger := newLogger(cfg, cmd.ErrOrStderr())

			var period *domain.Period
			if startDate != "" || endDate != "" {
				p, err := domain.NewPeriod(startDate, endDate)
				if err != nil {
					return err
				}
				period = &p
			}

			ledgerChart, err := loadChart(cfg, logger)
			if err != nil {
				return err
			}
			repos, store, err := openStore(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			defer func() {
				if cerr := store.Close(); cerr != nil {
					logger.Error("Error closing store", slog.String("error", cerr.Error()))
				}
			}()

			reporting := services.NewServiceContainer(ledgerChart, repos).Reporting
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")

			if balances {
				rows, err := reporting.GetAccountBalances(cmd.Context(), period)
				if err != nil {
					return err
				}
				return enc.Encode(dto.ToAccountBalanceResponses(rows))
			}
			summary, err := reporting.GetFinancialSummary(cmd.Context(), period)
			if err != nil {
				return err
			}
			return enc.Encode(dto.ToFinancialSummaryResponse(summary))
		},
	}

	cmd.Flags().StringVar(&startDate, "start", "", "period start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endDate, "end", "", "period end date (YYYY-MM-DD), inclusive")
	cmd.Flags().BoolVar(&balances, "balances", false, "print account balances instead of the statements")
	cmd.MarkFlagsRequiredTogether("start", "end")
	return cmd
}
