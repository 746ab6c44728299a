package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/pos_ledger/internal/core/chart"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/SscSPs/pos_ledger/internal/core/ledger"
	portsrepo "github.com/SscSPs/pos_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_ledger/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger/internal/platform/metrics"
)

// reportingService implements the ReportingService interface over a snapshot of the ledger.
type reportingService struct {
	BaseService
	ledgerRepo portsrepo.LedgerReader
	chart      *chart.Chart
}

// NewReportingService creates a new reporting service
func NewReportingService(ledgerRepo portsrepo.LedgerReader, c *chart.Chart) portssvc.ReportingService {
	return &reportingService{
		ledgerRepo: ledgerRepo,
		chart:      c,
	}
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

func (s *reportingService) aggregate(ctx context.Context, period *domain.Period) (*ledger.Balances, error) {
	entries, err := s.ledgerRepo.ListEntries(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load journal entries for report")
		return nil, err
	}

	balances := ledger.AggregateBalances(entries, s.chart, period, s.GetLogger(ctx))
	if n := len(balances.Skipped); n > 0 {
		metrics.SkippedLines.Add(float64(n))
	}
	return balances, nil
}

// GetFinancialSummary builds the income statement, balance sheet and cash-flow summary.
func (s *reportingService) GetFinancialSummary(ctx context.Context, period *domain.Period) (*domain.FinancialSummary, error) {
	balances, err := s.aggregate(ctx, period)
	if err != nil {
		return nil, err
	}

	summary := ledger.BuildFinancialSummary(balances, period)
	if !summary.BalanceSheet.IsBalanced {
		metrics.UnbalancedSheets.Inc()
		s.LogWarn(ctx, "Balance sheet does not balance",
			slog.String("imbalance", summary.BalanceSheet.ImbalanceDelta.String()),
			slog.String("total_assets", summary.BalanceSheet.TotalAssets.String()))
	}
	return &summary, nil
}

// GetAccountBalances returns every account of the chart with its raw and display balance.
func (s *reportingService) GetAccountBalances(ctx context.Context, period *domain.Period) ([]domain.AccountBalance, error) {
	balances, err := s.aggregate(ctx, period)
	if err != nil {
		return nil, err
	}
	return balances.List(), nil
}
