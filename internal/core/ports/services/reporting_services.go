package services

import (
	"context"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
)

// ReportingService defines operations for generating financial reports
type ReportingService interface {
	// GetFinancialSummary builds the income statement, balance sheet and cash-flow summary.
	// A nil period covers the whole ledger.
	GetFinancialSummary(ctx context.Context, period *domain.Period) (*domain.FinancialSummary, error)

	// GetAccountBalances returns every account of the chart with its raw and display balance.
	GetAccountBalances(ctx context.Context, period *domain.Period) ([]domain.AccountBalance, error)
}
