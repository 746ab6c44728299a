package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/pos_ledger/internal/core/chart"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/pos_ledger/internal/core/ports/services"
)

// accountService serves the chart of accounts loaded at startup.
type accountService struct {
	BaseService
	chart *chart.Chart
}

// NewAccountService creates a new account service over an immutable chart.
func NewAccountService(c *chart.Chart) portssvc.AccountSvc {
	return &accountService{chart: c}
}

var _ portssvc.AccountSvc = (*accountService)(nil)

func (s *accountService) ListAccounts(_ context.Context) []domain.Account {
	return s.chart.Accounts()
}

func (s *accountService) ResolveAccountName(ctx context.Context, name string) (*domain.Account, error) {
	id, err := s.chart.ResolveName(name)
	if err != nil {
		s.LogDebug(ctx, "Account name did not resolve", slog.String("name", name))
		return nil, err
	}
	account, _ := s.chart.ByID(id)
	return &account, nil
}
