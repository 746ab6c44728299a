package services

import (
	"context"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
)

// AccountSvc exposes the read-only chart of accounts.
type AccountSvc interface {
	// ListAccounts returns the chart ordered by account id.
	ListAccounts(ctx context.Context) []domain.Account

	// ResolveAccountName maps a user-entered account name to its account.
	ResolveAccountName(ctx context.Context, name string) (*domain.Account, error)
}
