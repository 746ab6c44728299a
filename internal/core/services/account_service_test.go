package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
	"github.com/SscSPs/pos_ledger/internal/core/chart"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/SscSPs/pos_ledger/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountService_ListAccounts(t *testing.T) {
	svc := services.NewAccountService(chart.Default())

	accounts := svc.ListAccounts(context.Background())
	assert.Len(t, accounts, len(chart.DefaultAccounts()))
	assert.Equal(t, "101", accounts[0].ID)
}

func TestAccountService_ResolveAccountName(t *testing.T) {
	svc := services.NewAccountService(chart.Default())
	ctx := context.Background()

	account, err := svc.ResolveAccountName(ctx, "  Kas ")
	require.NoError(t, err)
	assert.Equal(t, "101", account.ID)
	assert.Equal(t, domain.Asset, account.Type)

	account, err = svc.ResolveAccountName(ctx, "Kas Besar")
	assert.Nil(t, account)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
