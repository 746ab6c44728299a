package bolt

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/SscSPs/pos_ledger/internal/adapters/database/storetest"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestBoltStore(t *testing.T) {
	suite.Run(t, &storetest.StoreSuite{
		New: func(t *testing.T) storetest.Store {
			s, err := Open(filepath.Join(t.TempDir(), "ledger.bolt"))
			require.NoError(t, err)
			return s
		},
	})
}

func TestReopenKeepsProducts(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "ledger.bolt")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.SaveProduct(ctx, domain.Product{
		ID: "P1", Name: "Kopi", Price: decimal.RequireFromString("25000.50"), Stock: 3,
		CreatedAt: time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC),
	}))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	p, err := s.FindProductByID(ctx, "P1")
	require.NoError(t, err)
	assert.True(t, p.Price.Equal(decimal.RequireFromString("25000.5")))
	assert.Equal(t, 3, p.Stock)
}
