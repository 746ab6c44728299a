package pgsql

import (
	portsrepo "github.com/SscSPs/pos_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the PostgreSQL repositories over one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		LedgerRepo:  newPgxLedgerRepository(dbPool),
		ProductRepo: newPgxProductRepository(dbPool),
	}
}

// Store bundles both repositories with the pool lifecycle.
type Store struct {
	BaseRepository
	*PgxLedgerRepository
	*PgxProductRepository
}

var (
	_ portsrepo.LedgerRepositoryFacade  = (*Store)(nil)
	_ portsrepo.ProductRepositoryFacade = (*Store)(nil)
	_ portsrepo.StoreLifecycle          = (*Store)(nil)
)

// NewStore creates a Store over dbPool.
func NewStore(dbPool *pgxpool.Pool) *Store {
	base := BaseRepository{Pool: dbPool}
	return &Store{
		BaseRepository:       base,
		PgxLedgerRepository:  &PgxLedgerRepository{BaseRepository: base},
		PgxProductRepository: &PgxProductRepository{BaseRepository: base},
	}
}
