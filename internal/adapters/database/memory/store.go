// Package memory is the default store: a process-local ledger and product registry.
package memory

import (
	"context"
	"sync"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_ledger/internal/core/ports/repositories"
	"github.com/google/uuid"
)

// Store keeps journal entries and products in memory. Reads return copies, so callers work on
// snapshots that later writes cannot change.
type Store struct {
	mu       sync.RWMutex
	entries  map[string]domain.JournalEntry
	products map[string]domain.Product
	newID    func() string
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		entries:  make(map[string]domain.JournalEntry),
		products: make(map[string]domain.Product),
		newID:    uuid.NewString,
	}
}

var (
	_ portsrepo.LedgerRepositoryFacade  = (*Store)(nil)
	_ portsrepo.ProductRepositoryFacade = (*Store)(nil)
	_ portsrepo.StoreLifecycle          = (*Store)(nil)
)

// Ping always succeeds.
func (s *Store) Ping(context.Context) error { return nil }

// Close is a no-op.
func (s *Store) Close() error { return nil }

func cloneEntry(e domain.JournalEntry) domain.JournalEntry {
	e.Lines = append([]domain.JournalLine(nil), e.Lines...)
	return e
}
