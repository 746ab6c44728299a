package repositories

import (
	"context"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
)

// LedgerReader defines read operations for posted journal entries
type LedgerReader interface {
	// FindEntryByID retrieves a journal entry by its identifier.
	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// ListEntries returns every entry, newest createdAt first, then newest date first.
	ListEntries(ctx context.Context) ([]domain.JournalEntry, error)

	// ListEntriesPage returns one page of entries in ListEntries order using token-based pagination.
	// It returns the entries, a token for the next page, and an error.
	ListEntriesPage(ctx context.Context, limit int, nextToken *string) ([]domain.JournalEntry, *string, error)
}

// LedgerWriter defines write operations for journal entries
type LedgerWriter interface {
	// AppendEntry persists a new entry and returns the identifier assigned by the store.
	AppendEntry(ctx context.Context, entry domain.JournalEntry) (string, error)

	// UpdateEntry replaces date, description, reference and lines of an existing entry.
	// Identity, creation time and origin are kept.
	UpdateEntry(ctx context.Context, entryID string, entry domain.JournalEntry) error

	// DeleteEntry removes an entry and its lines.
	DeleteEntry(ctx context.Context, entryID string) error
}

// LedgerRepositoryFacade combines all ledger repository interfaces
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}
