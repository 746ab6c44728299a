package services

import (
	"context"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/SscSPs/pos_ledger/internal/dto"
)

// JournalReaderSvc defines read operations for journal data
type JournalReaderSvc interface {
	// GetEntry retrieves a specific journal entry by its ID.
	GetEntry(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// ListEntries retrieves a paginated list of journal entries, newest first.
	ListEntries(ctx context.Context, params dto.ListJournalsParams) (*dto.ListJournalsResponse, error)
}

// JournalWriterSvc defines write operations for manual journal entries
type JournalWriterSvc interface {
	// CreateManualEntry validates a user-composed entry and appends it to the ledger.
	CreateManualEntry(ctx context.Context, req dto.ManualEntryRequest) (*domain.JournalEntry, error)

	// UpdateManualEntry validates a new payload and replaces an existing entry in place.
	UpdateManualEntry(ctx context.Context, entryID string, req dto.ManualEntryRequest) (*domain.JournalEntry, error)

	// DeleteEntry removes an entry from the ledger.
	DeleteEntry(ctx context.Context, entryID string) error
}

// JournalSvcFacade combines all journal-related service interfaces
// This is a facade for clients that need access to all operations
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
}
