package memory

import (
	"context"
	"fmt"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/SscSPs/pos_ledger/internal/utils/pagination"
)

func (s *Store) AppendEntry(_ context.Context, entry domain.JournalEntry) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry = cloneEntry(entry)
	entry.ID = s.newID()
	s.entries[entry.ID] = entry
	return entry.ID, nil
}

func (s *Store) UpdateEntry(_ context.Context, entryID string, entry domain.JournalEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.entries[entryID]
	if !ok {
		return fmt.Errorf("%w: journal entry %s", apperrors.ErrNotFound, entryID)
	}
	existing.Date = entry.Date
	existing.Description = entry.Description
	existing.Reference = entry.Reference
	existing.Lines = append([]domain.JournalLine(nil), entry.Lines...)
	s.entries[entryID] = existing
	return nil
}

func (s *Store) DeleteEntry(_ context.Context, entryID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[entryID]; !ok {
		return fmt.Errorf("%w: journal entry %s", apperrors.ErrNotFound, entryID)
	}
	delete(s.entries, entryID)
	return nil
}

func (s *Store) FindEntryByID(_ context.Context, entryID string) (*domain.JournalEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[entryID]
	if !ok {
		return nil, fmt.Errorf("%w: journal entry %s", apperrors.ErrNotFound, entryID)
	}
	e = cloneEntry(e)
	return &e, nil
}

func (s *Store) ListEntries(_ context.Context) ([]domain.JournalEntry, error) {
	s.mu.RLock()
	out := make([]domain.JournalEntry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, cloneEntry(e))
	}
	s.mu.RUnlock()

	domain.SortForListing(out)
	return out, nil
}

func (s *Store) ListEntriesPage(ctx context.Context, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	all, err := s.ListEntries(ctx)
	if err != nil {
		return nil, nil, err
	}
	page, next, err := pagination.Page(all, limit, nextToken)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return page, next, nil
}
