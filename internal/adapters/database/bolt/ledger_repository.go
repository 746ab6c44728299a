package bolt

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/SscSPs/pos_ledger/internal/utils/pagination"
	bbolt "go.etcd.io/bbolt"
)

func (s *Store) AppendEntry(_ context.Context, entry domain.JournalEntry) (string, error) {
	entry.ID = s.newID()
	err := s.db.Update(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, BucketEntries)
		if err != nil {
			return err
		}
		return put(b, entry.ID, entry)
	})
	if err != nil {
		return "", fmt.Errorf("failed to append journal entry: %w", err)
	}
	return entry.ID, nil
}

func (s *Store) UpdateEntry(_ context.Context, entryID string, entry domain.JournalEntry) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, BucketEntries)
		if err != nil {
			return err
		}
		existing, err := getEntry(b, entryID)
		if err != nil {
			return err
		}
		existing.Date = entry.Date
		existing.Description = entry.Description
		existing.Reference = entry.Reference
		existing.Lines = entry.Lines
		return put(b, entryID, existing)
	})
}

func (s *Store) DeleteEntry(_ context.Context, entryID string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, BucketEntries)
		if err != nil {
			return err
		}
		if b.Get([]byte(entryID)) == nil {
			return fmt.Errorf("%w: journal entry %s", apperrors.ErrNotFound, entryID)
		}
		return b.Delete([]byte(entryID))
	})
}

func (s *Store) FindEntryByID(_ context.Context, entryID string) (*domain.JournalEntry, error) {
	var entry domain.JournalEntry
	err := s.db.View(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, BucketEntries)
		if err != nil {
			return err
		}
		entry, err = getEntry(b, entryID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func getEntry(b *bbolt.Bucket, entryID string) (domain.JournalEntry, error) {
	data := b.Get([]byte(entryID))
	if data == nil {
		return domain.JournalEntry{}, fmt.Errorf("%w: journal entry %s", apperrors.ErrNotFound, entryID)
	}
	var e domain.JournalEntry
	if err := json.Unmarshal(data, &e); err != nil {
		return domain.JournalEntry{}, fmt.Errorf("failed to decode journal entry %s: %w", entryID, err)
	}
	return e, nil
}

func (s *Store) ListEntries(_ context.Context) ([]domain.JournalEntry, error) {
	entries := []domain.JournalEntry{}
	err := s.db.View(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, BucketEntries)
		if err != nil {
			return err
		}
		// Unmarshal copies out of the mmap, so the values stay valid after the transaction.
		return b.ForEach(func(k, v []byte) error {
			var e domain.JournalEntry
			if err := json.Unmarshal(v, &e); err != nil {
				return fmt.Errorf("failed to decode journal entry %s: %w", k, err)
			}
			entries = append(entries, e)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	domain.SortForListing(entries)
	return entries, nil
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
