package mapping

import (
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/SscSPs/pos_ledger/internal/models"
)

// ToModelJournalEntry converts a domain JournalEntry to its entry row. Lines are mapped
// separately with ToModelJournalLines.
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:     d.ID,
		EntryDate:   d.Date,
		CreatedAt:   d.CreatedAt,
		Description: d.Description,
		Reference:   d.Reference,
		Origin:      models.JournalOrigin(d.Origin),
	}
}

// ToModelJournalLines converts the lines of a domain JournalEntry to line rows, keeping their order.
func ToModelJournalLines(entryID string, lines []domain.JournalLine) []models.JournalLine {
	ms := make([]models.JournalLine, len(lines))
	for i, l := range lines {
		ms[i] = models.JournalLine{
			EntryID:         entryID,
			Position:        i,
			AccountID:       l.AccountID,
			Amount:          l.Amount,
			TransactionType: models.TransactionType(l.Side),
		}
	}
	return ms
}

// ToDomainJournalEntry converts an entry row and its line rows to a domain JournalEntry.
// Lines must already be ordered by position.
func ToDomainJournalEntry(m models.JournalEntry, lines []models.JournalLine) domain.JournalEntry {
	d := domain.JournalEntry{
		ID:          m.EntryID,
		Date:        m.EntryDate,
		CreatedAt:   m.CreatedAt,
		Description: m.Description,
		Reference:   m.Reference,
		Origin:      domain.JournalOrigin(m.Origin),
		Lines:       make([]domain.JournalLine, len(lines)),
	}
	for i, l := range lines {
		d.Lines[i] = domain.JournalLine{
			AccountID: l.AccountID,
			Amount:    l.Amount,
			Side:      domain.TransactionType(l.TransactionType),
		}
	}
	return d
}
