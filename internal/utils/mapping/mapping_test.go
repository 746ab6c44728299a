package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestJournalEntryRoundTrip(t *testing.T) {
	entry := domain.JournalEntry{
		ID:          "e1",
		Date:        time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		CreatedAt:   time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC),
		Description: "Penjualan TRX-1",
		Reference:   "TRX-1",
		Origin:      domain.OriginAutomatic,
		Lines: []domain.JournalLine{
			domain.DebitLine("101", decimal.NewFromInt(50000)),
			domain.CreditLine("401", decimal.NewFromInt(50000)),
		},
	}

	row := ToModelJournalEntry(entry)
	lines := ToModelJournalLines(row.EntryID, entry.Lines)
	assert.Equal(t, 1, lines[1].Position)
	assert.Equal(t, "e1", lines[1].EntryID)

	assert.Equal(t, entry, ToDomainJournalEntry(row, lines))
}

func TestProductRoundTrip(t *testing.T) {
	p := domain.Product{ID: "P1", Name: "Kopi", Price: decimal.NewFromInt(25000), Stock: 4, MinStock: 5}
	assert.Equal(t, p, ToDomainProduct(ToModelProduct(p)))
}
