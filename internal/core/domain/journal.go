package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// JournalOrigin tells whether an entry was typed in by a user or generated from a business event.
type JournalOrigin string

const (
	OriginManual    JournalOrigin = "Manual"
	OriginAutomatic JournalOrigin = "Automatic"
)

// JournalEntry is a posted, balanced set of debit and credit lines.
type JournalEntry struct {
	ID          string        `json:"id"`
	Date        time.Time     `json:"date"`      // accounting date
	CreatedAt   time.Time     `json:"createdAt"` // insertion time, primary sort key
	Description string        `json:"description"`
	Reference   string        `json:"reference"`
	Origin      JournalOrigin `json:"origin"`
	Lines       []JournalLine `json:"lines"`
}

// Totals returns the sum of debit and credit amounts of the entry.
func (e JournalEntry) Totals() (debits, credits decimal.Decimal) {
	debits, credits = decimal.Zero, decimal.Zero
	for _, l := range e.Lines {
		if l.Side == Debit {
			debits = debits.Add(l.Amount)
		} else {
			credits = credits.Add(l.Amount)
		}
	}
	return debits, credits
}

// IsBalanced reports whether debits equal credits.
func (e JournalEntry) IsBalanced() bool {
	d, c := e.Totals()
	return d.Equal(c)
}

// ListedBefore reports whether a is listed before b: newest createdAt first, then newest date,
// then id ascending.
func ListedBefore(a, b JournalEntry) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	if !a.Date.Equal(b.Date) {
		return a.Date.After(b.Date)
	}
	return a.ID < b.ID
}

// SortForListing orders entries the way the ledger lists them.
func SortForListing(entries []JournalEntry) {
	sort.SliceStable(entries, func(i, j int) bool { return ListedBefore(entries[i], entries[j]) })
}
