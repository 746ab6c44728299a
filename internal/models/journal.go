package models

import "time"

// JournalOrigin tells whether a stored entry was typed in or generated from a business event.
type JournalOrigin string

const (
	Manual    JournalOrigin = "Manual"
	Automatic JournalOrigin = "Automatic"
)

// JournalEntry is a row of the journal_entries table.
type JournalEntry struct {
	EntryID     string        `json:"entryID"`   // Primary Key (UUID)
	EntryDate   time.Time     `json:"entryDate"` // DATE column, accounting date
	CreatedAt   time.Time     `json:"createdAt"` // insertion time, primary sort key
	Description string        `json:"description"`
	Reference   string        `json:"reference"`
	Origin      JournalOrigin `json:"origin"`
}
