package models

import "github.com/shopspring/decimal"

// TransactionType indicates whether a journal line is a Debit or a Credit.
type TransactionType string

const (
	Debit  TransactionType = "DEBIT"
	Credit TransactionType = "CREDIT"
)

// JournalLine is a row of the journal_lines table.
type JournalLine struct {
	EntryID         string          `json:"entryID"`  // FK -> JournalEntry.EntryID
	Position        int             `json:"position"` // order of the line within its entry
	AccountID       string          `json:"accountID"`
	Amount          decimal.Decimal `json:"amount"` // Positive value; NUMERIC column
	TransactionType TransactionType `json:"transactionType"`
}
