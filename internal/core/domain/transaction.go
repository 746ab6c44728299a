package domain

import "github.com/shopspring/decimal"

// TransactionType indicates whether a journal line is a Debit or a Credit.
type TransactionType string

const (
	Debit  TransactionType = "DEBIT"
	Credit TransactionType = "CREDIT"
)

// JournalLine is a single posting inside a journal entry, affecting one account.
type JournalLine struct {
	AccountID string          `json:"accountID"`
	Amount    decimal.Decimal `json:"amount"` // always positive once persisted
	Side      TransactionType `json:"side"`
}

// DebitLine is a shorthand for a debit posting.
func DebitLine(accountID string, amount decimal.Decimal) JournalLine {
	return JournalLine{AccountID: accountID, Amount: amount, Side: Debit}
}

// CreditLine is a shorthand for a credit posting.
func CreditLine(accountID string, amount decimal.Decimal) JournalLine {
	return JournalLine{AccountID: accountID, Amount: amount, Side: Credit}
}
