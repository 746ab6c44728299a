package dto

import (
	"time"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ManualLineRequest is one side of a manual entry as typed by the user.
type ManualLineRequest struct {
	AccountName string          `json:"accountName"`
	Amount      decimal.Decimal `json:"amount"`
}

// ManualEntryRequest is the payload of the manual journal editor, used for create and edit.
type ManualEntryRequest struct {
	Date        string              `json:"date" binding:"required"` // YYYY-MM-DD
	Description string              `json:"description"`
	Reference   string              `json:"reference"`
	Debits      []ManualLineRequest `json:"debits"`
	Credits     []ManualLineRequest `json:"credits"`
}

// ListJournalsParams defines query parameters for listing journal entries.
type ListJournalsParams struct {
	Limit     int     `form:"limit,default=20" binding:"min=0,max=500"`
	NextToken *string `form:"nextToken"`
}

// JournalLineResponse defines the data returned for a journal line.
type JournalLineResponse struct {
	AccountID   string          `json:"accountID"`
	AccountName string          `json:"accountName,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Side        string          `json:"side"` // DEBIT or CREDIT
}

// JournalResponse defines the data returned for a journal entry.
type JournalResponse struct {
	EntryID     string                `json:"entryID"`
	Date        string                `json:"date"`
	CreatedAt   time.Time             `json:"createdAt"`
	Description string                `json:"description"`
	Reference   string                `json:"reference"`
	Origin      domain.JournalOrigin  `json:"origin"`
	Lines       []JournalLineResponse `json:"lines"`
}

// ListJournalsResponse wraps one page of journal entries.
type ListJournalsResponse struct {
	Journals  []JournalResponse `json:"journals"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// AccountNamer resolves account ids to display names.
type AccountNamer interface {
	ByID(id string) (domain.Account, bool)
}

// ToJournalResponse converts a domain.JournalEntry to JournalResponse DTO.
// Account names are filled in when namer is not nil.
func ToJournalResponse(e *domain.JournalEntry, namer AccountNamer) JournalResponse {
	lines := make([]JournalLineResponse, len(e.Lines))
	for i, l := range e.Lines {
		lines[i] = JournalLineResponse{
			AccountID: l.AccountID,
			Amount:    l.Amount,
			Side:      string(l.Side),
		}
		if namer != nil {
			if a, ok := namer.ByID(l.AccountID); ok {
				lines[i].AccountName = a.Name
			}
		}
	}
	return JournalResponse{
		EntryID:     e.ID,
		Date:        domain.FormatDate(e.Date),
		CreatedAt:   e.CreatedAt,
		Description: e.Description,
		Reference:   e.Reference,
		Origin:      e.Origin,
		Lines:       lines,
	}
}

// ToJournalResponses converts a slice of domain.JournalEntry to []JournalResponse.
func ToJournalResponses(entries []domain.JournalEntry, namer AccountNamer) []JournalResponse {
	responses := make([]JournalResponse, len(entries))
	for i := range entries {
		responses[i] = ToJournalResponse(&entries[i], namer)
	}
	return responses
}
