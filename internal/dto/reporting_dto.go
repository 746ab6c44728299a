package dto

import (
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportPeriodParams holds the optional report window. Both dates or neither must be given.
type ReportPeriodParams struct {
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
}

// FinancialSummaryResponse represents the three statements of one report run.
type FinancialSummaryResponse struct {
	StartDate       string                 `json:"startDate,omitempty"`
	EndDate         string                 `json:"endDate,omitempty"`
	IncomeStatement domain.IncomeStatement `json:"incomeStatement"`
	BalanceSheet    domain.BalanceSheet    `json:"balanceSheet"`
	CashFlow        domain.CashFlowSummary `json:"cashFlow"`
	Warnings        []string               `json:"warnings,omitempty"`
}

// AccountBalanceResponse represents one row of the balance listing.
type AccountBalanceResponse struct {
	AccountID   string          `json:"accountID"`
	AccountName string          `json:"accountName"`
	AccountType string          `json:"accountType"`
	Raw         decimal.Decimal `json:"raw"`
	Balance     decimal.Decimal `json:"balance"`
}

// ToFinancialSummaryResponse converts a domain.FinancialSummary to its response DTO.
func ToFinancialSummaryResponse(s *domain.FinancialSummary) FinancialSummaryResponse {
	res := FinancialSummaryResponse{
		IncomeStatement: s.IncomeStatement,
		BalanceSheet:    s.BalanceSheet,
		CashFlow:        s.CashFlow,
		Warnings:        s.Warnings,
	}
	if s.Period != nil {
		res.StartDate = domain.FormatDate(s.Period.Start)
		res.EndDate = domain.FormatDate(s.Period.End)
	}
	return res
}

// ToAccountBalanceResponses converts domain balances to response rows.
func ToAccountBalanceResponses(rows []domain.AccountBalance) []AccountBalanceResponse {
	res := make([]AccountBalanceResponse, len(rows))
	for i, r := range rows {
		res[i] = AccountBalanceResponse{
			AccountID:   r.AccountID,
			AccountName: r.AccountName,
			AccountType: string(r.AccountType),
			Raw:         r.Raw,
			Balance:     r.Balance,
		}
	}
	return res
}
