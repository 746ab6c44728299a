package domain

import (
	"github.com/shopspring/decimal"
)

// AccountBalance is the aggregated balance of one account.
type AccountBalance struct {
	AccountID   string          `json:"accountID"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	Raw         decimal.Decimal `json:"raw"`     // debit-positive running total
	Balance     decimal.Decimal `json:"balance"` // presentation value
}

// SkippedLine records a journal line whose account is not in the chart.
type SkippedLine struct {
	EntryID   string          `json:"entryID"`
	AccountID string          `json:"accountID"`
	Amount    decimal.Decimal `json:"amount"`
	Side      TransactionType `json:"side"`
}

// IncomeStatement is the profit and loss part of the financial summary.
type IncomeStatement struct {
	SalesRevenue            decimal.Decimal `json:"salesRevenue"`
	ServiceRevenue          decimal.Decimal `json:"serviceRevenue"`
	OtherIncome             decimal.Decimal `json:"otherIncome"`
	TotalRevenue            decimal.Decimal `json:"totalRevenue"`
	COGS                    decimal.Decimal `json:"cogs"`
	GrossProfit             decimal.Decimal `json:"grossProfit"`
	SalaryExpense           decimal.Decimal `json:"salaryExpense"`
	RentExpense             decimal.Decimal `json:"rentExpense"`
	UtilitiesExpense        decimal.Decimal `json:"utilitiesExpense"`
	DepreciationExpense     decimal.Decimal `json:"depreciationExpense"`
	GeneralOperatingExpense decimal.Decimal `json:"generalOperatingExpense"`
	OperatingExpense        decimal.Decimal `json:"operatingExpense"`
	OtherExpense            decimal.Decimal `json:"otherExpense"`
	NetProfit               decimal.Decimal `json:"netProfit"`
}

// BalanceSheet is the financial position part of the financial summary.
type BalanceSheet struct {
	Cash                    decimal.Decimal `json:"cash"`
	Bank                    decimal.Decimal `json:"bank"`
	AccountsReceivable      decimal.Decimal `json:"accountsReceivable"`
	Inventory               decimal.Decimal `json:"inventory"`
	CurrentAssets           decimal.Decimal `json:"currentAssets"`
	OfficeEquipment         decimal.Decimal `json:"officeEquipment"`
	AccumulatedDepreciation decimal.Decimal `json:"accumulatedDepreciation"`
	FixedAssets             decimal.Decimal `json:"fixedAssets"`
	TotalAssets             decimal.Decimal `json:"totalAssets"`

	AccountsPayable     decimal.Decimal `json:"accountsPayable"`
	SalariesPayable     decimal.Decimal `json:"salariesPayable"`
	CurrentLiabilities  decimal.Decimal `json:"currentLiabilities"`
	LongTermLiabilities decimal.Decimal `json:"longTermLiabilities"`
	TotalLiabilities    decimal.Decimal `json:"totalLiabilities"`

	PaidInCapital           decimal.Decimal `json:"paidInCapital"`
	OpeningRetainedEarnings decimal.Decimal `json:"openingRetainedEarnings"`
	Drawings                decimal.Decimal `json:"drawings"`
	RetainedEarnings        decimal.Decimal `json:"retainedEarnings"`
	TotalEquity             decimal.Decimal `json:"totalEquity"`

	// ImbalanceDelta is TotalAssets - (TotalLiabilities + TotalEquity).
	ImbalanceDelta decimal.Decimal `json:"imbalanceDelta"`
	IsBalanced     bool            `json:"isBalanced"`
}

// CashFlowSummary covers operating cash movements only.
type CashFlowSummary struct {
	OpeningCash      decimal.Decimal `json:"openingCash"`
	NetOperatingCash decimal.Decimal `json:"netOperatingCash"`
	NetInvestingCash decimal.Decimal `json:"netInvestingCash"`
	NetFinancingCash decimal.Decimal `json:"netFinancingCash"`
	NetChangeInCash  decimal.Decimal `json:"netChangeInCash"`
	EndingCash       decimal.Decimal `json:"endingCash"`
}

// FinancialSummary holds every figure the three statements need.
type FinancialSummary struct {
	Period          *Period         `json:"period,omitempty"`
	IncomeStatement IncomeStatement `json:"incomeStatement"`
	BalanceSheet    BalanceSheet    `json:"balanceSheet"`
	CashFlow        CashFlowSummary `json:"cashFlow"`
	Warnings        []string        `json:"warnings,omitempty"`
}
