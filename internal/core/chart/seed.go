package chart

import (
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

func account(id, name string, t domain.AccountType) domain.Account {
	return domain.Account{ID: id, Name: name, Type: t, InitialBalance: decimal.Zero}
}

// DefaultAccounts returns the seed chart of a small trading business.
func DefaultAccounts() []domain.Account {
	return []domain.Account{
		// Assets (1xx)
		account("101", domain.AccountCash, domain.Asset),
		account("102", domain.AccountBank, domain.Asset),
		account("103", domain.AccountReceivable, domain.Asset),
		account("104", domain.AccountInventory, domain.Asset),
		account("151", domain.AccountOfficeEquipment, domain.Asset),
		account("152", domain.AccountAccumulatedDepreciation, domain.Asset),

		// Liabilities (2xx)
		account("201", domain.AccountPayable, domain.Liability),
		account("202", domain.AccountSalariesPayable, domain.Liability),
		account("251", domain.AccountLongTermBankDebt, domain.Liability),

		// Equity (3xx)
		account("301", domain.AccountPaidInCapital, domain.Equity),
		account("302", domain.AccountRetainedEarnings, domain.Equity),
		account("303", domain.AccountDrawings, domain.Equity),

		// Revenue (4xx)
		account("401", domain.AccountSalesRevenue, domain.Revenue),
		account("402", domain.AccountServiceRevenue, domain.Revenue),
		account("499", domain.AccountOtherIncome, domain.OtherIncome),

		// Expenses (5xx)
		account("501", domain.AccountCOGS, domain.Expense),
		account("502", domain.AccountSalaryExpense, domain.Expense),
		account("503", domain.AccountRentExpense, domain.Expense),
		account("504", domain.AccountUtilitiesExpense, domain.Expense),
		account("505", domain.AccountDepreciationExpense, domain.Expense),
		account("510", domain.AccountOperatingExpense, domain.Expense),
		account("599", domain.AccountOtherExpense, domain.OtherExpense),
	}
}
