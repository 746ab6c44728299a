package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset        AccountType = "ASSET"
	Liability    AccountType = "LIABILITY"
	Equity       AccountType = "EQUITY"
	Revenue      AccountType = "REVENUE"
	Expense      AccountType = "EXPENSE"
	OtherIncome  AccountType = "OTHER_INCOME"
	OtherExpense AccountType = "OTHER_EXPENSE"
)

// IsValid reports whether t is one of the known account types.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Revenue, Expense, OtherIncome, OtherExpense:
		return true
	}
	return false
}

// IsCreditNormal reports whether accounts of this type carry a natural credit balance.
// Their balances are presented as absolute values.
func (t AccountType) IsCreditNormal() bool {
	switch t {
	case Liability, Equity, Revenue, OtherIncome:
		return true
	}
	return false
}

// Account is a single entry of the chart of accounts. Accounts are created once from the
// chart seed and never change afterwards.
type Account struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Type           AccountType     `json:"type"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
}

// Well-known account names of the default chart. Posting rules and the statement builder
// look accounts up by these names.
const (
	AccountCash                    = "Kas"
	AccountBank                    = "Bank"
	AccountReceivable              = "Piutang Usaha"
	AccountInventory               = "Persediaan Barang Dagang"
	AccountOfficeEquipment         = "Peralatan Kantor"
	AccountAccumulatedDepreciation = "Akumulasi Penyusutan Peralatan"
	AccountPayable                 = "Utang Usaha"
	AccountSalariesPayable         = "Utang Gaji"
	AccountLongTermBankDebt        = "Utang Bank Jangka Panjang"
	AccountPaidInCapital           = "Modal Disetor"
	AccountRetainedEarnings        = "Laba Ditahan"
	AccountDrawings                = "Prive"
	AccountSalesRevenue            = "Pendapatan Penjualan Barang"
	AccountServiceRevenue          = "Pendapatan Jasa"
	AccountOtherIncome             = "Pendapatan Lain-lain"
	AccountCOGS                    = "Harga Pokok Penjualan"
	AccountSalaryExpense           = "Beban Gaji"
	AccountRentExpense             = "Beban Sewa"
	AccountUtilitiesExpense        = "Beban Listrik, Air, Telepon"
	AccountDepreciationExpense     = "Beban Penyusutan Peralatan"
	AccountOperatingExpense        = "Beban Operasional"
	AccountOtherExpense            = "Beban Lain-lain"
)
