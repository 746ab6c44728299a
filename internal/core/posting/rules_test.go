package posting_test

import (
	"testing"
	"time"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
	"github.com/SscSPs/pos_ledger/internal/core/chart"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/SscSPs/pos_ledger/internal/core/posting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func assertLine(t *testing.T, line domain.JournalLine, accountID string, side domain.TransactionType, amount string) {
	t.Helper()
	assert.Equal(t, accountID, line.AccountID)
	assert.Equal(t, side, line.Side)
	assert.True(t, line.Amount.Equal(dec(amount)), "amount %s, want %s", line.Amount, amount)
}

func TestSale_PostsRevenueAndCOGS(t *testing.T) {
	rules := posting.NewRules(chart.Default())
	sale := domain.Sale{
		ID:            "TRX-1",
		Date:          date(2024, 3, 1),
		Amount:        dec("50000"),
		PaymentMethod: domain.PaymentCash,
		Items:         []domain.SaleItem{{ProductID: "P1", Quantity: 2}},
	}

	got, err := rules.Sale(sale, map[string]decimal.Decimal{"P1": dec("10000")})
	require.NoError(t, err)
	require.NotNil(t, got.Revenue)
	require.NotNil(t, got.COGS)

	require.Len(t, got.Revenue.Lines, 2)
	assertLine(t, got.Revenue.Lines[0], "101", domain.Debit, "50000")
	assertLine(t, got.Revenue.Lines[1], "401", domain.Credit, "50000")

	require.Len(t, got.COGS.Lines, 2)
	assertLine(t, got.COGS.Lines[0], "501", domain.Debit, "20000")
	assertLine(t, got.COGS.Lines[1], "104", domain.Credit, "20000")

	for _, e := range got.All() {
		assert.True(t, e.IsBalanced())
		assert.Equal(t, domain.OriginAutomatic, e.Origin)
		assert.Equal(t, "TRX-1", e.Reference)
		assert.Equal(t, sale.Date, e.Date)
	}
}

func TestSale_NoCOGSWhenCostUnknown(t *testing.T) {
	rules := posting.NewRules(chart.Default())
	sale := domain.Sale{
		ID:     "TRX-2",
		Amount: dec("15000"),
		Items:  []domain.SaleItem{{ProductID: "P9", Quantity: 3}, {ProductID: "P2", Quantity: 1}},
	}

	got, err := rules.Sale(sale, map[string]decimal.Decimal{"P2": decimal.Zero})
	require.NoError(t, err)
	assert.NotNil(t, got.Revenue)
	assert.Nil(t, got.COGS)
	assert.Len(t, got.All(), 1)
}

func TestSale_ZeroAmountSkipsRevenue(t *testing.T) {
	rules := posting.NewRules(chart.Default())
	got, err := rules.Sale(domain.Sale{ID: "TRX-3", Amount: decimal.Zero}, nil)
	require.NoError(t, err)
	assert.Empty(t, got.All())
}

func TestSale_MissingAccountIsConfigError(t *testing.T) {
	accounts := []domain.Account{}
	for _, a := range chart.DefaultAccounts() {
		if a.Name != domain.AccountSalesRevenue {
			accounts = append(accounts, a)
		}
	}
	c, err := chart.New(accounts)
	require.NoError(t, err)

	_, err = posting.NewRules(c).Sale(domain.Sale{ID: "TRX-4", Amount: dec("100")}, nil)
	assert.ErrorIs(t, err, apperrors.ErrConfiguration)
}

func TestPurchase_CreditDependsOnPaymentMethod(t *testing.T) {
	rules := posting.NewRules(chart.Default())
	tests := []struct {
		method       domain.PaymentMethod
		creditTarget string
	}{
		{domain.PaymentCash, "101"},
		{domain.PaymentTransfer, "101"},
		{domain.PaymentCredit, "201"},
		{"", "201"},
	}
	for _, tt := range tests {
		t.Run(string(tt.method), func(t *testing.T) {
			e, err := rules.Purchase(domain.Purchase{ID: "PUR-1", Amount: dec("120000"), PaymentMethod: tt.method})
			require.NoError(t, err)
			require.NotNil(t, e)
			assertLine(t, e.Lines[0], "104", domain.Debit, "120000")
			assertLine(t, e.Lines[1], tt.creditTarget, domain.Credit, "120000")
			assert.Equal(t, "PUR-1", e.Reference)
		})
	}
}

func TestPurchase_ZeroAmount(t *testing.T) {
	e, err := posting.NewRules(chart.Default()).Purchase(domain.Purchase{ID: "PUR-2"})
	require.NoError(t, err)
	assert.Nil(t, e)
}

func TestExpense_UnpaidUtilityGoesToPayable(t *testing.T) {
	rules := posting.NewRules(chart.Default())
	e, err := rules.Expense(domain.ExpenseRecord{
		ID:          "EXP-1",
		Category:    domain.CategoryOperational,
		Description: "Bayar token listrik",
		Amount:      dec("75000"),
		Status:      domain.StatusUnpaid,
	})
	require.NoError(t, err)
	require.NotNil(t, e)
	assertLine(t, e.Lines[0], "504", domain.Debit, "75000")
	assertLine(t, e.Lines[1], "201", domain.Credit, "75000")
	assert.True(t, e.IsBalanced())
}

func TestExpense_PaidGoesToCash(t *testing.T) {
	e, err := posting.NewRules(chart.Default()).Expense(domain.ExpenseRecord{
		ID:          "EXP-2",
		Category:    domain.CategoryOperational,
		Description: "Gaji karyawan Maret",
		Amount:      dec("2000000"),
		Status:      domain.StatusPaid,
	})
	require.NoError(t, err)
	assertLine(t, e.Lines[0], "502", domain.Debit, "2000000")
	assertLine(t, e.Lines[1], "101", domain.Credit, "2000000")
}

func TestExpense_FallsBackWhenAccountMissing(t *testing.T) {
	accounts := []domain.Account{}
	for _, a := range chart.DefaultAccounts() {
		if a.Name != domain.AccountRentExpense {
			accounts = append(accounts, a)
		}
	}
	c, err := chart.New(accounts)
	require.NoError(t, err)

	e, err := posting.NewRules(c).Expense(domain.ExpenseRecord{
		ID: "EXP-3", Category: domain.CategoryOperational, Description: "Sewa ruko", Amount: dec("500"), Status: domain.StatusPaid,
	})
	require.NoError(t, err)
	assertLine(t, e.Lines[0], "510", domain.Debit, "500")
}

func TestExpense_WholeChainMissing(t *testing.T) {
	c, err := chart.New([]domain.Account{
		{ID: "101", Name: domain.AccountCash, Type: domain.Asset},
		{ID: "201", Name: domain.AccountPayable, Type: domain.Liability},
	})
	require.NoError(t, err)

	_, err = posting.NewRules(c).Expense(domain.ExpenseRecord{
		ID: "EXP-4", Category: domain.CategoryAdministrative, Description: "ATK", Amount: dec("10"), Status: domain.StatusPaid,
	})
	assert.ErrorIs(t, err, apperrors.ErrConfiguration)
}

func TestClassifyExpense(t *testing.T) {
	tests := []struct {
		name        string
		category    domain.ExpenseCategory
		description string
		want        string
	}{
		{"salary", domain.CategoryOperational, "Gaji kasir", domain.AccountSalaryExpense},
		{"rent", domain.CategoryAdministrative, "sewa gudang", domain.AccountRentExpense},
		{"water", domain.CategoryOperational, "Tagihan AIR PDAM", domain.AccountUtilitiesExpense},
		{"phone", domain.CategorySelling, "pulsa telepon", domain.AccountUtilitiesExpense},
		{"depreciation", domain.CategoryOperational, "penyusutan etalase", domain.AccountDepreciationExpense},
		{"other category wins", domain.CategoryOther, "gaji bonus", domain.AccountOtherExpense},
		{"unmatched operational", domain.CategoryOperational, "bensin motor", domain.AccountOperatingExpense},
		{"unmatched selling", domain.CategorySelling, "brosur", domain.AccountOtherExpense},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, posting.ClassifyExpense(tt.category, tt.description))
		})
	}
}

func TestCostOfItems(t *testing.T) {
	costs := map[string]decimal.Decimal{"A": dec("2.5"), "B": dec("10")}
	items := []domain.SaleItem{
		{ProductID: "A", Quantity: 4},
		{ProductID: "B", Quantity: 0},
		{ProductID: "C", Quantity: 9},
	}
	assert.True(t, posting.CostOfItems(items, costs).Equal(dec("10")))
}
