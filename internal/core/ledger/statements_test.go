package ledger

import (
	"testing"

	"github.com/SscSPs/pos_ledger/internal/core/chart"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openingChart(t *testing.T) *chart.Chart {
	t.Helper()
	accounts := chart.DefaultAccounts()
	for i := range accounts {
		switch accounts[i].Name {
		case domain.AccountCash, domain.AccountPaidInCapital:
			accounts[i].InitialBalance = dec("10000000")
		}
	}
	c, err := chart.New(accounts)
	require.NoError(t, err)
	return c
}

func fullLedger() []domain.JournalEntry {
	return []domain.JournalEntry{
		entry("sale", day(2024, 3, 1), domain.DebitLine("101", dec("50000")), domain.CreditLine("401", dec("50000"))),
		entry("cogs", day(2024, 3, 1), domain.DebitLine("501", dec("20000")), domain.CreditLine("104", dec("20000"))),
		entry("purchase", day(2024, 3, 2), domain.DebitLine("104", dec("120000")), domain.CreditLine("201", dec("120000"))),
		entry("power", day(2024, 3, 3), domain.DebitLine("504", dec("75000")), domain.CreditLine("201", dec("75000"))),
		entry("salary", day(2024, 3, 25), domain.DebitLine("502", dec("2000000")), domain.CreditLine("101", dec("2000000"))),
		entry("equipment", day(2024, 3, 4), domain.DebitLine("151", dec("3000000")), domain.CreditLine("101", dec("3000000"))),
		entry("depreciation", day(2024, 3, 31), domain.DebitLine("505", dec("100000")), domain.CreditLine("152", dec("100000"))),
		entry("drawings", day(2024, 3, 15), domain.DebitLine("303", dec("500000")), domain.CreditLine("101", dec("500000"))),
		entry("misc", day(2024, 3, 16), domain.DebitLine("510", dec("30000")), domain.CreditLine("101", dec("30000"))),
	}
}

func TestBuildFinancialSummary_IncomeStatement(t *testing.T) {
	b := AggregateBalances(fullLedger(), openingChart(t), nil, nil)
	is := BuildFinancialSummary(b, nil).IncomeStatement

	assert.True(t, is.TotalRevenue.Equal(dec("50000")))
	assert.True(t, is.COGS.Equal(dec("20000")))
	assert.True(t, is.GrossProfit.Equal(dec("30000")))
	assert.True(t, is.OperatingExpense.Equal(dec("2205000")))
	assert.True(t, is.GeneralOperatingExpense.Equal(dec("30000")))
	assert.True(t, is.OtherExpense.IsZero())
	assert.True(t, is.NetProfit.Equal(dec("-2175000")))
}

func TestBuildFinancialSummary_BalanceSheetIdentity(t *testing.T) {
	b := AggregateBalances(fullLedger(), openingChart(t), nil, nil)
	summary := BuildFinancialSummary(b, nil)
	bs := summary.BalanceSheet

	assert.True(t, bs.CurrentAssets.Equal(dec("4620000")))
	assert.True(t, bs.AccumulatedDepreciation.Equal(dec("100000")))
	assert.True(t, bs.FixedAssets.Equal(dec("2900000")))
	assert.True(t, bs.TotalAssets.Equal(dec("7520000")))
	assert.True(t, bs.TotalLiabilities.Equal(dec("195000")))
	assert.True(t, bs.Drawings.Equal(dec("500000")))
	assert.True(t, bs.RetainedEarnings.Equal(dec("-2675000")))
	assert.True(t, bs.TotalEquity.Equal(dec("7325000")))

	assert.True(t, bs.TotalAssets.Equal(bs.TotalLiabilities.Add(bs.TotalEquity)))
	assert.True(t, bs.ImbalanceDelta.IsZero())
	assert.True(t, bs.IsBalanced)
	assert.Empty(t, summary.Warnings)
}

func TestBuildFinancialSummary_DetectsImbalance(t *testing.T) {
	accounts := chart.DefaultAccounts()
	accounts[0].InitialBalance = dec("500") // cash with no matching equity
	c, err := chart.New(accounts)
	require.NoError(t, err)

	summary := BuildFinancialSummary(AggregateBalances(nil, c, nil, nil), nil)
	assert.False(t, summary.BalanceSheet.IsBalanced)
	assert.True(t, summary.BalanceSheet.ImbalanceDelta.Equal(dec("500")))
	require.NotEmpty(t, summary.Warnings)
	assert.Contains(t, summary.Warnings[len(summary.Warnings)-1], "does not balance")
}

func TestBuildFinancialSummary_CashFlow(t *testing.T) {
	b := AggregateBalances(fullLedger(), openingChart(t), nil, nil)
	cf := BuildFinancialSummary(b, nil).CashFlow

	assert.True(t, cf.OpeningCash.Equal(dec("10000000")))
	assert.True(t, cf.NetOperatingCash.Equal(dec("-5480000")))
	assert.True(t, cf.NetInvestingCash.IsZero())
	assert.True(t, cf.NetFinancingCash.IsZero())
	assert.True(t, cf.EndingCash.Equal(dec("4520000")))
	assert.True(t, cf.EndingCash.Equal(cf.OpeningCash.Add(cf.NetOperatingCash)))
}

func TestBuildFinancialSummary_Period(t *testing.T) {
	period, err := domain.NewPeriod("2024-03-01", "2024-03-03")
	require.NoError(t, err)

	b := AggregateBalances(fullLedger(), openingChart(t), &period, nil)
	summary := BuildFinancialSummary(b, &period)

	require.NotNil(t, summary.Period)
	assert.True(t, summary.IncomeStatement.NetProfit.Equal(dec("-45000")))
	assert.True(t, summary.BalanceSheet.IsBalanced)
}

func TestBuildFinancialSummary_WarnsOnSkippedAndMissing(t *testing.T) {
	c, err := chart.New([]domain.Account{
		{ID: "101", Name: domain.AccountCash, Type: domain.Asset},
		{ID: "401", Name: domain.AccountSalesRevenue, Type: domain.Revenue},
	})
	require.NoError(t, err)

	entries := []domain.JournalEntry{
		entry("ok", day(2024, 1, 1), domain.DebitLine("101", dec("5")), domain.CreditLine("401", dec("5"))),
		entry("bad", day(2024, 1, 1), domain.DebitLine("777", dec("5")), domain.CreditLine("401", dec("5"))),
	}
	summary := BuildFinancialSummary(AggregateBalances(entries, c, nil, nil), nil)

	joined := ""
	for _, w := range summary.Warnings {
		joined += w + "\n"
	}
	assert.Contains(t, joined, `account "Bank" is not in the chart`)
	assert.Contains(t, joined, "entry bad references unknown account 777")
}
