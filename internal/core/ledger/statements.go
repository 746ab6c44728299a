package ledger

import (
	"fmt"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// statementReader reads well-known accounts by name and remembers the ones the chart lacks.
type statementReader struct {
	b       *Balances
	missing []string
}

func (r *statementReader) display(name string) decimal.Decimal {
	a, ok := r.b.chart.ByName(name)
	if !ok {
		r.missing = append(r.missing, name)
		return decimal.Zero
	}
	return r.b.Display(a.ID)
}

func (r *statementReader) raw(name string) decimal.Decimal {
	a, ok := r.b.chart.ByName(name)
	if !ok {
		r.missing = append(r.missing, name)
		return decimal.Zero
	}
	return r.b.Raw(a.ID)
}

func (r *statementReader) initial(name string) decimal.Decimal {
	a, ok := r.b.chart.ByName(name)
	if !ok {
		return decimal.Zero
	}
	return a.InitialBalance
}

// BuildFinancialSummary projects aggregated balances onto the income statement, balance sheet
// and cash-flow summary.
func BuildFinancialSummary(b *Balances, period *domain.Period) domain.FinancialSummary {
	r := &statementReader{b: b}

	is := buildIncomeStatement(r)
	bs := buildBalanceSheet(r, is.NetProfit)
	cf := buildCashFlow(r)

	summary := domain.FinancialSummary{
		Period:          period,
		IncomeStatement: is,
		BalanceSheet:    bs,
		CashFlow:        cf,
	}

	seen := make(map[string]bool, len(r.missing))
	for _, name := range r.missing {
		if seen[name] {
			continue
		}
		seen[name] = true
		summary.Warnings = append(summary.Warnings, fmt.Sprintf("account %q is not in the chart; counted as zero", name))
	}
	for _, s := range b.Skipped {
		summary.Warnings = append(summary.Warnings,
			fmt.Sprintf("entry %s references unknown account %s; %s %s skipped", s.EntryID, s.AccountID, s.Side, s.Amount.String()))
	}
	if !bs.IsBalanced {
		summary.Warnings = append(summary.Warnings,
			fmt.Sprintf("balance sheet does not balance: assets minus liabilities and equity is %s", bs.ImbalanceDelta.String()))
	}
	return summary
}

func buildIncomeStatement(r *statementReader) domain.IncomeStatement {
	is := domain.IncomeStatement{
		SalesRevenue:            r.display(domain.AccountSalesRevenue),
		ServiceRevenue:          r.display(domain.AccountServiceRevenue),
		OtherIncome:             r.display(domain.AccountOtherIncome),
		COGS:                    r.display(domain.AccountCOGS),
		SalaryExpense:           r.display(domain.AccountSalaryExpense),
		RentExpense:             r.display(domain.AccountRentExpense),
		UtilitiesExpense:        r.display(domain.AccountUtilitiesExpense),
		DepreciationExpense:     r.display(domain.AccountDepreciationExpense),
		GeneralOperatingExpense: r.display(domain.AccountOperatingExpense),
		OtherExpense:            r.display(domain.AccountOtherExpense),
	}
	is.TotalRevenue = is.SalesRevenue.Add(is.ServiceRevenue).Add(is.OtherIncome)
	is.GrossProfit = is.TotalRevenue.Sub(is.COGS)
	is.OperatingExpense = is.SalaryExpense.
		Add(is.RentExpense).
		Add(is.UtilitiesExpense).
		Add(is.DepreciationExpense).
		Add(is.GeneralOperatingExpense)
	is.NetProfit = is.GrossProfit.Sub(is.OperatingExpense).Sub(is.OtherExpense)
	return is
}

func buildBalanceSheet(r *statementReader, netProfit decimal.Decimal) domain.BalanceSheet {
	bs := domain.BalanceSheet{
		Cash:               r.display(domain.AccountCash),
		Bank:               r.display(domain.AccountBank),
		AccountsReceivable: r.display(domain.AccountReceivable),
		Inventory:          r.display(domain.AccountInventory),
		OfficeEquipment:    r.display(domain.AccountOfficeEquipment),
		// Contra-asset: its natural balance is a credit, reported as a positive deduction.
		AccumulatedDepreciation: r.raw(domain.AccountAccumulatedDepreciation).Neg(),

		AccountsPayable:     r.display(domain.AccountPayable),
		SalariesPayable:     r.display(domain.AccountSalariesPayable),
		LongTermLiabilities: r.display(domain.AccountLongTermBankDebt),

		PaidInCapital:           r.display(domain.AccountPaidInCapital),
		OpeningRetainedEarnings: r.display(domain.AccountRetainedEarnings),
		Drawings:                r.display(domain.AccountDrawings),
	}
	bs.CurrentAssets = bs.Cash.Add(bs.Bank).Add(bs.AccountsReceivable).Add(bs.Inventory)
	bs.FixedAssets = bs.OfficeEquipment.Sub(bs.AccumulatedDepreciation)
	bs.TotalAssets = bs.CurrentAssets.Add(bs.FixedAssets)

	bs.CurrentLiabilities = bs.AccountsPayable.Add(bs.SalariesPayable)
	bs.TotalLiabilities = bs.CurrentLiabilities.Add(bs.LongTermLiabilities)

	bs.RetainedEarnings = bs.OpeningRetainedEarnings.Add(netProfit).Sub(bs.Drawings)
	bs.TotalEquity = bs.PaidInCapital.Add(bs.RetainedEarnings)

	bs.ImbalanceDelta = bs.TotalAssets.Sub(bs.TotalLiabilities.Add(bs.TotalEquity))
	bs.IsBalanced = bs.ImbalanceDelta.IsZero()
	return bs
}

func buildCashFlow(r *statementReader) domain.CashFlowSummary {
	opening := r.initial(domain.AccountCash)
	ending := r.raw(domain.AccountCash)
	net := ending.Sub(opening)
	return domain.CashFlowSummary{
		OpeningCash:      opening,
		NetOperatingCash: net,
		NetInvestingCash: decimal.Zero,
		NetFinancingCash: decimal.Zero,
		NetChangeInCash:  net,
		EndingCash:       opening.Add(net),
	}
}
