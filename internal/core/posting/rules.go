// Package posting turns business events into balanced automatic journal entries.
package posting

import (
	"fmt"
	"time"

	"github.com/SscSPs/pos_ledger/internal/core/chart"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Rules applies the posting rules against one chart of accounts. Rules are pure: they never
// touch the ledger, they only describe the entries to append.
type Rules struct {
	chart *chart.Chart
}

// NewRules creates posting rules bound to a chart.
func NewRules(c *chart.Chart) *Rules {
	return &Rules{chart: c}
}

// SaleEntries is the result of posting a sale. Either entry may be nil when its amount is zero.
type SaleEntries struct {
	Revenue *domain.JournalEntry
	COGS    *domain.JournalEntry
}

// All returns the non-nil entries in posting order.
func (s SaleEntries) All() []domain.JournalEntry {
	out := make([]domain.JournalEntry, 0, 2)
	if s.Revenue != nil {
		out = append(out, *s.Revenue)
	}
	if s.COGS != nil {
		out = append(out, *s.COGS)
	}
	return out
}

// Sale posts Dr Cash / Cr Sales Revenue for the sale total, and Dr COGS / Cr Inventory for the
// cost of the items whose unit cost is known. unitCosts maps product id to unit cost.
func (r *Rules) Sale(sale domain.Sale, unitCosts map[string]decimal.Decimal) (SaleEntries, error) {
	cash, err := r.chart.Require(domain.AccountCash)
	if err != nil {
		return SaleEntries{}, err
	}
	revenue, err := r.chart.Require(domain.AccountSalesRevenue)
	if err != nil {
		return SaleEntries{}, err
	}
	cogs, err := r.chart.Require(domain.AccountCOGS)
	if err != nil {
		return SaleEntries{}, err
	}
	inventory, err := r.chart.Require(domain.AccountInventory)
	if err != nil {
		return SaleEntries{}, err
	}

	var out SaleEntries
	if sale.Amount.GreaterThan(decimal.Zero) {
		e := r.entry(sale.Date, describe("Penjualan", sale.ID, sale.Description), sale.ID,
			domain.DebitLine(cash.ID, sale.Amount),
			domain.CreditLine(revenue.ID, sale.Amount),
		)
		out.Revenue = &e
	}

	totalCost := CostOfItems(sale.Items, unitCosts)
	if totalCost.GreaterThan(decimal.Zero) {
		e := r.entry(sale.Date, describe("HPP penjualan", sale.ID, ""), sale.ID,
			domain.DebitLine(cogs.ID, totalCost),
			domain.CreditLine(inventory.ID, totalCost),
		)
		out.COGS = &e
	}
	return out, nil
}

// CostOfItems sums quantity times unit cost over items with a known, positive unit cost.
func CostOfItems(items []domain.SaleItem, unitCosts map[string]decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		cost, ok := unitCosts[item.ProductID]
		if !ok || item.Quantity <= 0 || !cost.GreaterThan(decimal.Zero) {
			continue
		}
		total = total.Add(cost.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// Purchase posts Dr Inventory / Cr Cash for cash or transfer purchases, Cr Accounts Payable
// otherwise. It returns nil when the purchase amount is zero.
func (r *Rules) Purchase(p domain.Purchase) (*domain.JournalEntry, error) {
	inventory, err := r.chart.Require(domain.AccountInventory)
	if err != nil {
		return nil, err
	}
	creditName := domain.AccountPayable
	if p.PaymentMethod.SettlesImmediately() {
		creditName = domain.AccountCash
	}
	credit, err := r.chart.Require(creditName)
	if err != nil {
		return nil, err
	}
	if !p.Amount.GreaterThan(decimal.Zero) {
		return nil, nil
	}

	e := r.entry(p.Date, describe("Pembelian", p.ID, p.Description), p.ID,
		domain.DebitLine(inventory.ID, p.Amount),
		domain.CreditLine(credit.ID, p.Amount),
	)
	return &e, nil
}

// Expense posts Dr the classified expense account / Cr Cash when paid, Accounts Payable when
// not. It returns nil when the expense amount is zero.
func (r *Rules) Expense(x domain.ExpenseRecord) (*domain.JournalEntry, error) {
	debit, err := r.expenseAccount(x)
	if err != nil {
		return nil, err
	}
	creditName := domain.AccountPayable
	if x.Status == domain.StatusPaid {
		creditName = domain.AccountCash
	}
	credit, err := r.chart.Require(creditName)
	if err != nil {
		return nil, err
	}
	if !x.Amount.GreaterThan(decimal.Zero) {
		return nil, nil
	}

	e := r.entry(x.Date, describe("Beban", x.ID, x.Description), x.ID,
		domain.DebitLine(debit.ID, x.Amount),
		domain.CreditLine(credit.ID, x.Amount),
	)
	return &e, nil
}

func (r *Rules) expenseAccount(x domain.ExpenseRecord) (domain.Account, error) {
	classified := ClassifyExpense(x.Category, x.Description)
	for _, name := range expenseFallbacks(x.Category, classified) {
		if a, ok := r.chart.ByName(name); ok {
			return a, nil
		}
	}
	// Report the first choice; the whole chain is missing.
	_, err := r.chart.Require(classified)
	return domain.Account{}, err
}

func (r *Rules) entry(date time.Time, description, reference string, lines ...domain.JournalLine) domain.JournalEntry {
	return domain.JournalEntry{
		Date:        date,
		Description: description,
		Reference:   reference,
		Origin:      domain.OriginAutomatic,
		Lines:       lines,
	}
}

func describe(kind, id, detail string) string {
	if detail == "" {
		return fmt.Sprintf("%s %s", kind, id)
	}
	return fmt.Sprintf("%s %s: %s", kind, id, detail)
}
