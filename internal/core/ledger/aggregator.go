// Package ledger derives account balances and financial statements from posted entries.
// Everything here is a pure computation over a snapshot of the ledger.
package ledger

import (
	"log/slog"

	"github.com/SscSPs/pos_ledger/internal/core/chart"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/SscSPs/pos_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// Balances is the per-account result of an aggregation run.
type Balances struct {
	chart   *chart.Chart
	raw     map[string]decimal.Decimal
	Skipped []domain.SkippedLine
}

// AggregateBalances folds entries into per-account balances starting from each account's
// initial balance, which is stated in the account's natural direction. When period is non-nil only entries dated within it participate; initial
// balances always do. Lines referring to accounts outside the chart are skipped and logged.
func AggregateBalances(entries []domain.JournalEntry, c *chart.Chart, period *domain.Period, logger *slog.Logger) *Balances {
	if logger == nil {
		logger = slog.Default()
	}

	b := &Balances{
		chart: c,
		raw:   make(map[string]decimal.Decimal, c.Len()),
	}
	for _, a := range c.Accounts() {
		b.raw[a.ID] = accounting.OpeningRaw(a.Type, a.InitialBalance)
	}

	for _, e := range entries {
		if period != nil && !period.Contains(e.Date) {
			continue
		}
		for _, line := range e.Lines {
			current, ok := b.raw[line.AccountID]
			if !ok {
				logger.Warn("Skipping journal line with unknown account",
					slog.String("entry_id", e.ID),
					slog.String("account_id", line.AccountID),
					slog.String("amount", line.Amount.String()),
					slog.String("side", string(line.Side)))
				b.Skipped = append(b.Skipped, domain.SkippedLine{
					EntryID:   e.ID,
					AccountID: line.AccountID,
					Amount:    line.Amount,
					Side:      line.Side,
				})
				continue
			}
			b.raw[line.AccountID] = current.Add(accounting.SignedAmount(line))
		}
	}
	return b
}

// Raw returns the debit-positive balance of an account, zero when the account is unknown.
func (b *Balances) Raw(accountID string) decimal.Decimal {
	if v, ok := b.raw[accountID]; ok {
		return v
	}
	return decimal.Zero
}

// Display returns the presentation balance of an account.
func (b *Balances) Display(accountID string) decimal.Decimal {
	a, ok := b.chart.ByID(accountID)
	if !ok {
		return decimal.Zero
	}
	return accounting.DisplayBalance(a.Type, b.Raw(accountID))
}

// List returns every account of the chart with its balances, ordered by account id.
func (b *Balances) List() []domain.AccountBalance {
	accounts := b.chart.Accounts()
	out := make([]domain.AccountBalance, 0, len(accounts))
	for _, a := range accounts {
		raw := b.Raw(a.ID)
		out = append(out, domain.AccountBalance{
			AccountID:   a.ID,
			AccountName: a.Name,
			AccountType: a.Type,
			Raw:         raw,
			Balance:     accounting.DisplayBalance(a.Type, raw),
		})
	}
	return out
}
