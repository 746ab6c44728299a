package accounting

import (
	"fmt"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SignedAmount returns the contribution of a line to its account's running balance under the
// debit-positive convention: debits add, credits subtract, whatever the account type.
func SignedAmount(line domain.JournalLine) decimal.Decimal {
	if line.Side == domain.Debit {
		return line.Amount
	}
	return line.Amount.Neg()
}

// DisplayBalance converts a debit-positive balance into its presentation value. Accounts with a
// natural credit balance are shown as absolute values; the others are shown as-is.
func DisplayBalance(accountType domain.AccountType, raw decimal.Decimal) decimal.Decimal {
	if accountType.IsCreditNormal() {
		return raw.Abs()
	}
	return raw
}

// OpeningRaw converts an initial balance, stated in the account's natural direction, into the
// debit-positive convention used while aggregating.
func OpeningRaw(accountType domain.AccountType, initial decimal.Decimal) decimal.Decimal {
	if accountType.IsCreditNormal() {
		return initial.Neg()
	}
	return initial
}

// ValidateEntryBalance checks that every line is positive, that both sides are present and
// that debits equal credits.
func ValidateEntryBalance(lines []domain.JournalLine) error {
	zero := decimal.Zero
	debits, credits := zero, zero
	var hasDebit, hasCredit bool

	for i, line := range lines {
		if line.Amount.LessThanOrEqual(zero) {
			return fmt.Errorf("line %d: amount must be positive for account %s", i+1, line.AccountID)
		}
		switch line.Side {
		case domain.Debit:
			debits = debits.Add(line.Amount)
			hasDebit = true
		case domain.Credit:
			credits = credits.Add(line.Amount)
			hasCredit = true
		default:
			return fmt.Errorf("line %d: unknown side %q", i+1, line.Side)
		}
	}

	if !hasDebit || !hasCredit {
		return fmt.Errorf("entry needs at least one debit and one credit line")
	}
	if !debits.Equal(credits) {
		return fmt.Errorf("entry does not balance: debits sum is %s and credits sum is %s", debits.String(), credits.String())
	}
	return nil
}
