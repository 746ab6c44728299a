package posting

import (
	"strings"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
)

type keywordRule struct {
	keywords []string
	account  string
}

// expenseKeywords are matched in order against the lower-cased description.
var expenseKeywords = []keywordRule{
	{keywords: []string{"gaji"}, account: domain.AccountSalaryExpense},
	{keywords: []string{"sewa"}, account: domain.AccountRentExpense},
	{keywords: []string{"listrik", "air", "telepon"}, account: domain.AccountUtilitiesExpense},
	{keywords: []string{"penyusutan"}, account: domain.AccountDepreciationExpense},
}

// ClassifyExpense picks the expense account name for an expense. Category "Lainnya" always
// lands on the other-expense account; otherwise the description keywords decide, falling back
// to the generic operating account for "Operasional" and to other-expense for the rest.
func ClassifyExpense(category domain.ExpenseCategory, description string) string {
	if category == domain.CategoryOther {
		return domain.AccountOtherExpense
	}
	desc := strings.ToLower(description)
	for _, rule := range expenseKeywords {
		for _, kw := range rule.keywords {
			if strings.Contains(desc, kw) {
				return rule.account
			}
		}
	}
	if category == domain.CategoryOperational {
		return domain.AccountOperatingExpense
	}
	return domain.AccountOtherExpense
}

// expenseFallbacks is the designed fallback chain when a classified account is missing.
func expenseFallbacks(category domain.ExpenseCategory, classified string) []string {
	chain := []string{classified}
	if category == domain.CategoryOperational && classified != domain.AccountOperatingExpense {
		chain = append(chain, domain.AccountOperatingExpense)
	}
	if classified != domain.AccountOtherExpense {
		chain = append(chain, domain.AccountOtherExpense)
	}
	return chain
}
