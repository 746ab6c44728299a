package services

import (
	"context"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
)

// PostingSvc records business events and posts their automatic journal entries.
type PostingSvc interface {
	// RecordSale adjusts stock and posts the revenue and cost-of-goods entries of a sale.
	RecordSale(ctx context.Context, sale domain.Sale) (*domain.PostedEvent, error)

	// RecordPurchase increases stock and posts the inventory entry of a purchase.
	RecordPurchase(ctx context.Context, purchase domain.Purchase) (*domain.PostedEvent, error)

	// RecordExpense posts the entry of an operating cost.
	RecordExpense(ctx context.Context, expense domain.ExpenseRecord) (*domain.PostedEvent, error)
}
