package dto

import (
	"strings"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SaleItemRequest is one product line of a sale.
type SaleItemRequest struct {
	ProductID string          `json:"productId" binding:"required"`
	Quantity  int             `json:"quantity" binding:"gt=0"`
	Price     decimal.Decimal `json:"price" binding:"gte=0"`
}

// RecordSaleRequest defines the data needed to record a point-of-sale transaction.
type RecordSaleRequest struct {
	ID            string               `json:"id"` // generated when empty
	Date          string               `json:"date" binding:"required"`
	Customer      string               `json:"customer"`
	Amount        decimal.Decimal      `json:"amount" binding:"gte=0"`
	Description   string               `json:"description"`
	PaymentMethod domain.PaymentMethod `json:"paymentMethod" binding:"omitempty,oneof=Tunai Transfer Kredit"`
	Items         []SaleItemRequest    `json:"items" binding:"dive"`
}

// ToDomain converts the request into a domain.Sale.
func (r RecordSaleRequest) ToDomain() (domain.Sale, error) {
	date, err := domain.ParseDate(r.Date)
	if err != nil {
		return domain.Sale{}, err
	}
	items := make([]domain.SaleItem, len(r.Items))
	for i, it := range r.Items {
		items[i] = domain.SaleItem{ProductID: strings.TrimSpace(it.ProductID), Quantity: it.Quantity, Price: it.Price}
	}
	return domain.Sale{
		ID:            strings.TrimSpace(r.ID),
		Date:          date,
		Customer:      r.Customer,
		Amount:        r.Amount,
		Description:   r.Description,
		PaymentMethod: r.PaymentMethod,
		Items:         items,
	}, nil
}

// PurchaseItemRequest is one product line of a purchase.
type PurchaseItemRequest struct {
	ProductID string          `json:"productId" binding:"required"`
	Quantity  int             `json:"quantity" binding:"gt=0"`
	Cost      decimal.Decimal `json:"cost" binding:"gte=0"`
}

// RecordPurchaseRequest defines the data needed to record a restock purchase.
type RecordPurchaseRequest struct {
	ID            string                `json:"id"`
	Date          string                `json:"date" binding:"required"`
	Supplier      string                `json:"supplier"`
	Amount        decimal.Decimal       `json:"amount" binding:"gte=0"`
	Description   string                `json:"description"`
	PaymentMethod domain.PaymentMethod  `json:"paymentMethod" binding:"required,oneof=Tunai Transfer Kredit"`
	Status        domain.PaymentStatus  `json:"status" binding:"omitempty,oneof=Lunas 'Belum Lunas'"`
	Items         []PurchaseItemRequest `json:"items" binding:"dive"`
}

// ToDomain converts the request into a domain.Purchase.
func (r RecordPurchaseRequest) ToDomain() (domain.Purchase, error) {
	date, err := domain.ParseDate(r.Date)
	if err != nil {
		return domain.Purchase{}, err
	}
	items := make([]domain.PurchaseItem, len(r.Items))
	for i, it := range r.Items {
		items[i] = domain.PurchaseItem{ProductID: strings.TrimSpace(it.ProductID), Quantity: it.Quantity, Cost: it.Cost}
	}
	return domain.Purchase{
		ID:            strings.TrimSpace(r.ID),
		Date:          date,
		Supplier:      r.Supplier,
		Amount:        r.Amount,
		Description:   r.Description,
		PaymentMethod: r.PaymentMethod,
		Status:        r.Status,
		Items:         items,
	}, nil
}

// RecordExpenseRequest defines the data needed to record an operating cost.
type RecordExpenseRequest struct {
	ID          string                 `json:"id"`
	Date        string                 `json:"date" binding:"required"`
	Description string                 `json:"description"`
	Amount      decimal.Decimal        `json:"amount" binding:"gte=0"`
	Category    domain.ExpenseCategory `json:"category" binding:"required,oneof=Operasional Administrasi Penjualan Lainnya"`
	Status      domain.PaymentStatus   `json:"status" binding:"required,oneof=Lunas 'Belum Lunas'"`
}

// ToDomain converts the request into a domain.ExpenseRecord.
func (r RecordExpenseRequest) ToDomain() (domain.ExpenseRecord, error) {
	date, err := domain.ParseDate(r.Date)
	if err != nil {
		return domain.ExpenseRecord{}, err
	}
	return domain.ExpenseRecord{
		ID:          strings.TrimSpace(r.ID),
		Date:        date,
		Description: r.Description,
		Amount:      r.Amount,
		Category:    r.Category,
		Status:      r.Status,
	}, nil
}

// PostingResponse is returned after a business event has been recorded.
type PostingResponse struct {
	EventID string            `json:"eventID"`
	Entries []JournalResponse `json:"entries"`
}

// ToPostingResponse converts a domain.PostedEvent to PostingResponse DTO.
func ToPostingResponse(p *domain.PostedEvent, namer AccountNamer) PostingResponse {
	return PostingResponse{
		EventID: p.EventID,
		Entries: ToJournalResponses(p.Entries, namer),
	}
}
