package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is how a sale or purchase was settled.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "Tunai"
	PaymentTransfer PaymentMethod = "Transfer"
	PaymentCredit   PaymentMethod = "Kredit"
)

// SettlesImmediately reports whether the money moved at the time of the event.
func (m PaymentMethod) SettlesImmediately() bool {
	return m == PaymentCash || m == PaymentTransfer
}

// PaymentStatus tells whether an obligation is settled.
type PaymentStatus string

const (
	StatusPaid   PaymentStatus = "Lunas"
	StatusUnpaid PaymentStatus = "Belum Lunas"
)

// ExpenseCategory groups expenses the way the cashier enters them.
type ExpenseCategory string

const (
	CategoryOperational    ExpenseCategory = "Operasional"
	CategoryAdministrative ExpenseCategory = "Administrasi"
	CategorySelling        ExpenseCategory = "Penjualan"
	CategoryOther          ExpenseCategory = "Lainnya"
)

// Product is an inventory item sold at the point of sale.
type Product struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Price     decimal.Decimal `json:"price"`
	Cost      decimal.Decimal `json:"cost"`
	Stock     int             `json:"stock"`
	MinStock  int             `json:"minStock"`
	Supplier  string          `json:"supplier,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

// LowStock reports whether the product needs restocking.
func (p Product) LowStock() bool {
	return p.Stock <= p.MinStock
}

// SaleItem is one product line of a sale.
type SaleItem struct {
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// Sale is a point-of-sale transaction.
type Sale struct {
	ID            string          `json:"id"`
	Date          time.Time       `json:"date"`
	Customer      string          `json:"customer"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	Items         []SaleItem      `json:"items"`
}

// PurchaseItem is one product line of a purchase.
type PurchaseItem struct {
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	Cost      decimal.Decimal `json:"cost"`
}

// Purchase is a restock from a supplier.
type Purchase struct {
	ID            string          `json:"id"`
	Date          time.Time       `json:"date"`
	Supplier      string          `json:"supplier"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	Status        PaymentStatus   `json:"status"`
	Items         []PurchaseItem  `json:"items"`
}

// ExpenseRecord is an operating cost recorded by the cashier.
type ExpenseRecord struct {
	ID          string          `json:"id"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    ExpenseCategory `json:"category"`
	Status      PaymentStatus   `json:"status"`
}

// PostedEvent is the outcome of recording a business event: the event id and the entries it produced.
type PostedEvent struct {
	EventID string         `json:"eventID"`
	Entries []JournalEntry `json:"entries"`
}
