package dto

import (
	"time"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProductRequest defines the data needed to register a product.
type CreateProductRequest struct {
	ID       string          `json:"id"` // generated when empty
	Name     string          `json:"name" binding:"required"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price" binding:"gte=0"`
	Cost     decimal.Decimal `json:"cost" binding:"gte=0"`
	Stock    int             `json:"stock" binding:"gte=0"`
	MinStock int             `json:"minStock" binding:"gte=0"`
	Supplier string          `json:"supplier"`
}

// UpdateProductRequest defines the editable fields of a product. Stock is not editable here;
// it changes only through sales and purchases.
type UpdateProductRequest struct {
	Name     string          `json:"name" binding:"required"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price" binding:"gte=0"`
	Cost     decimal.Decimal `json:"cost" binding:"gte=0"`
	MinStock int             `json:"minStock" binding:"gte=0"`
	Supplier string          `json:"supplier"`
}

// ProductResponse defines the data returned for a product.
type ProductResponse struct {
	ProductID string          `json:"productID"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Price     decimal.Decimal `json:"price"`
	Cost      decimal.Decimal `json:"cost"`
	Stock     int             `json:"stock"`
	MinStock  int             `json:"minStock"`
	LowStock  bool            `json:"lowStock"`
	Supplier  string          `json:"supplier,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ToProductResponse converts a domain.Product to ProductResponse DTO
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ProductID: p.ID,
		Name:      p.Name,
		Category:  p.Category,
		Price:     p.Price,
		Cost:      p.Cost,
		Stock:     p.Stock,
		MinStock:  p.MinStock,
		LowStock:  p.LowStock(),
		Supplier:  p.Supplier,
		CreatedAt: p.CreatedAt,
	}
}

// ToListProductResponse converts a slice of domain.Product to a slice of ProductResponse DTOs
func ToListProductResponse(products []domain.Product) []ProductResponse {
	res := make([]ProductResponse, len(products))
	for i := range products {
		res[i] = ToProductResponse(&products[i])
	}
	return res
}
