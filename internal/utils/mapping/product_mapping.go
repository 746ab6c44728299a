package mapping

import (
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/SscSPs/pos_ledger/internal/models"
)

// ToModelProduct converts a domain Product to a model Product
func ToModelProduct(d domain.Product) models.Product {
	return models.Product{
		ProductID: d.ID,
		Name:      d.Name,
		Category:  d.Category,
		Price:     d.Price,
		Cost:      d.Cost,
		Stock:     d.Stock,
		MinStock:  d.MinStock,
		Supplier:  d.Supplier,
		CreatedAt: d.CreatedAt,
	}
}

// ToDomainProduct converts a model Product to a domain Product
func ToDomainProduct(m models.Product) domain.Product {
	return domain.Product{
		ID:        m.ProductID,
		Name:      m.Name,
		Category:  m.Category,
		Price:     m.Price,
		Cost:      m.Cost,
		Stock:     m.Stock,
		MinStock:  m.MinStock,
		Supplier:  m.Supplier,
		CreatedAt: m.CreatedAt,
	}
}
