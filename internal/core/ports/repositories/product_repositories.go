package repositories

import (
	"context"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
)

// ProductReader defines read operations for the product registry
type ProductReader interface {
	// FindProductByID retrieves a product by its identifier.
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// FindProductsByIDs retrieves several products at once. Unknown ids are absent from the map.
	FindProductsByIDs(ctx context.Context, productIDs []string) (map[string]domain.Product, error)

	// ListProducts returns every product ordered by name.
	ListProducts(ctx context.Context) ([]domain.Product, error)
}

// ProductWriter defines write operations for the product registry
type ProductWriter interface {
	// SaveProduct persists a new product. An existing id yields apperrors.ErrDuplicate.
	SaveProduct(ctx context.Context, product domain.Product) error

	// UpdateProduct replaces the descriptive fields of an existing product. Stock and creation
	// time are left untouched. A missing id yields apperrors.ErrNotFound.
	UpdateProduct(ctx context.Context, product domain.Product) error

	// DeleteProduct removes a product from the registry. A missing id yields apperrors.ErrNotFound.
	DeleteProduct(ctx context.Context, productID string) error

	// SetStock overwrites the stock level of a product.
	SetStock(ctx context.Context, productID string, stock int) error
}

// ProductRepositoryFacade combines all product repository interfaces
type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
}
