package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_ledger/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger/internal/dto"
)

const productPrefix = "PRD"

// productService manages the product registry.
type productService struct {
	BaseService
	productRepo portsrepo.ProductRepositoryFacade
	now         func() time.Time
}

// NewProductService creates a new product service.
func NewProductService(productRepo portsrepo.ProductRepositoryFacade) portssvc.ProductSvcFacade {
	return &productService{
		productRepo: productRepo,
		now:         time.Now,
	}
}

var _ portssvc.ProductSvcFacade = (*productService)(nil)

func (s *productService) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: product name is required", apperrors.ErrValidation)
	}
	if req.Price.IsNegative() || req.Cost.IsNegative() || req.Stock < 0 || req.MinStock < 0 {
		return nil, fmt.Errorf("%w: price, cost and stock levels must not be negative", apperrors.ErrValidation)
	}

	id := strings.TrimSpace(req.ID)
	if id == "" {
		id = newEventID(productPrefix)
	}

	product := domain.Product{
		ID:        id,
		Name:      name,
		Category:  strings.TrimSpace(req.Category),
		Price:     req.Price,
		Cost:      req.Cost,
		Stock:     req.Stock,
		MinStock:  req.MinStock,
		Supplier:  strings.TrimSpace(req.Supplier),
		CreatedAt: s.now().UTC(),
	}

	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			s.LogWarn(ctx, "Product already exists", slog.String("product_id", id))
		} else {
			s.LogError(ctx, err, "Failed to save product", slog.String("product_id", id))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Product created", slog.String("product_id", id), slog.String("name", name))
	return &product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest) (*domain.Product, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: product name is required", apperrors.ErrValidation)
	}
	if req.Price.IsNegative() || req.Cost.IsNegative() || req.MinStock < 0 {
		return nil, fmt.Errorf("%w: price, cost and stock levels must not be negative", apperrors.ErrValidation)
	}

	product := domain.Product{
		ID:       productID,
		Name:     name,
		Category: strings.TrimSpace(req.Category),
		Price:    req.Price,
		Cost:     req.Cost,
		MinStock: req.MinStock,
		Supplier: strings.TrimSpace(req.Supplier),
	}
	if err := s.productRepo.UpdateProduct(ctx, product); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update product", slog.String("product_id", productID))
		}
		return nil, err
	}

	updated, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		s.LogError(ctx, err, "Failed to reload updated product", slog.String("product_id", productID))
		return nil, err
	}
	s.LogInfo(ctx, "Product updated", slog.String("product_id", productID))
	return updated, nil
}

func (s *productService) DeleteProduct(ctx context.Context, productID string) error {
	if err := s.productRepo.DeleteProduct(ctx, productID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete product", slog.String("product_id", productID))
		}
		return err
	}
	s.LogInfo(ctx, "Product deleted", slog.String("product_id", productID))
	return nil
}

func (s *productService) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get product", slog.String("product_id", productID))
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list products")
		return nil, err
	}
	return products, nil
}
