package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/pos_ledger/internal/models"
	"github.com/SscSPs/pos_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const productSelect = `
	SELECT product_id, name, category, price, cost, stock, min_stock, supplier, created_at
	FROM products`

type PgxProductRepository struct {
	BaseRepository
}

func newPgxProductRepository(pool *pgxpool.Pool) portsrepo.ProductRepositoryFacade {
	return &PgxProductRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ProductRepositoryFacade = (*PgxProductRepository)(nil)

func scanProduct(row pgx.Row) (domain.Product, error) {
	var m models.Product
	err := row.Scan(&m.ProductID, &m.Name, &m.Category, &m.Price, &m.Cost, &m.Stock, &m.MinStock, &m.Supplier, &m.CreatedAt)
	if err != nil {
		return domain.Product{}, err
	}
	return mapping.ToDomainProduct(m), nil
}

// SaveProduct inserts a new product. An existing id is reported as ErrDuplicate.
func (r *PgxProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	m := mapping.ToModelProduct(product)
	tag, err := r.Pool.Exec(ctx, `
		INSERT INTO products (product_id, name, category, price, cost, stock, min_stock, supplier, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (product_id) DO NOTHING;`,
		m.ProductID, m.Name, m.Category, m.Price, m.Cost, m.Stock, m.MinStock, m.Supplier, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert product %s: %w", m.ProductID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: product %s", apperrors.ErrDuplicate, m.ProductID)
	}
	return nil
}

// UpdateProduct replaces the descriptive fields of a product; stock and created_at stay.
func (r *PgxProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	m := mapping.ToModelProduct(product)
	tag, err := r.Pool.Exec(ctx, `
		UPDATE products
		SET name = $1, category = $2, price = $3, cost = $4, min_stock = $5, supplier = $6
		WHERE product_id = $7;`,
		m.Name, m.Category, m.Price, m.Cost, m.MinStock, m.Supplier, m.ProductID,
	)
	if err != nil {
		return fmt.Errorf("failed to update product %s: %w", m.ProductID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: product %s", apperrors.ErrNotFound, m.ProductID)
	}
	return nil
}

// DeleteProduct removes a product.
func (r *PgxProductRepository) DeleteProduct(ctx context.Context, productID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM products WHERE product_id = $1;`, productID)
	if err != nil {
		return fmt.Errorf("failed to delete product %s: %w", productID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: product %s", apperrors.ErrNotFound, productID)
	}
	return nil
}

// SetStock overwrites the stock level of a product.
func (r *PgxProductRepository) SetStock(ctx context.Context, productID string, stock int) error {
	tag, err := r.Pool.Exec(ctx, `UPDATE products SET stock = $1 WHERE product_id = $2;`, stock, productID)
	if err != nil {
		return fmt.Errorf("failed to update stock of %s: %w", productID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: product %s", apperrors.ErrNotFound, productID)
	}
	return nil
}

func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	p, err := scanProduct(r.Pool.QueryRow(ctx, productSelect+` WHERE product_id = $1;`, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: product %s", apperrors.ErrNotFound, productID)
		}
		return nil, fmt.Errorf("failed to find product %s: %w", productID, err)
	}
	return &p, nil
}

func (r *PgxProductRepository) FindProductsByIDs(ctx context.Context, productIDs []string) (map[string]domain.Product, error) {
	out := make(map[string]domain.Product, len(productIDs))
	if len(productIDs) == 0 {
		return out, nil
	}

	rows, err := r.Pool.Query(ctx, productSelect+` WHERE product_id = ANY($1);`, productIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		out[p.ID] = p
	}
	return out, rows.Err()
}

func (r *PgxProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.Pool.Query(ctx, productSelect+` ORDER BY name, product_id;`)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
