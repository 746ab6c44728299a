package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

const productColumns = `id, name, category, price, cost, stock, min_stock, supplier, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(r rowScanner) (domain.Product, error) {
	var (
		p                  domain.Product
		price, cost, since string
	)
	if err := r.Scan(&p.ID, &p.Name, &p.Category, &price, &cost, &p.Stock, &p.MinStock, &p.Supplier, &since); err != nil {
		return domain.Product{}, err
	}
	var err error
	if p.Price, err = decimal.NewFromString(price); err != nil {
		return domain.Product{}, fmt.Errorf("invalid stored price of %s: %w", p.ID, err)
	}
	if p.Cost, err = decimal.NewFromString(cost); err != nil {
		return domain.Product{}, fmt.Errorf("invalid stored cost of %s: %w", p.ID, err)
	}
	if p.CreatedAt, err = parseTimestamp(since); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

func (s *Store) SaveProduct(ctx context.Context, product domain.Product) error {
	res, err := s.db.ExecContext(ctx, `INSERT INTO products (`+productColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING`,
		product.ID, product.Name, product.Category, product.Price.String(), product.Cost.String(),
		product.Stock, product.MinStock, product.Supplier, formatTimestamp(product.CreatedAt))
	if err != nil {
		return fmt.Errorf("failed to insert product %s: %w", product.ID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: product %s", apperrors.ErrDuplicate, product.ID)
	}
	return nil
}

func (s *Store) UpdateProduct(ctx context.Context, product domain.Product) error {
	res, err := s.db.ExecContext(ctx, `UPDATE products
		SET name = ?, category = ?, price = ?, cost = ?, min_stock = ?, supplier = ?
		WHERE id = ?`,
		product.Name, product.Category, product.Price.String(), product.Cost.String(),
		product.MinStock, product.Supplier, product.ID)
	if err != nil {
		return fmt.Errorf("failed to update product %s: %w", product.ID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: product %s", apperrors.ErrNotFound, product.ID)
	}
	return nil
}

func (s *Store) DeleteProduct(ctx context.Context, productID string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, productID)
	if err != nil {
		return fmt.Errorf("failed to delete product %s: %w", productID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: product %s", apperrors.ErrNotFound, productID)
	}
	return nil
}

func (s *Store) SetStock(ctx context.Context, productID string, stock int) error {
	res, err := s.db.ExecContext(ctx, `UPDATE products SET stock = ? WHERE id = ?`, stock, productID)
	if err != nil {
		return fmt.Errorf("failed to update stock of %s: %w", productID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: product %s", apperrors.ErrNotFound, productID)
	}
	return nil
}

func (s *Store) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	p, err := scanProduct(s.db.QueryRowContext(ctx, `SELECT `+productColumns+` FROM products WHERE id = ?`, productID))
	if err != nil {
		if isNoRows(err) {
			return nil, fmt.Errorf("%w: product %s", apperrors.ErrNotFound, productID)
		}
		return nil, fmt.Errorf("failed to find product %s: %w", productID, err)
	}
	return &p, nil
}

func (s *Store) FindProductsByIDs(ctx context.Context, productIDs []string) (map[string]domain.Product, error) {
	out := make(map[string]domain.Product, len(productIDs))
	if len(productIDs) == 0 {
		return out, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(productIDs)), ",")
	args := make([]any, len(productIDs))
	for i, id := range productIDs {
		args[i] = id
	}
	rows, err := s.db.QueryContext(ctx, `SELECT `+productColumns+` FROM products WHERE id IN (`+placeholders+`)`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		out[p.ID] = p
	}
	return out, rows.Err()
}

func (s *Store) ListProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+productColumns+` FROM products ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return collectProducts(rows)
}

func collectProducts(rows *sql.Rows) ([]domain.Product, error) {
	defer rows.Close()
	out := []domain.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
