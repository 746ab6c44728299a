package bolt

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	bbolt "go.etcd.io/bbolt"
)

func getProduct(b *bbolt.Bucket, productID string) (domain.Product, bool, error) {
	data := b.Get([]byte(productID))
	if data == nil {
		return domain.Product{}, false, nil
	}
	var p domain.Product
	if err := json.Unmarshal(data, &p); err != nil {
		return domain.Product{}, false, fmt.Errorf("failed to decode product %s: %w", productID, err)
	}
	return p, true, nil
}

func (s *Store) SaveProduct(_ context.Context, product domain.Product) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, BucketProducts)
		if err != nil {
			return err
		}
		if b.Get([]byte(product.ID)) != nil {
			return fmt.Errorf("%w: product %s", apperrors.ErrDuplicate, product.ID)
		}
		return put(b, product.ID, product)
	})
}

func (s *Store) UpdateProduct(_ context.Context, product domain.Product) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, BucketProducts)
		if err != nil {
			return err
		}
		current, ok, err := getProduct(b, product.ID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: product %s", apperrors.ErrNotFound, product.ID)
		}
		product.Stock = current.Stock
		product.CreatedAt = current.CreatedAt
		return put(b, product.ID, product)
	})
}

func (s *Store) DeleteProduct(_ context.Context, productID string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, BucketProducts)
		if err != nil {
			return err
		}
		if b.Get([]byte(productID)) == nil {
			return fmt.Errorf("%w: product %s", apperrors.ErrNotFound, productID)
		}
		return b.Delete([]byte(productID))
	})
}

func (s *Store) SetStock(_ context.Context, productID string, stock int) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, BucketProducts)
		if err != nil {
			return err
		}
		p, ok, err := getProduct(b, productID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: product %s", apperrors.ErrNotFound, productID)
		}
		p.Stock = stock
		return put(b, productID, p)
	})
}

func (s *Store) FindProductByID(_ context.Context, productID string) (*domain.Product, error) {
	var (
		p  domain.Product
		ok bool
	)
	err := s.db.View(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, BucketProducts)
		if err != nil {
			return err
		}
		p, ok, err = getProduct(b, productID)
		return err
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: product %s", apperrors.ErrNotFound, productID)
	}
	return &p, nil
}

func (s *Store) FindProductsByIDs(_ context.Context, productIDs []string) (map[string]domain.Product, error) {
	out := make(map[string]domain.Product, len(productIDs))
	err := s.db.View(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, BucketProducts)
		if err != nil {
			return err
		}
		for _, id := range productIDs {
			p, ok, err := getProduct(b, id)
			if err != nil {
				return err
			}
			if ok {
				out[id] = p
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) ListProducts(_ context.Context) ([]domain.Product, error) {
	products := []domain.Product{}
	err := s.db.View(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, BucketProducts)
		if err != nil {
			return err
		}
		return b.ForEach(func(k, v []byte) error {
			var p domain.Product
			if err := json.Unmarshal(v, &p); err != nil {
				return fmt.Errorf("failed to decode product %s: %w", k, err)
			}
			products = append(products, p)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(products, func(i, j int) bool {
		if products[i].Name != products[j].Name {
			return products[i].Name < products[j].Name
		}
		return products[i].ID < products[j].ID
	})
	return products, nil
}
