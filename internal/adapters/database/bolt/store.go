// Package bolt stores the ledger and the product registry in an embedded bbolt file, one JSON
// record per key.
package bolt

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	portsrepo "github.com/SscSPs/pos_ledger/internal/core/ports/repositories"
	"github.com/google/uuid"
	bbolt "go.etcd.io/bbolt"
)

// Bucket names.
const (
	BucketEntries  = "journal_entries"
	BucketProducts = "products"
)

// Store implements the ledger and product repositories on bbolt.
type Store struct {
	db    *bbolt.DB
	newID func() string
}

var (
	_ portsrepo.LedgerRepositoryFacade  = (*Store)(nil)
	_ portsrepo.ProductRepositoryFacade = (*Store)(nil)
	_ portsrepo.StoreLifecycle          = (*Store)(nil)
)

// Open opens (creating if needed) the database file at path and initializes the buckets.
func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, bucket := range []string{BucketEntries, BucketProducts} {
			if _, err := tx.CreateBucketIfNotExists([]byte(bucket)); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db, newID: uuid.NewString}, nil
}

// Ping checks that the buckets are readable.
func (s *Store) Ping(_ context.Context) error {
	return s.db.View(func(tx *bbolt.Tx) error {
		if tx.Bucket([]byte(BucketEntries)) == nil {
			return fmt.Errorf("bucket %s not found", BucketEntries)
		}
		return nil
	})
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func bucket(tx *bbolt.Tx, name string) (*bbolt.Bucket, error) {
	b := tx.Bucket([]byte(name))
	if b == nil {
		return nil, fmt.Errorf("bucket %s not found", name)
	}
	return b, nil
}

func put(b *bbolt.Bucket, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}
	return b.Put([]byte(key), data)
}
