// Package sqlite stores the ledger and the product registry in a single SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	portsrepo "github.com/SscSPs/pos_ledger/internal/core/ports/repositories"
	"github.com/google/uuid"
	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

// timestampLayout is fixed width so that text ordering matches time ordering.
const timestampLayout = "2006-01-02T15:04:05.000000000Z"

// Migrations returns the schema statements, applied in order on every open.
// Each string is a single SQL statement.
func Migrations() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS journal_entries (
			id          TEXT PRIMARY KEY,
			entry_date  TEXT NOT NULL,
			created_at  TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			reference   TEXT NOT NULL DEFAULT '',
			origin      TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_journal_entries_listing
			ON journal_entries(created_at DESC, entry_date DESC, id)`,

		`CREATE TABLE IF NOT EXISTS journal_lines (
			entry_id   TEXT NOT NULL REFERENCES journal_entries(id) ON DELETE CASCADE,
			position   INTEGER NOT NULL,
			account_id TEXT NOT NULL,
			side       TEXT NOT NULL CHECK (side IN ('DEBIT', 'CREDIT')),
			amount     TEXT NOT NULL,
			PRIMARY KEY (entry_id, position)
		)`,

		`CREATE TABLE IF NOT EXISTS products (
			id         TEXT PRIMARY KEY,
			name       TEXT NOT NULL,
			category   TEXT NOT NULL DEFAULT '',
			price      TEXT NOT NULL,
			cost       TEXT NOT NULL,
			stock      INTEGER NOT NULL DEFAULT 0,
			min_stock  INTEGER NOT NULL DEFAULT 0,
			supplier   TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_products_name ON products(name, id)`,
	}
}

// Store implements the ledger and product repositories on SQLite.
type Store struct {
	db    *sql.DB
	newID func() string
}

var (
	_ portsrepo.LedgerRepositoryFacade  = (*Store)(nil)
	_ portsrepo.ProductRepositoryFacade = (*Store)(nil)
	_ portsrepo.StoreLifecycle          = (*Store)(nil)
)

// Open opens (creating if needed) the database file at path and applies the migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	// One connection: SQLite has a single writer and the pragmas are per connection.
	db.SetMaxOpenConns(1)

	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db, newID: uuid.NewString}, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	for i, stmt := range Migrations() {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("sqlite migration %d failed: %w", i, err)
		}
	}
	return nil
}

// Ping checks that the database file is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func parseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(timestampLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid stored timestamp %q: %w", s, err)
	}
	return t, nil
}
