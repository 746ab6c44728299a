package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/SscSPs/pos_ledger/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

const entryColumns = `id, entry_date, created_at, description, reference, origin`

const listingOrder = ` ORDER BY created_at DESC, entry_date DESC, id ASC`

// execer is satisfied by *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func (s *Store) AppendEntry(ctx context.Context, entry domain.JournalEntry) (string, error) {
	id := s.newID()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	_, err = tx.ExecContext(ctx, `INSERT INTO journal_entries (`+entryColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		id, domain.FormatDate(entry.Date), formatTimestamp(entry.CreatedAt), entry.Description, entry.Reference, string(entry.Origin))
	if err != nil {
		return "", fmt.Errorf("failed to insert journal entry: %w", err)
	}
	if err := insertLines(ctx, tx, id, entry.Lines); err != nil {
		return "", err
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit journal entry: %w", err)
	}
	return id, nil
}

func insertLines(ctx context.Context, q execer, entryID string, lines []domain.JournalLine) error {
	for i, l := range lines {
		_, err := q.ExecContext(ctx, `INSERT INTO journal_lines (entry_id, position, account_id, side, amount) VALUES (?, ?, ?, ?, ?)`,
			entryID, i, l.AccountID, string(l.Side), l.Amount.String())
		if err != nil {
			return fmt.Errorf("failed to insert journal line %d of %s: %w", i, entryID, err)
		}
	}
	return nil
}

func (s *Store) UpdateEntry(ctx context.Context, entryID string, entry domain.JournalEntry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	res, err := tx.ExecContext(ctx, `UPDATE journal_entries SET entry_date = ?, description = ?, reference = ? WHERE id = ?`,
		domain.FormatDate(entry.Date), entry.Description, entry.Reference, entryID)
	if err != nil {
		return fmt.Errorf("failed to update journal entry %s: %w", entryID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: journal entry %s", apperrors.ErrNotFound, entryID)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM journal_lines WHERE entry_id = ?`, entryID); err != nil {
		return fmt.Errorf("failed to replace lines of %s: %w", entryID, err)
	}
	if err := insertLines(ctx, tx, entryID, entry.Lines); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *Store) DeleteEntry(ctx context.Context, entryID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, `DELETE FROM journal_lines WHERE entry_id = ?`, entryID); err != nil {
		return fmt.Errorf("failed to delete lines of %s: %w", entryID, err)
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM journal_entries WHERE id = ?`, entryID)
	if err != nil {
		return fmt.Errorf("failed to delete journal entry %s: %w", entryID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: journal entry %s", apperrors.ErrNotFound, entryID)
	}
	return tx.Commit()
}

func (s *Store) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	entries, err := s.queryEntries(ctx, `SELECT `+entryColumns+` FROM journal_entries WHERE id = ?`, entryID)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: journal entry %s", apperrors.ErrNotFound, entryID)
	}
	return &entries[0], nil
}

func (s *Store) ListEntries(ctx context.Context) ([]domain.JournalEntry, error) {
	return s.queryEntries(ctx, `SELECT `+entryColumns+` FROM journal_entries`+listingOrder)
}

func (s *Store) ListEntriesPage(ctx context.Context, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries`
	var args []any

	if nextToken != nil && *nextToken != "" {
		cursor, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		created, date := formatTimestamp(cursor.CreatedAt), domain.FormatDate(cursor.Date)
		query += ` WHERE created_at < ?
			OR (created_at = ? AND entry_date < ?)
			OR (created_at = ? AND entry_date = ? AND id > ?)`
		args = append(args, created, created, date, created, date, cursor.EntryID)
	}
	query += listingOrder
	if limit > 0 {
		// One extra row tells whether another page follows.
		query += ` LIMIT ?`
		args = append(args, limit+1)
	}

	entries, err := s.queryEntries(ctx, query, args...)
	if err != nil {
		return nil, nil, err
	}

	var next *string
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
		token := pagination.EncodeToken(pagination.CursorOf(entries[limit-1]))
		next = &token
	}
	return entries, next, nil
}

// queryEntries runs an entry query and attaches the lines of every returned entry.
func (s *Store) queryEntries(ctx context.Context, query string, args ...any) ([]domain.JournalEntry, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal entries: %w", err)
	}

	var entries []domain.JournalEntry
	for rows.Next() {
		var (
			e             domain.JournalEntry
			date, created string
			origin        string
		)
		if err := rows.Scan(&e.ID, &date, &created, &e.Description, &e.Reference, &origin); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}
		if e.Date, err = domain.ParseDate(date); err != nil {
			rows.Close()
			return nil, err
		}
		if e.CreatedAt, err = parseTimestamp(created); err != nil {
			rows.Close()
			return nil, err
		}
		e.Origin = domain.JournalOrigin(origin)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("failed to iterate journal entries: %w", err)
	}
	rows.Close()

	if len(entries) == 0 {
		return []domain.JournalEntry{}, nil
	}

	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	lines, err := s.loadLines(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		entries[i].Lines = lines[entries[i].ID]
	}
	return entries, nil
}

func (s *Store) loadLines(ctx context.Context, entryIDs []string) (map[string][]domain.JournalLine, error) {
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(entryIDs)), ",")
	args := make([]any, len(entryIDs))
	for i, id := range entryIDs {
		args[i] = id
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT entry_id, account_id, side, amount FROM journal_lines WHERE entry_id IN (`+placeholders+`) ORDER BY entry_id, position`,
		args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal lines: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]domain.JournalLine, len(entryIDs))
	for rows.Next() {
		var entryID, accountID, side, amount string
		if err := rows.Scan(&entryID, &accountID, &side, &amount); err != nil {
			return nil, fmt.Errorf("failed to scan journal line: %w", err)
		}
		value, err := decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("invalid stored amount %q for entry %s: %w", amount, entryID, err)
		}
		out[entryID] = append(out[entryID], domain.JournalLine{
			AccountID: accountID,
			Amount:    value,
			Side:      domain.TransactionType(side),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// isNoRows reports whether err is the empty-result error of database/sql.
func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
