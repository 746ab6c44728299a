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
	"github.com/SscSPs/pos_ledger/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const entrySelect = `
	SELECT entry_id, entry_date, created_at, description, reference, origin
	FROM journal_entries`

const listingOrder = `
	ORDER BY created_at DESC, entry_date DESC, entry_id ASC`

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for journal entries and their lines.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

// AppendEntry saves an entry and its lines within a DB transaction and returns the new entry id.
func (r *PgxLedgerRepository) AppendEntry(ctx context.Context, entry domain.JournalEntry) (string, error) {
	entry.ID = uuid.NewString()
	row := mapping.ToModelJournalEntry(entry)

	tx, err := r.Begin(ctx)
	if err != nil {
		return "", err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	_, err = tx.Exec(ctx, `
		INSERT INTO journal_entries (entry_id, entry_date, created_at, description, reference, origin)
		VALUES ($1, $2, $3, $4, $5, $6);`,
		row.EntryID, row.EntryDate, row.CreatedAt, row.Description, row.Reference, row.Origin,
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert journal entry %s: %w", row.EntryID, err)
	}
	if err := insertLines(ctx, tx, mapping.ToModelJournalLines(row.EntryID, entry.Lines)); err != nil {
		return "", err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return "", err
	}
	return row.EntryID, nil
}

func insertLines(ctx context.Context, tx pgx.Tx, lines []models.JournalLine) error {
	batch := &pgx.Batch{}
	for _, l := range lines {
		batch.Queue(`
			INSERT INTO journal_lines (entry_id, position, account_id, amount, transaction_type)
			VALUES ($1, $2, $3, $4, $5);`,
			l.EntryID, l.Position, l.AccountID, l.Amount, l.TransactionType,
		)
	}
	br := tx.SendBatch(ctx, batch)
	// Close the batch results, checking for errors during execution
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to insert journal lines: %w", err)
	}
	return nil
}

// UpdateEntry replaces the date, description, reference and lines of an entry. Id, createdAt
// and origin are kept.
func (r *PgxLedgerRepository) UpdateEntry(ctx context.Context, entryID string, entry domain.JournalEntry) error {
	if _, err := uuid.Parse(entryID); err != nil {
		return fmt.Errorf("%w: journal entry %s", apperrors.ErrNotFound, entryID)
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	tag, err := tx.Exec(ctx, `
		UPDATE journal_entries SET entry_date = $1, description = $2, reference = $3
		WHERE entry_id = $4;`,
		entry.Date, entry.Description, entry.Reference, entryID,
	)
	if err != nil {
		return fmt.Errorf("failed to update journal entry %s: %w", entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: journal entry %s", apperrors.ErrNotFound, entryID)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM journal_lines WHERE entry_id = $1;`, entryID); err != nil {
		return fmt.Errorf("failed to replace lines of %s: %w", entryID, err)
	}
	if err := insertLines(ctx, tx, mapping.ToModelJournalLines(entryID, entry.Lines)); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// DeleteEntry removes an entry; its lines go with it.
func (r *PgxLedgerRepository) DeleteEntry(ctx context.Context, entryID string) error {
	if _, err := uuid.Parse(entryID); err != nil {
		return fmt.Errorf("%w: journal entry %s", apperrors.ErrNotFound, entryID)
	}
	tag, err := r.Pool.Exec(ctx, `DELETE FROM journal_entries WHERE entry_id = $1;`, entryID)
	if err != nil {
		return fmt.Errorf("failed to delete journal entry %s: %w", entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: journal entry %s", apperrors.ErrNotFound, entryID)
	}
	return nil
}

// FindEntryByID retrieves an entry with its lines.
func (r *PgxLedgerRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	if _, err := uuid.Parse(entryID); err != nil {
		return nil, fmt.Errorf("%w: journal entry %s", apperrors.ErrNotFound, entryID)
	}

	var row models.JournalEntry
	err := r.Pool.QueryRow(ctx, entrySelect+` WHERE entry_id = $1;`, entryID).Scan(
		&row.EntryID, &row.EntryDate, &row.CreatedAt, &row.Description, &row.Reference, &row.Origin,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: journal entry %s", apperrors.ErrNotFound, entryID)
		}
		return nil, fmt.Errorf("failed to find journal entry %s: %w", entryID, err)
	}

	entries, err := r.attachLines(ctx, []models.JournalEntry{row})
	if err != nil {
		return nil, err
	}
	return &entries[0], nil
}

// ListEntries returns every entry in listing order.
func (r *PgxLedgerRepository) ListEntries(ctx context.Context) ([]domain.JournalEntry, error) {
	return r.queryEntries(ctx, entrySelect+listingOrder)
}

// ListEntriesPage returns one page of entries in listing order using keyset pagination.
func (r *PgxLedgerRepository) ListEntriesPage(ctx context.Context, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	query := entrySelect
	var args []any

	if nextToken != nil && *nextToken != "" {
		cursor, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		query += `
	WHERE created_at < $1
		OR (created_at = $1 AND entry_date < $2)
		OR (created_at = $1 AND entry_date = $2 AND entry_id > $3)`
		args = append(args, cursor.CreatedAt, cursor.Date, cursor.EntryID)
	}
	query += listingOrder
	if limit > 0 {
		// One extra row tells whether another page follows.
		args = append(args, limit+1)
		query += fmt.Sprintf(` LIMIT $%d`, len(args))
	}

	entries, err := r.queryEntries(ctx, query, args...)
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

func (r *PgxLedgerRepository) queryEntries(ctx context.Context, query string, args ...any) ([]domain.JournalEntry, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal entries: %w", err)
	}
	defer rows.Close()

	var entryRows []models.JournalEntry
	for rows.Next() {
		var row models.JournalEntry
		if err := rows.Scan(&row.EntryID, &row.EntryDate, &row.CreatedAt, &row.Description, &row.Reference, &row.Origin); err != nil {
			return nil, fmt.Errorf("failed to scan journal entry row: %w", err)
		}
		entryRows = append(entryRows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal entry rows: %w", err)
	}
	rows.Close()

	return r.attachLines(ctx, entryRows)
}

// attachLines loads the lines of the given entry rows and converts them to domain entries,
// keeping the row order.
func (r *PgxLedgerRepository) attachLines(ctx context.Context, entryRows []models.JournalEntry) ([]domain.JournalEntry, error) {
	if len(entryRows) == 0 {
		return []domain.JournalEntry{}, nil
	}
	ids := make([]string, len(entryRows))
	for i, row := range entryRows {
		ids[i] = row.EntryID
	}

	rows, err := r.Pool.Query(ctx, `
		SELECT entry_id, position, account_id, amount, transaction_type
		FROM journal_lines
		WHERE entry_id = ANY($1)
		ORDER BY entry_id, position;`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal lines: %w", err)
	}
	defer rows.Close()

	byEntry := make(map[string][]models.JournalLine, len(ids))
	for rows.Next() {
		var l models.JournalLine
		if err := rows.Scan(&l.EntryID, &l.Position, &l.AccountID, &l.Amount, &l.TransactionType); err != nil {
			return nil, fmt.Errorf("failed to scan journal line row: %w", err)
		}
		byEntry[l.EntryID] = append(byEntry[l.EntryID], l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal line rows: %w", err)
	}

	out := make([]domain.JournalEntry, len(entryRows))
	for i, row := range entryRows {
		out[i] = mapping.ToDomainJournalEntry(row, byEntry[row.EntryID])
	}
	return out, nil
}
