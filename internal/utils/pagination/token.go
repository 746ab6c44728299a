package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
)

const timeFormat = time.RFC3339Nano // Use a precise time format

// Cursor identifies the last journal entry of a page in listing order.
type Cursor struct {
	CreatedAt time.Time
	Date      time.Time
	EntryID   string
}

// CursorOf returns the cursor pointing at entry.
func CursorOf(entry domain.JournalEntry) Cursor {
	return Cursor{CreatedAt: entry.CreatedAt, Date: entry.Date, EntryID: entry.ID}
}

// Follows reports whether entry is listed after the cursor position.
func (c Cursor) Follows(entry domain.JournalEntry) bool {
	return domain.ListedBefore(domain.JournalEntry{CreatedAt: c.CreatedAt, Date: c.Date, ID: c.EntryID}, entry)
}

// EncodeToken creates a base64 encoded token from a cursor.
// This is used for consistent pagination across different repositories.
func EncodeToken(c Cursor) string {
	tokenStr := fmt.Sprintf("%s|%s|%s", c.CreatedAt.Format(timeFormat), c.Date.Format(timeFormat), c.EntryID)
	return base64.StdEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeToken parses the base64 encoded token back into a cursor.
func DecodeToken(token string) (Cursor, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 3)
	if len(parts) != 3 {
		return Cursor{}, fmt.Errorf("invalid pagination token format (split)")
	}

	createdAt, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token format (created_at parse): %w", err)
	}
	date, err := time.Parse(timeFormat, parts[1])
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token format (entry date parse): %w", err)
	}

	return Cursor{CreatedAt: createdAt, Date: date, EntryID: parts[2]}, nil
}

// Page cuts one page out of entries already sorted in listing order. It returns the page and
// the token of the following page, nil on the last page.
func Page(sorted []domain.JournalEntry, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	start := 0
	if nextToken != nil && *nextToken != "" {
		cursor, err := DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, err
		}
		start = len(sorted)
		for i, e := range sorted {
			if cursor.Follows(e) {
				start = i
				break
			}
		}
	}

	end := start + limit
	if limit <= 0 || end > len(sorted) {
		end = len(sorted)
	}
	page := sorted[start:end]

	var next *string
	if end < len(sorted) && len(page) > 0 {
		token := EncodeToken(CursorOf(page[len(page)-1]))
		next = &token
	}
	return page, next, nil
}
