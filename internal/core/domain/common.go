package domain

import (
	"fmt"
	"time"
)

// DateLayout is the calendar date format accepted at the ledger boundary.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD calendar date in UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", s, err)
	}
	return t, nil
}

// FormatDate renders t as a YYYY-MM-DD calendar date.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Period is an inclusive calendar window. End covers the whole end day.
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewPeriod builds a period from two YYYY-MM-DD dates.
func NewPeriod(start, end string) (Period, error) {
	s, err := ParseDate(start)
	if err != nil {
		return Period{}, err
	}
	e, err := ParseDate(end)
	if err != nil {
		return Period{}, err
	}
	if e.Before(s) {
		return Period{}, fmt.Errorf("period end %s is before start %s", end, start)
	}
	return Period{Start: s, End: e}, nil
}

// Contains reports whether date falls within the period, the end date inclusive
// through 23:59:59.999.
func (p Period) Contains(date time.Time) bool {
	endOfDay := time.Date(p.End.Year(), p.End.Month(), p.End.Day(), 23, 59, 59, int(999*time.Millisecond), p.End.Location())
	return !date.Before(p.Start) && !date.After(endOfDay)
}
