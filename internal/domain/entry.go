// Package domain defines the business logic for the planner service.
package domain

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrEntryNotFound is returned when a day entry cannot be located.
	ErrEntryNotFound = errors.New("day entry not found")
	// ErrInvalidDate is returned when a calendar date is not YYYY-MM-DD.
	ErrInvalidDate = errors.New("date must be YYYY-MM-DD")
)

// DateLayout is the calendar date format used for keys and queries.
const DateLayout = "2006-01-02"

// WorkHours captures a same-day working interval and its derived total.
type WorkHours struct {
	Start string
	End   string
	Total float64
}

// DayEntry is one user's work record for a single calendar date.
// At most one entry exists per (UserID, Date).
type DayEntry struct {
	ID        string
	Date      string
	Names     []string
	Location  string
	WorkHours WorkHours
	UserID    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EntryID builds the composite document key for a user and date.
func EntryID(userID, date string) string {
	return userID + "_" + date
}

// MonthData is the transient month aggregation backing the calendar view.
// It is recomputed on demand and never persisted.
type MonthData struct {
	Year    int
	Month   int
	Entries map[string]DayEntry
}

// EntryRepository captures persistence operations, all scoped by user.
type EntryRepository interface {
	// Get returns the entry at (userID, date), or nil when absent.
	Get(ctx context.Context, userID, date string) (*DayEntry, error)
	// Save upserts the entry at its composite key, overwriting all fields.
	Save(ctx context.Context, entry DayEntry) error
	// Delete removes the entry, returning ErrEntryNotFound when absent.
	Delete(ctx context.Context, userID, date string) error
	// ListByMonth returns the user's entries with dates inside the month.
	ListByMonth(ctx context.Context, userID string, year, month int) ([]DayEntry, error)
}
