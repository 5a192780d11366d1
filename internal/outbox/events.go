package outbox

import "time"

// EntryEventsTopic carries every day-entry mutation event.
const EntryEventsTopic = "entry_events"

// Event types recorded in the outbox table.
const (
	EventEntrySaved   = "entry.saved"
	EventEntryDeleted = "entry.deleted"
)

// EntrySaved is published after a day entry is created or overwritten.
type EntrySaved struct {
	EntryID    string    `json:"entry_id"`
	UserID     string    `json:"user_id"`
	Date       string    `json:"date"`
	TotalHours float64   `json:"total_hours"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// EntryDeleted is published after a day entry is removed.
type EntryDeleted struct {
	EntryID    string    `json:"entry_id"`
	UserID     string    `json:"user_id"`
	Date       string    `json:"date"`
	OccurredAt time.Time `json:"occurred_at"`
}
