// Package postgres provides pgx-backed persistence for the planner service.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/planner/internal/domain"
	"example.com/planner/internal/observability"
	"example.com/planner/internal/outbox"
)

// Repository stores day entries and records outbox events alongside writes.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a Repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

var _ domain.EntryRepository = (*Repository)(nil)

const entryColumns = `entry_id, user_id, entry_date, names, location, start_clock, end_clock, total_hours, created_at, updated_at`

// Get returns the entry at the composite (userID, date) key, or nil when
// absent. Absence is not an error.
func (r *Repository) Get(ctx context.Context, userID, date string) (*domain.DayEntry, error) {
	const query = `SELECT ` + entryColumns + ` FROM entries WHERE entry_id=$1 AND user_id=$2`

	row := r.pool.QueryRow(ctx, query, domain.EntryID(userID, date), userID)
	entry, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return entry, nil
}

// Save upserts the entry at its composite key, overwriting every field with
// the caller-supplied values (the service already carried createdAt forward
// when editing), and records an entry.saved outbox event in the same
// transaction.
func (r *Repository) Save(ctx context.Context, entry domain.DayEntry) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback(ctx)
		}
	}()

	const upsert = `INSERT INTO entries (` + entryColumns + `)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
        ON CONFLICT (entry_id) DO UPDATE SET
            names = EXCLUDED.names,
            location = EXCLUDED.location,
            start_clock = EXCLUDED.start_clock,
            end_clock = EXCLUDED.end_clock,
            total_hours = EXCLUDED.total_hours,
            created_at = EXCLUDED.created_at,
            updated_at = EXCLUDED.updated_at`

	entryDate, err := time.Parse(domain.DateLayout, entry.Date)
	if err != nil {
		return domain.ErrInvalidDate
	}

	_, err = tx.Exec(ctx, upsert,
		entry.ID,
		entry.UserID,
		entryDate,
		entry.Names,
		entry.Location,
		entry.WorkHours.Start,
		entry.WorkHours.End,
		entry.WorkHours.Total,
		entry.CreatedAt,
		entry.UpdatedAt,
	)
	if err != nil {
		return err
	}

	if err = insertOutbox(ctx, tx, entry.ID, outbox.EventEntrySaved, entry.UserID, outbox.EntrySaved{
		EntryID:    entry.ID,
		UserID:     entry.UserID,
		Date:       entry.Date,
		TotalHours: entry.WorkHours.Total,
		UpdatedAt:  entry.UpdatedAt,
	}); err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return err
	}
	observability.RecordEntryPersisted(entry.UpdatedAt)
	return nil
}

// Delete removes the entry at (userID, date), returning ErrEntryNotFound
// when no row exists, and records an entry.deleted outbox event.
func (r *Repository) Delete(ctx context.Context, userID, date string) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback(ctx)
		}
	}()

	entryID := domain.EntryID(userID, date)

	tag, err := tx.Exec(ctx, `DELETE FROM entries WHERE entry_id=$1 AND user_id=$2`, entryID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		err = domain.ErrEntryNotFound
		return err
	}

	if err = insertOutbox(ctx, tx, entryID, outbox.EventEntryDeleted, userID, outbox.EntryDeleted{
		EntryID:    entryID,
		UserID:     userID,
		Date:       date,
		OccurredAt: time.Now().UTC(),
	}); err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return err
	}
	observability.RecordEntryDeleted()
	return nil
}

// ListByMonth returns the user's entries with dates inside the calendar
// month, bounds inclusive.
func (r *Repository) ListByMonth(ctx context.Context, userID string, year, month int) ([]domain.DayEntry, error) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	const query = `SELECT ` + entryColumns + ` FROM entries
        WHERE user_id=$1 AND entry_date BETWEEN $2 AND $3
        ORDER BY entry_date`

	rows, err := r.pool.Query(ctx, query, userID, first, last)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]domain.DayEntry, 0)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func insertOutbox(ctx context.Context, tx pgx.Tx, aggregateID, eventType, partitionKey string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	const stmt = `INSERT INTO outbox (aggregate_id, event_type, partition_key, payload)
        VALUES ($1,$2,$3,$4)`

	_, err = tx.Exec(ctx, stmt, aggregateID, eventType, partitionKey, body)
	return err
}

func scanEntry(row pgx.Row) (*domain.DayEntry, error) {
	var entry domain.DayEntry
	var entryDate time.Time
	if err := row.Scan(
		&entry.ID,
		&entry.UserID,
		&entryDate,
		&entry.Names,
		&entry.Location,
		&entry.WorkHours.Start,
		&entry.WorkHours.End,
		&entry.WorkHours.Total,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	); err != nil {
		return nil, err
	}
	entry.Date = entryDate.Format(domain.DateLayout)
	return &entry, nil
}
