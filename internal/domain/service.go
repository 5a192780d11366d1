package domain

import (
	"context"
	"errors"
	"time"
)

// Service orchestrates day-entry workflows over the repository.
type Service struct {
	repo EntryRepository
}

// NewService constructs a Service.
func NewService(repo EntryRepository) *Service {
	return &Service{repo: repo}
}

// SaveEntry validates the candidate input and upserts the entry at
// (userID, date). When a prior record exists its CreatedAt is carried
// forward; UpdatedAt is refreshed on every save. There is no transactional
// guard around the read-before-write: writes for one user are serialized by
// the client.
func (s *Service) SaveEntry(ctx context.Context, userID, date string, input EntryInput) (*DayEntry, error) {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return nil, ErrInvalidDate
	}

	normalized, err := ValidateEntry(input)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.Get(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	createdAt := now
	if existing != nil {
		createdAt = existing.CreatedAt
	}

	entry := DayEntry{
		ID:       EntryID(userID, date),
		Date:     date,
		Names:    normalized.Names,
		Location: normalized.Location,
		WorkHours: WorkHours{
			Start: normalized.Start,
			End:   normalized.End,
			Total: normalized.Total,
		},
		UserID:    userID,
		CreatedAt: createdAt,
		UpdatedAt: now,
	}

	if err := s.repo.Save(ctx, entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// GetEntry fetches the entry at (userID, date).
func (s *Service) GetEntry(ctx context.Context, userID, date string) (*DayEntry, error) {
	entry, err := s.repo.Get(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, ErrEntryNotFound
	}
	return entry, nil
}

// DeleteEntry removes the entry at (userID, date). Deleting an absent entry
// is a no-op success: the user-visible contract is idempotent delete.
func (s *Service) DeleteEntry(ctx context.Context, userID, date string) error {
	err := s.repo.Delete(ctx, userID, date)
	if errors.Is(err, ErrEntryNotFound) {
		return nil
	}
	return err
}

// MonthView loads the user's entries for a calendar month and rebuilds the
// date indexes from scratch. Month entry counts are at most 31, so full
// recomputation per request is fine.
func (s *Service) MonthView(ctx context.Context, userID string, year, month int, selectedDate string) (MonthData, map[string]DayMarker, error) {
	entries, err := s.repo.ListByMonth(ctx, userID, year, month)
	if err != nil {
		return MonthData{}, nil, err
	}
	data := BuildMonthData(year, month, entries)
	return data, BuildMarkers(data, selectedDate), nil
}
