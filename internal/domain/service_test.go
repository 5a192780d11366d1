package domain

import (
	"context"
	"testing"
	"time"
)

func TestSaveEntryNewSetsTimestamps(t *testing.T) {
	repo := &stubRepo{}
	service := NewService(repo)

	entry, err := service.SaveEntry(context.Background(), "u1", "2024-02-10", EntryInput{
		Names:    []string{"Alice"},
		Location: "Office",
		Start:    "09:00",
		End:      "17:30",
	})
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if entry.ID != "u1_2024-02-10" {
		t.Fatalf("unexpected id %s", entry.ID)
	}
	if entry.WorkHours.Total != 8.5 {
		t.Fatalf("unexpected total %v", entry.WorkHours.Total)
	}
	if entry.CreatedAt.IsZero() || !entry.CreatedAt.Equal(entry.UpdatedAt) {
		t.Fatalf("new entry should have CreatedAt == UpdatedAt, got %v / %v", entry.CreatedAt, entry.UpdatedAt)
	}
	if repo.saved == nil {
		t.Fatal("entry was not persisted")
	}
}

func TestSaveEntryPreservesCreatedAtOnEdit(t *testing.T) {
	createdAt := time.Date(2024, time.February, 1, 8, 0, 0, 0, time.UTC)
	repo := &stubRepo{
		existing: &DayEntry{
			ID:        "u1_2024-02-10",
			Date:      "2024-02-10",
			UserID:    "u1",
			CreatedAt: createdAt,
			UpdatedAt: createdAt,
		},
	}
	service := NewService(repo)

	entry, err := service.SaveEntry(context.Background(), "u1", "2024-02-10", EntryInput{
		Names:    []string{"Alice", "Bob"},
		Location: "Office",
		Start:    "08:00",
		End:      "16:00",
	})
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if !entry.CreatedAt.Equal(createdAt) {
		t.Fatalf("CreatedAt not preserved: got %v want %v", entry.CreatedAt, createdAt)
	}
	if !entry.UpdatedAt.After(createdAt) {
		t.Fatalf("UpdatedAt not refreshed: %v", entry.UpdatedAt)
	}
}

func TestSaveEntryRejectsBadDate(t *testing.T) {
	service := NewService(&stubRepo{})

	_, err := service.SaveEntry(context.Background(), "u1", "02/10/2024", EntryInput{
		Names:    []string{"Alice"},
		Location: "Office",
		Start:    "09:00",
		End:      "17:00",
	})
	if err != ErrInvalidDate {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestSaveEntryRejectsInvalidInput(t *testing.T) {
	repo := &stubRepo{}
	service := NewService(repo)

	_, err := service.SaveEntry(context.Background(), "u1", "2024-02-10", EntryInput{
		Names:    []string{"   "},
		Location: "Office",
		Start:    "09:00",
		End:      "17:00",
	})
	if err != ErrNoNames {
		t.Fatalf("expected ErrNoNames, got %v", err)
	}
	if repo.saved != nil {
		t.Fatal("invalid entry must not be persisted")
	}
}

func TestGetEntryMapsAbsenceToNotFound(t *testing.T) {
	service := NewService(&stubRepo{})

	_, err := service.GetEntry(context.Background(), "u1", "2024-02-10")
	if err != ErrEntryNotFound {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}
}

func TestDeleteEntryAbsentIsNoop(t *testing.T) {
	repo := &stubRepo{deleteErr: ErrEntryNotFound}
	service := NewService(repo)

	if err := service.DeleteEntry(context.Background(), "u1", "2024-02-10"); err != nil {
		t.Fatalf("delete of absent entry should succeed, got %v", err)
	}
}

func TestMonthViewBuildsIndexes(t *testing.T) {
	repo := &stubRepo{
		month: []DayEntry{
			{Date: "2024-02-10", UserID: "u1"},
			{Date: "2024-02-20", UserID: "u1"},
		},
	}
	service := NewService(repo)

	data, markers, err := service.MonthView(context.Background(), "u1", 2024, 2, "2024-02-10")
	if err != nil {
		t.Fatalf("month view failed: %v", err)
	}
	if len(data.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(data.Entries))
	}
	if !markers["2024-02-10"].Selected {
		t.Fatal("selected date not marked")
	}
	if markers["2024-02-20"].Selected {
		t.Fatal("unselected date marked selected")
	}
}

type stubRepo struct {
	existing  *DayEntry
	saved     *DayEntry
	deleteErr error
	month     []DayEntry
}

func (s *stubRepo) Get(ctx context.Context, userID, date string) (*DayEntry, error) {
	return s.existing, nil
}

func (s *stubRepo) Save(ctx context.Context, entry DayEntry) error {
	s.saved = &entry
	return nil
}

func (s *stubRepo) Delete(ctx context.Context, userID, date string) error {
	return s.deleteErr
}

func (s *stubRepo) ListByMonth(ctx context.Context, userID string, year, month int) ([]DayEntry, error) {
	return s.month, nil
}
