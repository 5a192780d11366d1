// Package memory provides in-memory stores for local development and tests.
package memory

import (
	"context"
	"fmt"
	"sync"

	"example.com/planner/internal/domain"
	"example.com/planner/internal/identity"
)

// EntryStore keeps day entries in memory, keyed like the document store.
type EntryStore struct {
	mu      sync.RWMutex
	entries map[string]domain.DayEntry
}

// NewEntryStore constructs an empty EntryStore.
func NewEntryStore() *EntryStore {
	return &EntryStore{entries: make(map[string]domain.DayEntry)}
}

var _ domain.EntryRepository = (*EntryStore)(nil)

// Get implements domain.EntryRepository.
func (s *EntryStore) Get(ctx context.Context, userID, date string) (*domain.DayEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[domain.EntryID(userID, date)]
	if !ok {
		return nil, nil
	}
	return &entry, nil
}

// Save implements domain.EntryRepository.
func (s *EntryStore) Save(ctx context.Context, entry domain.DayEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[entry.ID] = entry
	return nil
}

// Delete implements domain.EntryRepository.
func (s *EntryStore) Delete(ctx context.Context, userID, date string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := domain.EntryID(userID, date)
	if _, ok := s.entries[id]; !ok {
		return domain.ErrEntryNotFound
	}
	delete(s.entries, id)
	return nil
}

// ListByMonth implements domain.EntryRepository using inclusive first/last
// day-of-month bounds over the ISO date strings.
func (s *EntryStore) ListByMonth(ctx context.Context, userID string, year, month int) ([]domain.DayEntry, error) {
	first := fmt.Sprintf("%04d-%02d-01", year, month)
	last := fmt.Sprintf("%04d-%02d-%02d", year, month, daysInMonth(year, month))

	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]domain.DayEntry, 0)
	for _, entry := range s.entries {
		if entry.UserID != userID {
			continue
		}
		if entry.Date >= first && entry.Date <= last {
			results = append(results, entry)
		}
	}
	return results, nil
}

func daysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	default:
		if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
			return 29
		}
		return 28
	}
}

// UserStore keeps registered users in memory.
type UserStore struct {
	mu      sync.RWMutex
	byEmail map[string]identity.User
}

// NewUserStore constructs an empty UserStore.
func NewUserStore() *UserStore {
	return &UserStore{byEmail: make(map[string]identity.User)}
}

var _ identity.UserStore = (*UserStore)(nil)

// CreateUser implements identity.UserStore.
func (s *UserStore) CreateUser(ctx context.Context, user identity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byEmail[user.Email]; ok {
		return identity.ErrEmailTaken
	}
	s.byEmail[user.Email] = user
	return nil
}

// UserByEmail implements identity.UserStore.
func (s *UserStore) UserByEmail(ctx context.Context, email string) (*identity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.byEmail[email]
	if !ok {
		return nil, nil
	}
	return &user, nil
}
