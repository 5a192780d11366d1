package domain

import (
	"errors"
	"strings"
)

var (
	// ErrNoNames is returned when no non-blank name remains after trimming.
	ErrNoNames = errors.New("at least one name is required")
	// ErrNoLocation is returned for a blank location.
	ErrNoLocation = errors.New("location is required")
	// ErrMissingTime is returned when start or end time is absent.
	ErrMissingTime = errors.New("both start and end times are required")
	// ErrNonPositiveDuration is returned when end is not after start.
	ErrNonPositiveDuration = errors.New("end time must be after start time")
)

// EntryInput is a candidate day entry as submitted by the client.
type EntryInput struct {
	Names    []string
	Location string
	Start    string
	End      string
}

// NormalizedEntry is a validated entry with trimmed fields and derived total.
type NormalizedEntry struct {
	Names    []string
	Location string
	Start    string
	End      string
	Total    float64
}

// ValidateEntry checks a candidate entry in a fixed order and returns the
// first failure: names, location, time presence, time format, duration.
func ValidateEntry(input EntryInput) (*NormalizedEntry, error) {
	names := make([]string, 0, len(input.Names))
	for _, name := range input.Names {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			names = append(names, trimmed)
		}
	}
	if len(names) == 0 {
		return nil, ErrNoNames
	}

	location := strings.TrimSpace(input.Location)
	if location == "" {
		return nil, ErrNoLocation
	}

	if input.Start == "" || input.End == "" {
		return nil, ErrMissingTime
	}

	total, err := ComputeHours(input.Start, input.End)
	if err != nil {
		return nil, err
	}
	if total <= 0 {
		return nil, ErrNonPositiveDuration
	}

	return &NormalizedEntry{
		Names:    names,
		Location: location,
		Start:    input.Start,
		End:      input.End,
		Total:    total,
	}, nil
}
