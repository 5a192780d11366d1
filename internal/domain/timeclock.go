package domain

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidClock is returned for times that do not match HH:MM.
var ErrInvalidClock = errors.New("time must be HH:MM")

var clockPattern = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)

// ParseClock converts an HH:MM string to minutes since midnight.
// Hours run 0-23 (a single leading digit is accepted), minutes 00-59.
func ParseClock(s string) (int, error) {
	if !clockPattern.MatchString(s) {
		return 0, ErrInvalidClock
	}
	parts := strings.SplitN(s, ":", 2)
	hours, _ := strconv.Atoi(parts[0])
	minutes, _ := strconv.Atoi(parts[1])
	return hours*60 + minutes, nil
}

// ComputeHours returns the elapsed hours between two same-day clock times,
// rounded to two decimal places. An end earlier than or equal to start yields
// a non-positive value; that is data, not an error, and callers enforce
// positivity themselves.
func ComputeHours(start, end string) (float64, error) {
	startMin, err := ParseClock(start)
	if err != nil {
		return 0, err
	}
	endMin, err := ParseClock(end)
	if err != nil {
		return 0, err
	}
	diff := float64(endMin - startMin)
	return math.Round(diff/60*100) / 100, nil
}
