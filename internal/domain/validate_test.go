package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateEntryNormalizes(t *testing.T) {
	normalized, err := ValidateEntry(EntryInput{
		Names:    []string{"Alice", "  "},
		Location: "Office",
		Start:    "09:00",
		End:      "17:30",
	})
	require.NoError(t, err)
	require.Equal(t, []string{"Alice"}, normalized.Names)
	require.Equal(t, "Office", normalized.Location)
	require.InDelta(t, 8.5, normalized.Total, 0.0001)
}

func TestValidateEntryTrimsLocation(t *testing.T) {
	normalized, err := ValidateEntry(EntryInput{
		Names:    []string{" Bob "},
		Location: "  Site 7  ",
		Start:    "07:30",
		End:      "16:00",
	})
	require.NoError(t, err)
	require.Equal(t, []string{"Bob"}, normalized.Names)
	require.Equal(t, "Site 7", normalized.Location)
}

func TestValidateEntryFailureOrder(t *testing.T) {
	cases := []struct {
		name  string
		input EntryInput
		want  error
	}{
		{
			name:  "blank names",
			input: EntryInput{Names: []string{""}, Location: "Site", Start: "09:00", End: "17:00"},
			want:  ErrNoNames,
		},
		{
			// Names are checked first even when everything else is bad too.
			name:  "names before location",
			input: EntryInput{Names: nil, Location: "", Start: "", End: ""},
			want:  ErrNoNames,
		},
		{
			name:  "blank location",
			input: EntryInput{Names: []string{"Alice"}, Location: "   ", Start: "09:00", End: "17:00"},
			want:  ErrNoLocation,
		},
		{
			name:  "missing start",
			input: EntryInput{Names: []string{"Alice"}, Location: "Site", Start: "", End: "17:00"},
			want:  ErrMissingTime,
		},
		{
			name:  "missing end",
			input: EntryInput{Names: []string{"Alice"}, Location: "Site", Start: "09:00", End: ""},
			want:  ErrMissingTime,
		},
		{
			name:  "bad format",
			input: EntryInput{Names: []string{"Alice"}, Location: "Site", Start: "24:00", End: "17:00"},
			want:  ErrInvalidClock,
		},
		{
			name:  "end before start",
			input: EntryInput{Names: []string{"Alice"}, Location: "Site", Start: "17:00", End: "09:00"},
			want:  ErrNonPositiveDuration,
		},
		{
			name:  "zero duration",
			input: EntryInput{Names: []string{"Alice"}, Location: "Site", Start: "09:00", End: "09:00"},
			want:  ErrNonPositiveDuration,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ValidateEntry(tc.input)
			require.ErrorIs(t, err, tc.want)
		})
	}
}
