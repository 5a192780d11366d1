package export

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"example.com/planner/internal/domain"
)

func monthEntries() map[string]domain.DayEntry {
	return map[string]domain.DayEntry{
		"2024-02-20": {
			Date:      "2024-02-20",
			Names:     []string{"Bob"},
			Location:  "Warehouse",
			WorkHours: domain.WorkHours{Start: "08:00", End: "16:00", Total: 8},
		},
		"2024-02-10": {
			Date:      "2024-02-10",
			Names:     []string{"Alice", "Carol"},
			Location:  "Office",
			WorkHours: domain.WorkHours{Start: "09:00", End: "17:30", Total: 8.5},
		},
	}
}

func TestBuildDocumentEmptyMonth(t *testing.T) {
	_, err := BuildDocument(MonthLabel(2024, 2), nil)
	require.ErrorIs(t, err, ErrNoEntries)

	_, err = BuildDocument(MonthLabel(2024, 2), map[string]domain.DayEntry{})
	require.ErrorIs(t, err, ErrNoEntries)
}

func TestBuildDocumentSortsAscendingByDate(t *testing.T) {
	doc, err := BuildDocument(MonthLabel(2024, 2), monthEntries())
	require.NoError(t, err)
	require.Equal(t, "Planner - February 2024", doc.Title)
	require.Len(t, doc.Rows, 2)
	require.Equal(t, "Feb 10, 2024", doc.Rows[0].DisplayDate)
	require.Equal(t, "Feb 20, 2024", doc.Rows[1].DisplayDate)
}

func TestBuildDocumentRowContent(t *testing.T) {
	doc, err := BuildDocument(MonthLabel(2024, 2), monthEntries())
	require.NoError(t, err)

	first := doc.Rows[0]
	require.Equal(t, "Alice, Carol", first.Names)
	require.Equal(t, "Office", first.Location)
	require.Equal(t, "09:00 - 17:30 (8.5h)", first.Hours)

	second := doc.Rows[1]
	require.Equal(t, "08:00 - 16:00 (8h)", second.Hours)
}

func TestBuildDocumentHTMLPayload(t *testing.T) {
	doc, err := BuildDocument(MonthLabel(2024, 2), monthEntries())
	require.NoError(t, err)

	require.Contains(t, doc.HTML, "<h1>Planner - February 2024</h1>")
	require.Contains(t, doc.HTML, "<td>Alice, Carol</td>")
	require.Contains(t, doc.HTML, "<td>09:00 - 17:30 (8.5h)</td>")
	// rows must appear in date order
	require.Less(t,
		strings.Index(doc.HTML, "Feb 10, 2024"),
		strings.Index(doc.HTML, "Feb 20, 2024"))
}

func TestPDFRendererProducesOutput(t *testing.T) {
	doc, err := BuildDocument(MonthLabel(2024, 2), monthEntries())
	require.NoError(t, err)

	artifact, err := NewPDFRenderer().Render(context.Background(), doc)
	require.NoError(t, err)
	require.True(t, len(artifact) > 0)
	require.Equal(t, "%PDF", string(artifact[:4]))
}
