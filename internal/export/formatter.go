// Package export renders a month's entries into a document payload for the
// rendering collaborator.
package export

import (
	"context"
	"errors"
	"fmt"
	"html"
	"sort"
	"strconv"
	"strings"
	"time"

	"example.com/planner/internal/domain"
)

// ErrNoEntries is returned when the month has nothing to export. Callers
// surface it to the user instead of invoking the renderer.
var ErrNoEntries = errors.New("no entries to export")

// Row is one table line of the export document.
type Row struct {
	DisplayDate string
	Names       string
	Location    string
	Hours       string
}

// Document is the self-contained export payload: ordered rows plus an HTML
// rendition handed verbatim to the renderer.
type Document struct {
	Title string
	Rows  []Row
	HTML  string
}

// Renderer turns a document into a shareable artifact.
type Renderer interface {
	Render(ctx context.Context, doc *Document) ([]byte, error)
}

// MonthLabel builds the human-readable title for a month.
func MonthLabel(year, month int) string {
	return fmt.Sprintf("%s %d", time.Month(month).String(), year)
}

// BuildDocument produces the export table for a month's entries, one row per
// entry sorted ascending by date (lexicographic ISO order is date order).
func BuildDocument(label string, entries map[string]domain.DayEntry) (*Document, error) {
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}

	dates := make([]string, 0, len(entries))
	for date := range entries {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	rows := make([]Row, 0, len(dates))
	for _, date := range dates {
		entry := entries[date]
		rows = append(rows, Row{
			DisplayDate: displayDate(date),
			Names:       strings.Join(entry.Names, ", "),
			Location:    entry.Location,
			Hours: fmt.Sprintf("%s - %s (%sh)",
				entry.WorkHours.Start,
				entry.WorkHours.End,
				formatHours(entry.WorkHours.Total)),
		})
	}

	doc := &Document{Title: "Planner - " + label, Rows: rows}
	doc.HTML = renderHTML(doc)
	return doc, nil
}

func displayDate(date string) string {
	parsed, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return date
	}
	return parsed.Format("Jan 2, 2006")
}

func formatHours(total float64) string {
	return strconv.FormatFloat(total, 'f', -1, 64)
}

func renderHTML(doc *Document) string {
	var b strings.Builder
	b.WriteString("<html><head><style>")
	b.WriteString("body{font-family:Arial,sans-serif;padding:20px}")
	b.WriteString("h1{color:#9333ea;text-align:center}")
	b.WriteString("table{width:100%;border-collapse:collapse;margin-top:20px}")
	b.WriteString("th,td{border:1px solid #ddd;padding:12px;text-align:left}")
	b.WriteString("th{background-color:#9333ea;color:white}")
	b.WriteString("tr:nth-child(even){background-color:#f9f9f9}")
	b.WriteString("</style></head><body>")
	b.WriteString("<h1>" + html.EscapeString(doc.Title) + "</h1>")
	b.WriteString("<table><tr><th>Date</th><th>Names</th><th>Location</th><th>Work Hours</th></tr>")
	for _, row := range doc.Rows {
		b.WriteString("<tr>")
		for _, cell := range []string{row.DisplayDate, row.Names, row.Location, row.Hours} {
			b.WriteString("<td>" + html.EscapeString(cell) + "</td>")
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</table></body></html>")
	return b.String()
}
