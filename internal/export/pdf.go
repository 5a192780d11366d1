package export

import (
	"bytes"
	"context"

	"github.com/phpdave11/gofpdf"
)

// PDFRenderer renders export documents as PDF bytes.
type PDFRenderer struct{}

// NewPDFRenderer constructs a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

var columnHeaders = []string{"Date", "Names", "Location", "Work Hours"}

// column widths in mm, fitting an A4 page with 14mm margins
var columnWidths = []float64{32, 62, 48, 40}

// Render produces a single-table PDF from the document rows.
func (r *PDFRenderer) Render(ctx context.Context, doc *Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(14, 14, 14)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(147, 51, 234)
	pdf.CellFormat(0, 12, doc.Title, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(147, 51, 234)
	pdf.SetTextColor(255, 255, 255)
	for i, header := range columnHeaders {
		pdf.CellFormat(columnWidths[i], 9, header, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(45, 65, 80)
	fill := false
	for _, row := range doc.Rows {
		pdf.SetFillColor(249, 249, 249)
		cells := []string{row.DisplayDate, row.Names, row.Location, row.Hours}
		for i, cell := range cells {
			pdf.CellFormat(columnWidths[i], 8, cell, "1", 0, "L", fill, 0, "")
		}
		pdf.Ln(-1)
		fill = !fill
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
