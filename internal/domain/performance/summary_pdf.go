package performance

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// RenderSummaryPDF prints goals, feedback and review history on A4.
func RenderSummaryPDF(p Profile) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Performance Summary", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("%s, %s", p.Name, p.JobTitle), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	section(pdf, "Goals & KPIs")
	if len(p.Goals) == 0 {
		pdf.Cell(0, 7, "No goals set for this employee.")
		pdf.Ln(7)
	}
	for _, g := range p.Goals {
		pdf.Cell(130, 7, g.Title)
		pdf.CellFormat(0, 7, fmt.Sprintf("%s - %d%%", g.Status, g.Progress), "", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	section(pdf, "Feedback")
	if len(p.Feedback) == 0 {
		pdf.Cell(0, 7, "No feedback for this employee.")
		pdf.Ln(7)
	}
	for _, f := range p.Feedback {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Cell(0, 6, fmt.Sprintf("%s from %s on %s", f.Type, f.From, f.Date.Format(time.DateOnly)))
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, f.Comment, "", "L", false)
		pdf.Ln(2)
	}
	pdf.Ln(4)

	section(pdf, "Review History")
	if len(p.Reviews) == 0 {
		pdf.Cell(0, 7, "No review history.")
		pdf.Ln(7)
	}
	for _, r := range p.Reviews {
		pdf.Cell(80, 7, r.Cycle)
		pdf.Cell(40, 7, r.Date.Format(time.DateOnly))
		pdf.Cell(40, 7, r.Status)
		pdf.CellFormat(0, 7, fmt.Sprintf("%.1f / 5", r.Score), "", 1, "R", false, 0, "")
	}

	if p.ActivePIP != nil {
		pdf.Ln(4)
		section(pdf, "Active Improvement Plan")
		pdf.Cell(0, 7, fmt.Sprintf("%s (%s to %s)", p.ActivePIP.Title,
			p.ActivePIP.StartDate.Format(time.DateOnly), p.ActivePIP.EndDate.Format(time.DateOnly)))
		pdf.Ln(7)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render performance summary %s: %w", p.EmployeeID, err)
	}
	return buf.Bytes(), nil
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, title)
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 11)
}
