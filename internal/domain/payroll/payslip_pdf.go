package payroll

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"hrconsole/internal/domain/directory"
)

// RenderPayslipPDF draws a single-page A4 payslip with earnings on top and
// deductions below.
func RenderPayslipPDF(slip Payslip, emp directory.Employee) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s (%s)", emp.Name, slip.EmployeeID))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Position: %s, %s", emp.JobTitle, emp.Department))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Pay period: %s", slip.PayPeriod))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Earnings")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	amountRow(pdf, "Basic Salary", slip.BasicSalary)
	for _, line := range slip.AllowanceDetails {
		amountRow(pdf, line.Description, line.Amount)
	}
	amountRow(pdf, "Gross Salary", slip.GrossSalary)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Deductions")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	amountRow(pdf, "PAYE Tax", slip.PayeTax)
	amountRow(pdf, "RSSB Pension (3%)", slip.RSSBPension)
	amountRow(pdf, "Total Deductions", slip.TotalDeductions)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 14)
	amountRow(pdf, "Net Salary", slip.NetSalary)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render payslip %s: %w", slip.ID, err)
	}
	return buf.Bytes(), nil
}

func amountRow(pdf *gofpdf.Fpdf, label string, amount float64) {
	pdf.Cell(100, 7, label)
	pdf.CellFormat(60, 7, fmt.Sprintf("RWF %.2f", amount), "", 0, "R", false, 0, "")
	pdf.Ln(7)
}
