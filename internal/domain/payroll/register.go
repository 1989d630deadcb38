package payroll

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

var registerHeader = []string{
	"employee_id", "employee_name", "department", "basic_salary", "allowances",
	"gross", "paye_tax", "rssb_pension", "total_deductions", "net",
}

const registerSheet = "Payroll Register"

// WriteRegister streams the register rows in the requested format.
func WriteRegister(w io.Writer, payPeriod string, rows []RegisterRow, format string) error {
	switch format {
	case "", FormatCSV:
		return writeRegisterCSV(w, rows)
	case FormatXLSX:
		return writeRegisterXLSX(w, payPeriod, rows)
	default:
		return ErrUnknownFormat
	}
}

func registerRecord(row RegisterRow) []string {
	slip := row.Payslip
	return []string{
		row.EmployeeID, row.EmployeeName, row.Department,
		money(slip.BasicSalary), money(slip.AllowancesTotal), money(slip.GrossSalary),
		money(slip.PayeTax), money(slip.RSSBPension), money(slip.TotalDeductions), money(slip.NetSalary),
	}
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func writeRegisterCSV(w io.Writer, rows []RegisterRow) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(registerHeader); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writer.Write(registerRecord(row)); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func writeRegisterXLSX(w io.Writer, payPeriod string, rows []RegisterRow) error {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(registerSheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}
	if err := f.SetColWidth(registerSheet, "A", "C", 24); err != nil {
		return err
	}
	if err := f.SetColWidth(registerSheet, "D", "J", 16); err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}

	if err := f.SetCellValue(registerSheet, "A1", "Payroll register "+payPeriod); err != nil {
		return err
	}
	for col, title := range registerHeader {
		cellName, _ := excelize.CoordinatesToCellName(col+1, 2)
		if err := f.SetCellValue(registerSheet, cellName, title); err != nil {
			return err
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(registerHeader), 2)
	if err := f.SetCellStyle(registerSheet, "A2", last, headerStyle); err != nil {
		return err
	}

	for i, row := range rows {
		slip := row.Payslip
		values := []any{
			row.EmployeeID, row.EmployeeName, row.Department,
			slip.BasicSalary, slip.AllowancesTotal, slip.GrossSalary,
			slip.PayeTax, slip.RSSBPension, slip.TotalDeductions, slip.NetSalary,
		}
		for col, value := range values {
			cellName, _ := excelize.CoordinatesToCellName(col+1, i+3)
			if err := f.SetCellValue(registerSheet, cellName, value); err != nil {
				return err
			}
		}
	}

	_, err = f.WriteTo(w)
	return err
}
