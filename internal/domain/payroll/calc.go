package payroll

import (
	"strings"
	"time"

	"hrconsole/internal/domain/directory"
)

// ProgressiveTax applies the PAYE schedule to the whole taxable amount.
func ProgressiveTax(taxable float64) float64 {
	switch {
	case taxable <= 60000:
		return 0
	case taxable <= 100000:
		return (taxable - 60000) * 0.10
	case taxable <= 200000:
		return 4000 + (taxable-100000)*0.20
	default:
		return 24000 + (taxable-200000)*0.30
	}
}

func PayslipID(employeeID, payPeriod string) string {
	return "PS-" + employeeID + "-" + strings.ReplaceAll(payPeriod, " ", "-")
}

// ComputePayslip is pure: generatedAt is stamped as given and no value is
// rounded.
func ComputePayslip(emp directory.Employee, allowances []Allowance, payPeriod string, generatedAt time.Time) Payslip {
	lines := make([]AllowanceLine, 0)
	var allowancesTotal float64
	for _, a := range allowances {
		if a.EmployeeID != emp.ID || a.Status != AllowanceActive {
			continue
		}
		allowancesTotal += a.Amount
		lines = append(lines, AllowanceLine{Description: AllowanceDescription, Amount: a.Amount})
	}

	gross := emp.BasicSalary + allowancesTotal
	pension := gross * PensionRate
	tax := ProgressiveTax(gross)
	deductions := pension + tax

	return Payslip{
		ID:               PayslipID(emp.ID, payPeriod),
		EmployeeID:       emp.ID,
		PayPeriod:        payPeriod,
		BasicSalary:      emp.BasicSalary,
		AllowancesTotal:  allowancesTotal,
		AllowanceDetails: lines,
		GrossSalary:      gross,
		PayeTax:          tax,
		RSSBPension:      pension,
		TotalDeductions:  deductions,
		NetSalary:        gross - deductions,
		GeneratedAt:      generatedAt,
	}
}
