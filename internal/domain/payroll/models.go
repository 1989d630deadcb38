package payroll

import "time"

// Allowance is a recurring addition to gross pay while Active.
type Allowance struct {
	ID            string    `json:"id"`
	EmployeeID    string    `json:"employeeId"`
	Amount        float64   `json:"allowanceAmount"`
	EffectiveDate time.Time `json:"effectiveDate"`
	Status        string    `json:"status"`
}

// ListedAllowance adds the employee's name and department for the allowance table.
type ListedAllowance struct {
	Allowance
	EmployeeName string `json:"employeeName"`
	Department   string `json:"department"`
}

type AllowanceLine struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// Payslip is a point-in-time snapshot. It is never changed once stored.
type Payslip struct {
	ID               string          `json:"id"`
	EmployeeID       string          `json:"employeeId"`
	PayPeriod        string          `json:"payPeriod"`
	BasicSalary      float64         `json:"basicSalary"`
	AllowancesTotal  float64         `json:"allowancesTotal"`
	AllowanceDetails []AllowanceLine `json:"allowanceDetails"`
	GrossSalary      float64         `json:"grossSalary"`
	PayeTax          float64         `json:"payeTax"`
	RSSBPension      float64         `json:"rssbPension"`
	TotalDeductions  float64         `json:"totalDeductions"`
	NetSalary        float64         `json:"netSalary"`
	GeneratedAt      time.Time       `json:"generatedAt"`
}

type RunResult struct {
	PayPeriod string   `json:"payPeriod"`
	Created   int      `json:"created"`
	Skipped   int      `json:"skipped"`
	IDs       []string `json:"ids"`
}

type RegisterRow struct {
	EmployeeID   string
	EmployeeName string
	Department   string
	Payslip      Payslip
}

type PeriodTotals struct {
	PayPeriod       string  `json:"payPeriod"`
	EmployeeCount   int     `json:"employeeCount"`
	TotalGross      float64 `json:"totalGross"`
	TotalDeductions float64 `json:"totalDeductions"`
	TotalNet        float64 `json:"totalNet"`
}
