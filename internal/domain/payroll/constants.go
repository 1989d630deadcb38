package payroll

const (
	AllowanceActive   = "Active"
	AllowanceInactive = "Inactive"

	// AllowanceDescription labels every allowance line on a payslip.
	AllowanceDescription = "Driver's Mission Allowance"

	PensionRate = 0.03

	JobPayrollRun = "payroll_run"

	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

var AllowanceStatuses = []string{AllowanceActive, AllowanceInactive}
