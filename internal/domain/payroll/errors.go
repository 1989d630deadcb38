package payroll

import "errors"

var (
	ErrAllowanceNotFound = errors.New("allowance not found")
	ErrPayslipNotFound   = errors.New("payslip not found")
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrInvalidPayPeriod  = errors.New("pay period must look like \"January 2024\"")
	ErrForbidden         = errors.New("payslip belongs to another employee")
	ErrUnknownFormat     = errors.New("unknown register format")
)
