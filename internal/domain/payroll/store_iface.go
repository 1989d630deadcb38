package payroll

import (
	"context"

	"hrconsole/internal/domain/directory"
)

type Store interface {
	Employees(ctx context.Context) ([]directory.Employee, error)
	Allowances(ctx context.Context) ([]Allowance, error)
	UpdateAllowances(ctx context.Context, fn func([]Allowance) ([]Allowance, error)) error
	Payslips(ctx context.Context) ([]Payslip, error)
	UpdatePayslips(ctx context.Context, fn func([]Payslip) ([]Payslip, error)) error
}

// Runner records payroll runs in the job history.
type Runner interface {
	RunNow(ctx context.Context, jobType string, run func(context.Context) (any, error)) (any, error)
}

type Notifier interface {
	Notify(ctx context.Context, userID, ntype, title, body string) error
}
