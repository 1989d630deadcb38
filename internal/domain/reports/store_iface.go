package reports

import (
	"context"

	"hrconsole/internal/domain/auth"
	"hrconsole/internal/domain/directory"
	"hrconsole/internal/domain/leave"
	"hrconsole/internal/domain/payroll"
	"hrconsole/internal/domain/scheduling"
	"hrconsole/internal/domain/training"
)

type Store interface {
	Employees(ctx context.Context) ([]directory.Employee, error)
	LeaveRequests(ctx context.Context) ([]leave.Request, error)
	Payslips(ctx context.Context) ([]payroll.Payslip, error)
	Enrollments(ctx context.Context) ([]training.Enrollment, error)
	Shifts(ctx context.Context) ([]scheduling.Shift, error)
}

type ComplianceCounter interface {
	PendingCount(ctx context.Context, user auth.UserContext) (int, error)
}

type PayrollTotals interface {
	LatestTotals(ctx context.Context) (payroll.PeriodTotals, bool, error)
}
