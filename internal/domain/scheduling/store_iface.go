package scheduling

import (
	"context"

	"hrconsole/internal/domain/directory"
	"hrconsole/internal/domain/leave"
)

type Store interface {
	Shifts(ctx context.Context) ([]Shift, error)
	UpdateShifts(ctx context.Context, fn func([]Shift) ([]Shift, error)) error
	Employees(ctx context.Context) ([]directory.Employee, error)
	LeaveRequests(ctx context.Context) ([]leave.Request, error)
}
