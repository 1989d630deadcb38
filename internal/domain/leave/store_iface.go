package leave

import (
	"context"

	"hrconsole/internal/domain/directory"
)

type Store interface {
	LeaveRequests(ctx context.Context) ([]Request, error)
	UpdateLeaveRequests(ctx context.Context, fn func([]Request) ([]Request, error)) error
	Employees(ctx context.Context) ([]directory.Employee, error)
	UpdateEmployees(ctx context.Context, fn func([]directory.Employee) ([]directory.Employee, error)) error
}

// Notifier tells the requester about a decision.
type Notifier interface {
	Notify(ctx context.Context, userID, ntype, title, body string) error
}
