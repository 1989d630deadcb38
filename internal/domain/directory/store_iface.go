package directory

import "context"

type Store interface {
	Employees(ctx context.Context) ([]Employee, error)
	UpdateEmployees(ctx context.Context, fn func([]Employee) ([]Employee, error)) error
	Departments(ctx context.Context) ([]Department, error)
	JobPositions(ctx context.Context) ([]JobPosition, error)
}
