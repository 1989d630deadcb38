package training

import (
	"context"

	"hrconsole/internal/domain/directory"
)

type Store interface {
	TrainingPrograms(ctx context.Context) ([]Program, error)
	Enrollments(ctx context.Context) ([]Enrollment, error)
	UpdateEnrollments(ctx context.Context, fn func([]Enrollment) ([]Enrollment, error)) error
	Employees(ctx context.Context) ([]directory.Employee, error)
}

type Notifier interface {
	Notify(ctx context.Context, userID, ntype, title, body string) error
}
