package performance

import (
	"context"

	"hrconsole/internal/domain/directory"
)

type Store interface {
	Employees(ctx context.Context) ([]directory.Employee, error)
	Goals(ctx context.Context) ([]Goal, error)
	UpdateGoals(ctx context.Context, fn func([]Goal) ([]Goal, error)) error
	Feedback(ctx context.Context) ([]Feedback, error)
	UpdateFeedback(ctx context.Context, fn func([]Feedback) ([]Feedback, error)) error
	Reviews(ctx context.Context) ([]Review, error)
	UpdateReviews(ctx context.Context, fn func([]Review) ([]Review, error)) error
	PIPs(ctx context.Context) ([]PIP, error)
	UpdatePIPs(ctx context.Context, fn func([]PIP) ([]PIP, error)) error
}

type Notifier interface {
	Notify(ctx context.Context, userID, ntype, title, body string) error
}
