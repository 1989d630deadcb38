package engagement

import (
	"context"

	"hrconsole/internal/domain/directory"
)

type Store interface {
	Announcements(ctx context.Context) ([]Announcement, error)
	UpdateAnnouncements(ctx context.Context, fn func([]Announcement) ([]Announcement, error)) error
	BenefitPlans(ctx context.Context) ([]BenefitPlan, error)
	BenefitEnrollments(ctx context.Context) ([]BenefitEnrollment, error)
	UpdateBenefitEnrollments(ctx context.Context, fn func([]BenefitEnrollment) ([]BenefitEnrollment, error)) error
	Employees(ctx context.Context) ([]directory.Employee, error)
}

type Broadcaster interface {
	Broadcast(ctx context.Context, ntype, title, body string) error
}
