package engagement

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"hrconsole/internal/domain/auth"
	"hrconsole/internal/domain/directory"
	"hrconsole/internal/platform/ids"
)

type Service struct {
	store       Store
	broadcaster Broadcaster
	now         func() time.Time
}

func NewService(store Store, broadcaster Broadcaster) *Service {
	return &Service{store: store, broadcaster: broadcaster, now: time.Now}
}

// Announcements are returned newest first.
func (s *Service) Announcements(ctx context.Context) ([]Announcement, error) {
	all, err := s.store.Announcements(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].Date.After(all[j].Date) })
	return all, nil
}

// Post publishes an announcement signed with the author's name and tells
// every user about it.
func (s *Service) Post(ctx context.Context, user auth.UserContext, title, content string) (Announcement, error) {
	now := s.now()
	a := Announcement{
		Title:    strings.TrimSpace(title),
		Content:  strings.TrimSpace(content),
		Date:     now,
		PostedBy: user.Name,
	}
	if err := s.store.UpdateAnnouncements(ctx, func(all []Announcement) ([]Announcement, error) {
		a.ID = ids.Next("A", now, ids.Of(all, func(item Announcement) string { return item.ID }).Taken)
		return append([]Announcement{a}, all...), nil
	}); err != nil {
		return Announcement{}, err
	}
	if s.broadcaster != nil {
		if err := s.broadcaster.Broadcast(ctx, notifyAnnouncement, a.Title, a.Content); err != nil {
			slog.Warn("announcement broadcast failed", "announcementId", a.ID, "err", err)
		}
	}
	return a, nil
}

func (s *Service) Plans(ctx context.Context) ([]BenefitPlan, error) {
	return s.store.BenefitPlans(ctx)
}

// Summary lists the active plans of one employee with their monthly cost.
func (s *Service) Summary(ctx context.Context, employeeID string) (BenefitSummary, error) {
	plans, err := s.store.BenefitPlans(ctx)
	if err != nil {
		return BenefitSummary{}, fmt.Errorf("load plans: %w", err)
	}
	enrollments, err := s.store.BenefitEnrollments(ctx)
	if err != nil {
		return BenefitSummary{}, fmt.Errorf("load enrollments: %w", err)
	}
	summary := BenefitSummary{EmployeeID: employeeID, Plans: []BenefitPlan{}}
	for _, e := range enrollments {
		if e.EmployeeID != employeeID || e.Status != EnrollmentActive {
			continue
		}
		if plan, ok := findPlan(plans, e.PlanID); ok {
			summary.Plans = append(summary.Plans, plan)
			summary.TotalMonthlyCost += plan.MonthlyCost
		}
	}
	return summary, nil
}

func (s *Service) Enrollments(ctx context.Context) ([]BenefitEnrollment, error) {
	return s.store.BenefitEnrollments(ctx)
}

func (s *Service) Enroll(ctx context.Context, employeeID, planID string) (BenefitEnrollment, error) {
	if err := s.check(ctx, employeeID, planID); err != nil {
		return BenefitEnrollment{}, err
	}
	y, m, d := s.now().Date()
	e := BenefitEnrollment{
		EmployeeID:     employeeID,
		PlanID:         planID,
		EnrollmentDate: time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		Status:         EnrollmentActive,
	}
	err := s.store.UpdateBenefitEnrollments(ctx, func(all []BenefitEnrollment) ([]BenefitEnrollment, error) {
		for _, existing := range all {
			if existing.EmployeeID == employeeID && existing.PlanID == planID {
				return nil, ErrAlreadyEnrolled
			}
		}
		return append(all, e), nil
	})
	if err != nil {
		return BenefitEnrollment{}, err
	}
	return e, nil
}

func (s *Service) Unenroll(ctx context.Context, employeeID, planID string) error {
	return s.store.UpdateBenefitEnrollments(ctx, func(all []BenefitEnrollment) ([]BenefitEnrollment, error) {
		for i := range all {
			if all[i].EmployeeID == employeeID && all[i].PlanID == planID {
				return append(all[:i], all[i+1:]...), nil
			}
		}
		return nil, ErrNotEnrolled
	})
}

func (s *Service) check(ctx context.Context, employeeID, planID string) error {
	employees, err := s.store.Employees(ctx)
	if err != nil {
		return fmt.Errorf("load employees: %w", err)
	}
	if _, ok := directory.Find(employees, employeeID); !ok {
		return ErrEmployeeNotFound
	}
	plans, err := s.store.BenefitPlans(ctx)
	if err != nil {
		return fmt.Errorf("load plans: %w", err)
	}
	if _, ok := findPlan(plans, planID); !ok {
		return ErrPlanNotFound
	}
	return nil
}

func findPlan(plans []BenefitPlan, id string) (BenefitPlan, bool) {
	for _, p := range plans {
		if p.ID == id {
			return p, true
		}
	}
	return BenefitPlan{}, false
}
