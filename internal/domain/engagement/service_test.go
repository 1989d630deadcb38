package engagement

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrconsole/internal/domain/auth"
	"hrconsole/internal/domain/directory"
)

type memStore struct {
	announcements []Announcement
	plans         []BenefitPlan
	enrollments   []BenefitEnrollment
	employees     []directory.Employee
}

func (m *memStore) Announcements(context.Context) ([]Announcement, error) {
	return append([]Announcement(nil), m.announcements...), nil
}

func (m *memStore) UpdateAnnouncements(_ context.Context, fn func([]Announcement) ([]Announcement, error)) error {
	next, err := fn(append([]Announcement(nil), m.announcements...))
	if err != nil {
		return err
	}
	m.announcements = next
	return nil
}

func (m *memStore) BenefitPlans(context.Context) ([]BenefitPlan, error) { return m.plans, nil }

func (m *memStore) BenefitEnrollments(context.Context) ([]BenefitEnrollment, error) {
	return append([]BenefitEnrollment(nil), m.enrollments...), nil
}

func (m *memStore) UpdateBenefitEnrollments(_ context.Context, fn func([]BenefitEnrollment) ([]BenefitEnrollment, error)) error {
	next, err := fn(append([]BenefitEnrollment(nil), m.enrollments...))
	if err != nil {
		return err
	}
	m.enrollments = next
	return nil
}

func (m *memStore) Employees(context.Context) ([]directory.Employee, error) { return m.employees, nil }

type fakeBroadcaster struct{ titles []string }

func (f *fakeBroadcaster) Broadcast(_ context.Context, _, title, _ string) error {
	f.titles = append(f.titles, title)
	return nil
}

func newTestService() (*Service, *memStore, *fakeBroadcaster) {
	store := &memStore{
		announcements: []Announcement{
			{ID: "A1", Title: "Q4 Performance Reviews", Date: time.Date(2023, 11, 15, 0, 0, 0, 0, time.UTC)},
			{ID: "A2", Title: "Upcoming Umuganda", Date: time.Date(2023, 11, 22, 0, 0, 0, 0, time.UTC)},
		},
		plans: []BenefitPlan{
			{ID: "B1", Name: "Radiant Gold Health Plan", MonthlyCost: 15000},
			{ID: "B2", Name: "RSSB Pension Scheme", MonthlyCost: 0},
			{ID: "B3", Name: "Britam Vision & Dental", MonthlyCost: 5000},
		},
		enrollments: []BenefitEnrollment{
			{EmployeeID: "E1002", PlanID: "B1", Status: EnrollmentActive},
			{EmployeeID: "E1002", PlanID: "B3", Status: EnrollmentInactive},
		},
		employees: []directory.Employee{{ID: "E1001"}, {ID: "E1002"}},
	}
	broadcaster := &fakeBroadcaster{}
	svc := NewService(store, broadcaster)
	svc.now = func() time.Time { return time.Date(2024, 2, 12, 9, 30, 0, 0, time.UTC) }
	return svc, store, broadcaster
}

func TestAnnouncementsNewestFirst(t *testing.T) {
	svc, _, broadcaster := newTestService()
	ctx := context.Background()

	posted, err := svc.Post(ctx, auth.UserContext{UserID: "H3001", Name: "Didier Mutangana"}, " Fuel card renewal ", "Bring your old card.")
	require.NoError(t, err)
	assert.Equal(t, "Didier Mutangana", posted.PostedBy)
	assert.Equal(t, "Fuel card renewal", posted.Title)
	assert.Equal(t, []string{"Fuel card renewal"}, broadcaster.titles)

	list, err := svc.Announcements(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, posted.ID, list[0].ID)
	assert.Equal(t, "A2", list[1].ID)
}

func TestBenefitSummaryCountsActivePlans(t *testing.T) {
	svc, _, _ := newTestService()
	summary, err := svc.Summary(context.Background(), "E1002")
	require.NoError(t, err)
	require.Len(t, summary.Plans, 1)
	assert.Equal(t, float64(15000), summary.TotalMonthlyCost)
}

func TestEnrollAndUnenroll(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	e, err := svc.Enroll(ctx, "E1001", "B2")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 12, 0, 0, 0, 0, time.UTC), e.EnrollmentDate)

	_, err = svc.Enroll(ctx, "E1001", "B2")
	assert.ErrorIs(t, err, ErrAlreadyEnrolled)
	_, err = svc.Enroll(ctx, "E1001", "B9")
	assert.ErrorIs(t, err, ErrPlanNotFound)
	_, err = svc.Enroll(ctx, "E4040", "B1")
	assert.ErrorIs(t, err, ErrEmployeeNotFound)

	require.NoError(t, svc.Unenroll(ctx, "E1001", "B2"))
	assert.ErrorIs(t, svc.Unenroll(ctx, "E1001", "B2"), ErrNotEnrolled)
}
