package performance

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrconsole/internal/domain/auth"
	"hrconsole/internal/domain/directory"
)

type memStore struct {
	employees []directory.Employee
	goals     []Goal
	feedback  []Feedback
	reviews   []Review
	pips      []PIP
}

func (m *memStore) Employees(context.Context) ([]directory.Employee, error) { return m.employees, nil }
func (m *memStore) Goals(context.Context) ([]Goal, error)                 { return append([]Goal(nil), m.goals...), nil }
func (m *memStore) Feedback(context.Context) ([]Feedback, error) {
	return append([]Feedback(nil), m.feedback...), nil
}
func (m *memStore) Reviews(context.Context) ([]Review, error) { return append([]Review(nil), m.reviews...), nil }
func (m *memStore) PIPs(context.Context) ([]PIP, error)       { return append([]PIP(nil), m.pips...), nil }

func (m *memStore) UpdateGoals(_ context.Context, fn func([]Goal) ([]Goal, error)) error {
	next, err := fn(append([]Goal(nil), m.goals...))
	if err != nil {
		return err
	}
	m.goals = next
	return nil
}

func (m *memStore) UpdateFeedback(_ context.Context, fn func([]Feedback) ([]Feedback, error)) error {
	next, err := fn(append([]Feedback(nil), m.feedback...))
	if err != nil {
		return err
	}
	m.feedback = next
	return nil
}

func (m *memStore) UpdateReviews(_ context.Context, fn func([]Review) ([]Review, error)) error {
	next, err := fn(append([]Review(nil), m.reviews...))
	if err != nil {
		return err
	}
	m.reviews = next
	return nil
}

func (m *memStore) UpdatePIPs(_ context.Context, fn func([]PIP) ([]PIP, error)) error {
	next, err := fn(append([]PIP(nil), m.pips...))
	if err != nil {
		return err
	}
	m.pips = next
	return nil
}

type fakeNotifier struct{ recipients []string }

func (f *fakeNotifier) Notify(_ context.Context, userID, _, _, _ string) error {
	f.recipients = append(f.recipients, userID)
	return nil
}

var (
	hr       = auth.UserContext{UserID: "H3001", Name: "Didier Mutangana", RoleName: auth.RoleHRAdmin}
	fleetMgr = auth.UserContext{UserID: "E1012", Name: "Patrick Irankunda", RoleName: auth.RoleManager}
	driver   = auth.UserContext{UserID: "E1001", Name: "Aline Uwase", RoleName: auth.RoleEmployee}
	clerk    = auth.UserContext{UserID: "E1020", Name: "Diane Uwera", RoleName: auth.RoleEmployee}
)

var fixedNow = time.Date(2023, 11, 20, 9, 0, 0, 0, time.UTC)

func fullRatings(value int) map[string]int {
	out := map[string]int{}
	for _, c := range Competencies {
		out[c] = value
	}
	return out
}

func newTestService() (*Service, *memStore, *fakeNotifier) {
	store := &memStore{
		employees: []directory.Employee{
			{ID: "H3001", Name: "Didier Mutangana", JobTitle: "HR Manager", Department: "Administration & Finance"},
			{ID: "E1012", Name: "Patrick Irankunda", JobTitle: "Fleet Manager", Department: "Operations", ManagerID: "M2001"},
			{ID: "E1001", Name: "Aline Uwase", JobTitle: "Heavy Vehicle Driver", Department: "Operations", ManagerID: "E1012"},
			{ID: "E1020", Name: "Diane Uwera", JobTitle: "Accountant", Department: "Administration & Finance", ManagerID: "H3001"},
		},
		goals: []Goal{
			{ID: "G1", EmployeeID: "E1001", Title: "Achieve 98% On-Time Delivery Rate", Status: GoalOnTrack, Progress: 95},
			{ID: "G4", EmployeeID: "E1001", Title: "Complete Defensive Driving Course", Status: GoalCompleted, Progress: 100},
		},
		reviews: []Review{
			{ID: "R1", EmployeeID: "E1001", Cycle: "Q3 2023 Review", Status: ReviewCompleted, Score: 4.5, Date: time.Date(2023, 10, 15, 0, 0, 0, 0, time.UTC)},
			{ID: "R2", EmployeeID: "E1001", Cycle: "Q2 2023 Review", Status: ReviewCompleted, Score: 4.3, Date: time.Date(2023, 7, 15, 0, 0, 0, 0, time.UTC)},
		},
		pips: []PIP{
			{ID: "P1", EmployeeID: "E1001", Title: "Improve Pre-Trip Inspection Adherence", Status: PIPActive},
		},
	}
	notifier := &fakeNotifier{}
	svc := NewService(store, notifier)
	svc.now = func() time.Time { return fixedNow }
	return svc, store, notifier
}

func TestProfileVisibility(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	profile, err := svc.Profile(ctx, fleetMgr, "E1001")
	require.NoError(t, err)
	assert.Len(t, profile.Goals, 2)
	require.Len(t, profile.Reviews, 2)
	assert.Equal(t, "R1", profile.Reviews[0].ID)
	require.NotNil(t, profile.ActivePIP)
	assert.Equal(t, "P1", profile.ActivePIP.ID)

	_, err = svc.Profile(ctx, driver, "E1001")
	require.NoError(t, err)

	_, err = svc.Profile(ctx, clerk, "E1001")
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = svc.Profile(ctx, hr, "E404")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGoalProgressCompletes(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	goal, err := svc.CreateGoal(ctx, fleetMgr, "E1001", "Mentor Apprentice Driver", "Guide a new driver")
	require.NoError(t, err)
	assert.Equal(t, GoalOnTrack, goal.Status)
	assert.Equal(t, "E1012", goal.SetBy)

	second, err := svc.CreateGoal(ctx, fleetMgr, "E1001", "Zero Safety Infractions", "")
	require.NoError(t, err)
	assert.NotEqual(t, goal.ID, second.ID)

	half := 50
	updated, err := svc.UpdateGoal(ctx, driver, goal.ID, &half, GoalAtRisk)
	require.NoError(t, err)
	assert.Equal(t, 50, updated.Progress)
	assert.Equal(t, GoalAtRisk, updated.Status)

	full := 100
	updated, err = svc.UpdateGoal(ctx, driver, goal.ID, &full, "")
	require.NoError(t, err)
	assert.Equal(t, GoalCompleted, updated.Status)

	_, err = svc.UpdateGoal(ctx, driver, goal.ID, &half, "")
	assert.ErrorIs(t, err, ErrInvalidState)

	tooMuch := 120
	_, err = svc.UpdateGoal(ctx, driver, second.ID, &tooMuch, "")
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.UpdateGoal(ctx, clerk, second.ID, &half, "")
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = svc.UpdateGoal(ctx, driver, "G404", &half, "")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.CreateGoal(ctx, fleetMgr, "E1001", "  ", "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGiveFeedback(t *testing.T) {
	svc, store, notifier := newTestService()
	ctx := context.Background()

	item, err := svc.GiveFeedback(ctx, fleetMgr, "E1001", FeedbackPraise, "Great handling of the Gisenyi route.")
	require.NoError(t, err)
	assert.Equal(t, "Patrick Irankunda (Fleet Manager)", item.From)
	assert.Equal(t, fixedNow, item.Date)
	assert.Len(t, store.feedback, 1)
	assert.Equal(t, []string{"E1001"}, notifier.recipients)

	_, err = svc.GiveFeedback(ctx, driver, "E1001", FeedbackPraise, "Me")
	assert.ErrorIs(t, err, ErrSelfReview)
	_, err = svc.GiveFeedback(ctx, driver, "E1012", "Neutral", "Hmm")
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.GiveFeedback(ctx, driver, "E1012", FeedbackConstructive, " ")
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.GiveFeedback(ctx, driver, "E404", FeedbackConstructive, "Who?")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSubmitReview(t *testing.T) {
	svc, store, notifier := newTestService()
	ctx := context.Background()

	ratings := map[string]int{
		"On-Time Performance": 5,
		"Safety & Compliance": 4,
		"Vehicle Care":        4,
		"Customer Service":    4,
	}
	review, err := svc.SubmitReview(ctx, fleetMgr, ReviewSubmission{EmployeeID: "E1001", Ratings: ratings, Comments: "Solid quarter"})
	require.NoError(t, err)
	assert.Equal(t, 4.3, review.Score)
	assert.Equal(t, "Q4 2023 Review", review.Cycle)
	assert.Equal(t, ReviewCompleted, review.Status)
	assert.Len(t, store.reviews, 3)
	assert.Equal(t, []string{"E1001"}, notifier.recipients)

	_, err = svc.SubmitReview(ctx, fleetMgr, ReviewSubmission{EmployeeID: "E1012", Ratings: fullRatings(3)})
	assert.ErrorIs(t, err, ErrSelfReview)
	_, err = svc.SubmitReview(ctx, fleetMgr, ReviewSubmission{EmployeeID: "E1020", Ratings: fullRatings(3)})
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = svc.SubmitReview(ctx, hr, ReviewSubmission{EmployeeID: "E1001", Ratings: map[string]int{"Vehicle Care": 3}})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestScore(t *testing.T) {
	score, err := Score(fullRatings(3))
	require.NoError(t, err)
	assert.Equal(t, 3.0, score)

	_, err = Score(fullRatings(0))
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = Score(fullRatings(6))
	assert.ErrorIs(t, err, ErrInvalidInput)

	extra := fullRatings(4)
	extra["Punctuality"] = 4
	_, err = Score(extra)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCycleName(t *testing.T) {
	assert.Equal(t, "Q1 2024 Review", CycleName(time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Q2 2024 Review", CycleName(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Q4 2023 Review", CycleName(fixedNow))
}

func TestImprovementPlanLifecycle(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	_, err := svc.OpenPIP(ctx, fleetMgr, "E1001", "Route planning", start, end)
	assert.ErrorIs(t, err, ErrActivePIP)

	closed, err := svc.ClosePIP(ctx, fleetMgr, "P1")
	require.NoError(t, err)
	assert.Equal(t, PIPCompleted, closed.Status)
	_, err = svc.ClosePIP(ctx, fleetMgr, "P1")
	assert.ErrorIs(t, err, ErrInvalidState)

	plan, err := svc.OpenPIP(ctx, fleetMgr, "E1001", "Route planning", start, end)
	require.NoError(t, err)
	assert.Equal(t, PIPActive, plan.Status)
	assert.Equal(t, "E1012", plan.OwnerID)

	_, err = svc.OpenPIP(ctx, hr, "E1020", "Backwards", end, start)
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.ClosePIP(ctx, driver, plan.ID)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestSummaryScopesToVisibleEmployees(t *testing.T) {
	svc, store, _ := newTestService()
	ctx := context.Background()
	store.reviews = append(store.reviews, Review{ID: "R9", EmployeeID: "E1020", Status: ReviewInProgress})

	summary, err := svc.Summary(ctx, fleetMgr)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.GoalsTotal)
	assert.Equal(t, 1, summary.GoalsCompleted)
	assert.Equal(t, 2, summary.ReviewsTotal)
	assert.Equal(t, 4.4, summary.AverageScore)
	assert.Equal(t, 1, summary.ActivePIPs)

	all, err := svc.Summary(ctx, hr)
	require.NoError(t, err)
	assert.Equal(t, 3, all.ReviewsTotal)
	assert.InDelta(t, 2.0/3.0, all.CompletionRate, 0.0001)
}

func TestBuildSummaryWithScores(t *testing.T) {
	summary := buildSummary(10, 6, 8, 4, []float64{3.2, 3.7, 4.1, 4.9}, 1)
	if summary.GoalsTotal != 10 || summary.GoalsCompleted != 6 {
		t.Fatalf("unexpected goals summary: %+v", summary)
	}
	if summary.CompletionRate != 0.5 {
		t.Fatalf("expected completion rate 0.5, got %v", summary.CompletionRate)
	}
	if summary.RatingDistribution["3"] != 1 || summary.RatingDistribution["4"] != 2 || summary.RatingDistribution["5"] != 1 {
		t.Fatalf("unexpected rating distribution: %+v", summary.RatingDistribution)
	}
}

func TestBuildSummaryHandlesNoReviews(t *testing.T) {
	summary := buildSummary(2, 1, 0, 0, nil, 0)
	if summary.CompletionRate != 0 || summary.AverageScore != 0 {
		t.Fatalf("expected zero rates, got %+v", summary)
	}
	if len(summary.RatingDistribution) != 0 {
		t.Fatalf("expected empty rating distribution, got %+v", summary.RatingDistribution)
	}
}

func TestSummaryPDF(t *testing.T) {
	svc, _, _ := newTestService()

	pdf, err := svc.SummaryPDF(context.Background(), fleetMgr, "E1001")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
}
