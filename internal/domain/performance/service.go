package performance

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"sort"
	"strings"
	"time"

	"hrconsole/internal/domain/auth"
	"hrconsole/internal/domain/directory"
)

type Service struct {
	store    Store
	notifier Notifier
	now      func() time.Time
}

func NewService(store Store, notifier Notifier) *Service {
	return &Service{store: store, notifier: notifier, now: time.Now}
}

// Profile gathers the goals, feedback, review history and active improvement
// plan of one visible employee.
func (s *Service) Profile(ctx context.Context, user auth.UserContext, employeeID string) (Profile, error) {
	emp, err := s.visibleEmployee(ctx, user, employeeID)
	if err != nil {
		return Profile{}, err
	}
	goals, err := s.store.Goals(ctx)
	if err != nil {
		return Profile{}, fmt.Errorf("load goals: %w", err)
	}
	feedback, err := s.store.Feedback(ctx)
	if err != nil {
		return Profile{}, fmt.Errorf("load feedback: %w", err)
	}
	reviews, err := s.store.Reviews(ctx)
	if err != nil {
		return Profile{}, fmt.Errorf("load reviews: %w", err)
	}
	pips, err := s.store.PIPs(ctx)
	if err != nil {
		return Profile{}, fmt.Errorf("load improvement plans: %w", err)
	}

	out := Profile{
		EmployeeID: emp.ID,
		Name:       emp.Name,
		JobTitle:   emp.JobTitle,
		Goals:      filter(goals, func(g Goal) bool { return g.EmployeeID == emp.ID }),
		Feedback:   filter(feedback, func(f Feedback) bool { return f.EmployeeID == emp.ID }),
		Reviews:    filter(reviews, func(r Review) bool { return r.EmployeeID == emp.ID }),
	}
	sort.SliceStable(out.Feedback, func(i, j int) bool { return out.Feedback[i].Date.After(out.Feedback[j].Date) })
	sort.SliceStable(out.Reviews, func(i, j int) bool { return out.Reviews[i].Date.After(out.Reviews[j].Date) })
	for _, p := range pips {
		if p.EmployeeID == emp.ID && p.Status == PIPActive {
			plan := p
			out.ActivePIP = &plan
			break
		}
	}
	return out, nil
}

func (s *Service) CreateGoal(ctx context.Context, user auth.UserContext, employeeID, title, description string) (Goal, error) {
	if _, err := s.visibleEmployee(ctx, user, employeeID); err != nil {
		return Goal{}, err
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return Goal{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	goal := Goal{
		EmployeeID:  employeeID,
		Title:       title,
		Description: strings.TrimSpace(description),
		Status:      GoalOnTrack,
		SetBy:       user.UserID,
		CreatedAt:   s.now(),
	}
	err := s.store.UpdateGoals(ctx, func(all []Goal) ([]Goal, error) {
		goal.ID = nextID("G", s.now(), len(all), func(id string) bool {
			return slices.ContainsFunc(all, func(g Goal) bool { return g.ID == id })
		})
		return append(all, goal), nil
	})
	if err != nil {
		return Goal{}, err
	}
	return goal, nil
}

// UpdateGoal records progress on a goal. Reaching 100 completes it; a
// completed goal no longer changes.
func (s *Service) UpdateGoal(ctx context.Context, user auth.UserContext, goalID string, progress *int, status string) (Goal, error) {
	if progress != nil && (*progress < 0 || *progress > 100) {
		return Goal{}, fmt.Errorf("%w: progress must be between 0 and 100", ErrInvalidInput)
	}
	if status != "" && !slices.Contains(GoalStatuses, status) {
		return Goal{}, fmt.Errorf("%w: unknown goal status %q", ErrInvalidInput, status)
	}
	employees, err := s.store.Employees(ctx)
	if err != nil {
		return Goal{}, fmt.Errorf("load employees: %w", err)
	}

	var updated Goal
	err = s.store.UpdateGoals(ctx, func(all []Goal) ([]Goal, error) {
		for i := range all {
			if all[i].ID != goalID {
				continue
			}
			if !directory.CanView(user, employees, all[i].EmployeeID) {
				return nil, ErrForbidden
			}
			if all[i].Status == GoalCompleted {
				return nil, ErrInvalidState
			}
			if progress != nil {
				all[i].Progress = *progress
			}
			if status != "" {
				all[i].Status = status
			}
			if all[i].Progress == 100 {
				all[i].Status = GoalCompleted
			}
			if all[i].Status == GoalCompleted {
				all[i].Progress = 100
			}
			updated = all[i]
			return all, nil
		}
		return nil, ErrNotFound
	})
	if err != nil {
		return Goal{}, err
	}
	return updated, nil
}

// GiveFeedback lets anyone leave praise or constructive notes for a colleague.
func (s *Service) GiveFeedback(ctx context.Context, user auth.UserContext, employeeID, kind, comment string) (Feedback, error) {
	if employeeID == user.UserID {
		return Feedback{}, ErrSelfReview
	}
	if kind != FeedbackPraise && kind != FeedbackConstructive {
		return Feedback{}, fmt.Errorf("%w: type must be %s or %s", ErrInvalidInput, FeedbackPraise, FeedbackConstructive)
	}
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return Feedback{}, fmt.Errorf("%w: comment is required", ErrInvalidInput)
	}
	employees, err := s.store.Employees(ctx)
	if err != nil {
		return Feedback{}, fmt.Errorf("load employees: %w", err)
	}
	if _, ok := directory.Find(employees, employeeID); !ok {
		return Feedback{}, ErrNotFound
	}

	from := user.Name
	if giver, ok := directory.Find(employees, user.UserID); ok {
		from = fmt.Sprintf("%s (%s)", giver.Name, giver.JobTitle)
	}
	item := Feedback{
		EmployeeID: employeeID,
		Type:       kind,
		FromID:     user.UserID,
		From:       from,
		Comment:    comment,
		Date:       s.now(),
	}
	err = s.store.UpdateFeedback(ctx, func(all []Feedback) ([]Feedback, error) {
		item.ID = nextID("F", s.now(), len(all), func(id string) bool {
			return slices.ContainsFunc(all, func(f Feedback) bool { return f.ID == id })
		})
		return append(all, item), nil
	})
	if err != nil {
		return Feedback{}, err
	}
	s.notify(ctx, employeeID, notifyFeedback, "New feedback", fmt.Sprintf("%s left you %s feedback.", user.Name, strings.ToLower(kind)))
	return item, nil
}

// SubmitReview scores every competency from 1 to 5 and stores the rounded
// mean as the review score.
func (s *Service) SubmitReview(ctx context.Context, user auth.UserContext, sub ReviewSubmission) (Review, error) {
	if sub.EmployeeID == user.UserID {
		return Review{}, ErrSelfReview
	}
	if _, err := s.visibleEmployee(ctx, user, sub.EmployeeID); err != nil {
		return Review{}, err
	}
	score, err := Score(sub.Ratings)
	if err != nil {
		return Review{}, err
	}
	cycle := strings.TrimSpace(sub.Cycle)
	if cycle == "" {
		cycle = CycleName(s.now())
	}

	review := Review{
		EmployeeID: sub.EmployeeID,
		Cycle:      cycle,
		Status:     ReviewCompleted,
		Score:      score,
		Ratings:    sub.Ratings,
		Comments:   strings.TrimSpace(sub.Comments),
		ReviewerID: user.UserID,
		Date:       s.now(),
	}
	err = s.store.UpdateReviews(ctx, func(all []Review) ([]Review, error) {
		review.ID = nextID("R", s.now(), len(all), func(id string) bool {
			return slices.ContainsFunc(all, func(r Review) bool { return r.ID == id })
		})
		return append(all, review), nil
	})
	if err != nil {
		return Review{}, err
	}
	s.notify(ctx, sub.EmployeeID, notifyReview, "Performance review completed", fmt.Sprintf("Your %s was completed with a score of %.1f.", cycle, score))
	return review, nil
}

// OpenPIP starts an improvement plan. An employee has at most one active plan.
func (s *Service) OpenPIP(ctx context.Context, user auth.UserContext, employeeID, title string, start, end time.Time) (PIP, error) {
	if employeeID == user.UserID {
		return PIP{}, ErrSelfReview
	}
	if _, err := s.visibleEmployee(ctx, user, employeeID); err != nil {
		return PIP{}, err
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return PIP{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if !end.After(start) {
		return PIP{}, fmt.Errorf("%w: end date must be after start date", ErrInvalidInput)
	}

	plan := PIP{
		EmployeeID: employeeID,
		Title:      title,
		Status:     PIPActive,
		StartDate:  start,
		EndDate:    end,
		OwnerID:    user.UserID,
	}
	err := s.store.UpdatePIPs(ctx, func(all []PIP) ([]PIP, error) {
		for _, p := range all {
			if p.EmployeeID == employeeID && p.Status == PIPActive {
				return nil, ErrActivePIP
			}
		}
		plan.ID = nextID("P", s.now(), len(all), func(id string) bool {
			return slices.ContainsFunc(all, func(p PIP) bool { return p.ID == id })
		})
		return append(all, plan), nil
	})
	if err != nil {
		return PIP{}, err
	}
	s.notify(ctx, employeeID, notifyPIP, "Performance improvement plan", fmt.Sprintf("A plan %q runs until %s.", title, end.Format(time.DateOnly)))
	return plan, nil
}

func (s *Service) ClosePIP(ctx context.Context, user auth.UserContext, pipID string) (PIP, error) {
	employees, err := s.store.Employees(ctx)
	if err != nil {
		return PIP{}, fmt.Errorf("load employees: %w", err)
	}
	var closed PIP
	err = s.store.UpdatePIPs(ctx, func(all []PIP) ([]PIP, error) {
		for i := range all {
			if all[i].ID != pipID {
				continue
			}
			if !directory.CanView(user, employees, all[i].EmployeeID) || all[i].EmployeeID == user.UserID {
				return nil, ErrForbidden
			}
			if all[i].Status != PIPActive {
				return nil, ErrInvalidState
			}
			all[i].Status = PIPCompleted
			closed = all[i]
			return all, nil
		}
		return nil, ErrNotFound
	})
	if err != nil {
		return PIP{}, err
	}
	return closed, nil
}

// Summary aggregates goals, reviews and plans across the caller's visible
// employees.
func (s *Service) Summary(ctx context.Context, user auth.UserContext) (Summary, error) {
	employees, err := s.store.Employees(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("load employees: %w", err)
	}
	visible := directory.VisibleIDs(user, employees)
	goals, err := s.store.Goals(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("load goals: %w", err)
	}
	reviews, err := s.store.Reviews(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("load reviews: %w", err)
	}
	pips, err := s.store.PIPs(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("load improvement plans: %w", err)
	}

	var goalsTotal, goalsCompleted, reviewsTotal, reviewsCompleted, activePIPs int
	scores := make([]float64, 0)
	for _, g := range goals {
		if _, ok := visible[g.EmployeeID]; !ok {
			continue
		}
		goalsTotal++
		if g.Status == GoalCompleted {
			goalsCompleted++
		}
	}
	for _, r := range reviews {
		if _, ok := visible[r.EmployeeID]; !ok {
			continue
		}
		reviewsTotal++
		if r.Status == ReviewCompleted {
			reviewsCompleted++
			scores = append(scores, r.Score)
		}
	}
	for _, p := range pips {
		if _, ok := visible[p.EmployeeID]; ok && p.Status == PIPActive {
			activePIPs++
		}
	}
	return buildSummary(goalsTotal, goalsCompleted, reviewsTotal, reviewsCompleted, scores, activePIPs), nil
}

// SummaryPDF renders the printable performance summary of one employee.
func (s *Service) SummaryPDF(ctx context.Context, user auth.UserContext, employeeID string) ([]byte, error) {
	profile, err := s.Profile(ctx, user, employeeID)
	if err != nil {
		return nil, err
	}
	return RenderSummaryPDF(profile)
}

func (s *Service) visibleEmployee(ctx context.Context, user auth.UserContext, employeeID string) (directory.Employee, error) {
	employees, err := s.store.Employees(ctx)
	if err != nil {
		return directory.Employee{}, fmt.Errorf("load employees: %w", err)
	}
	emp, ok := directory.Find(employees, employeeID)
	if !ok {
		return directory.Employee{}, ErrNotFound
	}
	if !directory.CanView(user, employees, employeeID) {
		return directory.Employee{}, ErrForbidden
	}
	return emp, nil
}

func (s *Service) notify(ctx context.Context, userID, ntype, title, body string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(ctx, userID, ntype, title, body); err != nil {
		slog.Warn("performance notification failed", "userId", userID, "type", ntype, "err", err)
	}
}

// Score checks that every competency has a rating from 1 to 5 and returns
// their mean rounded to one decimal.
func Score(ratings map[string]int) (float64, error) {
	total := 0
	for _, name := range Competencies {
		value, ok := ratings[name]
		if !ok {
			return 0, fmt.Errorf("%w: rating for %q is required", ErrInvalidInput, name)
		}
		if value < 1 || value > 5 {
			return 0, fmt.Errorf("%w: rating for %q must be between 1 and 5", ErrInvalidInput, name)
		}
		total += value
	}
	for name := range ratings {
		if !slices.Contains(Competencies, name) {
			return 0, fmt.Errorf("%w: unknown competency %q", ErrInvalidInput, name)
		}
	}
	mean := float64(total) / float64(len(Competencies))
	return math.Round(mean*10) / 10, nil
}

// CycleName labels the review cycle of the quarter t falls in, e.g. "Q4 2023 Review".
func CycleName(t time.Time) string {
	quarter := (int(t.Month())-1)/3 + 1
	return fmt.Sprintf("Q%d %d Review", quarter, t.Year())
}

func buildSummary(goalsTotal, goalsCompleted, reviewsTotal, reviewsCompleted int, scores []float64, activePIPs int) Summary {
	summary := Summary{
		GoalsTotal:         goalsTotal,
		GoalsCompleted:     goalsCompleted,
		ReviewsTotal:       reviewsTotal,
		ReviewsCompleted:   reviewsCompleted,
		RatingDistribution: map[string]int{},
		ActivePIPs:         activePIPs,
	}
	sum := 0.0
	for _, score := range scores {
		key := fmt.Sprintf("%d", int(score+0.5))
		summary.RatingDistribution[key]++
		sum += score
	}
	if len(scores) > 0 {
		summary.AverageScore = math.Round(sum/float64(len(scores))*10) / 10
	}
	if reviewsTotal > 0 {
		summary.CompletionRate = float64(reviewsCompleted) / float64(reviewsTotal)
	}
	return summary
}

func nextID(prefix string, now time.Time, n int, taken func(string) bool) string {
	base := now.UnixMilli()
	for i := 0; ; i++ {
		id := fmt.Sprintf("%s%d", prefix, base+int64(i))
		if !taken(id) {
			return id
		}
		if i > n {
			return fmt.Sprintf("%s%d-%d", prefix, base, i)
		}
	}
}

func filter[T any](all []T, keep func(T) bool) []T {
	out := make([]T, 0)
	for _, item := range all {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}
