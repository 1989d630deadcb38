package assistant

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"hrconsole/internal/domain/directory"
	"hrconsole/internal/domain/leave"
)

type Service struct {
	store     Store
	generator TextGenerator
	cache     Cache
	cacheTTL  time.Duration
	now       func() time.Time
}

// NewService wires the assistant. A nil generator leaves the feature
// unavailable; a nil cache disables caching.
func NewService(store Store, generator TextGenerator, cache Cache, cacheTTL time.Duration) *Service {
	return &Service{store: store, generator: generator, cache: cache, cacheTTL: cacheTTL, now: time.Now}
}

func (s *Service) Available() bool {
	return s.generator != nil
}

func (s *Service) InterviewQuestions(ctx context.Context, jobTitle string) ([]string, error) {
	jobTitle = strings.TrimSpace(jobTitle)
	if jobTitle == "" {
		return nil, ErrInvalidInput
	}
	var out struct {
		Questions []string `json:"questions"`
	}
	if err := s.ask(ctx, interviewPrompt(jobTitle), &out); err != nil {
		return nil, err
	}
	if len(out.Questions) == 0 {
		return nil, ErrInvalidResponse
	}
	return out.Questions, nil
}

func (s *Service) JobDescription(ctx context.Context, jobTitle string, keywords []string) (JobDescription, error) {
	jobTitle = strings.TrimSpace(jobTitle)
	if jobTitle == "" {
		return JobDescription{}, ErrInvalidInput
	}
	var out JobDescription
	if err := s.ask(ctx, jobDescriptionPrompt(jobTitle, cleanList(keywords)), &out); err != nil {
		return JobDescription{}, err
	}
	if out.Title == "" {
		out.Title = jobTitle
	}
	return out, nil
}

func (s *Service) Checklist(ctx context.Context, jobTitle, kind string) ([]string, error) {
	jobTitle = strings.TrimSpace(jobTitle)
	if jobTitle == "" {
		return nil, ErrInvalidInput
	}
	if kind == "" {
		kind = ChecklistOnboarding
	}
	if kind != ChecklistOnboarding && kind != ChecklistOffboarding {
		return nil, ErrInvalidInput
	}
	var out struct {
		Checklist []string `json:"checklist"`
	}
	if err := s.ask(ctx, checklistPrompt(jobTitle, kind), &out); err != nil {
		return nil, err
	}
	if len(out.Checklist) == 0 {
		return nil, ErrInvalidResponse
	}
	return out.Checklist, nil
}

func (s *Service) WorkforceInsights(ctx context.Context) ([]Insight, error) {
	if !s.Available() {
		return nil, ErrUnavailable
	}
	employees, err := s.store.Employees(ctx)
	if err != nil {
		return nil, err
	}
	requests, err := s.store.LeaveRequests(ctx)
	if err != nil {
		return nil, err
	}
	prompt, err := insightsPrompt(Summarise(employees, requests, s.now()))
	if err != nil {
		return nil, err
	}
	var out struct {
		Insights []Insight `json:"insights"`
	}
	if err := s.ask(ctx, prompt, &out); err != nil {
		return nil, err
	}
	insights := make([]Insight, 0, len(out.Insights))
	for _, in := range out.Insights {
		if in.Type != InsightRisk && in.Type != InsightOpportunity {
			continue
		}
		insights = append(insights, in)
	}
	return insights, nil
}

func (s *Service) TalentMatch(ctx context.Context, requiredSkills []string) (TalentAnalysis, error) {
	required := cleanList(requiredSkills)
	if len(required) == 0 {
		return TalentAnalysis{}, ErrInvalidInput
	}
	if !s.Available() {
		return TalentAnalysis{}, ErrUnavailable
	}
	employees, err := s.store.Employees(ctx)
	if err != nil {
		return TalentAnalysis{}, err
	}
	profiles := make([]talentProfile, 0, len(employees))
	known := make(map[string]string, len(employees))
	for _, emp := range employees {
		skills := make([]string, 0, len(emp.Skills))
		for _, sk := range emp.Skills {
			skills = append(skills, sk.Name)
		}
		profiles = append(profiles, talentProfile{ID: emp.ID, Name: emp.Name, Title: emp.JobTitle, Skills: skills})
		known[emp.ID] = emp.Name
	}
	prompt, err := talentPrompt(required, profiles)
	if err != nil {
		return TalentAnalysis{}, err
	}
	var out TalentAnalysis
	if err := s.ask(ctx, prompt, &out); err != nil {
		return TalentAnalysis{}, err
	}
	// Drop candidates the generator made up.
	candidates := make([]MatchedEmployee, 0, len(out.TopCandidates))
	for _, c := range out.TopCandidates {
		name, ok := known[c.EmployeeID]
		if !ok {
			continue
		}
		c.EmployeeName = name
		c.MatchPercentage = min(max(c.MatchPercentage, 0), 100)
		candidates = append(candidates, c)
	}
	return TalentAnalysis{TopCandidates: candidates}, nil
}

// Summarise reduces the roster and leave book to the aggregate sent for insights.
func Summarise(employees []directory.Employee, requests []leave.Request, now time.Time) WorkforceFacts {
	facts := WorkforceFacts{
		Headcount:             len(employees),
		HeadcountByDepartment: map[string]int{},
		HighLeaveBalances:     map[string]int{},
	}
	horizon := now.AddDate(0, 0, 90)
	for _, emp := range employees {
		facts.HeadcountByDepartment[emp.Department]++
		if emp.AnnualLeaveBalance > highLeaveThreshold {
			facts.HighLeaveBalances[emp.Department]++
		}
		if emp.ContractEndDate != nil && !emp.ContractEndDate.Before(now) && emp.ContractEndDate.Before(horizon) {
			facts.ContractsExpiring90d++
		}
	}
	for _, req := range requests {
		switch req.Status {
		case leave.StatusPending:
			facts.PendingLeaveRequests++
		case leave.StatusApproved:
			facts.ApprovedLeaveRequests++
		}
	}
	return facts
}

func (s *Service) ask(ctx context.Context, prompt Prompt, out any) error {
	if !s.Available() {
		return ErrUnavailable
	}
	key := cacheKey(prompt)
	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, key)
		if err != nil {
			slog.Warn("assistant cache read failed", "error", err)
		} else if ok && decode(cached, out) == nil {
			return nil
		}
	}
	raw, err := s.generator.GenerateText(ctx, prompt)
	if err != nil {
		return fmt.Errorf("generate text: %w", err)
	}
	if err := decode(raw, out); err != nil {
		return err
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, key, stripFences(raw), s.cacheTTL); err != nil {
			slog.Warn("assistant cache write failed", "error", err)
		}
	}
	return nil
}

func decode(raw string, out any) error {
	if err := json.Unmarshal([]byte(stripFences(raw)), out); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return nil
}

// stripFences removes a surrounding markdown code fence, if any.
func stripFences(raw string) string {
	text := strings.TrimSpace(raw)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	if nl := strings.IndexByte(text, '\n'); nl >= 0 {
		text = text[nl+1:]
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}

func cacheKey(prompt Prompt) string {
	sum := sha256.Sum256([]byte(prompt.System + "\x00" + prompt.User))
	return cachePrefix + hex.EncodeToString(sum[:])
}

func cleanList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
