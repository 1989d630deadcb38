package leave

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

const (
	notifyApproved = "leave_approved"
	notifyRejected = "leave_rejected"
)

type Service struct {
	store    Store
	notifier Notifier
	now      func() time.Time
}

func NewService(store Store, notifier Notifier) *Service {
	return &Service{store: store, notifier: notifier, now: time.Now}
}

func (s *Service) Submit(ctx context.Context, sub Submission) (Request, error) {
	if _, err := CalculateDays(sub.StartDate, sub.EndDate); err != nil {
		return Request{}, err
	}
	req := Request{
		EmployeeID: sub.EmployeeID,
		Type:       sub.Type,
		StartDate:  dateOnly(sub.StartDate),
		EndDate:    dateOnly(sub.EndDate),
		Status:     StatusPending,
		Reason:     strings.TrimSpace(sub.Reason),
	}
	if req.Type == "" {
		req.Type = TypeAnnual
	}
	err := s.store.UpdateLeaveRequests(ctx, func(all []Request) ([]Request, error) {
		req.ID = ids.Next("LR", s.now(), ids.Of(all, func(r Request) string { return r.ID }).Taken)
		return append([]Request{req}, all...), nil
	})
	if err != nil {
		return Request{}, err
	}
	return req, nil
}

// History lists the employee's own requests, newest start date first.
func (s *Service) History(ctx context.Context, employeeID string) ([]Request, error) {
	all, err := s.store.LeaveRequests(ctx)
	if err != nil {
		return nil, fmt.Errorf("load leave requests: %w", err)
	}
	out := make([]Request, 0)
	for _, req := range all {
		if req.EmployeeID == employeeID {
			out = append(out, req)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartDate.After(out[j].StartDate) })
	return out, nil
}

// Team lists the requests the approver may decide: direct reports for a
// manager, everyone for HR.
func (s *Service) Team(ctx context.Context, user auth.UserContext, status string) ([]TeamRequest, error) {
	employees, err := s.store.Employees(ctx)
	if err != nil {
		return nil, fmt.Errorf("load employees: %w", err)
	}
	all, err := s.store.LeaveRequests(ctx)
	if err != nil {
		return nil, fmt.Errorf("load leave requests: %w", err)
	}

	names := make(map[string]string, len(employees))
	for _, emp := range employees {
		names[emp.ID] = emp.Name
	}

	out := make([]TeamRequest, 0)
	for _, req := range all {
		if status != "" && req.Status != status {
			continue
		}
		if !canDecide(user, employees, req) {
			continue
		}
		days, _ := CalculateDays(req.StartDate, req.EndDate)
		out = append(out, TeamRequest{Request: req, EmployeeName: names[req.EmployeeID], Days: days})
	}
	return out, nil
}

func (s *Service) Approve(ctx context.Context, user auth.UserContext, requestID string) (Request, error) {
	return s.decide(ctx, user, requestID, StatusApproved)
}

func (s *Service) Reject(ctx context.Context, user auth.UserContext, requestID string) (Request, error) {
	return s.decide(ctx, user, requestID, StatusRejected)
}

func (s *Service) decide(ctx context.Context, user auth.UserContext, requestID, status string) (Request, error) {
	employees, err := s.store.Employees(ctx)
	if err != nil {
		return Request{}, fmt.Errorf("load employees: %w", err)
	}

	var decided Request
	now := s.now()
	err = s.store.UpdateLeaveRequests(ctx, func(all []Request) ([]Request, error) {
		for i := range all {
			if all[i].ID != requestID {
				continue
			}
			if !canDecide(user, employees, all[i]) {
				return nil, ErrForbidden
			}
			if err := Transition(all[i].Status, status); err != nil {
				return nil, err
			}
			all[i].Status = status
			all[i].DecidedBy = user.UserID
			all[i].DecidedAt = &now
			decided = all[i]
			return all, nil
		}
		return nil, ErrNotFound
	})
	if err != nil {
		return Request{}, err
	}

	if decided.Status == StatusApproved && decided.Type == TypeAnnual {
		if err := s.deductBalance(ctx, decided); err != nil {
			slog.Warn("leave balance update failed", "requestId", decided.ID, "err", err)
		}
	}
	s.notify(ctx, decided)
	return decided, nil
}

func (s *Service) deductBalance(ctx context.Context, req Request) error {
	days, err := CalculateDays(req.StartDate, req.EndDate)
	if err != nil {
		return err
	}
	return s.store.UpdateEmployees(ctx, func(all []directory.Employee) ([]directory.Employee, error) {
		for i := range all {
			if all[i].ID == req.EmployeeID {
				all[i].AnnualLeaveBalance = max(all[i].AnnualLeaveBalance-days, 0)
				break
			}
		}
		return all, nil
	})
}

func (s *Service) notify(ctx context.Context, req Request) {
	if s.notifier == nil {
		return
	}
	ntype, verb := notifyApproved, "approved"
	if req.Status == StatusRejected {
		ntype, verb = notifyRejected, "rejected"
	}
	title := fmt.Sprintf("Leave request %s", verb)
	body := fmt.Sprintf("Your %s from %s to %s was %s.", req.Type, req.StartDate.Format("2006-01-02"), req.EndDate.Format("2006-01-02"), verb)
	if err := s.notifier.Notify(ctx, req.EmployeeID, ntype, title, body); err != nil {
		slog.Warn("leave notification failed", "requestId", req.ID, "err", err)
	}
}

func canDecide(user auth.UserContext, employees []directory.Employee, req Request) bool {
	if req.EmployeeID == user.UserID {
		return false
	}
	switch user.RoleName {
	case auth.RoleHRAdmin:
		return true
	case auth.RoleManager:
		emp, ok := directory.Find(employees, req.EmployeeID)
		return ok && emp.ManagerID == user.UserID
	default:
		return false
	}
}
