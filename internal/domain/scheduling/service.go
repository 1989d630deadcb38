package scheduling

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"hrconsole/internal/domain/auth"
	"hrconsole/internal/domain/directory"
	"hrconsole/internal/platform/ids"
)

type Service struct {
	store   Store
	checker Checker
	now     func() time.Time
}

func NewService(store Store, loc *time.Location) *Service {
	return &Service{store: store, checker: Checker{Location: loc}, now: time.Now}
}

// List returns the shifts of employees the viewer can see, ordered by start.
// A zero from or to leaves that side of the window open.
func (s *Service) List(ctx context.Context, user auth.UserContext, from, to time.Time) ([]ListedShift, error) {
	employees, err := s.store.Employees(ctx)
	if err != nil {
		return nil, fmt.Errorf("load employees: %w", err)
	}
	shifts, err := s.store.Shifts(ctx)
	if err != nil {
		return nil, fmt.Errorf("load shifts: %w", err)
	}

	visible := directory.VisibleIDs(user, employees)
	names := make(map[string]string, len(employees))
	for _, emp := range employees {
		names[emp.ID] = emp.Name
	}

	out := make([]ListedShift, 0)
	for _, shift := range shifts {
		if _, ok := visible[shift.EmployeeID]; !ok {
			continue
		}
		if !from.IsZero() && !shift.EndTime.After(from) {
			continue
		}
		if !to.IsZero() && !shift.StartTime.Before(to) {
			continue
		}
		name, ok := names[shift.EmployeeID]
		if !ok {
			name = "Unknown"
		}
		out = append(out, ListedShift{Shift: shift, EmployeeName: name})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

// Check evaluates a draft without saving it. Drafts for employees outside the
// viewer's scope are refused so approved leave of others is never revealed.
func (s *Service) Check(ctx context.Context, user auth.UserContext, candidate Shift) (*Conflict, error) {
	if candidate.EmployeeID == "" {
		return nil, nil
	}
	employees, err := s.store.Employees(ctx)
	if err != nil {
		return nil, fmt.Errorf("load employees: %w", err)
	}
	if !directory.CanView(user, employees, candidate.EmployeeID) {
		return nil, ErrForbidden
	}
	shifts, err := s.store.Shifts(ctx)
	if err != nil {
		return nil, fmt.Errorf("load shifts: %w", err)
	}
	requests, err := s.store.LeaveRequests(ctx)
	if err != nil {
		return nil, fmt.Errorf("load leave requests: %w", err)
	}
	return s.checker.FindConflict(candidate, shifts, requests), nil
}

// Create saves the shift even when it conflicts; the conflict is returned
// alongside for the caller to surface. The id and the conflict are both
// decided against the collection being written.
func (s *Service) Create(ctx context.Context, user auth.UserContext, shift Shift) (SaveResult, error) {
	if err := s.prepare(ctx, user, &shift); err != nil {
		return SaveResult{}, err
	}
	requests, err := s.store.LeaveRequests(ctx)
	if err != nil {
		return SaveResult{}, fmt.Errorf("load leave requests: %w", err)
	}
	var conflict *Conflict
	err = s.store.UpdateShifts(ctx, func(all []Shift) ([]Shift, error) {
		shift.ID = ids.Next("S", s.now(), ids.Of(all, func(sh Shift) string { return sh.ID }).Taken)
		conflict = s.checker.FindConflict(shift, all, requests)
		return append(all, shift), nil
	})
	if err != nil {
		return SaveResult{}, err
	}
	return SaveResult{Shift: shift, Conflict: conflict}, nil
}

// Update replaces a shift. Both the current owner and the new employee must
// be visible to the caller.
func (s *Service) Update(ctx context.Context, user auth.UserContext, id string, shift Shift) (SaveResult, error) {
	shift.ID = id
	if err := s.prepare(ctx, user, &shift); err != nil {
		return SaveResult{}, err
	}
	employees, err := s.store.Employees(ctx)
	if err != nil {
		return SaveResult{}, fmt.Errorf("load employees: %w", err)
	}
	requests, err := s.store.LeaveRequests(ctx)
	if err != nil {
		return SaveResult{}, fmt.Errorf("load leave requests: %w", err)
	}
	visible := directory.VisibleIDs(user, employees)
	var conflict *Conflict
	err = s.store.UpdateShifts(ctx, func(all []Shift) ([]Shift, error) {
		for i := range all {
			if all[i].ID != id {
				continue
			}
			if _, ok := visible[all[i].EmployeeID]; !ok {
				return nil, ErrForbidden
			}
			conflict = s.checker.FindConflict(shift, all, requests)
			all[i] = shift
			return all, nil
		}
		return nil, ErrNotFound
	})
	if err != nil {
		return SaveResult{}, err
	}
	return SaveResult{Shift: shift, Conflict: conflict}, nil
}

func (s *Service) Delete(ctx context.Context, user auth.UserContext, id string) error {
	employees, err := s.store.Employees(ctx)
	if err != nil {
		return fmt.Errorf("load employees: %w", err)
	}
	visible := directory.VisibleIDs(user, employees)
	return s.store.UpdateShifts(ctx, func(all []Shift) ([]Shift, error) {
		for i := range all {
			if all[i].ID != id {
				continue
			}
			if _, ok := visible[all[i].EmployeeID]; !ok {
				return nil, ErrForbidden
			}
			return append(all[:i], all[i+1:]...), nil
		}
		return nil, ErrNotFound
	})
}

func (s *Service) prepare(ctx context.Context, user auth.UserContext, shift *Shift) error {
	shift.Title = strings.TrimSpace(shift.Title)
	shift.Notes = strings.TrimSpace(shift.Notes)
	if !shift.EndTime.After(shift.StartTime) {
		return ErrInvalidRange
	}
	employees, err := s.store.Employees(ctx)
	if err != nil {
		return fmt.Errorf("load employees: %w", err)
	}
	if !directory.CanView(user, employees, shift.EmployeeID) {
		return ErrForbidden
	}
	return nil
}
