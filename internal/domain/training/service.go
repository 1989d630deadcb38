package training

import (
	"context"
	"fmt"
	"log/slog"
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

func (s *Service) Programs(ctx context.Context) ([]Program, error) {
	return s.store.TrainingPrograms(ctx)
}

// Enrollments lists the enrollments of employees the viewer can see. A
// non-empty employeeID narrows the list to that employee.
func (s *Service) Enrollments(ctx context.Context, user auth.UserContext, employeeID string) ([]Enrollment, error) {
	employees, err := s.store.Employees(ctx)
	if err != nil {
		return nil, fmt.Errorf("load employees: %w", err)
	}
	all, err := s.store.Enrollments(ctx)
	if err != nil {
		return nil, fmt.Errorf("load enrollments: %w", err)
	}
	visible := directory.VisibleIDs(user, employees)
	out := make([]Enrollment, 0)
	for _, e := range all {
		if _, ok := visible[e.EmployeeID]; !ok {
			continue
		}
		if employeeID != "" && e.EmployeeID != employeeID {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

// Request files a self-service enrollment request awaiting approval.
func (s *Service) Request(ctx context.Context, user auth.UserContext, programID string) (Enrollment, error) {
	return s.add(ctx, Enrollment{
		EmployeeID:     user.UserID,
		ProgramID:      programID,
		Status:         StatusRequested,
		EnrollmentDate: dateOnly(s.now()),
	})
}

// Assign enrolls an employee directly, skipping the request step.
func (s *Service) Assign(ctx context.Context, user auth.UserContext, employeeID, programID string) (Enrollment, error) {
	employees, err := s.store.Employees(ctx)
	if err != nil {
		return Enrollment{}, fmt.Errorf("load employees: %w", err)
	}
	if !directory.CanView(user, employees, employeeID) {
		return Enrollment{}, ErrForbidden
	}
	return s.add(ctx, Enrollment{
		EmployeeID:     employeeID,
		ProgramID:      programID,
		Status:         StatusNotStarted,
		EnrollmentDate: dateOnly(s.now()),
	})
}

func (s *Service) add(ctx context.Context, e Enrollment) (Enrollment, error) {
	programs, err := s.store.TrainingPrograms(ctx)
	if err != nil {
		return Enrollment{}, fmt.Errorf("load programs: %w", err)
	}
	if _, ok := findProgram(programs, e.ProgramID); !ok {
		return Enrollment{}, ErrProgramNotFound
	}
	err = s.store.UpdateEnrollments(ctx, func(all []Enrollment) ([]Enrollment, error) {
		if indexOf(all, e.EmployeeID, e.ProgramID) >= 0 {
			return nil, ErrAlreadyEnrolled
		}
		return append(all, e), nil
	})
	if err != nil {
		return Enrollment{}, err
	}
	return e, nil
}

// PendingRequests is the approval queue: every Requested enrollment for HR,
// direct reports only for a manager.
func (s *Service) PendingRequests(ctx context.Context, user auth.UserContext) ([]PendingRequest, error) {
	employees, err := s.store.Employees(ctx)
	if err != nil {
		return nil, fmt.Errorf("load employees: %w", err)
	}
	programs, err := s.store.TrainingPrograms(ctx)
	if err != nil {
		return nil, fmt.Errorf("load programs: %w", err)
	}
	all, err := s.store.Enrollments(ctx)
	if err != nil {
		return nil, fmt.Errorf("load enrollments: %w", err)
	}

	out := make([]PendingRequest, 0)
	for _, e := range all {
		if e.Status != StatusRequested || !canDecide(user, employees, e.EmployeeID) {
			continue
		}
		req := PendingRequest{Enrollment: e, EmployeeName: unknownEmployee, ProgramName: unknownProgram}
		if emp, ok := directory.Find(employees, e.EmployeeID); ok {
			req.EmployeeName = emp.Name
		}
		if program, ok := findProgram(programs, e.ProgramID); ok {
			req.ProgramName = program.Name
		}
		out = append(out, req)
	}
	return out, nil
}

// Approve turns a request into a Not Started enrollment.
func (s *Service) Approve(ctx context.Context, user auth.UserContext, employeeID, programID string) (Enrollment, error) {
	employees, err := s.store.Employees(ctx)
	if err != nil {
		return Enrollment{}, fmt.Errorf("load employees: %w", err)
	}
	if !canDecide(user, employees, employeeID) {
		return Enrollment{}, ErrForbidden
	}
	var approved Enrollment
	err = s.store.UpdateEnrollments(ctx, func(all []Enrollment) ([]Enrollment, error) {
		i := indexOf(all, employeeID, programID)
		if i < 0 {
			return nil, ErrEnrollmentNotFound
		}
		if all[i].Status != StatusRequested {
			return nil, ErrInvalidState
		}
		all[i].Status = StatusNotStarted
		approved = all[i]
		return all, nil
	})
	if err != nil {
		return Enrollment{}, err
	}
	s.notify(ctx, employeeID, "training_approved", "Training request approved", programID)
	return approved, nil
}

// Deny removes the request entirely; no denied record is kept.
func (s *Service) Deny(ctx context.Context, user auth.UserContext, employeeID, programID string) error {
	employees, err := s.store.Employees(ctx)
	if err != nil {
		return fmt.Errorf("load employees: %w", err)
	}
	if !canDecide(user, employees, employeeID) {
		return ErrForbidden
	}
	err = s.store.UpdateEnrollments(ctx, func(all []Enrollment) ([]Enrollment, error) {
		i := indexOf(all, employeeID, programID)
		if i < 0 {
			return nil, ErrEnrollmentNotFound
		}
		if all[i].Status != StatusRequested {
			return nil, ErrInvalidState
		}
		return append(all[:i], all[i+1:]...), nil
	})
	if err != nil {
		return err
	}
	s.notify(ctx, employeeID, "training_denied", "Training request denied", programID)
	return nil
}

// Advance steps the enrollment forward. The enrollee may move their own
// training; anyone else needs the employee in scope.
func (s *Service) Advance(ctx context.Context, user auth.UserContext, employeeID, programID string) (Enrollment, error) {
	now := s.now()
	return s.mutate(ctx, user, employeeID, programID, func(e Enrollment) (Enrollment, error) {
		return Advance(e, now)
	})
}

func (s *Service) UpdateProgress(ctx context.Context, user auth.UserContext, employeeID, programID string, progress int) (Enrollment, error) {
	now := s.now()
	return s.mutate(ctx, user, employeeID, programID, func(e Enrollment) (Enrollment, error) {
		return SetProgress(e, progress, now)
	})
}

// Unassign drops an enrollment whatever its status.
func (s *Service) Unassign(ctx context.Context, user auth.UserContext, employeeID, programID string) error {
	employees, err := s.store.Employees(ctx)
	if err != nil {
		return fmt.Errorf("load employees: %w", err)
	}
	if employeeID == user.UserID || !directory.CanView(user, employees, employeeID) {
		return ErrForbidden
	}
	return s.store.UpdateEnrollments(ctx, func(all []Enrollment) ([]Enrollment, error) {
		i := indexOf(all, employeeID, programID)
		if i < 0 {
			return nil, ErrEnrollmentNotFound
		}
		return append(all[:i], all[i+1:]...), nil
	})
}

func (s *Service) mutate(ctx context.Context, user auth.UserContext, employeeID, programID string, fn func(Enrollment) (Enrollment, error)) (Enrollment, error) {
	employees, err := s.store.Employees(ctx)
	if err != nil {
		return Enrollment{}, fmt.Errorf("load employees: %w", err)
	}
	if !directory.CanView(user, employees, employeeID) {
		return Enrollment{}, ErrForbidden
	}
	var updated Enrollment
	err = s.store.UpdateEnrollments(ctx, func(all []Enrollment) ([]Enrollment, error) {
		i := indexOf(all, employeeID, programID)
		if i < 0 {
			return nil, ErrEnrollmentNotFound
		}
		next, err := fn(all[i])
		if err != nil {
			return nil, err
		}
		all[i] = next
		updated = next
		return all, nil
	})
	if err != nil {
		return Enrollment{}, err
	}
	return updated, nil
}

func (s *Service) notify(ctx context.Context, employeeID, ntype, title, programID string) {
	if s.notifier == nil {
		return
	}
	name := programID
	if programs, err := s.store.TrainingPrograms(ctx); err == nil {
		if program, ok := findProgram(programs, programID); ok {
			name = program.Name
		}
	}
	if err := s.notifier.Notify(ctx, employeeID, ntype, title, name); err != nil {
		slog.Warn("training notification failed", "employeeId", employeeID, "programId", programID, "err", err)
	}
}

func canDecide(user auth.UserContext, employees []directory.Employee, employeeID string) bool {
	if employeeID == user.UserID {
		return false
	}
	switch user.RoleName {
	case auth.RoleHRAdmin:
		return true
	case auth.RoleManager:
		emp, ok := directory.Find(employees, employeeID)
		return ok && emp.ManagerID == user.UserID
	default:
		return false
	}
}

func findProgram(programs []Program, id string) (Program, bool) {
	for _, p := range programs {
		if p.ID == id {
			return p, true
		}
	}
	return Program{}, false
}

func indexOf(all []Enrollment, employeeID, programID string) int {
	for i := range all {
		if all[i].EmployeeID == employeeID && all[i].ProgramID == programID {
			return i
		}
	}
	return -1
}
