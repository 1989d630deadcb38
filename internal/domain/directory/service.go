package directory

import (
	"context"
	"fmt"
	"io"
	"time"

	"hrconsole/internal/domain/auth"
	"hrconsole/internal/platform/ids"
)

type Service struct {
	store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

func (s *Service) List(ctx context.Context, user auth.UserContext) ([]Employee, error) {
	all, err := s.store.Employees(ctx)
	if err != nil {
		return nil, fmt.Errorf("load employees: %w", err)
	}
	return VisibleEmployees(user, all), nil
}

// All returns the full roster without any visibility filtering.
func (s *Service) All(ctx context.Context) ([]Employee, error) {
	all, err := s.store.Employees(ctx)
	if err != nil {
		return nil, fmt.Errorf("load employees: %w", err)
	}
	return all, nil
}

func (s *Service) Get(ctx context.Context, user auth.UserContext, employeeID string) (Employee, error) {
	visible, err := s.List(ctx, user)
	if err != nil {
		return Employee{}, err
	}
	emp, ok := Find(visible, employeeID)
	if !ok {
		return Employee{}, ErrNotFound
	}
	return emp, nil
}

func (s *Service) Create(ctx context.Context, emp Employee) (Employee, error) {
	if emp.AnnualLeaveBalance == 0 {
		emp.AnnualLeaveBalance = DefaultAnnualLeave
	}
	ApplyDefaults(&emp, s.now())
	err := s.store.UpdateEmployees(ctx, func(all []Employee) ([]Employee, error) {
		if emp.ID == "" {
			emp.ID = ids.Next("E", s.now(), ids.Of(all, func(e Employee) string { return e.ID }).Taken)
		}
		if _, exists := Find(all, emp.ID); exists {
			return nil, ErrDuplicateID
		}
		return append(all, emp), nil
	})
	if err != nil {
		return Employee{}, err
	}
	return emp, nil
}

func (s *Service) Update(ctx context.Context, employeeID string, emp Employee) (Employee, error) {
	emp.ID = employeeID
	ApplyDefaults(&emp, s.now())
	err := s.store.UpdateEmployees(ctx, func(all []Employee) ([]Employee, error) {
		for i := range all {
			if all[i].ID == employeeID {
				all[i] = emp
				return all, nil
			}
		}
		return nil, ErrNotFound
	})
	if err != nil {
		return Employee{}, err
	}
	return emp, nil
}

func (s *Service) Delete(ctx context.Context, employeeID string) error {
	return s.store.UpdateEmployees(ctx, func(all []Employee) ([]Employee, error) {
		out := all[:0]
		found := false
		for _, emp := range all {
			if emp.ID == employeeID {
				found = true
				continue
			}
			out = append(out, emp)
		}
		if !found {
			return nil, ErrNotFound
		}
		return out, nil
	})
}

func (s *Service) Export(ctx context.Context, user auth.UserContext, w io.Writer) error {
	visible, err := s.List(ctx, user)
	if err != nil {
		return err
	}
	return ExportCSV(w, visible)
}

func (s *Service) Import(ctx context.Context, data []byte) (ImportResult, error) {
	result, err := ParseCSV(data, s.now())
	if err != nil {
		return ImportResult{}, err
	}
	err = s.store.UpdateEmployees(ctx, func(all []Employee) ([]Employee, error) {
		taken := ids.Of(all, func(e Employee) string { return e.ID })
		for i := range result.Employees {
			result.Employees[i].ID = ids.Free(result.Employees[i].ID, taken.Taken)
			taken.Add(result.Employees[i].ID)
		}
		return append(all, result.Employees...), nil
	})
	if err != nil {
		return ImportResult{}, err
	}
	return result, nil
}

func (s *Service) Departments(ctx context.Context) ([]Department, error) {
	return s.store.Departments(ctx)
}

func (s *Service) JobPositions(ctx context.Context) ([]JobPosition, error) {
	return s.store.JobPositions(ctx)
}

// DepartmentID resolves a department name to its id.
func (s *Service) DepartmentID(ctx context.Context, name string) (string, error) {
	departments, err := s.store.Departments(ctx)
	if err != nil {
		return "", err
	}
	for _, dep := range departments {
		if dep.Name == name {
			return dep.ID, nil
		}
	}
	return "", nil
}

// ApplyDefaults fills the fields an add form may leave empty.
func ApplyDefaults(emp *Employee, now time.Time) {
	emp.EmploymentType = orDefault(emp.EmploymentType, EmploymentPermanent)
	emp.EmploymentStatus = orDefault(emp.EmploymentStatus, StatusActive)
	emp.ContractType = orDefault(emp.ContractType, ContractFullTime)
	emp.ProbationStatus = orDefault(emp.ProbationStatus, ProbationPending)
	emp.PayFrequency = orDefault(emp.PayFrequency, PayMonthly)
	if emp.DateOfHire.IsZero() {
		emp.DateOfHire = today(now)
	}
	if emp.Skills == nil {
		emp.Skills = []Skill{}
	}
}
