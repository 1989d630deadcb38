package store

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"sync"

	"hrconsole/internal/domain/auth"
	"hrconsole/internal/domain/compliance"
	"hrconsole/internal/domain/directory"
	"hrconsole/internal/domain/engagement"
	"hrconsole/internal/domain/leave"
	"hrconsole/internal/domain/notifications"
	"hrconsole/internal/domain/payroll"
	"hrconsole/internal/domain/performance"
	"hrconsole/internal/domain/scheduling"
	"hrconsole/internal/domain/training"
)

// Data is every collection the console keeps. It is also the snapshot format.
type Data struct {
	Users              []auth.User                    `json:"users"`
	Employees          []directory.Employee           `json:"employees"`
	Departments        []directory.Department         `json:"departments"`
	JobPositions       []directory.JobPosition        `json:"jobPositions"`
	Shifts             []scheduling.Shift             `json:"shifts"`
	LeaveRequests      []leave.Request                `json:"leaveRequests"`
	Allowances         []payroll.Allowance            `json:"allowances"`
	Payslips           []payroll.Payslip              `json:"payslips"`
	TrainingPrograms   []training.Program             `json:"trainingPrograms"`
	Enrollments        []training.Enrollment          `json:"enrollments"`
	Documents          []compliance.Document          `json:"complianceDocuments"`
	Acknowledgements   []compliance.Acknowledgement   `json:"acknowledgements"`
	Announcements      []engagement.Announcement      `json:"announcements"`
	BenefitPlans       []engagement.BenefitPlan       `json:"benefitPlans"`
	BenefitEnrollments []engagement.BenefitEnrollment `json:"benefitEnrollments"`
	Notifications      []notifications.Notification   `json:"notifications"`
	Goals              []performance.Goal             `json:"goals"`
	Feedback           []performance.Feedback         `json:"feedback"`
	Reviews            []performance.Review           `json:"reviews"`
	PIPs               []performance.PIP              `json:"pips"`
	RoleGrants         []auth.RoleGrant               `json:"roleGrants"`
}

// Store is the process-wide repository. One RWMutex guards every collection:
// reads hand out copies and writes run an updater under the write lock.
type Store struct {
	mu      sync.RWMutex
	data    Data
	version uint64
}

func New(data Data) *Store {
	return &Store{data: data}
}

func read[T any](ctx context.Context, s *Store, field func(*Data) *[]T, clone func(T) T) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(*field(&s.data), clone), nil
}

// update applies fn to a copy of the collection and keeps the result only
// when fn succeeds.
func update[T any](ctx context.Context, s *Store, field func(*Data) *[]T, clone func(T) T, fn func([]T) ([]T, error)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := fn(cloneSlice(*field(&s.data), clone))
	if err != nil {
		return err
	}
	*field(&s.data) = next
	s.version++
	return nil
}

func cloneSlice[T any](in []T, clone func(T) T) []T {
	out := make([]T, len(in))
	copy(out, in)
	if clone != nil {
		for i := range out {
			out[i] = clone(out[i])
		}
	}
	return out
}

// Version counts successful writes. Snapshot jobs use it to skip idle periods.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Snapshot serialises every collection as JSON.
func (s *Store) Snapshot() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, err := json.Marshal(s.data)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	return data, nil
}

// Restore replaces every collection with the snapshot contents.
func (s *Store) Restore(snapshot []byte) error {
	var data Data
	if err := json.Unmarshal(snapshot, &data); err != nil {
		return fmt.Errorf("unmarshal snapshot: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data
	return nil
}

func cloneEmployee(emp directory.Employee) directory.Employee {
	emp.Skills = slices.Clone(emp.Skills)
	emp.ContractStartDate = clonePtr(emp.ContractStartDate)
	emp.ContractEndDate = clonePtr(emp.ContractEndDate)
	return emp
}

func clonePayslip(slip payroll.Payslip) payroll.Payslip {
	slip.AllowanceDetails = slices.Clone(slip.AllowanceDetails)
	return slip
}

func cloneReview(review performance.Review) performance.Review {
	review.Ratings = maps.Clone(review.Ratings)
	return review
}

func cloneGrant(grant auth.RoleGrant) auth.RoleGrant {
	grant.Permissions = slices.Clone(grant.Permissions)
	return grant
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
