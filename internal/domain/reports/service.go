package reports

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"hrconsole/internal/domain/auth"
	"hrconsole/internal/domain/directory"
	"hrconsole/internal/domain/leave"
	"hrconsole/internal/domain/payroll"
	"hrconsole/internal/domain/scheduling"
	"hrconsole/internal/domain/training"
)

type Service struct {
	store      Store
	compliance ComplianceCounter
	payroll    PayrollTotals
	loc        *time.Location
	now        func() time.Time
}

func NewService(store Store, compliance ComplianceCounter, payroll PayrollTotals, loc *time.Location) *Service {
	return &Service{store: store, compliance: compliance, payroll: payroll, loc: loc, now: time.Now}
}

// snapshot is the data one dashboard build reads, loaded concurrently.
type snapshot struct {
	employees   []directory.Employee
	requests    []leave.Request
	payslips    []payroll.Payslip
	enrollments []training.Enrollment
	shifts      []scheduling.Shift
	unsigned    int
	totals      payroll.PeriodTotals
	hasTotals   bool
}

// Dashboard builds the sections for the caller's role. Everyone with an
// employee record gets the personal section; managers add a team section and
// HR admins an organisation section.
func (s *Service) Dashboard(ctx context.Context, user auth.UserContext) (Dashboard, error) {
	hr := user.RoleName == auth.RoleHRAdmin
	var snap snapshot

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		snap.employees, err = s.store.Employees(gCtx)
		return err
	})
	g.Go(func() (err error) {
		snap.requests, err = s.store.LeaveRequests(gCtx)
		return err
	})
	g.Go(func() (err error) {
		snap.payslips, err = s.store.Payslips(gCtx)
		return err
	})
	g.Go(func() (err error) {
		snap.enrollments, err = s.store.Enrollments(gCtx)
		return err
	})
	g.Go(func() (err error) {
		snap.shifts, err = s.store.Shifts(gCtx)
		return err
	})
	g.Go(func() (err error) {
		snap.unsigned, err = s.compliance.PendingCount(gCtx, user)
		return err
	})
	if hr {
		g.Go(func() (err error) {
			snap.totals, snap.hasTotals, err = s.payroll.LatestTotals(gCtx)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return Dashboard{}, fmt.Errorf("load dashboard data: %w", err)
	}

	out := Dashboard{Role: user.RoleName}
	if self, ok := directory.Find(snap.employees, user.UserID); ok {
		out.Employee = &EmployeeDashboard{
			LeaveBalance:      self.AnnualLeaveBalance,
			PayslipCount:      CountPayslips(snap.payslips, self.ID),
			PendingTrainings:  CountPendingTrainings(snap.enrollments, self.ID),
			UnsignedDocuments: snap.unsigned,
		}
	}
	if user.RoleName == auth.RoleManager {
		direct := idSet(directory.DirectReports(snap.employees, user.UserID))
		team := idSet(directory.VisibleEmployees(user, snap.employees))
		from, to := WeekWindow(s.now(), s.loc)
		out.Manager = &ManagerDashboard{
			TeamSize:                len(direct),
			PendingLeaveApprovals:   CountPendingLeave(snap.requests, direct),
			PendingTrainingRequests: CountTrainingRequests(snap.enrollments, direct),
			ShiftsThisWeek:          CountShifts(snap.shifts, team, from, to),
		}
	}
	if hr {
		section := &HRDashboard{
			Headcount:             len(snap.employees),
			HeadcountByDepartment: HeadcountByDepartment(snap.employees),
			PendingLeave:          CountPendingLeave(snap.requests, nil),
		}
		if snap.hasTotals {
			totals := snap.totals
			section.LatestPayroll = &totals
		}
		out.HR = section
	}
	return out, nil
}
