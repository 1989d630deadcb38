package reports

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrconsole/internal/domain/auth"
	"hrconsole/internal/domain/directory"
	"hrconsole/internal/domain/leave"
	"hrconsole/internal/domain/payroll"
	"hrconsole/internal/domain/scheduling"
	"hrconsole/internal/domain/training"
)

type fixedStore struct{}

func at(day, hour int) time.Time { return time.Date(2024, 1, day, hour, 0, 0, 0, time.UTC) }

func (fixedStore) Employees(context.Context) ([]directory.Employee, error) {
	return []directory.Employee{
		{ID: "M1", Name: "Manager", Department: "Operations", JobTitle: "Operations Manager", AnnualLeaveBalance: 20},
		{ID: "E1", Name: "Driver", Department: "Operations", JobTitle: "Driver", ManagerID: "M1", AnnualLeaveBalance: 12},
		{ID: "E2", Name: "Dispatcher", Department: "Operations", JobTitle: "Dispatcher"},
		{ID: "H1", Name: "HR", Department: "Human Resources", JobTitle: "HR Officer"},
	}, nil
}

func (fixedStore) LeaveRequests(context.Context) ([]leave.Request, error) {
	return []leave.Request{
		{ID: "LR1", EmployeeID: "E1", Status: leave.StatusPending},
		{ID: "LR2", EmployeeID: "E2", Status: leave.StatusPending},
		{ID: "LR3", EmployeeID: "E1", Status: leave.StatusApproved},
	}, nil
}

func (fixedStore) Payslips(context.Context) ([]payroll.Payslip, error) {
	return []payroll.Payslip{{EmployeeID: "E1"}, {EmployeeID: "E1"}, {EmployeeID: "E2"}}, nil
}

func (fixedStore) Enrollments(context.Context) ([]training.Enrollment, error) {
	return []training.Enrollment{
		{EmployeeID: "E1", ProgramID: "TP1", Status: training.StatusNotStarted},
		{EmployeeID: "E1", ProgramID: "TP2", Status: training.StatusRequested},
		{EmployeeID: "E1", ProgramID: "TP3", Status: training.StatusCompleted},
		{EmployeeID: "E2", ProgramID: "TP1", Status: training.StatusInProgress},
	}, nil
}

func (fixedStore) Shifts(context.Context) ([]scheduling.Shift, error) {
	return []scheduling.Shift{
		{ID: "S1", EmployeeID: "E1", StartTime: at(9, 6), EndTime: at(9, 14)},
		{ID: "S2", EmployeeID: "E2", StartTime: at(12, 6), EndTime: at(12, 14)},
		{ID: "S3", EmployeeID: "E1", StartTime: at(16, 6), EndTime: at(16, 14)},
		{ID: "S4", EmployeeID: "H1", StartTime: at(9, 8), EndTime: at(9, 16)},
	}, nil
}

type fixedCompliance struct {
	count int
	err   error
}

func (c fixedCompliance) PendingCount(context.Context, auth.UserContext) (int, error) {
	return c.count, c.err
}

type fixedTotals struct {
	totals payroll.PeriodTotals
	ok     bool
}

func (f fixedTotals) LatestTotals(context.Context) (payroll.PeriodTotals, bool, error) {
	return f.totals, f.ok, nil
}

func newTestService(compliance fixedCompliance, totals fixedTotals) *Service {
	svc := NewService(fixedStore{}, compliance, totals, time.UTC)
	svc.now = func() time.Time { return at(10, 10) }
	return svc
}

func TestEmployeeDashboard(t *testing.T) {
	svc := newTestService(fixedCompliance{count: 3}, fixedTotals{})

	dash, err := svc.Dashboard(context.Background(), auth.UserContext{UserID: "E1", RoleName: auth.RoleEmployee})
	require.NoError(t, err)
	require.NotNil(t, dash.Employee)
	assert.Equal(t, EmployeeDashboard{LeaveBalance: 12, PayslipCount: 2, PendingTrainings: 1, UnsignedDocuments: 3}, *dash.Employee)
	assert.Nil(t, dash.Manager)
	assert.Nil(t, dash.HR)
}

func TestManagerDashboard(t *testing.T) {
	svc := newTestService(fixedCompliance{}, fixedTotals{})

	dash, err := svc.Dashboard(context.Background(), auth.UserContext{UserID: "M1", RoleName: auth.RoleManager})
	require.NoError(t, err)
	require.NotNil(t, dash.Manager)
	assert.Equal(t, ManagerDashboard{TeamSize: 1, PendingLeaveApprovals: 1, PendingTrainingRequests: 1, ShiftsThisWeek: 2}, *dash.Manager)
	require.NotNil(t, dash.Employee)
	assert.Equal(t, 20, dash.Employee.LeaveBalance)
	assert.Nil(t, dash.HR)
}

func TestHRDashboard(t *testing.T) {
	totals := payroll.PeriodTotals{PayPeriod: "January 2024", EmployeeCount: 2, TotalNet: 700000}
	svc := newTestService(fixedCompliance{}, fixedTotals{totals: totals, ok: true})

	dash, err := svc.Dashboard(context.Background(), auth.UserContext{UserID: "H1", RoleName: auth.RoleHRAdmin})
	require.NoError(t, err)
	require.NotNil(t, dash.HR)
	assert.Equal(t, 4, dash.HR.Headcount)
	assert.Equal(t, map[string]int{"Operations": 3, "Human Resources": 1}, dash.HR.HeadcountByDepartment)
	assert.Equal(t, 2, dash.HR.PendingLeave)
	require.NotNil(t, dash.HR.LatestPayroll)
	assert.Equal(t, "January 2024", dash.HR.LatestPayroll.PayPeriod)
	assert.Nil(t, dash.Manager)
}

func TestHRDashboardWithoutPayroll(t *testing.T) {
	svc := newTestService(fixedCompliance{}, fixedTotals{})

	dash, err := svc.Dashboard(context.Background(), auth.UserContext{UserID: "H1", RoleName: auth.RoleHRAdmin})
	require.NoError(t, err)
	assert.Nil(t, dash.HR.LatestPayroll)
}

func TestDashboardWithoutEmployeeRecord(t *testing.T) {
	svc := newTestService(fixedCompliance{}, fixedTotals{})

	dash, err := svc.Dashboard(context.Background(), auth.UserContext{UserID: "IT1", RoleName: auth.RoleITAdmin})
	require.NoError(t, err)
	assert.Equal(t, auth.RoleITAdmin, dash.Role)
	assert.Nil(t, dash.Employee)
}

func TestDashboardPropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	svc := newTestService(fixedCompliance{err: boom}, fixedTotals{})

	_, err := svc.Dashboard(context.Background(), auth.UserContext{UserID: "E1", RoleName: auth.RoleEmployee})
	assert.ErrorIs(t, err, boom)
}
