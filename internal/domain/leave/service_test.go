package leave

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrconsole/internal/domain/auth"
	"hrconsole/internal/domain/directory"
)

type memStore struct {
	requests  []Request
	employees []directory.Employee
}

func (m *memStore) LeaveRequests(context.Context) ([]Request, error) {
	return append([]Request(nil), m.requests...), nil
}

func (m *memStore) UpdateLeaveRequests(_ context.Context, fn func([]Request) ([]Request, error)) error {
	next, err := fn(append([]Request(nil), m.requests...))
	if err != nil {
		return err
	}
	m.requests = next
	return nil
}

func (m *memStore) Employees(context.Context) ([]directory.Employee, error) {
	return append([]directory.Employee(nil), m.employees...), nil
}

func (m *memStore) UpdateEmployees(_ context.Context, fn func([]directory.Employee) ([]directory.Employee, error)) error {
	next, err := fn(append([]directory.Employee(nil), m.employees...))
	if err != nil {
		return err
	}
	m.employees = next
	return nil
}

type recordedNote struct{ userID, ntype string }

type fakeNotifier struct{ notes []recordedNote }

func (f *fakeNotifier) Notify(_ context.Context, userID, ntype, _, _ string) error {
	f.notes = append(f.notes, recordedNote{userID, ntype})
	return nil
}

var (
	manager  = auth.UserContext{UserID: "M2001", RoleName: auth.RoleManager}
	hr       = auth.UserContext{UserID: "H3001", RoleName: auth.RoleHRAdmin}
	employee = auth.UserContext{UserID: "E1003", RoleName: auth.RoleEmployee}
)

func newTestService() (*Service, *memStore, *fakeNotifier) {
	store := &memStore{
		employees: []directory.Employee{
			{ID: "E1003", Name: "Carine Umutesi", ManagerID: "M2001", AnnualLeaveBalance: 12},
			{ID: "E1002", Name: "Bosco Ndayisenga", ManagerID: "E1027", AnnualLeaveBalance: 8},
			{ID: "M2001", Name: "Jeanette Ingabire", ManagerID: "E1004"},
		},
	}
	notifier := &fakeNotifier{}
	svc := NewService(store, notifier)
	svc.now = func() time.Time { return time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC) }
	return svc, store, notifier
}

func day(d int) time.Time { return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC) }

func TestSubmitCreatesPendingRequest(t *testing.T) {
	svc, store, _ := newTestService()
	req, err := svc.Submit(context.Background(), Submission{EmployeeID: "E1003", StartDate: day(10), EndDate: day(12), Reason: " trip "})
	require.NoError(t, err)
	assert.Equal(t, StatusPending, req.Status)
	assert.Equal(t, TypeAnnual, req.Type)
	assert.Equal(t, "trip", req.Reason)
	assert.Equal(t, "LR1709280000000", req.ID)
	assert.Len(t, store.requests, 1)

	_, err = svc.Submit(context.Background(), Submission{EmployeeID: "E1003", StartDate: day(12), EndDate: day(10)})
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestManagerApprovesDirectReport(t *testing.T) {
	svc, store, notifier := newTestService()
	ctx := context.Background()
	req, err := svc.Submit(ctx, Submission{EmployeeID: "E1003", Type: TypeAnnual, StartDate: day(10), EndDate: day(12)})
	require.NoError(t, err)

	decided, err := svc.Approve(ctx, manager, req.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, decided.Status)
	assert.Equal(t, "M2001", decided.DecidedBy)
	assert.Equal(t, 9, store.employees[0].AnnualLeaveBalance)
	require.Len(t, notifier.notes, 1)
	assert.Equal(t, recordedNote{"E1003", notifyApproved}, notifier.notes[0])

	_, err = svc.Reject(ctx, manager, req.ID)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestSubmitInSameMillisecondKeepsRequestsDecidable(t *testing.T) {
	svc, store, _ := newTestService()
	ctx := context.Background()
	first, err := svc.Submit(ctx, Submission{EmployeeID: "E1003", StartDate: day(10), EndDate: day(11)})
	require.NoError(t, err)
	second, err := svc.Submit(ctx, Submission{EmployeeID: "E1003", StartDate: day(18), EndDate: day(19)})
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)

	_, err = svc.Approve(ctx, manager, first.ID)
	require.NoError(t, err)
	decided, err := svc.Reject(ctx, manager, second.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusRejected, decided.Status)
	assert.Equal(t, StatusRejected, store.requests[0].Status)
	assert.Equal(t, StatusApproved, store.requests[1].Status)
}

func TestDecisionScope(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()
	other, err := svc.Submit(ctx, Submission{EmployeeID: "E1002", StartDate: day(3), EndDate: day(4)})
	require.NoError(t, err)

	_, err = svc.Approve(ctx, manager, other.ID)
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = svc.Approve(ctx, employee, other.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	decided, err := svc.Reject(ctx, hr, other.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusRejected, decided.Status)

	_, err = svc.Approve(ctx, hr, "LR-missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRejectKeepsBalance(t *testing.T) {
	svc, store, notifier := newTestService()
	ctx := context.Background()
	req, err := svc.Submit(ctx, Submission{EmployeeID: "E1003", StartDate: day(10), EndDate: day(20)})
	require.NoError(t, err)

	_, err = svc.Reject(ctx, manager, req.ID)
	require.NoError(t, err)
	assert.Equal(t, 12, store.employees[0].AnnualLeaveBalance)
	assert.Equal(t, notifyRejected, notifier.notes[0].ntype)
}

func TestTeamAndHistory(t *testing.T) {
	svc, store, _ := newTestService()
	ctx := context.Background()
	store.requests = []Request{
		{ID: "LR1", EmployeeID: "E1002", StartDate: day(1), EndDate: day(2), Status: StatusApproved},
		{ID: "LR2", EmployeeID: "E1003", StartDate: day(5), EndDate: day(7), Status: StatusPending},
		{ID: "LR3", EmployeeID: "E1003", StartDate: day(20), EndDate: day(21), Status: StatusApproved},
	}

	team, err := svc.Team(ctx, manager, StatusPending)
	require.NoError(t, err)
	require.Len(t, team, 1)
	assert.Equal(t, "Carine Umutesi", team[0].EmployeeName)
	assert.Equal(t, 3, team[0].Days)

	all, err := svc.Team(ctx, hr, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	history, err := svc.History(ctx, "E1003")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "LR3", history[0].ID)
}

func TestTeamQueueListsOnlyDecidableRequests(t *testing.T) {
	svc, store, _ := newTestService()
	ctx := context.Background()
	store.employees = append(store.employees,
		directory.Employee{ID: "E1015", Name: "Samuel Habimana", Department: "Operations", ManagerID: "E1012"},
		directory.Employee{ID: "H3001", Name: "Didier Mugisha", ManagerID: "E1004"},
	)
	store.employees[0].Department = "Operations"
	store.employees[2].Department = "Operations"
	store.requests = []Request{
		{ID: "LR1", EmployeeID: "E1003", StartDate: day(4), EndDate: day(5), Status: StatusPending},
		{ID: "LR2", EmployeeID: "E1015", StartDate: day(4), EndDate: day(5), Status: StatusPending},
		{ID: "LR3", EmployeeID: "H3001", StartDate: day(4), EndDate: day(5), Status: StatusPending},
	}

	team, err := svc.Team(ctx, manager, StatusPending)
	require.NoError(t, err)
	require.Len(t, team, 1, "same-department colleagues outside the reporting line are not decidable")
	assert.Equal(t, "LR1", team[0].ID)

	queue, err := svc.Team(ctx, hr, StatusPending)
	require.NoError(t, err)
	got := make([]string, 0, len(queue))
	for _, item := range queue {
		got = append(got, item.ID)
	}
	assert.Equal(t, []string{"LR1", "LR2"}, got)
}
