package notifications

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrconsole/internal/domain/auth"
)

type memStore struct {
	items []Notification
	users []auth.User
}

func (m *memStore) Notifications(context.Context) ([]Notification, error) {
	return append([]Notification(nil), m.items...), nil
}

func (m *memStore) UpdateNotifications(_ context.Context, fn func([]Notification) ([]Notification, error)) error {
	next, err := fn(append([]Notification(nil), m.items...))
	if err != nil {
		return err
	}
	m.items = next
	return nil
}

func (m *memStore) Users(context.Context) ([]auth.User, error) { return m.users, nil }

type sentMail struct{ from, to, subject string }

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (f *fakeMailer) Send(_ context.Context, from, to, subject, _ string) error {
	f.sent = append(f.sent, sentMail{from, to, subject})
	return f.err
}

func newTestService() (*Service, *memStore, *fakeMailer) {
	store := &memStore{users: []auth.User{
		{ID: "E1001", Email: "aline.u@pts.rw"},
		{ID: "H3001", Email: "didier.m@pts.rw"},
	}}
	mailer := &fakeMailer{}
	svc := New(store, mailer)
	tick := time.Date(2024, 7, 1, 8, 0, 0, 0, time.UTC)
	svc.now = func() time.Time {
		tick = tick.Add(time.Minute)
		return tick
	}
	return svc, store, mailer
}

func TestNotifyStoresAndMailsWhenEnabled(t *testing.T) {
	svc, store, mailer := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.Notify(ctx, "E1001", TypeLeaveApproved, "Leave request approved", "See you soon."))
	assert.Len(t, store.items, 1)
	assert.Empty(t, mailer.sent, "mail is off by default")

	svc.EmailEnabled = true
	mailer.err = errors.New("smtp down")
	require.NoError(t, svc.Notify(ctx, "E1001", TypePayslipReady, "Payslip available", "January 2024"))
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, sentMail{"no-reply@pts.rw", "aline.u@pts.rw", "Payslip available"}, mailer.sent[0])
}

func TestListPagingAndReadState(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	for _, title := range []string{"first", "second", "third"} {
		require.NoError(t, svc.Notify(ctx, "E1001", TypeAnnouncement, title, ""))
	}
	require.NoError(t, svc.Notify(ctx, "H3001", TypeAnnouncement, "other", ""))

	page, total, err := svc.List(ctx, "E1001", 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, page, 2)
	assert.Equal(t, "third", page[0].Title)

	rest, _, err := svc.List(ctx, "E1001", 2, 2)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, "first", rest[0].Title)

	require.NoError(t, svc.MarkRead(ctx, "E1001", page[0].ID))
	assert.ErrorIs(t, svc.MarkRead(ctx, "H3001", page[0].ID), ErrNotFound)
	unread, err := svc.UnreadCount(ctx, "E1001")
	require.NoError(t, err)
	assert.Equal(t, 2, unread)

	require.NoError(t, svc.MarkAllRead(ctx, "E1001"))
	unread, err = svc.UnreadCount(ctx, "E1001")
	require.NoError(t, err)
	assert.Zero(t, unread)
}

func TestBroadcastReachesEveryUser(t *testing.T) {
	svc, store, _ := newTestService()
	require.NoError(t, svc.Broadcast(context.Background(), TypeAnnouncement, "Upcoming Umuganda", ""))
	assert.Len(t, store.items, 2)
}
