package notifications

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
)

type Mailer interface {
	Send(ctx context.Context, from, to, subject, body string) error
}

type Service struct {
	store        StoreAPI
	Mailer       Mailer
	EmailEnabled bool
	DefaultFrom  string
	now          func() time.Time
}

func New(store StoreAPI, mailer Mailer) *Service {
	return &Service{store: store, Mailer: mailer, DefaultFrom: "no-reply@pts.rw", now: time.Now}
}

// Notify stores an in-app notification and, when email is enabled, mails the
// user. Mail failures are logged and never fail the call.
func (s *Service) Notify(ctx context.Context, userID, ntype, title, body string) error {
	n := Notification{
		ID:        uuid.NewString(),
		UserID:    userID,
		Type:      ntype,
		Title:     title,
		Body:      body,
		CreatedAt: s.now(),
	}
	if err := s.store.UpdateNotifications(ctx, func(all []Notification) ([]Notification, error) {
		return append(all, n), nil
	}); err != nil {
		return err
	}

	if s.Mailer == nil || !s.EmailEnabled {
		return nil
	}
	email, err := s.userEmail(ctx, userID)
	if err != nil {
		slog.Warn("notification email lookup failed", "userId", userID, "err", err)
		return nil
	}
	if email == "" {
		return nil
	}
	if err := s.Mailer.Send(ctx, s.DefaultFrom, email, title, body); err != nil {
		slog.Warn("notification email send failed", "userId", userID, "err", err)
	}
	return nil
}

// Broadcast notifies every user account.
func (s *Service) Broadcast(ctx context.Context, ntype, title, body string) error {
	users, err := s.store.Users(ctx)
	if err != nil {
		return err
	}
	for _, user := range users {
		if err := s.Notify(ctx, user.ID, ntype, title, body); err != nil {
			return err
		}
	}
	return nil
}

// List returns the user's notifications newest first, paged.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Notification, int, error) {
	all, err := s.store.Notifications(ctx)
	if err != nil {
		return nil, 0, err
	}
	mine := make([]Notification, 0)
	for _, n := range all {
		if n.UserID == userID {
			mine = append(mine, n)
		}
	}
	sort.SliceStable(mine, func(i, j int) bool { return mine[i].CreatedAt.After(mine[j].CreatedAt) })

	total := len(mine)
	if offset >= total {
		return []Notification{}, total, nil
	}
	end := total
	if limit > 0 && offset+limit < total {
		end = offset + limit
	}
	return mine[offset:end], total, nil
}

func (s *Service) UnreadCount(ctx context.Context, userID string) (int, error) {
	all, err := s.store.Notifications(ctx)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, n := range all {
		if n.UserID == userID && !n.Read() {
			count++
		}
	}
	return count, nil
}

func (s *Service) MarkRead(ctx context.Context, userID, notificationID string) error {
	now := s.now()
	return s.store.UpdateNotifications(ctx, func(all []Notification) ([]Notification, error) {
		for i := range all {
			if all[i].ID != notificationID || all[i].UserID != userID {
				continue
			}
			if all[i].ReadAt == nil {
				all[i].ReadAt = &now
			}
			return all, nil
		}
		return nil, ErrNotFound
	})
}

func (s *Service) MarkAllRead(ctx context.Context, userID string) error {
	now := s.now()
	return s.store.UpdateNotifications(ctx, func(all []Notification) ([]Notification, error) {
		for i := range all {
			if all[i].UserID == userID && all[i].ReadAt == nil {
				all[i].ReadAt = &now
			}
		}
		return all, nil
	})
}

func (s *Service) userEmail(ctx context.Context, userID string) (string, error) {
	users, err := s.store.Users(ctx)
	if err != nil {
		return "", err
	}
	for _, user := range users {
		if user.ID == userID {
			return user.Email, nil
		}
	}
	return "", nil
}
