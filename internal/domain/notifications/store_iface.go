package notifications

import (
	"context"

	"hrconsole/internal/domain/auth"
)

type StoreAPI interface {
	Notifications(ctx context.Context) ([]Notification, error)
	UpdateNotifications(ctx context.Context, fn func([]Notification) ([]Notification, error)) error
	Users(ctx context.Context) ([]auth.User, error)
}
