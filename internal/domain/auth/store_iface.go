package auth

import "context"

type Store interface {
	Users(ctx context.Context) ([]User, error)
	UpdateUsers(ctx context.Context, fn func([]User) ([]User, error)) error
}

// GrantStore keeps the capability edits made from the administration routes.
type GrantStore interface {
	RoleGrants(ctx context.Context) ([]RoleGrant, error)
	UpdateRoleGrants(ctx context.Context, fn func([]RoleGrant) ([]RoleGrant, error)) error
}
