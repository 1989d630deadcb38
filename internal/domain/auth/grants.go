package auth

import (
	"context"
	"fmt"
	"slices"
)

// RoleGrant is a saved override of a role's permissions.
type RoleGrant struct {
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

// RoleAccess is one row of the capability table as the admin console shows it.
type RoleAccess struct {
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
	Editable    bool     `json:"editable"`
}

// EditableRoles may be reconfigured at runtime. HR Admin and IT Admin keep the
// built-in table so nobody can lock the administrators out.
var EditableRoles = []string{RoleEmployee, RoleManager}

// GrantablePermissions lists what an editable role may be given.
func GrantablePermissions() []string {
	return slices.DeleteFunc(slices.Clone(DefaultPermissions), func(p string) bool { return p == PermSystemAdmin })
}

// PermissionTable resolves role capabilities for the RBAC middleware. The zero
// value serves RolePermissions; with a store, saved grants take precedence.
type PermissionTable struct {
	store GrantStore
}

func NewPermissionTable(store GrantStore) *PermissionTable {
	return &PermissionTable{store: store}
}

func (t *PermissionTable) HasPermission(ctx context.Context, role, permission string) (bool, error) {
	perms, err := t.Permissions(ctx, role)
	if err != nil {
		return false, err
	}
	return slices.Contains(perms, permission), nil
}

// Permissions returns the effective permissions of role.
func (t *PermissionTable) Permissions(ctx context.Context, role string) ([]string, error) {
	if t != nil && t.store != nil {
		grants, err := t.store.RoleGrants(ctx)
		if err != nil {
			return nil, fmt.Errorf("load role grants: %w", err)
		}
		for _, grant := range grants {
			if grant.Role == role && slices.Contains(EditableRoles, role) {
				return slices.Clone(grant.Permissions), nil
			}
		}
	}
	return slices.Clone(RolePermissions[role]), nil
}

// Access lists every role in the fixed role order.
func (t *PermissionTable) Access(ctx context.Context) ([]RoleAccess, error) {
	out := make([]RoleAccess, 0, len(Roles))
	for _, role := range Roles {
		perms, err := t.Permissions(ctx, role)
		if err != nil {
			return nil, err
		}
		out = append(out, RoleAccess{Role: role, Permissions: perms, Editable: slices.Contains(EditableRoles, role)})
	}
	return out, nil
}

// Grant replaces the permissions of an editable role. Duplicates are dropped
// and the result follows DefaultPermissions order.
func (t *PermissionTable) Grant(ctx context.Context, role string, permissions []string) (RoleAccess, error) {
	if !ValidRole(role) {
		return RoleAccess{}, ErrUnknownRole
	}
	if !slices.Contains(EditableRoles, role) {
		return RoleAccess{}, ErrRoleLocked
	}
	if t == nil || t.store == nil {
		return RoleAccess{}, ErrRoleLocked
	}
	grantable := GrantablePermissions()
	for _, perm := range permissions {
		if !slices.Contains(grantable, perm) {
			return RoleAccess{}, fmt.Errorf("%w: %s", ErrUnknownPermission, perm)
		}
	}
	ordered := slices.DeleteFunc(grantable, func(p string) bool { return !slices.Contains(permissions, p) })

	err := t.store.UpdateRoleGrants(ctx, func(all []RoleGrant) ([]RoleGrant, error) {
		for i := range all {
			if all[i].Role == role {
				all[i].Permissions = ordered
				return all, nil
			}
		}
		return append(all, RoleGrant{Role: role, Permissions: ordered}), nil
	})
	if err != nil {
		return RoleAccess{}, err
	}
	return RoleAccess{Role: role, Permissions: slices.Clone(ordered), Editable: true}, nil
}
