package auth

import (
	"context"
	"errors"
	"slices"
	"testing"
)

type memGrants []RoleGrant

func (m memGrants) RoleGrants(context.Context) ([]RoleGrant, error) {
	return append([]RoleGrant(nil), m...), nil
}

func (m *memGrants) UpdateRoleGrants(_ context.Context, fn func([]RoleGrant) ([]RoleGrant, error)) error {
	next, err := fn(append([]RoleGrant(nil), *m...))
	if err != nil {
		return err
	}
	*m = next
	return nil
}

func TestGrantNarrowsEditableRole(t *testing.T) {
	table := NewPermissionTable(&memGrants{})
	ctx := context.Background()

	ok, _ := table.HasPermission(ctx, RoleEmployee, PermBenefitsRead)
	if !ok {
		t.Fatal("expected built-in employee permissions before any edit")
	}

	access, err := table.Grant(ctx, RoleEmployee, []string{PermLeaveRequest, PermOrgRead, PermOrgRead})
	if err != nil {
		t.Fatalf("grant error: %v", err)
	}
	if !slices.Equal(access.Permissions, []string{PermOrgRead, PermLeaveRequest}) {
		t.Fatalf("unexpected permissions %v", access.Permissions)
	}
	ok, _ = table.HasPermission(ctx, RoleEmployee, PermBenefitsRead)
	if ok {
		t.Fatal("expected revoked permission to be denied")
	}
	ok, _ = table.HasPermission(ctx, RoleManager, PermBenefitsRead)
	if !ok {
		t.Fatal("expected other roles to keep their permissions")
	}
}

func TestGrantRejectsLockedRolesAndUnknownPermissions(t *testing.T) {
	table := NewPermissionTable(&memGrants{})
	ctx := context.Background()

	if _, err := table.Grant(ctx, RoleHRAdmin, nil); !errors.Is(err, ErrRoleLocked) {
		t.Fatalf("expected locked role, got %v", err)
	}
	if _, err := table.Grant(ctx, "Contractor", nil); !errors.Is(err, ErrUnknownRole) {
		t.Fatalf("expected unknown role, got %v", err)
	}
	if _, err := table.Grant(ctx, RoleManager, []string{PermSystemAdmin}); !errors.Is(err, ErrUnknownPermission) {
		t.Fatalf("expected system admin to be non-grantable, got %v", err)
	}
	if _, err := table.Grant(ctx, RoleManager, []string{"payroll.everything"}); !errors.Is(err, ErrUnknownPermission) {
		t.Fatalf("expected unknown permission, got %v", err)
	}
}

func TestAccessListsEveryRole(t *testing.T) {
	table := NewPermissionTable(&memGrants{{Role: RoleITAdmin, Permissions: nil}})
	access, err := table.Access(context.Background())
	if err != nil {
		t.Fatalf("access error: %v", err)
	}
	if len(access) != len(Roles) {
		t.Fatalf("expected %d roles, got %d", len(Roles), len(access))
	}
	for _, row := range access {
		if row.Role == RoleITAdmin {
			if row.Editable || !slices.Contains(row.Permissions, PermSystemAdmin) {
				t.Fatalf("expected IT Admin to keep the built-in table, got %+v", row)
			}
		}
		if row.Role == RoleManager && !row.Editable {
			t.Fatal("expected managers to be editable")
		}
	}
}
