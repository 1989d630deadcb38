package auth

const (
	RoleEmployee = "Employee"
	RoleManager  = "Manager"
	RoleHRAdmin  = "HR Admin"
	RoleITAdmin  = "IT Admin"
)

var Roles = []string{RoleEmployee, RoleManager, RoleHRAdmin, RoleITAdmin}

// UserContext is the authenticated caller attached to a request.
type UserContext struct {
	UserID   string
	Name     string
	RoleName string
}

func ValidRole(role string) bool {
	for _, candidate := range Roles {
		if candidate == role {
			return true
		}
	}
	return false
}
