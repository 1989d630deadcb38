package directory

import "hrconsole/internal/domain/auth"

func IsPrivilegedTitle(title string) bool {
	for _, privileged := range PrivilegedJobTitles {
		if title == privileged {
			return true
		}
	}
	return false
}

func Find(all []Employee, id string) (Employee, bool) {
	for _, emp := range all {
		if emp.ID == id {
			return emp, true
		}
	}
	return Employee{}, false
}

// VisibleEmployees returns the part of the roster the caller may see.
// HR admins and privileged titles see everyone; managers see their department
// plus direct reports minus privileged titles; employees see themselves.
func VisibleEmployees(user auth.UserContext, all []Employee) []Employee {
	if user.RoleName == auth.RoleHRAdmin {
		return all
	}

	self, ok := Find(all, user.UserID)
	if !ok {
		return []Employee{}
	}
	if IsPrivilegedTitle(self.JobTitle) {
		return all
	}

	switch user.RoleName {
	case auth.RoleManager:
		out := make([]Employee, 0, len(all))
		for _, emp := range all {
			if emp.Department != self.Department && emp.ManagerID != user.UserID {
				continue
			}
			if IsPrivilegedTitle(emp.JobTitle) {
				continue
			}
			out = append(out, emp)
		}
		return out
	case auth.RoleEmployee:
		return []Employee{self}
	default:
		return []Employee{}
	}
}

// VisibleIDs is VisibleEmployees reduced to a lookup set.
func VisibleIDs(user auth.UserContext, all []Employee) map[string]struct{} {
	visible := VisibleEmployees(user, all)
	out := make(map[string]struct{}, len(visible))
	for _, emp := range visible {
		out[emp.ID] = struct{}{}
	}
	return out
}

func CanView(user auth.UserContext, all []Employee, employeeID string) bool {
	_, ok := VisibleIDs(user, all)[employeeID]
	return ok
}

// DirectReports lists the employees whose manager is managerID.
func DirectReports(all []Employee, managerID string) []Employee {
	out := make([]Employee, 0)
	for _, emp := range all {
		if emp.ManagerID == managerID {
			out = append(out, emp)
		}
	}
	return out
}
