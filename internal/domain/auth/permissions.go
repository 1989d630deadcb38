package auth

const (
	PermEmployeesRead      = "directory.employees.read"
	PermEmployeesWrite     = "directory.employees.write"
	PermOrgRead            = "directory.org.read"
	PermSkillsManage       = "directory.skills.manage"
	PermShiftsRead         = "scheduling.shifts.read"
	PermShiftsWrite        = "scheduling.shifts.write"
	PermLeaveRead          = "leave.read"
	PermLeaveRequest       = "leave.request"
	PermLeaveApprove       = "leave.approve"
	PermPayrollRead        = "payroll.read"
	PermPayrollManage      = "payroll.manage"
	PermPayrollRun         = "payroll.run"
	PermTrainingRead       = "training.read"
	PermTrainingRequest    = "training.request"
	PermTrainingManage     = "training.manage"
	PermPerformanceRead    = "performance.read"
	PermPerformanceManage  = "performance.manage"
	PermComplianceRead     = "compliance.read"
	PermComplianceSign     = "compliance.sign"
	PermComplianceManage   = "compliance.manage"
	PermAnnouncementsRead  = "engagement.announcements.read"
	PermAnnouncementsWrite = "engagement.announcements.write"
	PermBenefitsRead       = "engagement.benefits.read"
	PermBenefitsManage     = "engagement.benefits.manage"
	PermJobsRead           = "jobs.read"
	PermReportsRead        = "reports.read"
	PermAssistantUse       = "assistant.use"
	PermSystemAdmin        = "admin.system"
)

var DefaultPermissions = []string{
	PermEmployeesRead,
	PermEmployeesWrite,
	PermOrgRead,
	PermSkillsManage,
	PermShiftsRead,
	PermShiftsWrite,
	PermLeaveRead,
	PermLeaveRequest,
	PermLeaveApprove,
	PermPayrollRead,
	PermPayrollManage,
	PermPayrollRun,
	PermTrainingRead,
	PermTrainingRequest,
	PermTrainingManage,
	PermPerformanceRead,
	PermPerformanceManage,
	PermComplianceRead,
	PermComplianceSign,
	PermComplianceManage,
	PermAnnouncementsRead,
	PermAnnouncementsWrite,
	PermBenefitsRead,
	PermBenefitsManage,
	PermJobsRead,
	PermReportsRead,
	PermAssistantUse,
	PermSystemAdmin,
}

var RolePermissions = map[string][]string{
	RoleEmployee: {
		PermEmployeesRead,
		PermOrgRead,
		PermShiftsRead,
		PermLeaveRead,
		PermLeaveRequest,
		PermPayrollRead,
		PermTrainingRead,
		PermTrainingRequest,
		PermPerformanceRead,
		PermComplianceRead,
		PermComplianceSign,
		PermAnnouncementsRead,
		PermBenefitsRead,
		PermReportsRead,
	},
	RoleManager: {
		PermEmployeesRead,
		PermOrgRead,
		PermSkillsManage,
		PermShiftsRead,
		PermShiftsWrite,
		PermLeaveRead,
		PermLeaveRequest,
		PermLeaveApprove,
		PermPayrollRead,
		PermTrainingRead,
		PermTrainingRequest,
		PermTrainingManage,
		PermPerformanceRead,
		PermPerformanceManage,
		PermComplianceRead,
		PermComplianceSign,
		PermAnnouncementsRead,
		PermBenefitsRead,
		PermReportsRead,
		PermAssistantUse,
	},
	RoleHRAdmin: {
		PermEmployeesRead,
		PermEmployeesWrite,
		PermOrgRead,
		PermSkillsManage,
		PermShiftsRead,
		PermShiftsWrite,
		PermLeaveRead,
		PermLeaveRequest,
		PermLeaveApprove,
		PermPayrollRead,
		PermPayrollManage,
		PermPayrollRun,
		PermTrainingRead,
		PermTrainingRequest,
		PermTrainingManage,
		PermPerformanceRead,
		PermPerformanceManage,
		PermComplianceRead,
		PermComplianceSign,
		PermComplianceManage,
		PermAnnouncementsRead,
		PermAnnouncementsWrite,
		PermBenefitsRead,
		PermBenefitsManage,
		PermJobsRead,
		PermReportsRead,
		PermAssistantUse,
		PermSystemAdmin,
	},
	RoleITAdmin: {
		PermOrgRead,
		PermAnnouncementsRead,
		PermJobsRead,
		PermReportsRead,
		PermSystemAdmin,
	},
}

var roleIndex = buildRoleIndex()

func buildRoleIndex() map[string]map[string]struct{} {
	index := make(map[string]map[string]struct{}, len(RolePermissions))
	for role, perms := range RolePermissions {
		set := make(map[string]struct{}, len(perms))
		for _, perm := range perms {
			set[perm] = struct{}{}
		}
		index[role] = set
	}
	return index
}

// Allowed reports whether the role carries the permission.
func Allowed(role, permission string) bool {
	_, ok := roleIndex[role][permission]
	return ok
}
