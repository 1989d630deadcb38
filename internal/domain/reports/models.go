package reports

import "hrconsole/internal/domain/payroll"

type EmployeeDashboard struct {
	LeaveBalance      int `json:"leaveBalance"`
	PayslipCount      int `json:"payslipCount"`
	PendingTrainings  int `json:"pendingTrainings"`
	UnsignedDocuments int `json:"unsignedDocuments"`
}

type ManagerDashboard struct {
	TeamSize                int `json:"teamSize"`
	PendingLeaveApprovals   int `json:"pendingLeaveApprovals"`
	PendingTrainingRequests int `json:"pendingTrainingRequests"`
	ShiftsThisWeek          int `json:"shiftsThisWeek"`
}

type HRDashboard struct {
	Headcount             int                   `json:"headcount"`
	HeadcountByDepartment map[string]int        `json:"headcountByDepartment"`
	PendingLeave          int                   `json:"pendingLeave"`
	LatestPayroll         *payroll.PeriodTotals `json:"latestPayroll"`
}

// Dashboard carries the sections the caller's role is entitled to.
type Dashboard struct {
	Role     string             `json:"role"`
	Employee *EmployeeDashboard `json:"employee,omitempty"`
	Manager  *ManagerDashboard  `json:"manager,omitempty"`
	HR       *HRDashboard       `json:"hr,omitempty"`
}
