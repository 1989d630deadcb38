package leave

import "time"

type Request struct {
	ID         string     `json:"id"`
	EmployeeID string     `json:"employeeId"`
	Type       string     `json:"type"`
	StartDate  time.Time  `json:"startDate"`
	EndDate    time.Time  `json:"endDate"`
	Status     string     `json:"status"`
	Reason     string     `json:"reason,omitempty"`
	DecidedBy  string     `json:"decidedBy,omitempty"`
	DecidedAt  *time.Time `json:"decidedAt,omitempty"`
}

// TeamRequest decorates a request with the requester's name for approver views.
type TeamRequest struct {
	Request
	EmployeeName string `json:"employeeName"`
	Days         int    `json:"days"`
}

type Submission struct {
	EmployeeID string
	Type       string
	StartDate  time.Time
	EndDate    time.Time
	Reason     string
}
