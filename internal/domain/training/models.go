package training

import "time"

type Program struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
}

// Enrollment links one employee to one program; the pair is unique.
type Enrollment struct {
	EmployeeID     string     `json:"employeeId"`
	ProgramID      string     `json:"programId"`
	Status         string     `json:"status"`
	EnrollmentDate time.Time  `json:"enrollmentDate"`
	CompletionDate *time.Time `json:"completionDate,omitempty"`
	Progress       int        `json:"progress"`
}

// PendingRequest is a Requested enrollment with display names resolved.
type PendingRequest struct {
	Enrollment
	EmployeeName string `json:"employeeName"`
	ProgramName  string `json:"programName"`
}
