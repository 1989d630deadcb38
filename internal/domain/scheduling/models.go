package scheduling

import (
	"time"

	"hrconsole/internal/domain/leave"
)

type Shift struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employeeId"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
	Title      string    `json:"title"`
	Notes      string    `json:"notes,omitempty"`
}

// Conflict describes why a candidate shift clashes. Exactly one of Shift or
// Leave is set.
type Conflict struct {
	Kind    string         `json:"kind"`
	Message string         `json:"message"`
	Shift   *Shift         `json:"shift,omitempty"`
	Leave   *leave.Request `json:"leave,omitempty"`
}

// ListedShift is a shift decorated with the assignee's name.
type ListedShift struct {
	Shift
	EmployeeName string `json:"employeeName"`
}

// SaveResult carries the stored shift and any advisory conflict found while
// saving it.
type SaveResult struct {
	Shift    Shift     `json:"shift"`
	Conflict *Conflict `json:"conflict"`
}
