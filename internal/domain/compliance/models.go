package compliance

import "time"

type Document struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Version     float64   `json:"version"`
	UploadDate  time.Time `json:"uploadDate"`
	// AssignedTo is AssignAll or a department id.
	AssignedTo string `json:"assignedTo"`
}

type Acknowledgement struct {
	EmployeeID       string     `json:"employeeId"`
	DocumentID       string     `json:"documentId"`
	Status           string     `json:"status"`
	AcknowledgedDate *time.Time `json:"acknowledgedDate,omitempty"`
}

// MyDocument is a document as seen by one employee, with their signing state.
type MyDocument struct {
	Document
	Status           string     `json:"status"`
	AcknowledgedDate *time.Time `json:"acknowledgedDate,omitempty"`
}

type Completion struct {
	Document
	TotalAssigned     int `json:"totalAssigned"`
	TotalAcknowledged int `json:"totalAcknowledged"`
	Percent           int `json:"completion"`
}
