package compliance

import (
	"math"

	"hrconsole/internal/domain/directory"
)

// AssignedTo reports whether the document applies to the employee. Employees
// carry a department name while documents target a department id.
func AssignedTo(doc Document, emp directory.Employee, departments []directory.Department) bool {
	if doc.AssignedTo == AssignAll {
		return true
	}
	for _, dept := range departments {
		if dept.ID == doc.AssignedTo {
			return dept.Name == emp.Department
		}
	}
	return false
}

// CompletionFor counts signed acknowledgements among the employees the
// document is assigned to. Percent is rounded to the nearest integer.
func CompletionFor(doc Document, employees []directory.Employee, departments []directory.Department, acks []Acknowledgement) Completion {
	signed := make(map[string]struct{})
	for _, ack := range acks {
		if ack.DocumentID == doc.ID && ack.Status == StatusSigned {
			signed[ack.EmployeeID] = struct{}{}
		}
	}
	c := Completion{Document: doc}
	for _, emp := range employees {
		if !AssignedTo(doc, emp, departments) {
			continue
		}
		c.TotalAssigned++
		if _, ok := signed[emp.ID]; ok {
			c.TotalAcknowledged++
		}
	}
	if c.TotalAssigned > 0 {
		c.Percent = int(math.Round(float64(c.TotalAcknowledged) / float64(c.TotalAssigned) * 100))
	}
	return c
}
