package directory

import "time"

type EmergencyContact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type Skill struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

type Employee struct {
	ID                 string           `json:"id"`
	Name               string           `json:"name"`
	Gender             string           `json:"gender"`
	JobTitle           string           `json:"jobTitle"`
	Department         string           `json:"department"`
	ManagerID          string           `json:"managerId,omitempty"`
	EmploymentType     string           `json:"employmentType"`
	EmploymentStatus   string           `json:"employmentStatus"`
	DateOfHire         time.Time        `json:"dateOfHire"`
	ContractType       string           `json:"contractType"`
	ContractStartDate  *time.Time       `json:"contractStartDate,omitempty"`
	ContractEndDate    *time.Time       `json:"contractEndDate,omitempty"`
	ProbationStatus    string           `json:"probationStatus"`
	BasicSalary        float64          `json:"basicSalary"`
	PayFrequency       string           `json:"payFrequency"`
	AnnualLeaveBalance int              `json:"annualLeaveBalance"`
	Email              string           `json:"email"`
	Phone              string           `json:"phone"`
	Address            string           `json:"address"`
	EmergencyContact   EmergencyContact `json:"emergencyContact"`
	Skills             []Skill          `json:"skills"`
}

type Department struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type JobPosition struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	DepartmentID string `json:"departmentId"`
}

// ImportResult summarises a roster import.
type ImportResult struct {
	Imported  int        `json:"imported"`
	Skipped   int        `json:"skipped"`
	Employees []Employee `json:"employees"`
}
