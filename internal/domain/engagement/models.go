package engagement

import "time"

type Announcement struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Content  string    `json:"content"`
	Date     time.Time `json:"date"`
	PostedBy string    `json:"postedBy"`
}

type BenefitPlan struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Provider    string  `json:"provider"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
	MonthlyCost float64 `json:"monthlyCost"`
}

type BenefitEnrollment struct {
	EmployeeID     string    `json:"employeeId"`
	PlanID         string    `json:"planId"`
	EnrollmentDate time.Time `json:"enrollmentDate"`
	Status         string    `json:"status"`
}

// BenefitSummary is an employee's enrolled plans and what they cost monthly.
type BenefitSummary struct {
	EmployeeID       string        `json:"employeeId"`
	Plans            []BenefitPlan `json:"plans"`
	TotalMonthlyCost float64       `json:"totalMonthlyCost"`
}
