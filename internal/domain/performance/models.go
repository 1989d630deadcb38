package performance

import "time"

type Goal struct {
	ID          string    `json:"id"`
	EmployeeID  string    `json:"employeeId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Progress    int       `json:"progress"`
	SetBy       string    `json:"setBy,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Feedback struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employeeId"`
	Type       string    `json:"type"`
	FromID     string    `json:"fromId,omitempty"`
	From       string    `json:"from"`
	Comment    string    `json:"comment"`
	Date       time.Time `json:"date"`
}

type Review struct {
	ID         string         `json:"id"`
	EmployeeID string         `json:"employeeId"`
	Cycle      string         `json:"cycle"`
	Status     string         `json:"status"`
	Score      float64        `json:"score"`
	Ratings    map[string]int `json:"ratings,omitempty"`
	Comments   string         `json:"comments,omitempty"`
	ReviewerID string         `json:"reviewerId,omitempty"`
	Date       time.Time      `json:"date"`
}

type PIP struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employeeId"`
	Title      string    `json:"title"`
	Status     string    `json:"status"`
	StartDate  time.Time `json:"startDate"`
	EndDate    time.Time `json:"endDate"`
	OwnerID    string    `json:"ownerId,omitempty"`
}

// Profile is everything the performance screen shows for one employee.
type Profile struct {
	EmployeeID string     `json:"employeeId"`
	Name       string     `json:"name"`
	JobTitle   string     `json:"jobTitle"`
	Goals      []Goal     `json:"goals"`
	Feedback   []Feedback `json:"feedback"`
	Reviews    []Review   `json:"reviews"`
	ActivePIP  *PIP       `json:"activePip,omitempty"`
}

type ReviewSubmission struct {
	EmployeeID string
	Cycle      string
	Ratings    map[string]int
	Comments   string
}

type Summary struct {
	GoalsTotal         int            `json:"goalsTotal"`
	GoalsCompleted     int            `json:"goalsCompleted"`
	ReviewsTotal       int            `json:"reviewsTotal"`
	ReviewsCompleted   int            `json:"reviewsCompleted"`
	CompletionRate     float64        `json:"reviewCompletionRate"`
	AverageScore       float64        `json:"averageScore"`
	RatingDistribution map[string]int `json:"ratingDistribution"`
	ActivePIPs         int            `json:"activePips"`
}
