package engagement

const (
	PlanHealth  = "Health"
	PlanPension = "Pension"
	PlanOther   = "Other"

	EnrollmentActive   = "Active"
	EnrollmentInactive = "Inactive"

	notifyAnnouncement = "announcement"
)
