package scheduling

const (
	ConflictOverlap = "overlap"
	ConflictLeave   = "leave"

	leaveConflictMessage = "Employee has an approved leave request during this time."
	clockLayout          = "15:04"
)
