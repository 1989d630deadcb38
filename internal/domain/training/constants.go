package training

const (
	StatusRequested  = "Requested"
	StatusNotStarted = "Not Started"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"

	CategoryTechnical  = "Technical"
	CategorySafety     = "Safety"
	CategorySoftSkills = "Soft Skills"
	CategoryLeadership = "Leadership"

	unknownEmployee = "Unknown Employee"
	unknownProgram  = "Unknown Program"
)

var Categories = []string{CategoryTechnical, CategorySafety, CategorySoftSkills, CategoryLeadership}
