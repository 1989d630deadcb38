package performance

const (
	GoalOnTrack   = "On Track"
	GoalAtRisk    = "At Risk"
	GoalCompleted = "Completed"

	FeedbackPraise       = "Praise"
	FeedbackConstructive = "Constructive"

	ReviewInProgress = "In Progress"
	ReviewCompleted  = "Completed"

	PIPActive    = "Active"
	PIPCompleted = "Completed"

	notifyFeedback = "performance_feedback"
	notifyReview   = "performance_review"
	notifyPIP      = "performance_pip"
)

// Competencies are the rated areas of a review, each scored 1 to 5.
var Competencies = []string{
	"On-Time Performance",
	"Safety & Compliance",
	"Vehicle Care",
	"Customer Service",
}

var GoalStatuses = []string{GoalOnTrack, GoalAtRisk, GoalCompleted}
