package assistant

const (
	ChecklistOnboarding  = "Onboarding"
	ChecklistOffboarding = "Offboarding"

	InsightRisk        = "Risk"
	InsightOpportunity = "Opportunity"

	systemPrompt = "You are an HR assistant for PTS Rwanda, a transport and logistics company. " +
		"Answer only with a single JSON object matching the requested shape."

	highLeaveThreshold = 15
	cachePrefix        = "assistant:"
)
