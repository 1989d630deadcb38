package assistant

type Prompt struct {
	System string
	User   string
}

type JobDescription struct {
	Title            string   `json:"title"`
	Summary          string   `json:"summary"`
	Responsibilities []string `json:"responsibilities"`
	Qualifications   []string `json:"qualifications"`
}

type Insight struct {
	Type           string `json:"type"`
	Headline       string `json:"headline"`
	Detail         string `json:"detail"`
	Recommendation string `json:"recommendation"`
}

type MatchedEmployee struct {
	EmployeeID      string   `json:"employeeId"`
	EmployeeName    string   `json:"employeeName"`
	MatchPercentage int      `json:"matchPercentage"`
	MatchingSkills  []string `json:"matchingSkills"`
	MissingSkills   []string `json:"missingSkills"`
	Justification   string   `json:"justification"`
}

type TalentAnalysis struct {
	TopCandidates []MatchedEmployee `json:"topCandidates"`
}

// WorkforceFacts is the aggregate sent to the generator for insights. No
// personal data beyond headcounts and balances leaves the process.
type WorkforceFacts struct {
	Headcount             int            `json:"headcount"`
	HeadcountByDepartment map[string]int `json:"headcountByDepartment"`
	ContractsExpiring90d  int            `json:"contractsExpiringWithin90Days"`
	HighLeaveBalances     map[string]int `json:"employeesWithLeaveBalanceOver15"`
	PendingLeaveRequests  int            `json:"pendingLeaveRequests"`
	ApprovedLeaveRequests int            `json:"approvedLeaveRequests"`
}
