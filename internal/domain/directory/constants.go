package directory

const (
	GenderMale   = "Male"
	GenderFemale = "Female"

	EmploymentPermanent = "Permanent"
	EmploymentContract  = "Contract"
	EmploymentIntern    = "Intern"
	EmploymentCasual    = "Casual"

	StatusActive     = "Active"
	StatusSuspended  = "Suspended"
	StatusResigned   = "Resigned"
	StatusTerminated = "Terminated"

	ContractFullTime  = "Full-time"
	ContractPartTime  = "Part-time"
	ContractFixedTerm = "Fixed-term"

	ProbationPending  = "Pending"
	ProbationPassed   = "Passed"
	ProbationExtended = "Extended"

	PayMonthly  = "Monthly"
	PayBiWeekly = "Bi-weekly"
	PayWeekly   = "Weekly"

	DefaultAnnualLeave = 18
)

var (
	Genders            = []string{GenderMale, GenderFemale}
	EmploymentTypes    = []string{EmploymentPermanent, EmploymentContract, EmploymentIntern, EmploymentCasual}
	EmploymentStatuses = []string{StatusActive, StatusSuspended, StatusResigned, StatusTerminated}
	ContractTypes      = []string{ContractFullTime, ContractPartTime, ContractFixedTerm}
	ProbationStatuses  = []string{ProbationPending, ProbationPassed, ProbationExtended}
	PayFrequencies     = []string{PayMonthly, PayBiWeekly, PayWeekly}
)

// PrivilegedJobTitles see the whole roster whatever their role, and are hidden from managers.
var PrivilegedJobTitles = []string{"Managing Director", "Director Administration & Finance"}
