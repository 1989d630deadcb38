package compliance

const (
	StatusPending = "Pending Signature"
	StatusSigned  = "Signed"

	AssignAll = "all"

	CategoryPolicy   = "Policy"
	CategoryHandbook = "Employee Handbook"
	CategoryLegal    = "Legal Notice"
	CategoryContract = "Contract Template"
)

var Categories = []string{CategoryPolicy, CategoryHandbook, CategoryLegal, CategoryContract}
