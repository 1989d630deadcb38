package leave

const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"

	TypeAnnual   = "Annual Leave"
	TypeSick     = "Sick Leave"
	TypeUnpaid   = "Unpaid Leave"
	TypeParental = "Maternity/Paternity"
)

var Types = []string{TypeAnnual, TypeSick, TypeUnpaid, TypeParental}
