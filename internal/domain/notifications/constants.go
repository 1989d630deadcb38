package notifications

const (
	TypeLeaveApproved    = "leave_approved"
	TypeLeaveRejected    = "leave_rejected"
	TypePayslipReady     = "payslip_ready"
	TypeTrainingApproved = "training_approved"
	TypeTrainingDenied   = "training_denied"
	TypeAnnouncement     = "announcement"
)
