package store

import (
	"context"

	"hrconsole/internal/domain/auth"
	"hrconsole/internal/domain/compliance"
	"hrconsole/internal/domain/directory"
	"hrconsole/internal/domain/engagement"
	"hrconsole/internal/domain/leave"
	"hrconsole/internal/domain/notifications"
	"hrconsole/internal/domain/payroll"
	"hrconsole/internal/domain/performance"
	"hrconsole/internal/domain/scheduling"
	"hrconsole/internal/domain/training"
)

func usersField(d *Data) *[]auth.User { return &d.Users }
func employeesField(d *Data) *[]directory.Employee { return &d.Employees }
func departmentsField(d *Data) *[]directory.Department { return &d.Departments }
func positionsField(d *Data) *[]directory.JobPosition { return &d.JobPositions }
func shiftsField(d *Data) *[]scheduling.Shift { return &d.Shifts }
func leaveField(d *Data) *[]leave.Request { return &d.LeaveRequests }
func allowancesField(d *Data) *[]payroll.Allowance { return &d.Allowances }
func payslipsField(d *Data) *[]payroll.Payslip { return &d.Payslips }
func programsField(d *Data) *[]training.Program { return &d.TrainingPrograms }
func enrollmentsField(d *Data) *[]training.Enrollment { return &d.Enrollments }
func documentsField(d *Data) *[]compliance.Document { return &d.Documents }
func acksField(d *Data) *[]compliance.Acknowledgement { return &d.Acknowledgements }
func announcementsField(d *Data) *[]engagement.Announcement { return &d.Announcements }
func plansField(d *Data) *[]engagement.BenefitPlan { return &d.BenefitPlans }
func benefitEnrollmentsField(d *Data) *[]engagement.BenefitEnrollment { return &d.BenefitEnrollments }
func notificationsField(d *Data) *[]notifications.Notification { return &d.Notifications }
func goalsField(d *Data) *[]performance.Goal { return &d.Goals }
func feedbackField(d *Data) *[]performance.Feedback { return &d.Feedback }
func reviewsField(d *Data) *[]performance.Review { return &d.Reviews }
func pipsField(d *Data) *[]performance.PIP { return &d.PIPs }
func grantsField(d *Data) *[]auth.RoleGrant { return &d.RoleGrants }

func (s *Store) Users(ctx context.Context) ([]auth.User, error) {
	return read(ctx, s, usersField, nil)
}

func (s *Store) UpdateUsers(ctx context.Context, fn func([]auth.User) ([]auth.User, error)) error {
	return update(ctx, s, usersField, nil, fn)
}

func (s *Store) Employees(ctx context.Context) ([]directory.Employee, error) {
	return read(ctx, s, employeesField, cloneEmployee)
}

func (s *Store) UpdateEmployees(ctx context.Context, fn func([]directory.Employee) ([]directory.Employee, error)) error {
	return update(ctx, s, employeesField, cloneEmployee, fn)
}

func (s *Store) Departments(ctx context.Context) ([]directory.Department, error) {
	return read(ctx, s, departmentsField, nil)
}

func (s *Store) JobPositions(ctx context.Context) ([]directory.JobPosition, error) {
	return read(ctx, s, positionsField, nil)
}

func (s *Store) Shifts(ctx context.Context) ([]scheduling.Shift, error) {
	return read(ctx, s, shiftsField, nil)
}

func (s *Store) UpdateShifts(ctx context.Context, fn func([]scheduling.Shift) ([]scheduling.Shift, error)) error {
	return update(ctx, s, shiftsField, nil, fn)
}

func (s *Store) LeaveRequests(ctx context.Context) ([]leave.Request, error) {
	return read(ctx, s, leaveField, nil)
}

func (s *Store) UpdateLeaveRequests(ctx context.Context, fn func([]leave.Request) ([]leave.Request, error)) error {
	return update(ctx, s, leaveField, nil, fn)
}

func (s *Store) Allowances(ctx context.Context) ([]payroll.Allowance, error) {
	return read(ctx, s, allowancesField, nil)
}

func (s *Store) UpdateAllowances(ctx context.Context, fn func([]payroll.Allowance) ([]payroll.Allowance, error)) error {
	return update(ctx, s, allowancesField, nil, fn)
}

func (s *Store) Payslips(ctx context.Context) ([]payroll.Payslip, error) {
	return read(ctx, s, payslipsField, clonePayslip)
}

func (s *Store) UpdatePayslips(ctx context.Context, fn func([]payroll.Payslip) ([]payroll.Payslip, error)) error {
	return update(ctx, s, payslipsField, clonePayslip, fn)
}

func (s *Store) TrainingPrograms(ctx context.Context) ([]training.Program, error) {
	return read(ctx, s, programsField, nil)
}

func (s *Store) Enrollments(ctx context.Context) ([]training.Enrollment, error) {
	return read(ctx, s, enrollmentsField, nil)
}

func (s *Store) UpdateEnrollments(ctx context.Context, fn func([]training.Enrollment) ([]training.Enrollment, error)) error {
	return update(ctx, s, enrollmentsField, nil, fn)
}

func (s *Store) ComplianceDocuments(ctx context.Context) ([]compliance.Document, error) {
	return read(ctx, s, documentsField, nil)
}

func (s *Store) UpdateComplianceDocuments(ctx context.Context, fn func([]compliance.Document) ([]compliance.Document, error)) error {
	return update(ctx, s, documentsField, nil, fn)
}

func (s *Store) Acknowledgements(ctx context.Context) ([]compliance.Acknowledgement, error) {
	return read(ctx, s, acksField, nil)
}

func (s *Store) UpdateAcknowledgements(ctx context.Context, fn func([]compliance.Acknowledgement) ([]compliance.Acknowledgement, error)) error {
	return update(ctx, s, acksField, nil, fn)
}

func (s *Store) Announcements(ctx context.Context) ([]engagement.Announcement, error) {
	return read(ctx, s, announcementsField, nil)
}

func (s *Store) UpdateAnnouncements(ctx context.Context, fn func([]engagement.Announcement) ([]engagement.Announcement, error)) error {
	return update(ctx, s, announcementsField, nil, fn)
}

func (s *Store) BenefitPlans(ctx context.Context) ([]engagement.BenefitPlan, error) {
	return read(ctx, s, plansField, nil)
}

func (s *Store) BenefitEnrollments(ctx context.Context) ([]engagement.BenefitEnrollment, error) {
	return read(ctx, s, benefitEnrollmentsField, nil)
}

func (s *Store) UpdateBenefitEnrollments(ctx context.Context, fn func([]engagement.BenefitEnrollment) ([]engagement.BenefitEnrollment, error)) error {
	return update(ctx, s, benefitEnrollmentsField, nil, fn)
}

func (s *Store) Notifications(ctx context.Context) ([]notifications.Notification, error) {
	return read(ctx, s, notificationsField, nil)
}

func (s *Store) UpdateNotifications(ctx context.Context, fn func([]notifications.Notification) ([]notifications.Notification, error)) error {
	return update(ctx, s, notificationsField, nil, fn)
}

func (s *Store) Goals(ctx context.Context) ([]performance.Goal, error) {
	return read(ctx, s, goalsField, nil)
}

func (s *Store) UpdateGoals(ctx context.Context, fn func([]performance.Goal) ([]performance.Goal, error)) error {
	return update(ctx, s, goalsField, nil, fn)
}

func (s *Store) Feedback(ctx context.Context) ([]performance.Feedback, error) {
	return read(ctx, s, feedbackField, nil)
}

func (s *Store) UpdateFeedback(ctx context.Context, fn func([]performance.Feedback) ([]performance.Feedback, error)) error {
	return update(ctx, s, feedbackField, nil, fn)
}

func (s *Store) Reviews(ctx context.Context) ([]performance.Review, error) {
	return read(ctx, s, reviewsField, cloneReview)
}

func (s *Store) UpdateReviews(ctx context.Context, fn func([]performance.Review) ([]performance.Review, error)) error {
	return update(ctx, s, reviewsField, cloneReview, fn)
}

func (s *Store) PIPs(ctx context.Context) ([]performance.PIP, error) {
	return read(ctx, s, pipsField, nil)
}

func (s *Store) UpdatePIPs(ctx context.Context, fn func([]performance.PIP) ([]performance.PIP, error)) error {
	return update(ctx, s, pipsField, nil, fn)
}

func (s *Store) RoleGrants(ctx context.Context) ([]auth.RoleGrant, error) {
	return read(ctx, s, grantsField, cloneGrant)
}

func (s *Store) UpdateRoleGrants(ctx context.Context, fn func([]auth.RoleGrant) ([]auth.RoleGrant, error)) error {
	return update(ctx, s, grantsField, cloneGrant, fn)
}
