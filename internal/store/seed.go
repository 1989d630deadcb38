package store

import (
	"time"

	"hrconsole/internal/domain/auth"
	"hrconsole/internal/domain/compliance"
	"hrconsole/internal/domain/directory"
	"hrconsole/internal/domain/engagement"
	"hrconsole/internal/domain/leave"
	"hrconsole/internal/domain/payroll"
	"hrconsole/internal/domain/performance"
	"hrconsole/internal/domain/scheduling"
	"hrconsole/internal/domain/training"
)

// Seed returns the demo organisation. Leave and shift dates are relative to
// now in loc; every account shares passwordHash.
func Seed(now time.Time, loc *time.Location, passwordHash string) Data {
	if loc == nil {
		loc = time.UTC
	}
	employees := seedEmployees()
	return Data{
		Users:              seedUsers(employees, passwordHash),
		Employees:          employees,
		Departments:        seedDepartments(),
		JobPositions:       seedJobPositions(),
		Shifts:             seedShifts(now, loc),
		LeaveRequests:      seedLeave(now, loc),
		Allowances:         seedAllowances(),
		Payslips:           []payroll.Payslip{},
		TrainingPrograms:   seedPrograms(),
		Enrollments:        seedEnrollments(),
		Documents:          seedDocuments(),
		Acknowledgements:   seedAcknowledgements(),
		Announcements:      seedAnnouncements(),
		BenefitPlans:       seedBenefitPlans(),
		BenefitEnrollments: seedBenefitEnrollments(),
		Goals:              seedGoals(),
		Feedback:           seedFeedback(),
		Reviews:            seedReviews(),
		PIPs:               seedPIPs(),
	}
}

// seedUsers gives every employee an account. Anyone with direct reports signs
// in as a manager unless accountRoles says otherwise.
func seedUsers(employees []directory.Employee, passwordHash string) []auth.User {
	users := make([]auth.User, 0, len(employees))
	for _, emp := range employees {
		role, ok := accountRoles[emp.ID]
		if !ok {
			role = auth.RoleEmployee
			if len(directory.DirectReports(employees, emp.ID)) > 0 {
				role = auth.RoleManager
			}
		}
		users = append(users, auth.User{
			ID:           emp.ID,
			Name:         emp.Name,
			Email:        emp.Email,
			Role:         role,
			PasswordHash: passwordHash,
		})
	}
	return users
}

func seedDepartments() []directory.Department {
	return []directory.Department{
		{ID: "D_EXEC", Name: "Executive", Description: "Leadership, governance, and direct support staff."},
		{ID: "D_OPS", Name: "Operations", Description: "Core transport, fleet management, and maintenance services."},
		{ID: "D_ADMIN_FIN", Name: "Administration & Finance", Description: "Handles all financial, accounting, and HR functions."},
		{ID: "D_COMM", Name: "Commercial", Description: "Drives business growth through sales, marketing, and tour operations."},
	}
}

func seedJobPositions() []directory.JobPosition {
	positions := []struct{ id, title, dept string }{
		{"P_MD", "Managing Director", "D_EXEC"},
		{"P_DMD", "Deputy Managing Director", "D_EXEC"},
		{"P_IA", "Internal Auditor", "D_EXEC"},
		{"P_LA", "Legal Advisor & Company Secretary", "D_EXEC"},
		{"P_IT", "IT Officer", "D_EXEC"},
		{"P_PROC", "Procurement Officer", "D_EXEC"},
		{"P_PA", "Personal Assistant", "D_EXEC"},
		{"P_DO", "Director Operations", "D_OPS"},
		{"P_FM", "Fleet Manager", "D_OPS"},
		{"P_ICO", "Inspection & Compliance Officer", "D_OPS"},
		{"P_MO", "Maintenance Officer", "D_OPS"},
		{"P_GT", "Garage Technician", "D_OPS"},
		{"P_FMO", "Fuel Management Officer", "D_OPS"},
		{"P_AFMO", "Assistant Fleet Management Officer", "D_OPS"},
		{"P_DRIVER", "Heavy Vehicle Driver", "D_OPS"},
		{"P_DAF", "Director Administration & Finance", "D_ADMIN_FIN"},
		{"P_CA", "Chief Accountant", "D_ADMIN_FIN"},
		{"P_ACC", "Accountant", "D_ADMIN_FIN"},
		{"P_RO", "Recovery Officer", "D_ADMIN_FIN"},
		{"P_BO", "Billing Officer", "D_ADMIN_FIN"},
		{"P_CASH", "Cashier", "D_ADMIN_FIN"},
		{"P_HRM", "HR Manager", "D_ADMIN_FIN"},
		{"P_REC", "Receptionist", "D_ADMIN_FIN"},
		{"P_OC", "Officer Cleaner", "D_ADMIN_FIN"},
		{"P_DC", "Director Commercial", "D_COMM"},
		{"P_TOM", "Tour Operations Manager", "D_COMM"},
		{"P_SMM", "Sales & Marketing Manager", "D_COMM"},
		{"P_SO", "Sales Officer", "D_COMM"},
		{"P_TOO", "Tour Operations Officer", "D_COMM"},
		{"P_SMO", "Sales Marketing Officer", "D_COMM"},
		{"P_SA", "Sales Assistant", "D_COMM"},
	}
	out := make([]directory.JobPosition, 0, len(positions))
	for _, p := range positions {
		out = append(out, directory.JobPosition{ID: p.id, Title: p.title, DepartmentID: p.dept})
	}
	return out
}

func seedLeave(now time.Time, loc *time.Location) []leave.Request {
	local := now.In(loc)
	day := func(offset int) time.Time {
		return time.Date(local.Year(), local.Month(), local.Day()+offset, 0, 0, 0, 0, loc)
	}
	return []leave.Request{
		{ID: "LR1", EmployeeID: "E1002", Type: leave.TypeAnnual, StartDate: day(-5), EndDate: day(2), Status: leave.StatusApproved, Reason: "Family vacation"},
		{ID: "LR2", EmployeeID: "E1003", Type: leave.TypeAnnual, StartDate: day(-10), EndDate: day(3), Status: leave.StatusApproved, Reason: "Trip"},
		{ID: "LR3", EmployeeID: "E1001", Type: leave.TypeAnnual, StartDate: day(7), EndDate: day(14), Status: leave.StatusPending, Reason: "Extended vacation"},
		{ID: "LR4", EmployeeID: "E1001", Type: leave.TypeSick, StartDate: date("2023-11-10"), EndDate: date("2023-11-11"), Status: leave.StatusApproved, Reason: "Flu"},
		{ID: "LR5", EmployeeID: "E1005", Type: leave.TypeSick, StartDate: date("2023-10-01"), EndDate: date("2023-10-05"), Status: leave.StatusApproved, Reason: "Medical appointment"},
	}
}

func seedShifts(now time.Time, loc *time.Location) []scheduling.Shift {
	local := now.In(loc)
	at := func(hour, offset int) time.Time {
		return time.Date(local.Year(), local.Month(), local.Day()+offset, hour, 0, 0, 0, loc)
	}
	return []scheduling.Shift{
		{ID: "S1", EmployeeID: "E1001", StartTime: at(6, 0), EndTime: at(18, 0), Title: "Kigali -> Gisenyi Route"},
		{ID: "S2", EmployeeID: "E1002", StartTime: at(9, 0), EndTime: at(17, 0), Title: "Office Duty"},
		{ID: "S3", EmployeeID: "E1003", StartTime: at(8, -1), EndTime: at(16, -1), Title: "Workshop Maintenance"},
		{ID: "S4", EmployeeID: "E1001", StartTime: at(5, -1), EndTime: at(19, -1), Title: "Huye -> Kigali Return"},
		{ID: "S5", EmployeeID: "E1001", StartTime: at(7, 1), EndTime: at(15, 1), Title: "Kigali Local Deliveries"},
		{ID: "S6", EmployeeID: "E1002", StartTime: at(10, 1), EndTime: at(18, 1), Title: "Client Meeting Prep"},
		{ID: "S7", EmployeeID: "E1001", StartTime: at(8, 7), EndTime: at(12, 7), Title: "Vehicle Inspection"},
	}
}

func seedAllowances() []payroll.Allowance {
	return []payroll.Allowance{
		{ID: "DA1", EmployeeID: "E1001", Amount: 50000, EffectiveDate: date("2023-11-01"), Status: payroll.AllowanceActive},
	}
}

func seedPrograms() []training.Program {
	return []training.Program{
		{ID: "TP1", Name: "Defensive Driving Certification", Category: training.CategorySafety, Description: "Advanced techniques for safe driving in all conditions.", Duration: "3 Days"},
		{ID: "TP2", Name: "Customer Service Excellence", Category: training.CategorySoftSkills, Description: "Improving communication and client relations.", Duration: "2 Days"},
		{ID: "TP3", Name: "Basic First Aid", Category: training.CategorySafety, Description: "Emergency first aid procedures for common workplace incidents.", Duration: "1 Day"},
		{ID: "TP4", Name: "Advanced Vehicle Maintenance", Category: training.CategoryTechnical, Description: "In-depth diagnostics and repair of heavy vehicles.", Duration: "5 Days"},
		{ID: "TP5", Name: "Leadership for New Managers", Category: training.CategoryLeadership, Description: "Fundamentals of team leadership, motivation, and delegation.", Duration: "4 Days"},
		{ID: "TP6", Name: "Logistics and Supply Chain Management", Category: training.CategoryTechnical, Description: "Core principles of modern logistics and supply chain.", Duration: "5 Days"},
	}
}

func seedEnrollments() []training.Enrollment {
	return []training.Enrollment{
		{EmployeeID: "E1001", ProgramID: "TP1", Status: training.StatusCompleted, EnrollmentDate: date("2023-05-10"), CompletionDate: datePtr("2023-05-13"), Progress: 100},
		{EmployeeID: "E1001", ProgramID: "TP2", Status: training.StatusCompleted, EnrollmentDate: date("2023-08-01"), CompletionDate: datePtr("2023-08-02"), Progress: 100},
		{EmployeeID: "E1001", ProgramID: "TP3", Status: training.StatusInProgress, EnrollmentDate: date("2023-11-20"), Progress: 50},
		{EmployeeID: "E1002", ProgramID: "TP2", Status: training.StatusCompleted, EnrollmentDate: date("2023-08-01"), CompletionDate: datePtr("2023-08-02"), Progress: 100},
		{EmployeeID: "E1002", ProgramID: "TP6", Status: training.StatusInProgress, EnrollmentDate: date("2023-11-15"), Progress: 75},
		{EmployeeID: "E1003", ProgramID: "TP4", Status: training.StatusNotStarted, EnrollmentDate: date("2023-12-01"), Progress: 0},
	}
}

func seedDocuments() []compliance.Document {
	return []compliance.Document{
		{ID: "CDOC1", Name: "PTS Rwanda Employee Handbook (Umurongo ngenderwaho)", Category: compliance.CategoryHandbook, Description: "The official company-wide employee handbook, compliant with Rwandan labor law.", Version: 2.1, UploadDate: date("2023-01-15"), AssignedTo: compliance.AssignAll},
		{ID: "CDOC2", Name: "Code of Conduct & Anti-Corruption Policy (RSSB Compliant)", Category: compliance.CategoryPolicy, Description: "Outlines the expected behavior and ethical standards for all employees.", Version: 1.5, UploadDate: date("2023-02-01"), AssignedTo: compliance.AssignAll},
		{ID: "CDOC3", Name: "RURA Driver Compliance Manual", Category: compliance.CategoryPolicy, Description: "Specific safety and regulatory procedures for all driving staff as per RURA guidelines.", Version: 1.0, UploadDate: date("2023-03-10"), AssignedTo: "D_OPS"},
		{ID: "CDOC4", Name: "Data Privacy & IT Security Policy", Category: compliance.CategoryPolicy, Description: "Policy regarding the use of company IT assets and data protection.", Version: 1.2, UploadDate: date("2023-05-20"), AssignedTo: compliance.AssignAll},
	}
}

func seedAcknowledgements() []compliance.Acknowledgement {
	return []compliance.Acknowledgement{
		{EmployeeID: "E1001", DocumentID: "CDOC1", Status: compliance.StatusSigned, AcknowledgedDate: datePtr("2023-01-20")},
		{EmployeeID: "E1001", DocumentID: "CDOC2", Status: compliance.StatusSigned, AcknowledgedDate: datePtr("2023-02-05")},
		{EmployeeID: "E1002", DocumentID: "CDOC1", Status: compliance.StatusSigned, AcknowledgedDate: datePtr("2023-01-18")},
		{EmployeeID: "E1003", DocumentID: "CDOC3", Status: compliance.StatusSigned, AcknowledgedDate: datePtr("2023-04-01")},
	}
}

func seedAnnouncements() []engagement.Announcement {
	return []engagement.Announcement{
		{ID: "A2", Title: "Upcoming Umuganda", Content: "This month's Umuganda is this Saturday. All staff are reminded of their civic duties. Please coordinate with your department head for designated community work locations.", Date: date("2023-11-22"), PostedBy: "Didier Mutangana"},
		{ID: "A1", Title: "Q4 Performance Reviews", Content: "Please complete your self-assessments by November 30th. Your manager will schedule a meeting in early December.", Date: date("2023-11-15"), PostedBy: "Didier Mutangana"},
	}
}

func seedBenefitPlans() []engagement.BenefitPlan {
	return []engagement.BenefitPlan{
		{ID: "B1", Name: "Radiant Gold Health Plan", Provider: "Radiant Health", Type: engagement.PlanHealth, Description: "Comprehensive health coverage for you and your family.", MonthlyCost: 15000},
		{ID: "B2", Name: "RSSB Pension Scheme", Provider: "Govt. of Rwanda", Type: engagement.PlanPension, Description: "Standard government pension scheme.", MonthlyCost: 0},
		{ID: "B3", Name: "Britam Vision & Dental", Provider: "Britam", Type: engagement.PlanHealth, Description: "Additional coverage for vision and dental care.", MonthlyCost: 5000},
		{ID: "B4", Name: "PTS Umusanzu SACCO", Provider: "PTS Rwanda", Type: engagement.PlanOther, Description: "Company-sponsored savings and credit co-operative for employees.", MonthlyCost: 10000},
	}
}

func seedBenefitEnrollments() []engagement.BenefitEnrollment {
	joined := date("2023-01-01")
	return []engagement.BenefitEnrollment{
		{EmployeeID: "E1001", PlanID: "B1", EnrollmentDate: joined, Status: engagement.EnrollmentActive},
		{EmployeeID: "E1002", PlanID: "B1", EnrollmentDate: joined, Status: engagement.EnrollmentActive},
		{EmployeeID: "E1002", PlanID: "B2", EnrollmentDate: joined, Status: engagement.EnrollmentActive},
		{EmployeeID: "H3001", PlanID: "B1", EnrollmentDate: joined, Status: engagement.EnrollmentActive},
	}
}

func seedGoals() []performance.Goal {
	set := date("2023-10-01")
	return []performance.Goal{
		{ID: "G1", EmployeeID: "E1001", Title: "Achieve 98% On-Time Delivery Rate", Status: performance.GoalOnTrack, Progress: 95, Description: "Maintain high efficiency for all assigned delivery routes.", SetBy: "E1012", CreatedAt: set},
		{ID: "G2", EmployeeID: "E1001", Title: "Mentor Apprentice Driver", Status: performance.GoalOnTrack, Progress: 50, Description: "Provide guidance and support to a new driver on the team.", SetBy: "E1012", CreatedAt: set},
		{ID: "G3", EmployeeID: "E1001", Title: "Maintain Zero Safety Infractions", Status: performance.GoalOnTrack, Progress: 100, Description: "Adhere to all safety protocols during operations.", SetBy: "E1012", CreatedAt: set},
		{ID: "G4", EmployeeID: "E1001", Title: "Complete Defensive Driving Course", Status: performance.GoalCompleted, Progress: 100, Description: "Finish the certified defensive driving and safety course.", SetBy: "E1012", CreatedAt: set},
	}
}

func seedFeedback() []performance.Feedback {
	return []performance.Feedback{
		{ID: "F1", EmployeeID: "E1001", Type: performance.FeedbackPraise, FromID: "M2001", From: "Jeanette Ingabire (Manager)", Comment: "Exceptional handling of the Gisenyi route last week. Your proactive communication was key.", Date: date("2023-11-05")},
		{ID: "F2", EmployeeID: "E1001", Type: performance.FeedbackConstructive, FromID: "E1002", From: "Bosco Ndayisenga", Comment: "Let's review the pre-trip inspection checklist to ensure all points are covered.", Date: date("2023-11-02")},
		{ID: "F3", EmployeeID: "E1001", Type: performance.FeedbackPraise, FromID: "E1003", From: "Carine Umutesi (Mechanic)", Comment: "Thanks for the clear report on the vehicle issue. It helped us fix it quickly!", Date: date("2023-10-28")},
	}
}

func seedReviews() []performance.Review {
	return []performance.Review{
		{ID: "R1", EmployeeID: "E1001", Cycle: "Q3 2023 Review", Status: performance.ReviewCompleted, Score: 4.5, ReviewerID: "E1012", Date: date("2023-10-15")},
		{ID: "R2", EmployeeID: "E1001", Cycle: "Q2 2023 Review", Status: performance.ReviewCompleted, Score: 4.2, ReviewerID: "E1012", Date: date("2023-07-15")},
		{ID: "R3", EmployeeID: "E1001", Cycle: "Q1 2023 Review", Status: performance.ReviewCompleted, Score: 4.0, ReviewerID: "E1012", Date: date("2023-04-15")},
	}
}

func seedPIPs() []performance.PIP {
	return []performance.PIP{
		{ID: "P1", EmployeeID: "E1001", Title: "Improve Pre-Trip Inspection Adherence", Status: performance.PIPActive, StartDate: date("2023-11-01"), EndDate: date("2023-12-31"), OwnerID: "E1012"},
	}
}
