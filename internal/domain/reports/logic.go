package reports

import (
	"time"

	"hrconsole/internal/domain/directory"
	"hrconsole/internal/domain/leave"
	"hrconsole/internal/domain/payroll"
	"hrconsole/internal/domain/scheduling"
	"hrconsole/internal/domain/training"
)

// WeekWindow returns the Monday-to-Monday week containing now in loc.
func WeekWindow(now time.Time, loc *time.Location) (time.Time, time.Time) {
	if loc == nil {
		loc = time.UTC
	}
	local := now.In(loc)
	offset := (int(local.Weekday()) + 6) % 7
	start := time.Date(local.Year(), local.Month(), local.Day()-offset, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 7)
}

func CountPayslips(slips []payroll.Payslip, employeeID string) int {
	count := 0
	for _, slip := range slips {
		if slip.EmployeeID == employeeID {
			count++
		}
	}
	return count
}

// CountPendingTrainings counts enrollments that are assigned but not finished.
func CountPendingTrainings(enrollments []training.Enrollment, employeeID string) int {
	count := 0
	for _, e := range enrollments {
		if e.EmployeeID != employeeID {
			continue
		}
		if e.Status == training.StatusNotStarted || e.Status == training.StatusInProgress {
			count++
		}
	}
	return count
}

func CountPendingLeave(requests []leave.Request, among map[string]struct{}) int {
	count := 0
	for _, req := range requests {
		if req.Status != leave.StatusPending {
			continue
		}
		if among != nil {
			if _, ok := among[req.EmployeeID]; !ok {
				continue
			}
		}
		count++
	}
	return count
}

func CountTrainingRequests(enrollments []training.Enrollment, among map[string]struct{}) int {
	count := 0
	for _, e := range enrollments {
		if e.Status != training.StatusRequested {
			continue
		}
		if _, ok := among[e.EmployeeID]; ok {
			count++
		}
	}
	return count
}

// CountShifts counts shifts of the given employees that start inside [from, to).
func CountShifts(shifts []scheduling.Shift, among map[string]struct{}, from, to time.Time) int {
	count := 0
	for _, shift := range shifts {
		if _, ok := among[shift.EmployeeID]; !ok {
			continue
		}
		if shift.StartTime.Before(from) || !shift.StartTime.Before(to) {
			continue
		}
		count++
	}
	return count
}

func HeadcountByDepartment(employees []directory.Employee) map[string]int {
	out := make(map[string]int)
	for _, emp := range employees {
		out[emp.Department]++
	}
	return out
}

func idSet(employees []directory.Employee) map[string]struct{} {
	out := make(map[string]struct{}, len(employees))
	for _, emp := range employees {
		out[emp.ID] = struct{}{}
	}
	return out
}
