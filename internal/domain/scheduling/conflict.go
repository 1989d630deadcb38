package scheduling

import (
	"fmt"
	"time"

	"hrconsole/internal/domain/leave"
)

// Checker finds scheduling conflicts. Location decides which calendar day a
// leave date covers; nil means UTC.
type Checker struct {
	Location *time.Location
}

// FindConflict checks the candidate against the employee's other shifts and
// then against their approved leave. The first match wins.
func (c Checker) FindConflict(candidate Shift, shifts []Shift, requests []leave.Request) *Conflict {
	if candidate.EmployeeID == "" || candidate.StartTime.IsZero() || candidate.EndTime.IsZero() {
		return nil
	}

	for i := range shifts {
		other := shifts[i]
		if other.ID == candidate.ID || other.EmployeeID != candidate.EmployeeID {
			continue
		}
		if overlaps(candidate.StartTime, candidate.EndTime, other.StartTime, other.EndTime) {
			return &Conflict{
				Kind: ConflictOverlap,
				Message: fmt.Sprintf("Overlaps with %q (%s - %s).", other.Title,
					other.StartTime.In(c.location()).Format(clockLayout),
					other.EndTime.In(c.location()).Format(clockLayout)),
				Shift: &other,
			}
		}
	}

	for i := range requests {
		req := requests[i]
		if req.EmployeeID != candidate.EmployeeID || req.Status != leave.StatusApproved {
			continue
		}
		start, end := c.leaveWindow(req)
		if overlaps(candidate.StartTime, candidate.EndTime, start, end) {
			return &Conflict{Kind: ConflictLeave, Message: leaveConflictMessage, Leave: &req}
		}
	}
	return nil
}

// leaveWindow spans the first instant of the start day to the last
// millisecond of the end day.
func (c Checker) leaveWindow(req leave.Request) (time.Time, time.Time) {
	loc := c.location()
	start := calendarDay(req.StartDate, loc)
	end := calendarDay(req.EndDate, loc).Add(24*time.Hour - time.Millisecond)
	return start, end
}

func (c Checker) location() *time.Location {
	if c.Location == nil {
		return time.UTC
	}
	return c.Location
}

// FindConflict runs a UTC checker.
func FindConflict(candidate Shift, shifts []Shift, requests []leave.Request) *Conflict {
	return Checker{}.FindConflict(candidate, shifts, requests)
}

// overlaps compares millisecond instants; touching endpoints do not overlap.
func overlaps(startA, endA, startB, endB time.Time) bool {
	return startA.UnixMilli() < endB.UnixMilli() && endA.UnixMilli() > startB.UnixMilli()
}

// calendarDay reads the date as stored (year, month, day) and pins it to
// midnight in loc.
func calendarDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
