package scheduling

import (
	"testing"
	"time"

	"hrconsole/internal/domain/leave"
)

func at(day, hour int) time.Time {
	return time.Date(2024, 1, day, hour, 0, 0, 0, time.UTC)
}

func TestTouchingShiftsDoNotConflict(t *testing.T) {
	existing := []Shift{{ID: "S1", EmployeeID: "E1001", Title: "Morning Route", StartTime: at(11, 6), EndTime: at(11, 12)}}
	candidate := Shift{ID: "S2", EmployeeID: "E1001", StartTime: at(11, 12), EndTime: at(11, 18)}

	if conflict := FindConflict(candidate, existing, nil); conflict != nil {
		t.Fatalf("expected no conflict for touching shifts, got %q", conflict.Message)
	}
}

func TestOverlappingShiftReportsTitle(t *testing.T) {
	existing := []Shift{{ID: "S1", EmployeeID: "E1001", Title: "Kigali -> Gisenyi Route", StartTime: at(11, 6), EndTime: at(11, 18)}}
	candidate := Shift{EmployeeID: "E1001", StartTime: at(11, 17), EndTime: at(11, 20)}

	conflict := FindConflict(candidate, existing, nil)
	if conflict == nil {
		t.Fatalf("expected overlap conflict")
	}
	if conflict.Kind != ConflictOverlap {
		t.Fatalf("expected overlap kind, got %s", conflict.Kind)
	}
	want := `Overlaps with "Kigali -> Gisenyi Route" (06:00 - 18:00).`
	if conflict.Message != want {
		t.Fatalf("expected %q, got %q", want, conflict.Message)
	}
	if conflict.Shift == nil || conflict.Shift.ID != "S1" {
		t.Fatalf("expected conflicting shift S1, got %+v", conflict.Shift)
	}
}

func TestOverlapIgnoresSelfAndOtherEmployees(t *testing.T) {
	existing := []Shift{
		{ID: "S1", EmployeeID: "E1001", StartTime: at(11, 6), EndTime: at(11, 18)},
		{ID: "S2", EmployeeID: "E1002", StartTime: at(11, 6), EndTime: at(11, 18)},
	}
	edited := Shift{ID: "S1", EmployeeID: "E1001", StartTime: at(11, 7), EndTime: at(11, 17)}

	if conflict := FindConflict(edited, existing, nil); conflict != nil {
		t.Fatalf("expected editing a shift not to conflict with itself, got %q", conflict.Message)
	}
}

func TestApprovedLeaveCoversWholeDays(t *testing.T) {
	requests := []leave.Request{{
		ID:         "LR1",
		EmployeeID: "E1001",
		StartDate:  time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC),
		Status:     leave.StatusApproved,
	}}

	during := Shift{EmployeeID: "E1001", StartTime: at(11, 8), EndTime: at(11, 16)}
	conflict := FindConflict(during, nil, requests)
	if conflict == nil || conflict.Kind != ConflictLeave {
		t.Fatalf("expected leave conflict, got %+v", conflict)
	}
	if conflict.Message != "Employee has an approved leave request during this time." {
		t.Fatalf("unexpected message %q", conflict.Message)
	}

	lastEvening := Shift{EmployeeID: "E1001", StartTime: at(12, 22), EndTime: at(13, 2)}
	if FindConflict(lastEvening, nil, requests) == nil {
		t.Fatalf("expected the final leave day to be inclusive")
	}

	after := Shift{EmployeeID: "E1001", StartTime: at(13, 8), EndTime: at(13, 16)}
	if conflict := FindConflict(after, nil, requests); conflict != nil {
		t.Fatalf("expected no conflict after leave, got %q", conflict.Message)
	}
}

func TestPendingLeaveIsIgnored(t *testing.T) {
	requests := []leave.Request{{
		EmployeeID: "E1001",
		StartDate:  time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC),
		Status:     leave.StatusPending,
	}}
	shift := Shift{EmployeeID: "E1001", StartTime: at(11, 8), EndTime: at(11, 16)}
	if conflict := FindConflict(shift, nil, requests); conflict != nil {
		t.Fatalf("expected pending leave to be ignored, got %q", conflict.Message)
	}
}

func TestOverlapCheckedBeforeLeave(t *testing.T) {
	existing := []Shift{{ID: "S1", EmployeeID: "E1001", Title: "Office Duty", StartTime: at(11, 6), EndTime: at(11, 18)}}
	requests := []leave.Request{{
		EmployeeID: "E1001",
		StartDate:  time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC),
		Status:     leave.StatusApproved,
	}}
	conflict := FindConflict(Shift{EmployeeID: "E1001", StartTime: at(11, 8), EndTime: at(11, 9)}, existing, requests)
	if conflict == nil || conflict.Kind != ConflictOverlap {
		t.Fatalf("expected overlap to win, got %+v", conflict)
	}
}

func TestIncompleteCandidateHasNoConflict(t *testing.T) {
	existing := []Shift{{ID: "S1", EmployeeID: "E1001", StartTime: at(11, 6), EndTime: at(11, 18)}}
	if FindConflict(Shift{StartTime: at(11, 8), EndTime: at(11, 9)}, existing, nil) != nil {
		t.Fatalf("expected no conflict without an employee")
	}
	if FindConflict(Shift{EmployeeID: "E1001", EndTime: at(11, 9)}, existing, nil) != nil {
		t.Fatalf("expected no conflict without a start time")
	}
}

func TestCheckerUsesLocationForLeaveDays(t *testing.T) {
	kigali := time.FixedZone("CAT", 2*60*60)
	requests := []leave.Request{{
		EmployeeID: "E1001",
		StartDate:  time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		Status:     leave.StatusApproved,
	}}
	// 2024-01-10 23:00 UTC is already the 11th in Kigali.
	shift := Shift{EmployeeID: "E1001", StartTime: at(10, 23), EndTime: at(11, 1)}

	if FindConflict(shift, nil, requests) == nil {
		t.Fatalf("expected UTC checker to report the leave conflict")
	}
	if conflict := (Checker{Location: kigali}).FindConflict(shift, nil, requests); conflict != nil {
		t.Fatalf("expected no conflict in Kigali time, got %q", conflict.Message)
	}
}
