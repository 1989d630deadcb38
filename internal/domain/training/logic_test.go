package training

import (
	"testing"
	"time"
)

func TestAdvanceWalksTheLifecycle(t *testing.T) {
	now := time.Date(2024, 5, 2, 15, 30, 0, 0, time.UTC)
	e := Enrollment{EmployeeID: "E1003", ProgramID: "TP4", Status: StatusNotStarted}

	e, err := Advance(e, now)
	if err != nil || e.Status != StatusInProgress {
		t.Fatalf("expected In Progress, got %q (%v)", e.Status, err)
	}
	e, err = Advance(e, now)
	if err != nil || e.Status != StatusCompleted {
		t.Fatalf("expected Completed, got %q (%v)", e.Status, err)
	}
	if e.Progress != 100 {
		t.Fatalf("expected progress 100, got %d", e.Progress)
	}
	if e.CompletionDate == nil || !e.CompletionDate.Equal(time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected completion date stamped, got %v", e.CompletionDate)
	}
	if _, err := Advance(e, now); err != ErrInvalidState {
		t.Fatalf("expected completed training to stay terminal, got %v", err)
	}
}

func TestAdvanceRejectsRequested(t *testing.T) {
	if _, err := Advance(Enrollment{Status: StatusRequested}, time.Now()); err != ErrInvalidState {
		t.Fatalf("expected requested enrollment to need approval, got %v", err)
	}
}

func TestSetProgress(t *testing.T) {
	now := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
	e := Enrollment{Status: StatusInProgress, Progress: 50}

	e, err := SetProgress(e, 75, now)
	if err != nil || e.Progress != 75 || e.Status != StatusInProgress {
		t.Fatalf("expected 75%% in progress, got %+v (%v)", e, err)
	}
	e, err = SetProgress(e, 140, now)
	if err != nil || e.Status != StatusCompleted {
		t.Fatalf("expected clamp to 100 to complete, got %+v (%v)", e, err)
	}
	if _, err := SetProgress(Enrollment{Status: StatusNotStarted}, 10, now); err != ErrInvalidState {
		t.Fatalf("expected progress on a not started enrollment to fail, got %v", err)
	}
}
