package leave

import (
	"testing"
	"time"
)

func TestCalculateDays(t *testing.T) {
	start := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	days, err := CalculateDays(start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if days != 1 {
		t.Fatalf("expected 1 day, got %v", days)
	}

	end = time.Date(2025, 1, 12, 18, 0, 0, 0, time.UTC)
	days, err = CalculateDays(start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if days != 3 {
		t.Fatalf("expected 3 days, got %v", days)
	}
}

func TestCalculateDaysInvalid(t *testing.T) {
	start := time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 2, 9, 0, 0, 0, 0, time.UTC)

	if _, err := CalculateDays(start, end); err != ErrInvalidRange {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

func TestTransition(t *testing.T) {
	if err := Transition(StatusPending, StatusApproved); err != nil {
		t.Fatalf("pending to approved should pass, got %v", err)
	}
	if err := Transition(StatusPending, StatusRejected); err != nil {
		t.Fatalf("pending to rejected should pass, got %v", err)
	}
	for _, from := range []string{StatusApproved, StatusRejected} {
		for _, to := range []string{StatusApproved, StatusRejected} {
			if err := Transition(from, to); err != ErrInvalidState {
				t.Fatalf("expected terminal %s -> %s to fail, got %v", from, to, err)
			}
		}
	}
	if err := Transition(StatusApproved, StatusPending); err != ErrUnknownStatus {
		t.Fatalf("expected no way back to pending, got %v", err)
	}
}

func TestCovers(t *testing.T) {
	req := Request{
		StartDate: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC),
	}
	if !req.Covers(time.Date(2024, 1, 12, 23, 0, 0, 0, time.UTC)) {
		t.Fatal("expected last day to be covered")
	}
	if req.Covers(time.Date(2024, 1, 13, 0, 0, 0, 0, time.UTC)) {
		t.Fatal("did not expect day after to be covered")
	}
}
