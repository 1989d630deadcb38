package training

import "time"

// Advance moves an enrollment one step along Not Started, In Progress,
// Completed. Requested enrollments must be approved first.
func Advance(e Enrollment, now time.Time) (Enrollment, error) {
	switch e.Status {
	case StatusNotStarted:
		e.Status = StatusInProgress
	case StatusInProgress:
		e.Status = StatusCompleted
		e.Progress = 100
		done := dateOnly(now)
		e.CompletionDate = &done
	default:
		return Enrollment{}, ErrInvalidState
	}
	return e, nil
}

// SetProgress records partial progress on an In Progress enrollment.
// Reaching 100 completes it.
func SetProgress(e Enrollment, progress int, now time.Time) (Enrollment, error) {
	if e.Status != StatusInProgress {
		return Enrollment{}, ErrInvalidState
	}
	progress = min(max(progress, 0), 100)
	if progress == 100 {
		return Advance(e, now)
	}
	e.Progress = progress
	return e, nil
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
