package leave

import (
	"time"
)

// CalculateDays returns the inclusive calendar day count between start and end.
func CalculateDays(start, end time.Time) (int, error) {
	s := dateOnly(start)
	e := dateOnly(end)
	if e.Before(s) {
		return 0, ErrInvalidRange
	}
	return int(e.Sub(s).Hours()/24) + 1, nil
}

// Transition validates a status change. Pending is the only non-terminal state.
func Transition(from, to string) error {
	if to != StatusApproved && to != StatusRejected {
		return ErrUnknownStatus
	}
	if from != StatusPending {
		return ErrInvalidState
	}
	return nil
}

// Covers reports whether day falls on or between the request's dates.
func (r Request) Covers(day time.Time) bool {
	d := dateOnly(day)
	return !d.Before(dateOnly(r.StartDate)) && !d.After(dateOnly(r.EndDate))
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
