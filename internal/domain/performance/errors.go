package performance

import "errors"

var (
	ErrNotFound     = errors.New("performance record not found")
	ErrInvalidInput = errors.New("invalid performance input")
	ErrForbidden    = errors.New("employee is outside the caller's scope")
	ErrSelfReview   = errors.New("employees cannot review or give feedback to themselves")
	ErrInvalidState = errors.New("invalid performance status transition")
	ErrActivePIP    = errors.New("employee already has an active improvement plan")
)
