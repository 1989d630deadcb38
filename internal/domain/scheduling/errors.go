package scheduling

import "errors"

var (
	ErrNotFound     = errors.New("shift not found")
	ErrInvalidRange = errors.New("shift must end after it starts")
	ErrForbidden    = errors.New("employee is outside the caller's scope")
)
