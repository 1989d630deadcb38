package training

import "errors"

var (
	ErrProgramNotFound    = errors.New("training program not found")
	ErrEnrollmentNotFound = errors.New("training enrollment not found")
	ErrAlreadyEnrolled    = errors.New("employee already has this program")
	ErrInvalidState       = errors.New("invalid training status transition")
	ErrForbidden          = errors.New("employee is outside the caller's scope")
)
