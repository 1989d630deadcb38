package leave

import "errors"

var (
	ErrNotFound      = errors.New("leave request not found")
	ErrInvalidState  = errors.New("leave request is not pending")
	ErrInvalidRange  = errors.New("end date before start date")
	ErrForbidden     = errors.New("not allowed to decide this request")
	ErrUnknownStatus = errors.New("unknown leave decision")
)
