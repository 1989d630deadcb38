package compliance

import "errors"

var (
	ErrNotFound        = errors.New("compliance document not found")
	ErrNotAssigned     = errors.New("document is not assigned to this employee")
	ErrAlreadySigned   = errors.New("document already signed")
	ErrUnknownAudience = errors.New("assignedTo must be \"all\" or a department id")
)
