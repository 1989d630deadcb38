package engagement

import "errors"

var (
	ErrPlanNotFound     = errors.New("benefit plan not found")
	ErrAlreadyEnrolled  = errors.New("employee already enrolled in this plan")
	ErrNotEnrolled      = errors.New("employee is not enrolled in this plan")
	ErrEmployeeNotFound = errors.New("employee not found")
)
