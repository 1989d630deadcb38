package assistant

import "errors"

var (
	ErrUnavailable     = errors.New("text generation is not configured")
	ErrInvalidResponse = errors.New("text generator returned an unexpected shape")
	ErrInvalidInput    = errors.New("assistant input is incomplete")
)
