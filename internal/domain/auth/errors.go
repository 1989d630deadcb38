package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidProfile     = errors.New("name is required")
	ErrWeakPassword       = errors.New("password is too short")
	ErrUnknownRole        = errors.New("unknown role")
	ErrRoleLocked         = errors.New("role permissions are read-only")
	ErrUnknownPermission  = errors.New("unknown or non-grantable permission")
)
