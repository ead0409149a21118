package auth

import "errors"

// Caller-facing failures. Authentication errors are deliberately coarse:
// ErrInvalidCredentials covers unknown email and wrong password, and
// ErrUnauthorized covers every way a bearer token can be rejected.
var (
	ErrValidation         = errors.New("invalid input")
	ErrAlreadyExists      = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("invalid or expired token")
	ErrNotFound           = errors.New("user not found")
	ErrInternal           = errors.New("internal error")
)

// Token verification outcomes. These stay inside the service; callers only
// ever see ErrUnauthorized.
var (
	ErrTokenMalformed = errors.New("token malformed")
	ErrTokenExpired   = errors.New("token expired")
)
