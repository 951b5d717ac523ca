package adapter

import "errors"

// Sentinel errors produced by mapping backend HTTP statuses. The login
// flow relies on the distinction between ErrNotFound (no account for
// that document and role) and ErrServiceUnavailable (backend or
// database down) to show the right message instead of a generic one.
var (
	ErrBadRequest         = errors.New("bad request")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCode        = errors.New("invalid verification code")
	ErrCodeExpired        = errors.New("verification code expired")
	ErrServiceUnavailable = errors.New("service unavailable")
	ErrInternalServer     = errors.New("internal server error")
)
