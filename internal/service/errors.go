package service

import "errors"

var (
	// ErrNoActiveSession is returned by Restore when nothing is
	// persisted locally.
	ErrNoActiveSession = errors.New("no active session")

	// ErrSessionExpired is returned by Restore when the persisted
	// record exists but either expiry clock has passed. The record is
	// cleared before the error is returned.
	ErrSessionExpired = errors.New("session expired")

	// ErrNotAuthenticated guards operations that require an
	// established identity.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrDocumentMalformed is an input error: the entered document is
	// not a well-formed DNI or RUC. Recovered locally, never sent to
	// the backend.
	ErrDocumentMalformed = errors.New("malformed document")

	// ErrCodeMalformed is an input error: the entered code is not six
	// digits. Recovered locally, never sent to the backend.
	ErrCodeMalformed = errors.New("malformed verification code")

	// ErrResendNotAllowed is returned when a resend is requested
	// before the cooldown has elapsed. The outstanding challenge and
	// the cooldown are left untouched.
	ErrResendNotAllowed = errors.New("resend cooldown has not elapsed")

	// ErrWrongLoginState is returned when a login operation is invoked
	// in a state that does not admit it.
	ErrWrongLoginState = errors.New("operation not allowed in current login state")
)
