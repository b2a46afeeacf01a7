package domain

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrPropertyNotFound = errors.New("property not found")
	ErrBookingNotFound  = errors.New("booking not found")

	// ErrAuthenticationFailed covers both unknown email and wrong password.
	// The two cases are deliberately indistinguishable to the caller.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrReferenceNotFound is returned when a create operation names a user
	// or property that does not exist (or has the wrong role).
	ErrReferenceNotFound = errors.New("referenced record not found")

	ErrInvalidRole   = errors.New("invalid role")
	ErrInvalidStatus = errors.New("invalid booking status")
)
