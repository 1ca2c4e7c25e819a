package service

import "errors"

// Common service-level errors.
var (
	// ErrCurrentPasswordIncorrect is returned by ChangePassword when the
	// supplied current password does not match the stored hash.
	ErrCurrentPasswordIncorrect = errors.New("current password is incorrect")

	// ErrSamePassword is returned by ChangePassword when the new password
	// equals the current one.
	ErrSamePassword = errors.New("new password cannot be the same as the current password")

	// ErrMissingPassword is returned when an operation requires a password
	// that was not provided.
	ErrMissingPassword = errors.New("password is required")
)
