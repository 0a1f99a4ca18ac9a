package auth

import "errors"

var (
	// ErrInvalidCredentials covers both unknown usernames and wrong
	// passwords so responses never reveal which half was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUsernameTaken maps the store's uniqueness violation.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrUserNotFound is returned by repository lookups for unknown ids or
	// usernames.
	ErrUserNotFound = errors.New("user not found")

	// Token verification failures. The auth gate collapses these into one
	// outward response but the kinds stay distinct for logging and for
	// callers that care.
	ErrTokenMalformed = errors.New("token malformed")
	ErrTokenSignature = errors.New("token signature mismatch")
	ErrTokenExpired   = errors.New("token expired")
)
