package models

import "errors"

// Domain errors shared across the storage, service, and handler layers.
var (
	// ErrDuplicateUsername is returned when registering a username that
	// is already taken.
	ErrDuplicateUsername = errors.New("username already taken")

	// ErrInvalidCredentials is returned on login failure. Unknown username
	// and wrong password both map here, so callers cannot enumerate users.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotFound is returned when a record does not exist or is owned by
	// a different user. The two cases are intentionally indistinguishable.
	ErrNotFound = errors.New("not found")

	// ErrValidation is returned when a required field is missing.
	ErrValidation = errors.New("missing required field")
)
