package service

import "errors"

// Sentinel errors form the domain error taxonomy. Controllers translate them
// to HTTP statuses; everything else is an internal error.
var (
	// ErrValidation covers malformed domain input that survives binding,
	// e.g. a correct-answer index outside the option range.
	ErrValidation = errors.New("invalid input")

	// ErrConflict signals a duplicate unique field.
	ErrConflict = errors.New("resource already exists")

	// ErrNotAuthorized signals a roster identifier no teacher pre-approved.
	ErrNotAuthorized = errors.New("not authorized")

	// ErrInvalidCredentials is deliberately uniform: unknown identity and
	// wrong password are indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNotFound covers both a missing resource and one owned by someone
	// else; the two cases are not distinguished.
	ErrNotFound = errors.New("resource not found")

	// ErrAlreadyTaken signals a duplicate exam attempt.
	ErrAlreadyTaken = errors.New("exam already taken")
)
