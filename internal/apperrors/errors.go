package apperrors

import "errors"

// Sentinel errors shared by services and controllers. Controllers translate
// these into HTTP statuses; services wrap them with context via %w.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("user already exists")

	ErrScheduleFull      = errors.New("no available seats for this schedule")
	ErrAlreadyRegistered = errors.New("user already registered for this schedule")
	ErrResultNotPassed   = errors.New("result did not pass, no certificate can be issued")
)
