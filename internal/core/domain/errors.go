package domain

import "errors"

var (
	// ErrValidation covers missing or malformed input caught before any
	// store or gateway call.
	ErrValidation = errors.New("missing or invalid input")

	// ErrEmailExists is returned on duplicate signup. The message matches
	// the unique-index conflict so both paths look identical to clients.
	ErrEmailExists = errors.New("email already exists")

	// ErrInvalidCredentials deliberately does not distinguish an unknown
	// email from a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrUserNotFound = errors.New("user not found")

	// ErrGateway wraps any failure talking to the external maps service.
	ErrGateway = errors.New("maps gateway failure")
)
