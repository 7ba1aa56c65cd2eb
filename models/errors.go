package models

import "errors"

var (
	// ErrValidation signals a missing required field in a command payload.
	ErrValidation = errors.New("required field missing")

	// ErrDuplicateEmail signals registration with an already-registered email.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrNotFound signals a lookup of a record that does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidCredential signals a password mismatch at login.
	ErrInvalidCredential = errors.New("invalid credentials")

	// ErrParse signals malformed imported JSON.
	ErrParse = errors.New("unable to parse data")

	// ErrUnsupportedSensorType signals a generator call with an unknown type.
	ErrUnsupportedSensorType = errors.New("unsupported sensor type")
)
