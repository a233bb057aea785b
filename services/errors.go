package services

import "errors"

var (
	// ErrNotFound marks a lookup whose target id does not exist.
	ErrNotFound = errors.New("not found")
	// ErrValidation marks malformed input: missing required fields, unknown
	// enum values, uniqueness violations.
	ErrValidation = errors.New("validation failed")
)
