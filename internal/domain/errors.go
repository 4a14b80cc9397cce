package domain

import "errors"

// Sentinel errors shared across services, repositories, and controllers.
// Match with errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidInput = errors.New("invalid input")
)
