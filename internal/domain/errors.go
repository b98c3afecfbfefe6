package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is matched by repo and service errors when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is matched by service errors when input fails business
// rule validation (e.g. missing required field, end date before start date).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// NotFoundError reports that a specific entity with a specific id is absent.
// It matches ErrNotFound under errors.Is, so callers can test for the kind
// without losing the id in the message.
type NotFoundError struct {
	Entity string // "trip" or "expense"
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Entity, e.ID)
}

// Is lets errors.Is(err, ErrNotFound) succeed for NotFoundError values.
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ValidationError reports a single failed input constraint with the field
// path it applies to. It matches ErrValidation under errors.Is.
type ValidationError struct {
	Field   string // input field path, e.g. "end_date" or "amount"
	Message string // human-readable constraint, e.g. "amount must be positive"
}

func (e *ValidationError) Error() string { return e.Message }

// Is lets errors.Is(err, ErrValidation) succeed for ValidationError values.
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
