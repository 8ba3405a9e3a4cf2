package service

import (
	"errors"
	"fmt"
)

// Domain errors. Operations wrap them with detail; callers branch with errors.Is.
// Anything else returned by a service is an internal failure.
var (
	ErrValidation        = errors.New("validation failed")
	ErrNotFound          = errors.New("not found")
	ErrForbidden         = errors.New("access denied")
	ErrInvalidTransition = errors.New("cannot change status after due date")
	ErrUnauthenticated   = errors.New("invalid credentials")
)

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func notFoundError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}
