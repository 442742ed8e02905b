package common

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by every repository and service. Callers wrap these with
// fmt.Errorf("...: %w", ...) and the HTTP layer maps them with errors.Is.
var (
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInvalidState    = errors.New("invalid state")
)

// ConflictError reports the slots a proposed interval collides with.
type ConflictError struct {
	Resource string
	IDs      []uint
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s conflicts with %d existing record(s)", e.Resource, len(e.IDs))
}

// Count is the number of colliding records.
func (e *ConflictError) Count() int {
	return len(e.IDs)
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

// NotFoundf wraps ErrNotFound with a formatted message.
func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrNotFound)
}

// InvalidArgumentf wraps ErrInvalidArgument with a formatted message.
func InvalidArgumentf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidArgument)
}

// InvalidStatef wraps ErrInvalidState with a formatted message.
func InvalidStatef(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidState)
}

// Conflictf wraps ErrConflict with a formatted message.
func Conflictf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrConflict)
}
