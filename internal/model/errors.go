package model

import (
	"errors"
	"fmt"
)

// Common errors used across the application
var (
	// User errors
	ErrUserNotFound   = errors.New("user not found")
	ErrUsernameExists = errors.New("username already exists")

	// Player errors
	ErrPlayerNotFound = errors.New("player not found")

	// Photo errors
	ErrPhotoNotFound   = errors.New("photo not found")
	ErrInvalidFilename = errors.New("invalid filename")
)

// ValidationError reports a missing or invalid form field
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field %q is required", e.Field)
}

// NewValidationError creates a ValidationError for the given field
func NewValidationError(field string) error {
	return &ValidationError{Field: field}
}
