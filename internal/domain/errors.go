package domain

import (
	"errors"
	"strings"
)

// Sentinels shared by the service, storage and transport layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")

	// ErrSessionCompleted is returned when a progress update would move a
	// completed study session back to in-progress without an explicit clear.
	ErrSessionCompleted = errors.New("session already completed")
)

// FieldError is a rejected input field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError carries the rejected fields of one request. It matches
// ErrValidation under errors.Is.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("validation: ")
	for i, fe := range e.Errors {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(fe.Field)
		b.WriteByte(' ')
		b.WriteString(fe.Message)
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

func NewValidationError(field, message string) *ValidationError {
	return NewValidationErrors(FieldError{Field: field, Message: message})
}

func NewValidationErrors(errs ...FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
