package domain

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")

	// ErrQuotaExceeded is returned when the owner already generated
	// suggestions inside the current rate window.
	ErrQuotaExceeded = errors.New("quota exceeded")

	// ErrPersistence marks failures to durably store a generation result.
	ErrPersistence = errors.New("persistence failure")

	// ErrGateway and ErrGatewayTimeout classify completion service failures.
	// They never reach callers of the suggestion pipeline.
	ErrGateway        = errors.New("completion gateway error")
	ErrGatewayTimeout = errors.New("completion gateway timeout")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// QuotaExceededError reports how long the owner has to wait before the
// next generation is allowed.
type QuotaExceededError struct {
	RetryAfter time.Duration
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("quota exceeded: retry after %ds", e.RetryAfterSeconds())
}

func (e *QuotaExceededError) Unwrap() error { return ErrQuotaExceeded }

// RetryAfterSeconds rounds the wait up to whole seconds. Never less than 1.
func (e *QuotaExceededError) RetryAfterSeconds() int {
	secs := int(math.Ceil(e.RetryAfter.Seconds()))
	if secs < 1 {
		return 1
	}
	return secs
}

// NewQuotaExceededError creates a QuotaExceededError.
func NewQuotaExceededError(retryAfter time.Duration) *QuotaExceededError {
	return &QuotaExceededError{RetryAfter: retryAfter}
}
