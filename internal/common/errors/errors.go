// Package errors provides standardized error handling for the design synthesis API.
package errors

import (
	"fmt"
	"net/http"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"

	ErrCodeProviderTimeout         ErrorCode = "PROVIDER_TIMEOUT"
	ErrCodeProviderCallFailed      ErrorCode = "PROVIDER_CALL_FAILED"
	ErrCodeProviderResponseInvalid ErrorCode = "PROVIDER_RESPONSE_INVALID"

	ErrCodeDesignNotFound  ErrorCode = "DESIGN_NOT_FOUND"
	ErrCodeSynthesisFailed ErrorCode = "SYNTHESIS_FAILED"

	ErrCodeExportFailed ErrorCode = "EXPORT_FAILED"

	ErrCodeRateLimitExceeded ErrorCode = "RATE_LIMIT_EXCEEDED"
	ErrCodeInternal          ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// HTTPStatus maps an error code onto the response status for the API surface.
func (e *StandardError) HTTPStatus() int {
	switch e.Code {
	case ErrCodeValidationFailed:
		return http.StatusBadRequest
	case ErrCodeDesignNotFound:
		return http.StatusNotFound
	case ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// NewValidationError creates a non-retryable request validation error.
func NewValidationError(message string) *StandardError {
	return &StandardError{
		Code:      ErrCodeValidationFailed,
		Message:   message,
		Retryable: false,
		Timestamp: time.Now(),
	}
}

// NewNotFoundError creates a design-not-found error.
func NewNotFoundError(designID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeDesignNotFound,
		Message:   "Design not found",
		Details:   designID,
		Retryable: false,
		Timestamp: time.Now(),
	}
}

// NewSynthesisError wraps an unexpected failure during document expansion.
// Nothing is persisted when this is returned.
func NewSynthesisError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeSynthesisFailed,
		Message:   "Failed to generate design structure",
		Details:   details,
		Retryable: true,
		Timestamp: time.Now(),
	}
}

// NewExportError wraps a failure from the external design-tool adapter.
func NewExportError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeExportFailed,
		Message:   "Failed to export design",
		Details:   details,
		Retryable: true,
		Timestamp: time.Now(),
	}
}
