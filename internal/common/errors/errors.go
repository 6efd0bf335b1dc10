// Package errors provides standardized error handling for the advisory
// pipeline. Generation and classification failures are never surfaced to the
// caller; these types exist so the degrade paths stay visible in logs,
// metrics and the audit trail.
package errors

import (
	"fmt"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeGenerationFailed     ErrorCode = "GENERATION_FAILED"
	ErrCodeGenerationTimeout    ErrorCode = "GENERATION_TIMEOUT"
	ErrCodeEmptyCandidate       ErrorCode = "EMPTY_CANDIDATE"
	ErrCodeClassificationFailed ErrorCode = "CLASSIFICATION_FAILED"
	ErrCodeProfileInvalid       ErrorCode = "PROFILE_INVALID"
	ErrCodeRateLimited          ErrorCode = "RATE_LIMITED"
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

// ==========================
// 2. Error Constructors
// ==========================

// NewGenerationFailedError covers transport errors and malformed payloads
// from the generation service. Never retryable: the pipeline favors the
// deterministic fallback over resilience-through-retry.
func NewGenerationFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeGenerationFailed,
		Message:   "Generation service call failed",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewGenerationTimeoutError covers context deadline/cancellation during a
// generation call.
func NewGenerationTimeoutError() *StandardError {
	return &StandardError{
		Code:      ErrCodeGenerationTimeout,
		Message:   "Generation service call timed out",
		Details:   "call exceeded the transport deadline",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewEmptyCandidateError covers a 2xx response carrying no usable text.
func NewEmptyCandidateError() *StandardError {
	return &StandardError{
		Code:      ErrCodeEmptyCandidate,
		Message:   "Generation result had no candidate text",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewClassificationFailedError covers any emotion classification failure.
// Callers coerce to the neutral emotion and continue.
func NewClassificationFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeClassificationFailed,
		Message:   "Emotion classification failed",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewProfileInvalidError covers schema violations at the API boundary.
func NewProfileInvalidError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeProfileInvalid,
		Message:   "User profile failed schema validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewRateLimitedError covers a rejected request at the HTTP boundary.
func NewRateLimitedError(clientKey string) *StandardError {
	return &StandardError{
		Code:      ErrCodeRateLimited,
		Message:   "Request rate limit exceeded",
		Details:   fmt.Sprintf("client: %s", clientKey),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. Utility Functions
// ==========================

// CodeOf extracts the ErrorCode from an error, or UNKNOWN_ERROR.
func CodeOf(err error) ErrorCode {
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr.Code
	}
	return "UNKNOWN_ERROR"
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	switch code {
	case ErrCodeGenerationFailed, ErrCodeGenerationTimeout, ErrCodeEmptyCandidate:
		return "GENERATION"
	case ErrCodeClassificationFailed:
		return "CLASSIFICATION"
	case ErrCodeProfileInvalid:
		return "VALIDATION"
	case ErrCodeRateLimited:
		return "RATE_LIMIT"
	default:
		return "OTHER"
	}
}
