package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStandardError_Error(t *testing.T) {
	err := NewProfileInvalidError("salary must be a number")

	assert.Equal(t, "StandardError[PROFILE_INVALID]: User profile failed schema validation", err.Error())
	assert.False(t, err.Retryable)
}

func TestConstructors_AreNeverRetryableExceptRateLimit(t *testing.T) {
	assert.False(t, NewGenerationFailedError(errors.New("boom")).Retryable)
	assert.False(t, NewGenerationTimeoutError().Retryable)
	assert.False(t, NewEmptyCandidateError().Retryable)
	assert.False(t, NewClassificationFailedError(errors.New("boom")).Retryable)
	assert.True(t, NewRateLimitedError("10.0.0.1").Retryable)
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, ErrCodeEmptyCandidate, CodeOf(NewEmptyCandidateError()))
	assert.Equal(t, ErrorCode("UNKNOWN_ERROR"), CodeOf(errors.New("plain")))
}

func TestGetErrorCategory(t *testing.T) {
	tests := []struct {
		code     ErrorCode
		expected string
	}{
		{ErrCodeGenerationFailed, "GENERATION"},
		{ErrCodeGenerationTimeout, "GENERATION"},
		{ErrCodeEmptyCandidate, "GENERATION"},
		{ErrCodeClassificationFailed, "CLASSIFICATION"},
		{ErrCodeProfileInvalid, "VALIDATION"},
		{ErrCodeRateLimited, "RATE_LIMIT"},
		{ErrorCode("SOMETHING_ELSE"), "OTHER"},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.expected, GetErrorCategory(tt.code))
		})
	}
}
