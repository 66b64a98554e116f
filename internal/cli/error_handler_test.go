package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "datelit/internal/errors"
	"datelit/internal/validation"
)

func TestErrorHandler_Handle(t *testing.T) {
	eh := NewErrorHandler()

	tests := []struct {
		name      string
		operation string
		err       error
		expected  string
	}{
		{
			name:      "Validation error",
			operation: "validate time literal",
			err:       validation.ValidateTimeLiteral("12:60:00"),
			expected:  `failed to validate time literal: invalid time literal "12:60:00": minutes 60 must be less than 60`,
		},
		{
			name:      "Out of range error",
			operation: "format timestamp",
			err:       apperrors.NewOutOfRangeError("timestamp", 5, 0, 1),
			expected:  "failed to format timestamp: timestamp 5 is outside the supported range [0, 1]",
		},
		{
			name:      "Database error",
			operation: "evaluate expression",
			err:       apperrors.NewDatabaseError("evaluate", errors.New("boom")),
			expected:  "failed to evaluate expression: The SQL expression could not be evaluated.",
		},
		{
			name:      "Regular error",
			operation: "process",
			err:       errors.New("regular error"),
			expected:  "failed to process: regular error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := eh.Handle(tt.operation, tt.err)
			assert.EqualError(t, result, tt.expected)
		})
	}
}

func TestErrorHandler_Classification(t *testing.T) {
	eh := NewErrorHandler()

	assert.True(t, eh.IsValidationError(validation.ValidateTimeLiteral("ab:cd:ef")))
	assert.False(t, eh.IsValidationError(errors.New("plain")))

	assert.True(t, eh.IsInputError(apperrors.NewParseError("x", "%Y", nil)))
	assert.True(t, eh.IsInputError(apperrors.NewOutOfRangeError("year", 1, 2, 3)))
	assert.True(t, eh.IsInputError(apperrors.NewInvalidInputError("year", "x", "bad")))
	assert.False(t, eh.IsInputError(apperrors.NewDatabaseError("open", nil)))

	assert.Equal(t, "OUT_OF_RANGE", eh.GetErrorCode(apperrors.NewOutOfRangeError("year", 1, 2, 3)))
}

func TestErrorHandler_HandleKeepsCause(t *testing.T) {
	eh := NewErrorHandler()

	err := eh.Handle("parse date time", apperrors.NewParseError("garbage", "%Y-%m-%d %H:%M:%S", nil))
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeParse))

	err = eh.Handle("validate time literal", validation.ValidateTimeLiteral("24:00:00"))
	assert.True(t, eh.IsValidationError(err))
}

func TestErrorHandler_ExitCode(t *testing.T) {
	eh := NewErrorHandler()

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"No error", nil, ExitOK},
		{"Handled parse error", eh.Handle("parse", apperrors.NewParseError("x", "%Y", nil)), ExitInputError},
		{"Handled validation error", eh.Handle("check", validation.ValidateTimeLiteral("ab:cd:ef")), ExitInputError},
		{"Out of range", apperrors.NewOutOfRangeError("timestamp", 1, 2, 3), ExitInputError},
		{"Database error", eh.Handle("eval", apperrors.NewDatabaseError("evaluate", errors.New("boom"))), ExitFailure},
		{"Plain error", errors.New("unknown command"), ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, eh.ExitCode(tt.err))
		})
	}
}
