package cli

import (
	stderrors "errors"
	"fmt"

	"datelit/internal/errors"
	"datelit/internal/logging"
	"datelit/internal/validation"
)

// Exit codes returned by the datelit binary
const (
	ExitOK         = 0
	ExitFailure    = 1
	ExitInputError = 2
)

// commandError carries the message shown to the user and keeps the cause reachable for errors.As
type commandError struct {
	message string
	cause   error
}

func (e *commandError) Error() string { return e.message }
func (e *commandError) Unwrap() error { return e.cause }

// ErrorHandler provides centralized error handling for command handlers
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Handle provides user-friendly error messages for validation and other errors
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if !eh.IsInputError(err) && !eh.IsValidationError(err) {
		logging.Debugf("%s failed [%s]: %v\n", operation, eh.GetErrorCode(err), err)
	}

	var validationErr *validation.ValidationError
	if stderrors.As(err, &validationErr) {
		return &commandError{message: fmt.Sprintf("failed to %s: %s", operation, validationErr.Error()), cause: err}
	}

	if _, ok := errors.AsAppError(err); ok {
		return &commandError{message: fmt.Sprintf("failed to %s: %s", operation, errors.GetUserMessage(err)), cause: err}
	}

	return fmt.Errorf("failed to %s: %w", operation, err)
}

// IsValidationError checks if an error is a validation error
func (eh *ErrorHandler) IsValidationError(err error) bool {
	return validation.IsValidationError(err)
}

// IsInputError reports errors caused by the literal or number the user supplied
func (eh *ErrorHandler) IsInputError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeInvalidInput) ||
		errors.IsErrorType(err, errors.ErrorTypeOutOfRange) ||
		errors.IsErrorType(err, errors.ErrorTypeParse)
}

// GetErrorCode returns the error code for structured errors
func (eh *ErrorHandler) GetErrorCode(err error) string {
	return errors.GetErrorCode(err)
}

// ExitCode maps a command error to the process exit status
func (eh *ErrorHandler) ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case eh.IsInputError(err), eh.IsValidationError(err):
		return ExitInputError
	default:
		return ExitFailure
	}
}
