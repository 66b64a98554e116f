package validation

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationErrorType classifies why a field of a literal was rejected
type ValidationErrorType string

const (
	ErrorTypeInvalidFormat ValidationErrorType = "invalid_format"
	ErrorTypeInvalidLength ValidationErrorType = "invalid_length"
	ErrorTypeInvalidValue  ValidationErrorType = "invalid_value"
	ErrorTypeInvalidRange  ValidationErrorType = "invalid_range"
)

// FieldError is one rejected field of a time literal
type FieldError struct {
	Field   string
	Type    ValidationErrorType
	Message string
	Value   interface{}
}

// ValidationError lists every rejected field of a single time literal
type ValidationError struct {
	Literal string
	Errors  []FieldError
}

func (ve *ValidationError) Error() string {
	if len(ve.Errors) == 0 {
		return fmt.Sprintf("invalid time literal %q", ve.Literal)
	}

	messages := make([]string, len(ve.Errors))
	for i, fe := range ve.Errors {
		messages[i] = fe.Message
	}
	return fmt.Sprintf("invalid time literal %q: %s", ve.Literal, strings.Join(messages, "; "))
}

// IsValidationError checks if an error is, or wraps, a ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func (ve *ValidationError) add(field string, errorType ValidationErrorType, value interface{}, format string, args ...interface{}) {
	ve.Errors = append(ve.Errors, FieldError{
		Field:   field,
		Type:    errorType,
		Message: fmt.Sprintf(format, args...),
		Value:   value,
	})
}

func (ve *ValidationError) addLengthError(n int) {
	ve.add("length", ErrorTypeInvalidLength, n,
		"length %d is not between %d and %d", n, MinTimeLiteralLength, MaxTimeLiteralLength)
}

func (ve *ValidationError) addFormatError() {
	ve.add("format", ErrorTypeInvalidFormat, ve.Literal, "expected %s", TimeLiteralFormat)
}

func (ve *ValidationError) addValueError(field, text string) {
	ve.add(field, ErrorTypeInvalidValue, text, "%s %q is not an unsigned integer", field, text)
}

func (ve *ValidationError) addRangeError(field string, n, limit uint64) {
	ve.add(field, ErrorTypeInvalidRange, n, "%s %d must be less than %d", field, n, limit)
}
