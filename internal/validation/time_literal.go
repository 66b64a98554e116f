package validation

import (
	"strconv"
	"strings"
)

// Length bounds of HH:MM:SS and HH:MM:SS.mmm literals.
const (
	MinTimeLiteralLength = 8
	MaxTimeLiteralLength = 12
)

// TimeLiteralFormat describes the accepted time literal shape.
const TimeLiteralFormat = "HH:MM:SS[.mmm]"

type timeField struct {
	name  string
	text  string
	limit uint64
}

// IsValidTimeFormat reports whether s is a valid HH:MM:SS or HH:MM:SS.mmm literal.
func IsValidTimeFormat(s string) bool {
	return ValidateTimeLiteral(s) == nil
}

// ValidateTimeLiteral checks s against the time literal grammar and reports
// every failing field. A nil return means the literal is valid.
func ValidateTimeLiteral(s string) error {
	ve := &ValidationError{Literal: s}

	if len(s) < MinTimeLiteralLength || len(s) > MaxTimeLiteralLength {
		ve.addLengthError(len(s))
		return ve
	}

	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		ve.addFormatError()
		return ve
	}

	seconds, millis, hasMillis := strings.Cut(parts[2], ".")
	fields := []timeField{
		{name: "hours", text: parts[0], limit: 24},
		{name: "minutes", text: parts[1], limit: 60},
		{name: "seconds", text: seconds, limit: 60},
	}
	if hasMillis {
		fields = append(fields, timeField{name: "milliseconds", text: millis, limit: 1000})
	}

	for _, f := range fields {
		n, err := strconv.ParseUint(f.text, 10, 32)
		if err != nil {
			ve.addValueError(f.name, f.text)
			continue
		}
		if n >= f.limit {
			ve.addRangeError(f.name, n, f.limit)
		}
	}

	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}
