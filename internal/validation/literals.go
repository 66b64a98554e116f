package validation

import "datelit/internal/dateutil"

// IsValidDateFormat reports whether s is a YYYY-MM-DD literal naming a real day.
func IsValidDateFormat(s string) bool {
	_, err := dateutil.ParseDate(s)
	return err == nil
}

// IsValidDateTimeFormat reports whether s is a YYYY-MM-DD HH:MM:SS literal
// naming a real instant.
func IsValidDateTimeFormat(s string) bool {
	_, err := dateutil.ParseDateTime(s)
	return err == nil
}
