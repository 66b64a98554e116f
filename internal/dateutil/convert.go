package dateutil

import (
	"strings"
	"time"

	"github.com/ncruces/go-strftime"

	"datelit/internal/errors"
)

// Patterns matched verbatim by downstream comparison and display logic.
const (
	DatePattern     = "%Y-%m-%d"
	TimePattern     = "%H:%M:%S"
	DateTimePattern = "%Y-%m-%d %H:%M:%S"
)

// Bounds of the four-digit year range, 0000-01-01 00:00:00 to 9999-12-31 23:59:59 UTC.
const (
	MinTimestamp int64 = -62167219200
	MaxTimestamp int64 = 253402300799
)

// CheckTimestamp returns an out_of_range error if ts has no calendar representation.
func CheckTimestamp(ts int64) error {
	if ts < MinTimestamp || ts > MaxTimestamp {
		return errors.NewOutOfRangeError("timestamp", ts, MinTimestamp, MaxTimestamp)
	}
	return nil
}

// TimestampToDate formats ts as YYYY-MM-DD in UTC.
func TimestampToDate(ts int64) (string, error) {
	return formatTimestamp(DatePattern, ts)
}

// TimestampToTime formats the time-of-day of ts as HH:MM:SS in UTC.
func TimestampToTime(ts int64) (string, error) {
	return formatTimestamp(TimePattern, ts)
}

// TimestampToDateTime formats ts as YYYY-MM-DD HH:MM:SS in UTC.
func TimestampToDateTime(ts int64) (string, error) {
	return formatTimestamp(DateTimePattern, ts)
}

func formatTimestamp(pattern string, ts int64) (string, error) {
	if err := CheckTimestamp(ts); err != nil {
		return "", err
	}
	return strftime.Format(pattern, time.Unix(ts, 0).UTC()), nil
}

// DateTimeToTimestamp parses a YYYY-MM-DD HH:MM:SS literal as UTC and returns
// its epoch seconds. Any malformed input yields 0, which is indistinguishable
// from "1970-01-01 00:00:00"; callers that need to tell the two apart use
// ParseDateTime.
func DateTimeToTimestamp(s string) int64 {
	ts, err := ParseDateTime(s)
	if err != nil {
		return 0
	}
	return ts
}

// ParseDateTime parses a YYYY-MM-DD HH:MM:SS literal as UTC.
func ParseDateTime(s string) (int64, error) {
	return parseLiteral(DateTimePattern, s)
}

// ParseDate parses a YYYY-MM-DD literal as UTC midnight.
func ParseDate(s string) (int64, error) {
	return parseLiteral(DatePattern, s)
}

func parseLiteral(pattern, s string) (int64, error) {
	// time.Parse silently consumes a fractional second after %S, whatever its value.
	if strings.ContainsAny(s, ".,") {
		return 0, errors.NewParseError(s, pattern, nil).WithContext("reason", "fractional seconds")
	}
	t, err := strftime.Parse(pattern, s)
	if err != nil {
		return 0, errors.NewParseError(s, pattern, err)
	}
	ts := t.Unix()
	if err := CheckTimestamp(ts); err != nil {
		return 0, errors.NewParseError(s, pattern, err)
	}
	return ts, nil
}
