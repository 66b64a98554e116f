package dateutil

import (
	"time"

	"datelit/internal/errors"
)

// IsLeapYear reports whether year has 366 days in the proleptic Gregorian calendar.
func IsLeapYear(year int32) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns 365 or 366.
func DaysInYear(year int32) uint32 {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// TimestampFromYearAndDayOfYear returns UTC midnight of the dayOfYear-th
// (1-based) day of year. Any int32 year is accepted, including years before
// 0000 and after 9999 that the %Y formatters cannot render.
func TimestampFromYearAndDayOfYear(year int32, dayOfYear uint32) (int64, error) {
	days := DaysInYear(year)
	if dayOfYear < 1 || dayOfYear > days {
		return 0, errors.NewOutOfRangeError("day_of_year", dayOfYear, 1, days).
			WithContext("year", year)
	}
	// time.Date normalizes January 60 into the right month.
	t := time.Date(int(year), time.January, int(dayOfYear), 0, 0, 0, 0, time.UTC)
	return t.Unix(), nil
}
