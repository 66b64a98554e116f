// Package sqlfunc exposes the dateutil and validation functions to SQL by
// registering them as scalar functions on the modernc.org/sqlite driver.
//
//	SELECT timestamp_to_date(0);                               -- 1970-01-01
//	SELECT date_time_to_timestamp('2024-02-29 00:00:00');      -- 1709164800
//	SELECT is_valid_time_format('12:00:00.999');               -- 1
//
// Registration is process-wide and happens once; every connection opened
// afterwards sees the functions.
package sqlfunc
