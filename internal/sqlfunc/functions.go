package sqlfunc

import (
	"database/sql/driver"
	"math"
	"sync"

	"modernc.org/sqlite"

	"datelit/internal/dateutil"
	"datelit/internal/errors"
	"datelit/internal/logging"
	"datelit/internal/validation"
)

type scalarFunc func(ctx *sqlite.FunctionContext, args []driver.Value) (driver.Value, error)

type function struct {
	name          string
	nArgs         int32
	deterministic bool
	impl          scalarFunc
}

var (
	registerOnce sync.Once
	registerErr  error

	clockMu sync.RWMutex
	clock   dateutil.Clock = dateutil.SystemClock{}
)

// functions lists everything Register installs.
var functions = []function{
	{name: "timestamp_to_date", nArgs: 1, deterministic: true, impl: formatFunc(dateutil.TimestampToDate)},
	{name: "timestamp_to_time", nArgs: 1, deterministic: true, impl: formatFunc(dateutil.TimestampToTime)},
	{name: "timestamp_to_date_time", nArgs: 1, deterministic: true, impl: formatFunc(dateutil.TimestampToDateTime)},
	{name: "date_time_to_timestamp", nArgs: 1, deterministic: true, impl: dateTimeToTimestamp},
	{name: "timestamp_from_year_and_day_of_year", nArgs: 2, deterministic: true, impl: timestampFromYearAndDay},
	{name: "is_valid_time_format", nArgs: 1, deterministic: true, impl: predicateFunc("time", validation.IsValidTimeFormat)},
	{name: "is_valid_date_format", nArgs: 1, deterministic: true, impl: predicateFunc("date", validation.IsValidDateFormat)},
	{name: "is_valid_date_time_format", nArgs: 1, deterministic: true, impl: predicateFunc("date_time", validation.IsValidDateTimeFormat)},
	{name: "current_timestamp_seconds", nArgs: 0, deterministic: false, impl: currentTimestamp},
}

// Register installs every function on the sqlite driver. It is safe to call
// more than once; only the first call registers.
func Register() error {
	registerOnce.Do(func() {
		for _, fn := range functions {
			var err error
			if fn.deterministic {
				err = sqlite.RegisterDeterministicScalarFunction(fn.name, fn.nArgs, fn.impl)
			} else {
				err = sqlite.RegisterScalarFunction(fn.name, fn.nArgs, fn.impl)
			}
			if err != nil {
				registerErr = errors.NewDatabaseError("register function "+fn.name, err)
				return
			}
			logging.Debugf("registered sql function %s/%d\n", fn.name, fn.nArgs)
		}
	})
	return registerErr
}

// SetClock replaces the clock read by current_timestamp_seconds().
func SetClock(c dateutil.Clock) {
	if c == nil {
		c = dateutil.SystemClock{}
	}
	clockMu.Lock()
	clock = c
	clockMu.Unlock()
}

func currentClock() dateutil.Clock {
	clockMu.RLock()
	defer clockMu.RUnlock()
	return clock
}

func formatFunc(format func(int64) (string, error)) scalarFunc {
	return func(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
		ts, null, err := int64Arg(args, 0, "timestamp")
		if err != nil || null {
			return nil, err
		}
		return format(ts)
	}
}

func dateTimeToTimestamp(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	s, null, err := textArg(args, 0, "date_time")
	if err != nil || null {
		return nil, err
	}
	return dateutil.DateTimeToTimestamp(s), nil
}

func timestampFromYearAndDay(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	year, yearNull, err := int64Arg(args, 0, "year")
	if err != nil {
		return nil, err
	}
	day, dayNull, err := int64Arg(args, 1, "day_of_year")
	if err != nil {
		return nil, err
	}
	if yearNull || dayNull {
		return nil, nil
	}
	if year < math.MinInt32 || year > math.MaxInt32 {
		return nil, errors.NewOutOfRangeError("year", year, math.MinInt32, math.MaxInt32)
	}
	if day < 0 || day > math.MaxUint32 {
		return nil, errors.NewOutOfRangeError("day_of_year", day, 1, 366)
	}
	return dateutil.TimestampFromYearAndDayOfYear(int32(year), uint32(day))
}

// predicateFunc maps a literal check to 1 or 0. Non-text arguments are not
// valid literals.
func predicateFunc(field string, valid func(string) bool) scalarFunc {
	return func(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
		s, null, err := textArg(args, 0, field)
		if null {
			return nil, nil
		}
		if err != nil || !valid(s) {
			return int64(0), nil
		}
		return int64(1), nil
	}
}

func currentTimestamp(_ *sqlite.FunctionContext, _ []driver.Value) (driver.Value, error) {
	return dateutil.CurrentTimestamp(currentClock()), nil
}
