package sqlfunc

import (
	"database/sql/driver"
	"math"
	"strconv"

	"datelit/internal/errors"
)

// int64Arg converts SQL argument i to an int64. The boolean is true for NULL.
func int64Arg(args []driver.Value, i int, name string) (int64, bool, error) {
	switch v := args[i].(type) {
	case nil:
		return 0, true, nil
	case int64:
		return v, false, nil
	case float64:
		if v != math.Trunc(v) || v < math.MinInt64 || v >= math.MaxInt64 {
			return 0, false, errors.NewInvalidInputError(name, v, "not an integer")
		}
		return int64(v), false, nil
	default:
		return 0, false, errors.NewInvalidInputError(name, v, "not an integer")
	}
}

// textArg converts SQL argument i to a string. The boolean is true for NULL.
func textArg(args []driver.Value, i int, name string) (string, bool, error) {
	switch v := args[i].(type) {
	case nil:
		return "", true, nil
	case string:
		return v, false, nil
	case []byte:
		return string(v), false, nil
	default:
		return "", false, errors.NewInvalidInputError(name, v, "not text")
	}
}

// renderValue formats a scanned SQL value the way the sqlite3 shell prints it.
func renderValue(v interface{}) string {
	switch v := v.(type) {
	case nil:
		return "NULL"
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case string:
		return v
	case []byte:
		return string(v)
	case bool:
		if v {
			return "1"
		}
		return "0"
	default:
		return ""
	}
}
