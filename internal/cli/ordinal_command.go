package cli

import (
	"context"
	"strconv"

	"datelit/internal/dateutil"
	"datelit/internal/errors"
)

// OrdinalCommand prints UTC midnight of a (year, day-of-year) pair
type OrdinalCommand struct {
	app *App
}

// NewOrdinalCommand creates a new ordinal command handler
func NewOrdinalCommand(app *App) *OrdinalCommand {
	return &OrdinalCommand{app: app}
}

// Execute runs the ordinal command
func (c *OrdinalCommand) Execute(ctx context.Context, args []string) error {
	if err := requireArgs(args, 2, "datelit ordinal <year> <day-of-year>"); err != nil {
		return c.app.errors.Handle("build ordinal date", err)
	}

	year, err := strconv.ParseInt(args[0], 10, 32)
	if err != nil {
		return c.app.errors.Handle("build ordinal date",
			errors.NewInvalidInputError("year", args[0], "must be an integer"))
	}
	day, err := strconv.ParseUint(args[1], 10, 32)
	if err != nil {
		return c.app.errors.Handle("build ordinal date",
			errors.NewInvalidInputError("day_of_year", args[1], "must be a positive integer"))
	}

	ts, err := dateutil.TimestampFromYearAndDayOfYear(int32(year), uint32(day))
	if err != nil {
		return c.app.errors.Handle("build ordinal date", err)
	}

	c.app.println(ts)
	return nil
}
