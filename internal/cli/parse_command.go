package cli

import (
	"context"
	"strings"

	"datelit/internal/dateutil"
)

// ParseCommand converts a YYYY-MM-DD HH:MM:SS literal to epoch seconds
type ParseCommand struct {
	app    *App
	strict bool
}

// NewParseCommand creates a new parse command handler. In strict mode a
// malformed literal is an error; otherwise it prints 0.
func NewParseCommand(app *App, strict bool) *ParseCommand {
	return &ParseCommand{app: app, strict: strict}
}

// Execute runs the parse command. Arguments are joined with a single space so
// the literal does not need quoting.
func (c *ParseCommand) Execute(ctx context.Context, args []string) error {
	literal := strings.Join(args, " ")

	if !c.strict {
		c.app.println(dateutil.DateTimeToTimestamp(literal))
		return nil
	}

	ts, err := dateutil.ParseDateTime(literal)
	if err != nil {
		return c.app.errors.Handle("parse date time", err)
	}
	c.app.println(ts)
	return nil
}
