package cli

import (
	"context"
)

// FormatCommand renders an epoch-seconds argument with one of the calendar patterns
type FormatCommand struct {
	app    *App
	name   string
	format func(int64) (string, error)
}

// NewFormatCommand creates a handler that formats timestamps with format
func NewFormatCommand(app *App, name string, format func(int64) (string, error)) *FormatCommand {
	return &FormatCommand{app: app, name: name, format: format}
}

// Execute runs the format command
func (c *FormatCommand) Execute(ctx context.Context, args []string) error {
	if err := requireArgs(args, 1, "datelit "+c.name+" <timestamp>"); err != nil {
		return c.app.errors.Handle("format timestamp", err)
	}

	ts, err := parseTimestampArg(args[0])
	if err != nil {
		return c.app.errors.Handle("format timestamp", err)
	}

	text, err := c.format(ts)
	if err != nil {
		return c.app.errors.Handle("format timestamp", err)
	}

	c.app.println(text)
	return nil
}
