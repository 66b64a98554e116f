package cli

import (
	"context"

	"datelit/internal/dateutil"
)

// NowCommand prints the current epoch seconds
type NowCommand struct {
	app *App
}

// NewNowCommand creates a new now command handler
func NewNowCommand(app *App) *NowCommand {
	return &NowCommand{app: app}
}

// Execute runs the now command
func (c *NowCommand) Execute(ctx context.Context, args []string) error {
	if err := requireArgs(args, 0, "datelit now"); err != nil {
		return c.app.errors.Handle("read clock", err)
	}
	c.app.println(dateutil.CurrentTimestamp(c.app.clock()))
	return nil
}
