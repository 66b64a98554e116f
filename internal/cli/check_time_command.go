package cli

import (
	"context"

	"datelit/internal/validation"
)

// CheckTimeCommand validates an HH:MM:SS[.mmm] literal
type CheckTimeCommand struct {
	app *App
}

// NewCheckTimeCommand creates a new check-time command handler
func NewCheckTimeCommand(app *App) *CheckTimeCommand {
	return &CheckTimeCommand{app: app}
}

// Execute prints "valid" or returns an error describing each failing field
func (c *CheckTimeCommand) Execute(ctx context.Context, args []string) error {
	if err := requireArgs(args, 1, "datelit check-time <literal>"); err != nil {
		return c.app.errors.Handle("validate time literal", err)
	}

	if err := validation.ValidateTimeLiteral(args[0]); err != nil {
		return c.app.errors.Handle("validate time literal", err)
	}

	c.app.println("valid")
	return nil
}
