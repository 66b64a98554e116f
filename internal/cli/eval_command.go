package cli

import (
	"context"
	"strings"

	"datelit/internal/config"
	"datelit/internal/logging"
)

// EvalCommand evaluates a SQL expression with the datelit functions registered
type EvalCommand struct {
	app *App
}

// NewEvalCommand creates a new eval command handler
func NewEvalCommand(app *App) *EvalCommand {
	return &EvalCommand{app: app}
}

// Execute runs the eval command
func (c *EvalCommand) Execute(ctx context.Context, args []string) error {
	expr := strings.Join(args, " ")

	engine, err := config.CreateEngine(ctx, c.app.config)
	if err != nil {
		return c.app.errors.Handle("open sql engine", err)
	}
	defer func() {
		if cerr := engine.Close(); cerr != nil {
			logging.Debugf("closing sql engine: %v\n", cerr)
		}
	}()

	result, err := engine.Eval(ctx, expr)
	if err != nil {
		return c.app.errors.Handle("evaluate expression", err)
	}

	c.app.println(result)
	return nil
}
