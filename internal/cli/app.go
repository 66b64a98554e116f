package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"datelit/internal/config"
	"datelit/internal/dateutil"
	"datelit/internal/errors"
)

// App represents the main CLI application
type App struct {
	config   *config.Config
	out      io.Writer
	registry *CommandRegistry
	errors   *ErrorHandler
}

// NewApp creates a new CLI application that writes results to out
func NewApp(cfg *config.Config, out io.Writer) *App {
	app := &App{
		config: cfg,
		out:    out,
		errors: NewErrorHandler(),
	}
	app.registry = NewCommandRegistry(app)
	return app
}

// Run dispatches args[0] to its registered command handler
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%s", a.registry.GetUsage())
	}

	return a.registry.Execute(ctx, args[0], args[1:])
}

// clock returns the clock selected by the current configuration
func (a *App) clock() dateutil.Clock {
	return a.config.NewClock()
}

// println writes a single result line
func (a *App) println(v interface{}) {
	fmt.Fprintln(a.out, v)
}

// parseTimestampArg parses an epoch-seconds argument
func parseTimestampArg(s string) (int64, error) {
	ts, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errors.NewInvalidInputError("timestamp", s, "must be an integer number of seconds")
	}
	return ts, nil
}

// requireArgs checks the argument count for handlers that are invoked without cobra
func requireArgs(args []string, n int, usage string) error {
	if len(args) != n {
		return errors.NewInvalidInputError("arguments", args, "usage: "+usage)
	}
	return nil
}
