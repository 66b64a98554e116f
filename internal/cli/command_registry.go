package cli

import (
	"context"
	"sort"
	"strings"

	"datelit/internal/dateutil"
	"datelit/internal/errors"
)

// Command represents a CLI command
type Command interface {
	Execute(ctx context.Context, args []string) error
}

// CommandRegistry manages all available commands
type CommandRegistry struct {
	commands map[string]Command
}

// NewCommandRegistry creates a new command registry
func NewCommandRegistry(app *App) *CommandRegistry {
	registry := &CommandRegistry{
		commands: make(map[string]Command),
	}

	registry.Register("now", NewNowCommand(app))
	registry.Register("date", NewFormatCommand(app, "date", dateutil.TimestampToDate))
	registry.Register("time", NewFormatCommand(app, "time", dateutil.TimestampToTime))
	registry.Register("datetime", NewFormatCommand(app, "datetime", dateutil.TimestampToDateTime))
	registry.Register("parse", NewParseCommand(app, false))
	registry.Register("parse-strict", NewParseCommand(app, true))
	registry.Register("ordinal", NewOrdinalCommand(app))
	registry.Register("check-time", NewCheckTimeCommand(app))
	registry.Register("eval", NewEvalCommand(app))

	return registry
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(name string, command Command) {
	r.commands[name] = command
}

// Execute runs the specified command with the given arguments
func (r *CommandRegistry) Execute(ctx context.Context, commandName string, args []string) error {
	command, exists := r.commands[commandName]
	if !exists {
		return errors.NewInvalidInputError("command", commandName, "unknown command")
	}
	return command.Execute(ctx, args)
}

// GetUsage returns the usage string for the CLI
func (r *CommandRegistry) GetUsage() string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return "usage: datelit <" + strings.Join(names, "|") + "> [args]"
}
