package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingCommand struct {
	args []string
}

func (c *recordingCommand) Execute(ctx context.Context, args []string) error {
	c.args = args
	return nil
}

func TestNewCommandRegistry(t *testing.T) {
	app, _ := setupTestApp(t)

	registry := NewCommandRegistry(app)
	require.NotNil(t, registry)

	for _, name := range []string{"now", "date", "time", "datetime", "parse", "parse-strict", "ordinal", "check-time", "eval"} {
		assert.Contains(t, registry.commands, name)
	}
}

func TestCommandRegistry_Execute(t *testing.T) {
	app, _ := setupTestApp(t)
	registry := NewCommandRegistry(app)

	cmd := &recordingCommand{}
	registry.Register("record", cmd)

	err := registry.Execute(context.Background(), "record", []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, cmd.args)

	err = registry.Execute(context.Background(), "missing", nil)
	assert.Error(t, err)
}

func TestCommandRegistry_GetUsage(t *testing.T) {
	app, _ := setupTestApp(t)
	usage := NewCommandRegistry(app).GetUsage()

	assert.Equal(t, "usage: datelit <check-time|date|datetime|eval|now|ordinal|parse|parse-strict|time> [args]", usage)
}
