package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datelit/internal/config"
	"datelit/internal/logging"
)

func runRoot(t *testing.T, args ...string) (string, *config.Config, error) {
	t.Helper()

	cfg := config.NewConfig()
	var out bytes.Buffer
	root := NewRootCommand(cfg, &out)
	err := root.ExecuteArgs(args)
	return out.String(), cfg, err
}

func TestRootCommand_Subcommands(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"now with flag", []string{"--now", "86400", "now"}, "86400\n"},
		{"date", []string{"date", "0"}, "1970-01-01\n"},
		{"negative timestamp after --", []string{"time", "--", "-1"}, "23:59:59\n"},
		{"datetime", []string{"datetime", "1709164800"}, "2024-02-29 00:00:00\n"},
		{"parse", []string{"parse", "2024-02-29", "00:00:00"}, "1709164800\n"},
		{"parse malformed", []string{"parse", "garbage"}, "0\n"},
		{"parse strict", []string{"parse", "--strict", "1970-01-01 00:00:01"}, "1\n"},
		{"ordinal", []string{"ordinal", "2024", "60"}, "1709164800\n"},
		{"check-time", []string{"check-time", "23:59:59"}, "valid\n"},
		{"eval with fixed clock", []string{"--now", "0", "eval", "timestamp_to_date_time(current_timestamp_seconds())"}, "1970-01-01 00:00:00\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := runRoot(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestRootCommand_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"strict parse failure", []string{"parse", "--strict", "garbage"}},
		{"invalid time literal", []string{"check-time", "12:00:60"}},
		{"wrong arg count", []string{"date"}},
		{"fixed clock out of range", []string{"--now", "999999999999", "now"}},
		{"unknown subcommand", []string{"yesterday"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runRoot(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestRootCommand_FlagOverrides(t *testing.T) {
	defer logging.SetVerbose(false)

	_, cfg, err := runRoot(t,
		"--db-dsn", "file::memory:",
		"--db-query-timeout", "2s",
		"--app-timeout", "10s",
		"--verbose",
		"date", "0")
	require.NoError(t, err)

	assert.Equal(t, "file::memory:", cfg.Database.DSN)
	assert.Equal(t, 2*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, 10*time.Second, cfg.Application.Timeout)
	assert.True(t, cfg.Application.Verbose)
}

func TestRootCommand_UnsetFlagsKeepConfig(t *testing.T) {
	_, cfg, err := runRoot(t, "date", "0")
	require.NoError(t, err)

	assert.Nil(t, cfg.Clock.FixedNow)
	assert.Equal(t, ":memory:", cfg.Database.DSN)
	assert.Equal(t, 30*time.Second, cfg.Application.Timeout)
}

func TestRootCommand_EnvironmentAndFlags(t *testing.T) {
	t.Setenv("DATELIT_NOW", "86400")
	t.Setenv("DATELIT_APP_TIMEOUT", "15s")

	out, cfg, err := runRoot(t, "now")
	require.NoError(t, err)
	assert.Equal(t, "86400\n", out)
	assert.Equal(t, 15*time.Second, cfg.Application.Timeout)

	// Flags win over the environment.
	out, _, err = runRoot(t, "--now", "0", "now")
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)
}

func TestRootCommand_InvalidEnvironment(t *testing.T) {
	t.Setenv("DATELIT_NOW", "999999999999999")

	_, _, err := runRoot(t, "now")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "clock.fixed_now")
}

func TestRootCommand_ExitCodes(t *testing.T) {
	eh := NewErrorHandler()

	_, _, err := runRoot(t, "check-time", "24:00:00")
	assert.Equal(t, ExitInputError, eh.ExitCode(err))

	_, _, err = runRoot(t, "parse", "--strict", "2024-01-15 14:30:45.000")
	assert.Equal(t, ExitInputError, eh.ExitCode(err))

	_, _, err = runRoot(t, "eval", "no_such_function(1)")
	assert.Equal(t, ExitFailure, eh.ExitCode(err))
}
