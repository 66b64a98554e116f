package config

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_Load(t *testing.T) {
	t.Setenv("DATELIT_APP_TIMEOUT", "10s")

	cfg, err := NewLoader().Load()
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, cfg.Application.Timeout)
}

func TestLoader_LoadRejectsInvalidEnvironment(t *testing.T) {
	t.Setenv("DATELIT_NOW", "999999999999999")

	_, err := NewLoader().Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "clock.fixed_now")
}

func TestLoader_LoadWithOverrides(t *testing.T) {
	t.Setenv("DATELIT_NOW", "0")

	now := int64(1709164800)
	dsn := "file::memory:"
	queryTimeout := time.Second
	verbose := true

	cfg, err := NewLoader().LoadWithOverrides(&ConfigOverrides{
		Now:            &now,
		DBDSN:          &dsn,
		DBQueryTimeout: &queryTimeout,
		Verbose:        &verbose,
	})
	require.NoError(t, err)

	// Flags win over the environment.
	assert.Equal(t, now, *cfg.Clock.FixedNow)
	assert.Equal(t, dsn, cfg.Database.DSN)
	assert.Equal(t, queryTimeout, cfg.Database.QueryTimeout)
	assert.True(t, cfg.Application.Verbose)

	// The override value is copied, not aliased.
	now = 0
	assert.Equal(t, int64(1709164800), *cfg.Clock.FixedNow)
}

func TestLoader_LoadWithInvalidOverride(t *testing.T) {
	timeout := time.Duration(0)

	_, err := NewLoader().LoadWithOverrides(&ConfigOverrides{Timeout: &timeout})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "application.timeout")
}

func TestParseWithFallback(t *testing.T) {
	assert.Equal(t, 3*time.Second, ParseDurationWithFallback("3s", time.Minute))
	assert.Equal(t, time.Minute, ParseDurationWithFallback("three", time.Minute))
	assert.True(t, ParseBoolWithFallback("1", false))
	assert.True(t, ParseBoolWithFallback("nope", true))
}

func TestCreateEngine(t *testing.T) {
	cfg := NewConfig()
	now := int64(86400)
	cfg.Clock.FixedNow = &now

	engine, err := CreateEngine(context.Background(), cfg)
	require.NoError(t, err)
	defer engine.Close()

	result, err := engine.Eval(context.Background(), "timestamp_to_date(current_timestamp_seconds())")
	require.NoError(t, err)
	assert.Equal(t, "1970-01-02", result)
}

func TestNewLoaderFor(t *testing.T) {
	t.Setenv("DATELIT_DB_DSN", "file::memory:")

	cfg := NewConfig()
	cfg.Application.Timeout = time.Minute

	loaded, err := NewLoaderFor(cfg).Load()
	require.NoError(t, err)
	assert.Same(t, cfg, loaded)
	assert.Equal(t, "file::memory:", cfg.Database.DSN)
	assert.Equal(t, time.Minute, cfg.Application.Timeout)
}
