package config

import (
	"context"
	"fmt"

	"datelit/internal/sqlfunc"
)

// CreateEngine opens a SQL engine using the configuration system and binds
// the configured clock to current_timestamp_seconds().
func CreateEngine(ctx context.Context, config *Config) (*sqlfunc.Engine, error) {
	sqlfunc.SetClock(config.NewClock())

	engine, err := sqlfunc.Open(ctx, config.Database.DSN, config.Database.QueryTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sql engine: %w", err)
	}

	return engine, nil
}
