package sqlfunc

import (
	"context"
	"database/sql"
	stderrors "errors"
	"strings"
	"time"

	"datelit/internal/errors"
	"datelit/internal/logging"
)

// Engine evaluates SQL expressions on a connection that has the datelit
// functions available.
type Engine struct {
	db           *sql.DB
	queryTimeout time.Duration
}

// Open registers the functions if needed and opens dsn with the sqlite driver.
func Open(ctx context.Context, dsn string, queryTimeout time.Duration) (*Engine, error) {
	if err := Register(); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}
	// A single connection keeps ":memory:" pointing at one database.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("connect to database", err)
	}

	logging.Debugf("opened sql engine on %s\n", dsn)
	return &Engine{db: db, queryTimeout: queryTimeout}, nil
}

// Close closes the database connection
func (e *Engine) Close() error {
	return e.db.Close()
}

// Eval runs SELECT expr and returns the single resulting value as text.
func (e *Engine) Eval(ctx context.Context, expr string) (string, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return "", errors.NewInvalidInputError("expression", expr, "expression cannot be empty")
	}

	if e.queryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.queryTimeout)
		defer cancel()
	}

	var value interface{}
	if err := e.db.QueryRowContext(ctx, "SELECT "+expr).Scan(&value); err != nil {
		if stderrors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", errors.NewTimeoutError("evaluate expression", e.queryTimeout)
		}
		return "", errors.NewDatabaseError("evaluate expression", err).WithContext("expression", expr)
	}

	logging.Debugf("eval %q -> %#v\n", expr, value)
	return renderValue(value), nil
}
