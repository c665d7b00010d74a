package model

import (
	"context"
	"database/sql"
)

type Snowflake = uint64

// Querier is the subset of *sql.DB and *sql.Tx used by the query functions.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}
