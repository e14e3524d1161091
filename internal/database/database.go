package database

import (
	"context"
	_ "embed"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// PSQL builds queries with postgres placeholders.
var PSQL = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	UsersTable   = "users"
	ClassesTable = "classes"
	TasksTable   = "tasks"
)

//go:embed schema.sql
var schema string

// EnsureSchema creates missing tables and indexes.
func EnsureSchema(ctx context.Context, q Queryable) error {
	if _, err := q.ExecRaw(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}

	return nil
}
