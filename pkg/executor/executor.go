// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package executor

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/canonical/sqllab-service/internal/db"
	"github.com/canonical/sqllab-service/internal/logging"
	"github.com/canonical/sqllab-service/internal/monitoring"
	"github.com/canonical/sqllab-service/internal/namespace"
	"github.com/canonical/sqllab-service/internal/tracing"
	"github.com/canonical/sqllab-service/internal/types"
)

var _ ExecutorInterface = (*Executor)(nil)

// Executor runs an already-gated statement inside the caller's namespace.
// Every call takes a dedicated pooled connection, binds the session search
// path to the caller's schema so unqualified references resolve there, and
// resets the binding before the connection goes back to the pool.
type Executor struct {
	db      db.DBClientInterface
	timeout time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewExecutor(c db.DBClientInterface, timeout time.Duration, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Executor {
	e := new(Executor)

	e.db = c
	e.timeout = timeout

	e.tracer = tracer
	e.monitor = monitor
	e.logger = logger

	return e
}

// Execute never returns an error, every backend failure is folded into an
// ErrorResult so a bad statement is scoped to its own request.
func (e *Executor) Execute(ctx context.Context, principal types.Principal, sql string) *types.QueryResult {
	ctx, span := e.tracer.Start(ctx, "executor.Executor.Execute")
	defer span.End()

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	conn, err := e.db.Acquire(ctx)
	if err != nil {
		e.logger.Errorf("failed to acquire connection: %v", err)
		return types.NewErrorResult("database connection failed")
	}
	defer conn.Release()

	if !principal.Admin {
		ns := namespace.Derive(principal.Name)
		bind := fmt.Sprintf("SET search_path TO %s", pgx.Identifier{ns}.Sanitize())
		if _, err := conn.Exec(ctx, bind); err != nil {
			return types.NewErrorResult(fmt.Sprintf("failed to bind namespace: %v", err))
		}
		// a pooled connection must never carry a tenant binding back
		defer func() {
			if _, err := conn.Exec(context.Background(), "RESET search_path"); err != nil {
				e.logger.Errorf("failed to reset search_path: %v", err)
			}
		}()
	}

	statements := splitStatements(sql)
	if len(statements) == 0 {
		return types.NewErrorResult("empty statement")
	}

	// statements run sequentially on the bound session, the result of the
	// last one is what the caller sees, matching script semantics
	var result *types.QueryResult
	for _, stmt := range statements {
		rows, err := conn.Query(ctx, stmt)
		if err != nil {
			return types.NewErrorResult(fmt.Sprintf("SQL error: %v", err))
		}

		result, err = collectResult(rows)
		if err != nil {
			return types.NewErrorResult(fmt.Sprintf("SQL error: %v", err))
		}
	}

	return result
}

// collectResult normalizes a pgx result into the table-or-status shape.
func collectResult(rows pgx.Rows) (*types.QueryResult, error) {
	defer rows.Close()

	fields := rows.FieldDescriptions()

	if len(fields) == 0 {
		// DDL or utility statement, drain and report the command tag
		rows.Close()
		if err := rows.Err(); err != nil {
			return nil, err
		}

		tag := rows.CommandTag()
		affected := int64(-1)
		if tag.Insert() || tag.Update() || tag.Delete() {
			affected = tag.RowsAffected()
		}
		return types.NewStatusResult("Query executed successfully.", affected), nil
	}

	columns := make([]string, len(fields))
	for i, f := range fields {
		columns[i] = string(f.Name)
	}

	out := make([][]any, 0)
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, err
		}
		out = append(out, values)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return types.NewTableResult(columns, out), nil
}

// ListTables returns the table names inside one schema. This is a trusted
// internal query, callers scope the schema before reaching it.
func (e *Executor) ListTables(ctx context.Context, schema string) ([]string, error) {
	ctx, span := e.tracer.Start(ctx, "executor.Executor.ListTables")
	defer span.End()

	conn, err := e.db.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, "SELECT table_name FROM information_schema.tables WHERE table_schema = $1 ORDER BY table_name", schema)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan table name: %w", err)
		}
		tables = append(tables, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating table rows: %w", err)
	}

	return tables, nil
}
