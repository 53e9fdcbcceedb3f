// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DBClientInterface interface {
	// Statement provides a squirrel builder bound to the shared pool, used
	// for all identity-store access.
	Statement(context.Context) sq.StatementBuilderType
	// Exec runs a raw statement on the shared pool. Used for namespace DDL
	// which cannot be expressed through the builder.
	Exec(ctx context.Context, sql string, args ...any) error
	// Acquire hands out a dedicated connection so a caller can pin
	// session-level state (search_path) for the duration of one request.
	Acquire(ctx context.Context) (*pgxpool.Conn, error)
	Ping(ctx context.Context) error
	Close()
}
