// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package executor

import (
	"context"

	"github.com/canonical/sqllab-service/internal/types"
)

type ExecutorInterface interface {
	Execute(ctx context.Context, principal types.Principal, sql string) *types.QueryResult
	ListTables(ctx context.Context, schema string) ([]string, error)
}
