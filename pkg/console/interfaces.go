// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package console

import (
	"context"

	"github.com/canonical/sqllab-service/internal/types"
	"github.com/canonical/sqllab-service/pkg/gate"
)

type ServiceInterface interface {
	Run(ctx context.Context, principal types.Principal, sql string) (*types.QueryResult, gate.Verdict)
	ListTables(ctx context.Context, principal types.Principal, schema string) ([]string, error)
}

type GateInterface interface {
	Check(ctx context.Context, principal types.Principal, sql string) gate.Verdict
}

type ExecutorInterface interface {
	Execute(ctx context.Context, principal types.Principal, sql string) *types.QueryResult
	ListTables(ctx context.Context, schema string) ([]string, error)
}
