// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package console

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/sqllab-service/internal/logging"
	"github.com/canonical/sqllab-service/internal/monitoring"
	"github.com/canonical/sqllab-service/internal/namespace"
	"github.com/canonical/sqllab-service/internal/tracing"
	"github.com/canonical/sqllab-service/internal/types"
	"github.com/canonical/sqllab-service/pkg/gate"
)

var _ ServiceInterface = (*Service)(nil)

// Service is the query front of the tenant access guard: the gate decides,
// then the executor runs the statement inside the caller's namespace.
type Service struct {
	gate     GateInterface
	executor ExecutorInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	gate GateInterface,
	executor ExecutorInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		gate:     gate,
		executor: executor,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// Run gates and executes one statement. A denied statement never reaches
// the database, the verdict tells the boundary layer why.
func (s *Service) Run(ctx context.Context, principal types.Principal, sql string) (*types.QueryResult, gate.Verdict) {
	ctx, span := s.tracer.Start(ctx, "console.Service.Run")
	defer span.End()

	verdict := s.gate.Check(ctx, principal, sql)
	if !verdict.Allowed {
		return types.NewErrorResult(fmt.Sprintf("permission denied: %s", verdict.Reason)), verdict
	}

	return s.executor.Execute(ctx, principal, sql), verdict
}

// ErrSchemaRequired is returned when an admin lists tables without naming
// a schema. Admin has no namespace of its own to default to.
var ErrSchemaRequired = errors.New("schema parameter is required")

// ListTables returns the tables visible to the caller. Tenants always see
// their own namespace, admin must name the schema to inspect.
func (s *Service) ListTables(ctx context.Context, principal types.Principal, schema string) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "console.Service.ListTables")
	defer span.End()

	if principal.Admin {
		if schema == "" {
			return nil, ErrSchemaRequired
		}
	} else {
		schema = namespace.Derive(principal.Name)
	}

	return s.executor.ListTables(ctx, schema)
}
