// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package gate

import (
	"context"

	"github.com/canonical/sqllab-service/internal/logging"
	"github.com/canonical/sqllab-service/internal/monitoring"
	"github.com/canonical/sqllab-service/internal/tracing"
	"github.com/canonical/sqllab-service/internal/types"
)

// Gate decides whether a statement may run for a caller before any
// connection to the backing database is made. Denied statements never reach
// the database.
type Gate struct {
	rules []rule

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewGate(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Gate {
	g := new(Gate)

	g.rules = defaultRules

	g.tracer = tracer
	g.monitor = monitor
	g.logger = logger

	return g
}

// Check evaluates the rules in order against the normalized statement text.
// Admin principals bypass every rule.
func (g *Gate) Check(ctx context.Context, principal types.Principal, sql string) Verdict {
	_, span := g.tracer.Start(ctx, "gate.Gate.Check")
	defer span.End()

	if principal.Admin {
		return Allow()
	}

	variants := []string{normalize(sql, false)}
	if spliced := normalize(sql, true); spliced != variants[0] {
		variants = append(variants, spliced)
	}

	for _, r := range g.rules {
		for _, text := range variants {
			if denied, reason := r.check(principal.Name, text); denied {
				g.logger.Security().PermissionDenied(principal.Name, r.name, reason)
				return Deny(r.name, reason)
			}
		}
	}

	return Allow()
}
