// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package lifecycle

import (
	"context"
	"fmt"

	"github.com/canonical/sqllab-service/internal/logging"
	"github.com/canonical/sqllab-service/internal/monitoring"
	"github.com/canonical/sqllab-service/internal/namespace"
	"github.com/canonical/sqllab-service/internal/tracing"
)

var _ ServiceInterface = (*Service)(nil)

// Service creates and destroys a tenant and its namespace as a unit. The
// two steps are not wrapped in a transaction, the allocator's idempotency
// is what makes retrying a half-done sequence safe.
type Service struct {
	identity  IdentityInterface
	allocator AllocatorInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	identity IdentityInterface,
	allocator AllocatorInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		identity:  identity,
		allocator: allocator,
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}
}

// Create registers the tenant record and provisions its namespace. A
// provisioning failure leaves the record in place, re-running Create for
// the same name reports DuplicateName and the namespace can be provisioned
// again out of band or by Destroy + Create.
func (s *Service) Create(ctx context.Context, name, secret string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "lifecycle.Service.Create")
	defer span.End()

	ns, err := s.identity.Register(ctx, name, secret)
	if err != nil {
		return "", err
	}

	if err := s.allocator.Provision(ctx, ns); err != nil {
		return "", fmt.Errorf("tenant registered but namespace provisioning failed: %w", err)
	}

	s.logger.Security().TenantCreated(name)
	return ns, nil
}

// Destroy removes the tenant record and drops its namespace. Both steps are
// always attempted, a missing record does not keep an orphaned namespace
// alive.
func (s *Service) Destroy(ctx context.Context, name string) error {
	ctx, span := s.tracer.Start(ctx, "lifecycle.Service.Destroy")
	defer span.End()

	removeErr := s.identity.Remove(ctx, name)

	if err := s.allocator.Deprovision(ctx, namespace.Derive(name)); err != nil {
		s.logger.Errorf("failed to deprovision namespace for %s: %v", name, err)
		if removeErr == nil {
			return err
		}
	}

	if removeErr != nil {
		return removeErr
	}

	s.logger.Security().TenantDestroyed(name)
	return nil
}
