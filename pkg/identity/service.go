// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/canonical/sqllab-service/internal/logging"
	"github.com/canonical/sqllab-service/internal/monitoring"
	"github.com/canonical/sqllab-service/internal/namespace"
	"github.com/canonical/sqllab-service/internal/storage"
	"github.com/canonical/sqllab-service/internal/tracing"
	"github.com/canonical/sqllab-service/internal/types"
)

// nameConstraint keeps names safe to interpolate into the derived schema
// identifier, validated before any DDL is generated from them.
const nameConstraint = "required,alphanum,max=63"

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage  StorageInterface
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:  storage,
		validate: validator.New(),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// Register persists the tenant record and returns the derived namespace.
// It does not provision the namespace itself, that is the lifecycle
// manager's next step.
func (s *Service) Register(ctx context.Context, name, secret string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "identity.Service.Register")
	defer span.End()

	// checked before the pattern so a system-namespace collision is
	// reported as reserved, not as a character-set violation
	if namespace.IsReserved(name) {
		return "", fmt.Errorf("%w: name is reserved", ErrInvalidName)
	}
	if err := s.validate.Var(name, nameConstraint); err != nil {
		return "", fmt.Errorf("%w: name must be alphanumeric", ErrInvalidName)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash credential: %w", err)
	}

	if _, err := s.storage.CreateTenant(ctx, &types.Tenant{Name: name, Secret: string(hash)}); err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return "", ErrDuplicateName
		}
		return "", err
	}

	return namespace.Derive(name), nil
}

// Verify reports whether the credential matches the stored one. Unknown
// names and backend misses both come back as a plain false so callers
// cannot distinguish them.
func (s *Service) Verify(ctx context.Context, name, secret string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "identity.Service.Verify")
	defer span.End()

	t, err := s.storage.GetTenantByName(ctx, name)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(t.Secret), []byte(secret)); err != nil {
		return false, nil
	}

	return true, nil
}

func (s *Service) List(ctx context.Context) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "identity.Service.List")
	defer span.End()

	return s.storage.ListTenants(ctx)
}

func (s *Service) Remove(ctx context.Context, name string) error {
	ctx, span := s.tracer.Start(ctx, "identity.Service.Remove")
	defer span.End()

	// storage.ErrNotFound propagates unchanged so boundary layers can map
	// it without a dependency on this package
	return s.storage.DeleteTenant(ctx, name)
}
