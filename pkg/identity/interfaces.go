// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"

	"github.com/canonical/sqllab-service/internal/types"
)

// LifecycleInterface is the slice of the lifecycle manager the registration
// endpoint drives.
type LifecycleInterface interface {
	Create(ctx context.Context, name, secret string) (string, error)
}

type ServiceInterface interface {
	Register(ctx context.Context, name, secret string) (string, error)
	Verify(ctx context.Context, name, secret string) (bool, error)
	List(ctx context.Context) ([]*types.Tenant, error)
	Remove(ctx context.Context, name string) error
}

type StorageInterface interface {
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantByName(ctx context.Context, name string) (*types.Tenant, error)
	ListTenants(ctx context.Context) ([]*types.Tenant, error)
	DeleteTenant(ctx context.Context, name string) error
}
