// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/canonical/sqllab-service/internal/types"
)

type StorageInterface interface {
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantByName(ctx context.Context, name string) (*types.Tenant, error)
	ListTenants(ctx context.Context) ([]*types.Tenant, error)
	DeleteTenant(ctx context.Context, name string) error
}
