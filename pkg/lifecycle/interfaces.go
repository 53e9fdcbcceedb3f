// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package lifecycle

import (
	"context"

	"github.com/canonical/sqllab-service/internal/types"
)

type ServiceInterface interface {
	Create(ctx context.Context, name, secret string) (string, error)
	Destroy(ctx context.Context, name string) error
}

// IdentityInterface is the slice of the identity service the lifecycle
// manager drives.
type IdentityInterface interface {
	Register(ctx context.Context, name, secret string) (string, error)
	List(ctx context.Context) ([]*types.Tenant, error)
	Remove(ctx context.Context, name string) error
}

type AllocatorInterface interface {
	Provision(ctx context.Context, ns string) error
	Deprovision(ctx context.Context, ns string) error
}
