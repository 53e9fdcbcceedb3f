// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package namespace

import (
	"context"
)

type AllocatorInterface interface {
	Provision(ctx context.Context, ns string) error
	Deprovision(ctx context.Context, ns string) error
}
