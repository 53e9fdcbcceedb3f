// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
)

// VerifierInterface checks a tenant's credential, implemented by the
// identity service.
type VerifierInterface interface {
	Verify(ctx context.Context, name, secret string) (bool, error)
}
