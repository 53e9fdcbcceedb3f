// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"errors"
)

var (
	// ErrInvalidName rejects names outside the allowed alphanumeric set and
	// names colliding with the reserved system namespace.
	ErrInvalidName = errors.New("invalid tenant name")
	// ErrDuplicateName maps the store's unique violation, which is the
	// authoritative duplicate check under concurrent registration.
	ErrDuplicateName = errors.New("tenant name already exists")
)
