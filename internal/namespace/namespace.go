// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package namespace

import (
	"strings"
)

const (
	// Prefix is prepended to a tenant name to form its namespace. The
	// namespace is always derived, never stored.
	Prefix = "user_"

	// SystemNamespace holds the identity store's own tables and is never a
	// tenant namespace.
	SystemNamespace = "system_app"
)

// Derive returns the namespace for a tenant name. It is a pure function of
// the name, lowercased so the namespace comparison is case-insensitive
// site-wide.
func Derive(name string) string {
	return Prefix + strings.ToLower(name)
}

// IsReserved reports whether registering the given tenant name would collide
// with the system namespace.
func IsReserved(name string) bool {
	return strings.EqualFold(Derive(name), SystemNamespace) ||
		strings.EqualFold(name, SystemNamespace)
}
