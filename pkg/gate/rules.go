// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package gate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/canonical/sqllab-service/internal/namespace"
)

// A rule inspects the normalized statement text for one tenant and either
// denies it with a reason or passes it along. Rules are evaluated in order,
// first denial wins.
type rule struct {
	name  string
	check func(caller, sql string) (denied bool, reason string)
}

var (
	globalListingRe = regexp.MustCompile(`\bshow\s+all\s+tables\b`)

	// catalogRe denies information_schema and every pg_-prefixed
	// identifier. Postgres resolves pg_catalog views without qualification
	// whatever the search_path binding, so enumerating individual views
	// (pg_views, pg_stat_activity, ...) cannot be made complete. A tenant
	// table that happens to be named pg_something is a false positive the
	// gate accepts.
	catalogRe   = regexp.MustCompile(`\b(information_schema|pg_[a-z_]+)\b`)
	schemaDDLRe = regexp.MustCompile(`\b(drop|create|alter)\s+schema\b`)

	// namespaceRe extracts every tenant-namespace shaped identifier so rule
	// four can compare each one against the caller. The scan covers the
	// whole text, subqueries and quoted identifiers included.
	namespaceRe = regexp.MustCompile(regexp.QuoteMeta(namespace.Prefix) + `([a-z0-9]+)`)
)

// defaultRules implement the tenant isolation policy:
//  1. no instance-wide table listing
//  2. no metadata catalog access, the catalog reveals other tenants' objects
//  3. no reference to the system namespace holding the identity store
//  4. no reference to another tenant's namespace, anywhere in the text
//  5. no schema-container DDL, only the lifecycle manager drops namespaces
//
// The gate is deliberately conservative: it trades false positives on
// incidental substrings for not letting a cross-tenant reference through.
var defaultRules = []rule{
	{
		name: "global_listing",
		check: func(_, sql string) (bool, string) {
			if globalListingRe.MatchString(sql) {
				return true, "instance-wide table listing is not allowed, list your own tables via /api/v0/tables"
			}
			return false, ""
		},
	},
	{
		name: "metadata_catalog",
		check: func(_, sql string) (bool, string) {
			if m := catalogRe.FindString(sql); m != "" {
				return true, fmt.Sprintf("access to the %s catalog is not allowed", m)
			}
			return false, ""
		},
	},
	{
		name: "system_namespace",
		check: func(_, sql string) (bool, string) {
			if strings.Contains(sql, namespace.SystemNamespace) {
				return true, "access to the system namespace is not allowed"
			}
			return false, ""
		},
	},
	{
		name: "foreign_namespace",
		check: func(caller, sql string) (bool, string) {
			own := strings.ToLower(caller)
			for _, m := range namespaceRe.FindAllStringSubmatch(sql, -1) {
				if m[1] != own {
					return true, fmt.Sprintf("reference to another tenant's namespace %s%s is not allowed", namespace.Prefix, m[1])
				}
			}
			return false, ""
		},
	},
	{
		name: "schema_ddl",
		check: func(_, sql string) (bool, string) {
			if schemaDDLRe.MatchString(sql) {
				return true, "schema management is not allowed, namespaces are managed by the service"
			}
			return false, ""
		},
	},
}
