// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package gate

import (
	"context"
	"testing"

	"github.com/canonical/sqllab-service/internal/logging"
	"github.com/canonical/sqllab-service/internal/tracing"
	"github.com/canonical/sqllab-service/internal/types"
)

func newTestGate() *Gate {
	return NewGate(tracing.NewNoopTracer(), nil, logging.NewNoopLogger())
}

func TestCheckTenantStatements(t *testing.T) {
	alice := types.Principal{Name: "alice"}

	testCases := []struct {
		name    string
		sql     string
		allowed bool
		rule    string
	}{
		{
			name:    "plain select in own namespace",
			sql:     "SELECT * FROM mytable",
			allowed: true,
		},
		{
			name:    "create and insert",
			sql:     "CREATE TABLE t(x INT); INSERT INTO t VALUES (1); SELECT * FROM t;",
			allowed: true,
		},
		{
			name:    "own namespace qualified",
			sql:     "SELECT * FROM user_alice.mytable",
			allowed: true,
		},
		{
			name:    "own namespace case folded",
			sql:     "SELECT * FROM USER_ALICE.mytable",
			allowed: true,
		},
		{
			name:    "cross tenant reference",
			sql:     "SELECT * FROM user_bob.mytable",
			allowed: false,
			rule:    "foreign_namespace",
		},
		{
			name:    "cross tenant reference in subquery",
			sql:     "SELECT * FROM mytable WHERE x IN (SELECT y FROM user_bob.secrets)",
			allowed: false,
			rule:    "foreign_namespace",
		},
		{
			name:    "cross tenant reference in join",
			sql:     "SELECT * FROM t JOIN user_carol.t2 ON t.id = t2.id",
			allowed: false,
			rule:    "foreign_namespace",
		},
		{
			name:    "cross tenant reference quoted",
			sql:     `SELECT * FROM "user_bob".mytable`,
			allowed: false,
			rule:    "foreign_namespace",
		},
		{
			name:    "cross tenant reference spliced with comment",
			sql:     "SELECT * FROM user_/**/bob.mytable",
			allowed: false,
			rule:    "foreign_namespace",
		},
		{
			name:    "namespace name inside string literal",
			sql:     "SELECT 'user_bob' AS label FROM mytable",
			allowed: true,
		},
		{
			name:    "information schema",
			sql:     "SELECT * FROM information_schema.tables",
			allowed: false,
			rule:    "metadata_catalog",
		},
		{
			name:    "pg catalog",
			sql:     "SELECT relname FROM pg_catalog.pg_class",
			allowed: false,
			rule:    "metadata_catalog",
		},
		{
			name:    "unqualified catalog table",
			sql:     "SELECT * FROM pg_tables",
			allowed: false,
			rule:    "metadata_catalog",
		},
		{
			name:    "unqualified catalog view",
			sql:     "SELECT schemaname, viewname FROM pg_views",
			allowed: false,
			rule:    "metadata_catalog",
		},
		{
			name:    "index listing",
			sql:     "SELECT * FROM pg_indexes",
			allowed: false,
			rule:    "metadata_catalog",
		},
		{
			name:    "materialized view listing",
			sql:     "SELECT * FROM pg_matviews",
			allowed: false,
			rule:    "metadata_catalog",
		},
		{
			name:    "live activity view",
			sql:     "SELECT query FROM pg_stat_activity",
			allowed: false,
			rule:    "metadata_catalog",
		},
		{
			name:    "tenant table with catalog-like name",
			sql:     "SELECT * FROM pg_collection",
			allowed: false,
			rule:    "metadata_catalog",
		},
		{
			name:    "system namespace",
			sql:     "SELECT secret FROM system_app.tenants",
			allowed: false,
			rule:    "system_namespace",
		},
		{
			name:    "global table listing",
			sql:     "SHOW ALL TABLES",
			allowed: false,
			rule:    "global_listing",
		},
		{
			name:    "global table listing mixed case",
			sql:     "show  All\tTables;",
			allowed: false,
			rule:    "global_listing",
		},
		{
			name:    "scoped table listing",
			sql:     "SHOW TABLES",
			allowed: true,
		},
		{
			name:    "drop own schema",
			sql:     "DROP SCHEMA user_alice",
			allowed: false,
			rule:    "schema_ddl",
		},
		{
			name:    "create schema",
			sql:     "CREATE SCHEMA sneaky",
			allowed: false,
			rule:    "schema_ddl",
		},
	}

	g := newTestGate()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			verdict := g.Check(context.Background(), alice, tc.sql)

			if verdict.Allowed != tc.allowed {
				t.Fatalf("Check(%q) allowed = %v, expected %v (reason: %s)", tc.sql, verdict.Allowed, tc.allowed, verdict.Reason)
			}

			if !tc.allowed {
				if verdict.Rule != tc.rule {
					t.Errorf("Check(%q) fired rule %q, expected %q", tc.sql, verdict.Rule, tc.rule)
				}
				if verdict.Reason == "" {
					t.Errorf("Check(%q) denial carries no reason", tc.sql)
				}
			}
		})
	}
}

func TestCheckAdminBypass(t *testing.T) {
	admin := types.Principal{Name: "admin", Admin: true}

	statements := []string{
		"SELECT * FROM user_bob.mytable",
		"SELECT secret FROM system_app.tenants",
		"SELECT * FROM information_schema.tables",
		"DROP SCHEMA user_alice CASCADE",
		"SHOW ALL TABLES",
	}

	g := newTestGate()
	for _, sql := range statements {
		if verdict := g.Check(context.Background(), admin, sql); !verdict.Allowed {
			t.Errorf("admin check for %q denied by rule %q", sql, verdict.Rule)
		}
	}
}

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name     string
		in       string
		splice   bool
		expected string
	}{
		{"lowercases", "SELECT 1", false, "select 1"},
		{"collapses whitespace", "select \t 1\n\nfrom  t", false, "select 1 from t"},
		{"strips line comment", "select 1 -- user_bob", false, "select 1"},
		{"comment is a boundary", "select/* user_bob */1", false, "select 1"},
		{"comment splices tokens", "user_/**/bob", true, "user_bob"},
		{"drops string literal", "select 'user_bob' from t", false, "select from t"},
		{"keeps quoted identifier", `select * from "User_Bob".t`, false, "select * from user_bob .t"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := normalize(tc.in, tc.splice); got != tc.expected {
				t.Errorf("normalize(%q) = %q, expected %q", tc.in, got, tc.expected)
			}
		})
	}
}
