// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

type Tenant struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Secret    string    `db:"secret"`
	CreatedAt time.Time `db:"created_at"`
}

// Principal is the authenticated caller of a request. Admin principals are
// not tenants, they authenticate with the configured shared secret and
// bypass namespace binding entirely.
type Principal struct {
	Name  string
	Admin bool
}

// QueryResult is the normalized outcome of one SQL execution. Exactly one
// of the three shapes is populated, discriminated by Type.
type QueryResult struct {
	Type    ResultType `json:"type"`
	Columns []string   `json:"columns,omitempty"`
	Rows    [][]any    `json:"rows,omitempty"`
	Message string     `json:"message,omitempty"`

	// RowsAffected is best-effort, -1 when the backend does not report it.
	RowsAffected int64 `json:"rows_affected,omitempty"`
}

type ResultType string

const (
	ResultTable   ResultType = "table"
	ResultMessage ResultType = "message"
	ResultError   ResultType = "error"
)

func NewTableResult(columns []string, rows [][]any) *QueryResult {
	return &QueryResult{Type: ResultTable, Columns: columns, Rows: rows}
}

func NewStatusResult(message string, rowsAffected int64) *QueryResult {
	return &QueryResult{Type: ResultMessage, Message: message, RowsAffected: rowsAffected}
}

func NewErrorResult(message string) *QueryResult {
	return &QueryResult{Type: ResultError, Message: message}
}
