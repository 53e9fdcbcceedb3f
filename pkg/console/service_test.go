// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package console

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/sqllab-service/internal/logging"
	"github.com/canonical/sqllab-service/internal/tracing"
	"github.com/canonical/sqllab-service/internal/types"
	"github.com/canonical/sqllab-service/pkg/gate"
)

//go:generate mockgen -build_flags=--mod=mod -package console -destination ./mock_console.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package console -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go

func TestService_Run(t *testing.T) {
	principal := types.Principal{Name: "alice"}
	tableResult := types.NewTableResult([]string{"id"}, [][]any{{1}})

	testCases := []struct {
		name            string
		sql             string
		setupMocks      func(*MockGateInterface, *MockExecutorInterface)
		expectedAllowed bool
		expectedType    types.ResultType
	}{
		{
			name: "allowed statement reaches the executor",
			sql:  "SELECT * FROM notes",
			setupMocks: func(mockGate *MockGateInterface, mockExecutor *MockExecutorInterface) {
				mockGate.EXPECT().Check(gomock.Any(), principal, "SELECT * FROM notes").Return(gate.Allow())
				mockExecutor.EXPECT().Execute(gomock.Any(), principal, "SELECT * FROM notes").Return(tableResult)
			},
			expectedAllowed: true,
			expectedType:    types.ResultTable,
		},
		{
			name: "denied statement never reaches the executor",
			sql:  "SELECT * FROM user_bob.notes",
			setupMocks: func(mockGate *MockGateInterface, mockExecutor *MockExecutorInterface) {
				mockGate.EXPECT().Check(gomock.Any(), principal, "SELECT * FROM user_bob.notes").
					Return(gate.Deny("foreign_namespace", "access to another tenant's namespace is not allowed"))
			},
			expectedAllowed: false,
			expectedType:    types.ResultError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockGate := NewMockGateInterface(ctrl)
			mockExecutor := NewMockExecutorInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			tc.setupMocks(mockGate, mockExecutor)

			s := NewService(mockGate, mockExecutor, tracing.NewNoopTracer(), mockMonitor, logging.NewNoopLogger())

			result, verdict := s.Run(context.Background(), principal, tc.sql)

			if verdict.Allowed != tc.expectedAllowed {
				t.Fatalf("expected allowed %v, got %v", tc.expectedAllowed, verdict.Allowed)
			}
			if result.Type != tc.expectedType {
				t.Fatalf("expected result type %s, got %s", tc.expectedType, result.Type)
			}
			if !tc.expectedAllowed && !strings.HasPrefix(result.Message, "permission denied") {
				t.Fatalf("expected a permission denied message, got %q", result.Message)
			}
		})
	}
}

func TestService_ListTables(t *testing.T) {
	testCases := []struct {
		name           string
		principal      types.Principal
		schema         string
		expectedSchema string
		expectedErr    error
	}{
		{
			name:           "tenant always sees own namespace",
			principal:      types.Principal{Name: "Alice"},
			schema:         "user_bob",
			expectedSchema: "user_alice",
		},
		{
			name:           "admin may name a schema",
			principal:      types.Principal{Name: "admin", Admin: true},
			schema:         "user_bob",
			expectedSchema: "user_bob",
		},
		{
			name:        "admin must name a schema",
			principal:   types.Principal{Name: "admin", Admin: true},
			schema:      "",
			expectedErr: ErrSchemaRequired,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockGate := NewMockGateInterface(ctrl)
			mockExecutor := NewMockExecutorInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			if tc.expectedErr == nil {
				mockExecutor.EXPECT().ListTables(gomock.Any(), tc.expectedSchema).Return([]string{"notes"}, nil)
			}

			s := NewService(mockGate, mockExecutor, tracing.NewNoopTracer(), mockMonitor, logging.NewNoopLogger())

			tables, err := s.ListTables(context.Background(), tc.principal, tc.schema)
			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(tables) != 1 || tables[0] != "notes" {
				t.Fatalf("unexpected tables %v", tables)
			}
		})
	}
}
