// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package console

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/sqllab-service/internal/logging"
	"github.com/canonical/sqllab-service/internal/tracing"
	"github.com/canonical/sqllab-service/internal/types"
	"github.com/canonical/sqllab-service/pkg/authentication"
	"github.com/canonical/sqllab-service/pkg/gate"
)

func TestHandleQuery(t *testing.T) {
	principal := types.Principal{Name: "alice"}

	testCases := []struct {
		name          string
		body          string
		withPrincipal bool
		setupMocks    func(*MockServiceInterface)
		expectedCode  int
		expectedType  types.ResultType
	}{
		{
			name:          "allowed query",
			body:          `{"sql": "SELECT 1"}`,
			withPrincipal: true,
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().Run(gomock.Any(), principal, "SELECT 1").
					Return(types.NewTableResult([]string{"?column?"}, [][]any{{1}}), gate.Allow())
			},
			expectedCode: http.StatusOK,
			expectedType: types.ResultTable,
		},
		{
			name:          "denied query",
			body:          `{"sql": "SHOW ALL TABLES"}`,
			withPrincipal: true,
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().Run(gomock.Any(), principal, "SHOW ALL TABLES").
					Return(types.NewErrorResult("permission denied: global listing is not allowed"),
						gate.Deny("global_listing", "global listing is not allowed"))
			},
			expectedCode: http.StatusForbidden,
			expectedType: types.ResultError,
		},
		{
			name:          "missing sql",
			body:          `{}`,
			withPrincipal: true,
			setupMocks:    func(mockService *MockServiceInterface) {},
			expectedCode:  http.StatusBadRequest,
		},
		{
			name:          "no principal",
			body:          `{"sql": "SELECT 1"}`,
			withPrincipal: false,
			setupMocks:    func(mockService *MockServiceInterface) {},
			expectedCode:  http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			tc.setupMocks(mockService)

			api := NewAPI(mockService, tracing.NewNoopTracer(), mockMonitor, logging.NewNoopLogger())

			mux := chi.NewMux()
			api.RegisterEndpoints(mux)

			req := httptest.NewRequest(http.MethodPost, "/api/v0/query", strings.NewReader(tc.body))
			if tc.withPrincipal {
				req = req.WithContext(authentication.WithPrincipal(req.Context(), principal))
			}
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			if rec.Code != tc.expectedCode {
				t.Fatalf("expected status %d, got %d", tc.expectedCode, rec.Code)
			}

			if tc.expectedType != "" {
				var result types.QueryResult
				if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if result.Type != tc.expectedType {
					t.Fatalf("expected result type %s, got %s", tc.expectedType, result.Type)
				}
			}
		})
	}
}

func TestHandleTables(t *testing.T) {
	principal := types.Principal{Name: "alice"}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockService.EXPECT().ListTables(gomock.Any(), principal, "").Return([]string{"notes", "tasks"}, nil)

	api := NewAPI(mockService, tracing.NewNoopTracer(), mockMonitor, logging.NewNoopLogger())

	mux := chi.NewMux()
	api.RegisterEndpoints(mux)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/tables", nil)
	req = req.WithContext(authentication.WithPrincipal(req.Context(), principal))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp struct {
		Tables []string `json:"tables"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Tables) != 2 {
		t.Fatalf("expected 2 tables, got %v", resp.Tables)
	}
}
