// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/sqllab-service/internal/logging"
	"github.com/canonical/sqllab-service/internal/tracing"
	"github.com/canonical/sqllab-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_authentication.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go

func TestMiddlewareAuthenticate(t *testing.T) {
	const adminToken = "super-secret"

	testCases := []struct {
		name              string
		setupRequest      func(*http.Request)
		setupMocks        func(*MockVerifierInterface)
		expectedCode      int
		expectedPrincipal *types.Principal
	}{
		{
			name: "admin bearer token",
			setupRequest: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer "+adminToken)
			},
			setupMocks:        func(mockVerifier *MockVerifierInterface) {},
			expectedCode:      http.StatusOK,
			expectedPrincipal: &types.Principal{Name: "admin", Admin: true},
		},
		{
			name: "wrong bearer token",
			setupRequest: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer nope")
			},
			setupMocks:   func(mockVerifier *MockVerifierInterface) {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "valid basic credentials",
			setupRequest: func(r *http.Request) {
				r.SetBasicAuth("alice", "wonderland")
			},
			setupMocks: func(mockVerifier *MockVerifierInterface) {
				mockVerifier.EXPECT().Verify(gomock.Any(), "alice", "wonderland").Return(true, nil)
			},
			expectedCode:      http.StatusOK,
			expectedPrincipal: &types.Principal{Name: "alice"},
		},
		{
			name: "invalid basic credentials",
			setupRequest: func(r *http.Request) {
				r.SetBasicAuth("alice", "nope")
			},
			setupMocks: func(mockVerifier *MockVerifierInterface) {
				mockVerifier.EXPECT().Verify(gomock.Any(), "alice", "nope").Return(false, nil)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "no credentials",
			setupRequest: func(r *http.Request) {},
			setupMocks:   func(mockVerifier *MockVerifierInterface) {},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockVerifier := NewMockVerifierInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			tc.setupMocks(mockVerifier)

			m := NewMiddleware(mockVerifier, adminToken, tracing.NewNoopTracer(), mockMonitor, logging.NewNoopLogger())

			var gotPrincipal *types.Principal
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if p, ok := PrincipalFromContext(r.Context()); ok {
					gotPrincipal = &p
				}
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v0/query", nil)
			tc.setupRequest(req)
			rec := httptest.NewRecorder()
			m.Authenticate()(next).ServeHTTP(rec, req)

			if rec.Code != tc.expectedCode {
				t.Fatalf("expected status %d, got %d", tc.expectedCode, rec.Code)
			}

			if tc.expectedPrincipal == nil {
				if gotPrincipal != nil {
					t.Fatalf("expected no principal, got %+v", gotPrincipal)
				}
				return
			}
			if gotPrincipal == nil {
				t.Fatal("expected a principal in the request context")
			}
			if *gotPrincipal != *tc.expectedPrincipal {
				t.Fatalf("expected principal %+v, got %+v", *tc.expectedPrincipal, *gotPrincipal)
			}
		})
	}
}
