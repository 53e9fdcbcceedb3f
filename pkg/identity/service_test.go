// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/canonical/sqllab-service/internal/logging"
	"github.com/canonical/sqllab-service/internal/storage"
	"github.com/canonical/sqllab-service/internal/tracing"
	"github.com/canonical/sqllab-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package identity -destination ./mock_identity.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package identity -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go

func TestService_Register(t *testing.T) {
	dbErr := errors.New("db error")

	testCases := []struct {
		name        string
		tenantName  string
		secret      string
		setupMocks  func(*MockStorageInterface)
		expectedNS  string
		expectedErr error
	}{
		{
			name:       "success",
			tenantName: "Alice",
			secret:     "wonderland",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, tenant *types.Tenant) (*types.Tenant, error) {
						if tenant.Name != "Alice" {
							t.Errorf("expected tenant name Alice, got %s", tenant.Name)
						}
						if err := bcrypt.CompareHashAndPassword([]byte(tenant.Secret), []byte("wonderland")); err != nil {
							t.Errorf("stored secret is not a hash of the credential: %v", err)
						}
						return tenant, nil
					},
				)
			},
			expectedNS: "user_alice",
		},
		{
			name:        "name with special characters",
			tenantName:  "bob; DROP TABLE",
			secret:      "secret",
			setupMocks:  func(mockStorage *MockStorageInterface) {},
			expectedErr: ErrInvalidName,
		},
		{
			name:        "empty name",
			tenantName:  "",
			secret:      "secret",
			setupMocks:  func(mockStorage *MockStorageInterface) {},
			expectedErr: ErrInvalidName,
		},
		{
			name:        "system namespace as name",
			tenantName:  "system_app",
			secret:      "secret",
			setupMocks:  func(mockStorage *MockStorageInterface) {},
			expectedErr: ErrInvalidName,
		},
		{
			name:        "system namespace case folded",
			tenantName:  "System_App",
			secret:      "secret",
			setupMocks:  func(mockStorage *MockStorageInterface) {},
			expectedErr: ErrInvalidName,
		},
		{
			name:       "duplicate name",
			tenantName: "alice",
			secret:     "secret",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
			},
			expectedErr: ErrDuplicateName,
		},
		{
			name:       "storage error",
			tenantName: "alice",
			secret:     "secret",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).Return(nil, dbErr)
			},
			expectedErr: dbErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			tc.setupMocks(mockStorage)

			s := NewService(mockStorage, tracing.NewNoopTracer(), mockMonitor, logging.NewNoopLogger())

			ns, err := s.Register(context.Background(), tc.tenantName, tc.secret)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if ns != tc.expectedNS {
				t.Fatalf("expected namespace %s, got %s", tc.expectedNS, ns)
			}
		})
	}
}

func TestService_Verify(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("wonderland"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash test credential: %v", err)
	}
	tenant := &types.Tenant{Name: "alice", Secret: string(hash)}
	dbErr := errors.New("db error")

	testCases := []struct {
		name        string
		secret      string
		setupMocks  func(*MockStorageInterface)
		expectedOK  bool
		expectedErr error
	}{
		{
			name:   "valid credential",
			secret: "wonderland",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetTenantByName(gomock.Any(), "alice").Return(tenant, nil)
			},
			expectedOK: true,
		},
		{
			name:   "wrong credential",
			secret: "queenofhearts",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetTenantByName(gomock.Any(), "alice").Return(tenant, nil)
			},
			expectedOK: false,
		},
		{
			name:   "unknown tenant",
			secret: "wonderland",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetTenantByName(gomock.Any(), "alice").Return(nil, storage.ErrNotFound)
			},
			expectedOK: false,
		},
		{
			name:   "storage error",
			secret: "wonderland",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetTenantByName(gomock.Any(), "alice").Return(nil, dbErr)
			},
			expectedOK:  false,
			expectedErr: dbErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			tc.setupMocks(mockStorage)

			s := NewService(mockStorage, tracing.NewNoopTracer(), mockMonitor, logging.NewNoopLogger())

			ok, err := s.Verify(context.Background(), "alice", tc.secret)

			if !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
			}
			if ok != tc.expectedOK {
				t.Fatalf("expected ok %v, got %v", tc.expectedOK, ok)
			}
		})
	}
}

func TestService_Remove(t *testing.T) {
	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name: "success",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().DeleteTenant(gomock.Any(), "alice").Return(nil)
			},
		},
		{
			name: "not found propagates unchanged",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().DeleteTenant(gomock.Any(), "alice").Return(storage.ErrNotFound)
			},
			expectedErr: storage.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			tc.setupMocks(mockStorage)

			s := NewService(mockStorage, tracing.NewNoopTracer(), mockMonitor, logging.NewNoopLogger())

			if err := s.Remove(context.Background(), "alice"); !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
			}
		})
	}
}
