// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package lifecycle

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/sqllab-service/internal/logging"
	"github.com/canonical/sqllab-service/internal/storage"
	"github.com/canonical/sqllab-service/internal/tracing"
)

//go:generate mockgen -build_flags=--mod=mod -package lifecycle -destination ./mock_lifecycle.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package lifecycle -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go

func TestService_Create(t *testing.T) {
	registerErr := errors.New("register error")
	provisionErr := errors.New("provision error")

	testCases := []struct {
		name        string
		setupMocks  func(*MockIdentityInterface, *MockAllocatorInterface)
		expectedNS  string
		expectedErr error
	}{
		{
			name: "success",
			setupMocks: func(mockIdentity *MockIdentityInterface, mockAllocator *MockAllocatorInterface) {
				mockIdentity.EXPECT().Register(gomock.Any(), "alice", "wonderland").Return("user_alice", nil)
				mockAllocator.EXPECT().Provision(gomock.Any(), "user_alice").Return(nil)
			},
			expectedNS: "user_alice",
		},
		{
			name: "registration fails, namespace never provisioned",
			setupMocks: func(mockIdentity *MockIdentityInterface, mockAllocator *MockAllocatorInterface) {
				mockIdentity.EXPECT().Register(gomock.Any(), "alice", "wonderland").Return("", registerErr)
			},
			expectedErr: registerErr,
		},
		{
			name: "provisioning fails after registration",
			setupMocks: func(mockIdentity *MockIdentityInterface, mockAllocator *MockAllocatorInterface) {
				mockIdentity.EXPECT().Register(gomock.Any(), "alice", "wonderland").Return("user_alice", nil)
				mockAllocator.EXPECT().Provision(gomock.Any(), "user_alice").Return(provisionErr)
			},
			expectedErr: provisionErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockIdentity := NewMockIdentityInterface(ctrl)
			mockAllocator := NewMockAllocatorInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			tc.setupMocks(mockIdentity, mockAllocator)

			s := NewService(mockIdentity, mockAllocator, tracing.NewNoopTracer(), mockMonitor, logging.NewNoopLogger())

			ns, err := s.Create(context.Background(), "alice", "wonderland")

			if !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
			}
			if ns != tc.expectedNS {
				t.Fatalf("expected namespace %q, got %q", tc.expectedNS, ns)
			}
		})
	}
}

func TestService_Destroy(t *testing.T) {
	deprovisionErr := errors.New("deprovision error")

	testCases := []struct {
		name        string
		setupMocks  func(*MockIdentityInterface, *MockAllocatorInterface)
		expectedErr error
	}{
		{
			name: "success",
			setupMocks: func(mockIdentity *MockIdentityInterface, mockAllocator *MockAllocatorInterface) {
				mockIdentity.EXPECT().Remove(gomock.Any(), "alice").Return(nil)
				mockAllocator.EXPECT().Deprovision(gomock.Any(), "user_alice").Return(nil)
			},
		},
		{
			name: "missing record still drops the namespace",
			setupMocks: func(mockIdentity *MockIdentityInterface, mockAllocator *MockAllocatorInterface) {
				mockIdentity.EXPECT().Remove(gomock.Any(), "alice").Return(storage.ErrNotFound)
				mockAllocator.EXPECT().Deprovision(gomock.Any(), "user_alice").Return(nil)
			},
			expectedErr: storage.ErrNotFound,
		},
		{
			name: "deprovision failure is reported",
			setupMocks: func(mockIdentity *MockIdentityInterface, mockAllocator *MockAllocatorInterface) {
				mockIdentity.EXPECT().Remove(gomock.Any(), "alice").Return(nil)
				mockAllocator.EXPECT().Deprovision(gomock.Any(), "user_alice").Return(deprovisionErr)
			},
			expectedErr: deprovisionErr,
		},
		{
			name: "remove failure wins over deprovision failure",
			setupMocks: func(mockIdentity *MockIdentityInterface, mockAllocator *MockAllocatorInterface) {
				mockIdentity.EXPECT().Remove(gomock.Any(), "alice").Return(storage.ErrNotFound)
				mockAllocator.EXPECT().Deprovision(gomock.Any(), "user_alice").Return(deprovisionErr)
			},
			expectedErr: storage.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockIdentity := NewMockIdentityInterface(ctrl)
			mockAllocator := NewMockAllocatorInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			tc.setupMocks(mockIdentity, mockAllocator)

			s := NewService(mockIdentity, mockAllocator, tracing.NewNoopTracer(), mockMonitor, logging.NewNoopLogger())

			if err := s.Destroy(context.Background(), "alice"); !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
			}
		})
	}
}
