// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

// SecurityLogger emits audit-relevant events on a dedicated marker field
// so they can be routed separately from application logs.
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) event(event string, fields ...zap.Field) {
	s.l.Info(event, append([]zap.Field{zap.String("log_type", "security")}, fields...)...)
}

func (s *SecurityLogger) SystemStartup() {
	s.event("system_startup")
}

func (s *SecurityLogger) SystemShutdown() {
	s.event("system_shutdown")
}

func (s *SecurityLogger) AuthenticationFailure(subject string) {
	s.event("authentication_failure", zap.String("subject", subject))
}

func (s *SecurityLogger) PermissionDenied(subject, rule, reason string) {
	s.event("permission_denied", zap.String("subject", subject), zap.String("rule", rule), zap.String("reason", reason))
}

func (s *SecurityLogger) TenantCreated(name string) {
	s.event("tenant_created", zap.String("tenant", name))
}

func (s *SecurityLogger) TenantDestroyed(name string) {
	s.event("tenant_destroyed", zap.String("tenant", name))
}
