// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/canonical/sqllab-service/internal/logging"
	"github.com/canonical/sqllab-service/internal/monitoring"
	"github.com/canonical/sqllab-service/internal/tracing"
	"github.com/canonical/sqllab-service/internal/types"
)

// Middleware authenticates each request and injects a Principal into the
// request context. Tenants use HTTP Basic credentials checked against the
// identity store, the admin principal presents the configured shared
// secret as a bearer token. There is no session state, every request
// authenticates on its own.
type Middleware struct {
	verifier   VerifierInterface
	adminToken string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(verifier VerifierInterface, adminToken string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		verifier:   verifier,
		adminToken: adminToken,
		tracer:     tracer,
		monitor:    monitor,
		logger:     logger,
	}
}

func (m *Middleware) Authenticate() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authentication.Middleware.Authenticate")
			defer span.End()

			if token, found := m.getBearerToken(r.Header); found {
				if m.adminToken != "" && subtle.ConstantTimeCompare([]byte(token), []byte(m.adminToken)) == 1 {
					ctx = WithPrincipal(ctx, types.Principal{Name: "admin", Admin: true})
					next.ServeHTTP(w, r.WithContext(ctx))
					return
				}
				m.logger.Security().AuthenticationFailure("admin")
				m.unauthorizedResponse(w, "invalid admin token")
				return
			}

			name, secret, ok := r.BasicAuth()
			if !ok {
				m.unauthorizedResponse(w, "missing credentials")
				return
			}

			valid, err := m.verifier.Verify(ctx, name, secret)
			if err != nil {
				m.logger.Errorf("credential verification failed: %v", err)
				m.unauthorizedResponse(w, "authentication failed")
				return
			}
			if !valid {
				m.logger.Security().AuthenticationFailure(name)
				m.unauthorizedResponse(w, "invalid credentials")
				return
			}

			ctx = WithPrincipal(ctx, types.Principal{Name: name})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (m *Middleware) getBearerToken(headers http.Header) (string, bool) {
	bearer := headers.Get("Authorization")
	if bearer == "" {
		return "", false
	}

	// Only support "Bearer <token>" format (RFC 6750)
	if !strings.HasPrefix(bearer, "Bearer ") {
		return "", false
	}

	return strings.TrimPrefix(bearer, "Bearer "), true
}

func (m *Middleware) unauthorizedResponse(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  http.StatusUnauthorized,
		"message": message,
	}); err != nil {
		m.logger.Errorf("failed to encode unauthorized response: %v", err)
	}
}
