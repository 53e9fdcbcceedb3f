// Copyright 2026 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/canonical/sqllab-service/internal/db"
	"github.com/canonical/sqllab-service/internal/logging"
	"github.com/canonical/sqllab-service/internal/monitoring"
	"github.com/canonical/sqllab-service/internal/tracing"
	"github.com/canonical/sqllab-service/pkg/authentication"
	"github.com/canonical/sqllab-service/pkg/console"
	"github.com/canonical/sqllab-service/pkg/identity"
	"github.com/canonical/sqllab-service/pkg/lifecycle"
	"github.com/canonical/sqllab-service/pkg/metrics"
	"github.com/canonical/sqllab-service/pkg/status"
)

func NewRouter(
	identityAPI *identity.API,
	consoleAPI *console.API,
	lifecycleAPI *lifecycle.API,
	authMiddleware *authentication.Middleware,
	dbClient db.DBClientInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS([]string{"*"}),
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(dbClient, tracer, monitor, logger).RegisterEndpoints(router)
	identityAPI.RegisterEndpoints(router)

	// everything below requires an authenticated principal
	router.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate())

		consoleAPI.RegisterEndpoints(r)
		lifecycleAPI.RegisterEndpoints(r)
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
