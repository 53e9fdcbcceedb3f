// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package console

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/sqllab-service/internal/logging"
	"github.com/canonical/sqllab-service/internal/monitoring"
	"github.com/canonical/sqllab-service/internal/tracing"
	"github.com/canonical/sqllab-service/pkg/authentication"
)

type QueryRequest struct {
	SQL string `json:"sql" validate:"required"`
}

type API struct {
	service  ServiceInterface
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(
	service ServiceInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		service:  service,
		validate: validator.New(),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Post("/api/v0/query", a.query)
	mux.Get("/api/v0/tables", a.tables)
}

func (a *API) query(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "console.API.query")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]any{
			"status":  http.StatusUnauthorized,
			"message": "unauthenticated",
		})
		return
	}

	var req QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"status":  http.StatusBadRequest,
			"message": "invalid request body",
		})
		return
	}
	if err := a.validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"status":  http.StatusBadRequest,
			"message": "sql is required",
		})
		return
	}

	result, verdict := a.service.Run(ctx, principal, req.SQL)
	if !verdict.Allowed {
		writeJSON(w, http.StatusForbidden, result)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (a *API) tables(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "console.API.tables")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]any{
			"status":  http.StatusUnauthorized,
			"message": "unauthenticated",
		})
		return
	}

	tables, err := a.service.ListTables(ctx, principal, r.URL.Query().Get("schema"))
	if err != nil {
		if errors.Is(err, ErrSchemaRequired) {
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"status":  http.StatusBadRequest,
				"message": "schema parameter is required",
			})
			return
		}
		a.logger.Errorf("failed to list tables: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"status":  http.StatusInternalServerError,
			"message": "failed to list tables",
		})
		return
	}

	if tables == nil {
		tables = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"tables": tables})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
