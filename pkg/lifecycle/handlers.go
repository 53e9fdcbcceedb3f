// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package lifecycle

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/sqllab-service/internal/logging"
	"github.com/canonical/sqllab-service/internal/monitoring"
	"github.com/canonical/sqllab-service/internal/storage"
	"github.com/canonical/sqllab-service/internal/tracing"
	"github.com/canonical/sqllab-service/pkg/authentication"
)

type TenantView struct {
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// API exposes the admin-only user management surface.
type API struct {
	service  ServiceInterface
	identity IdentityInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(
	service ServiceInterface,
	identity IdentityInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		service:  service,
		identity: identity,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/v0/users", a.listUsers)
	mux.Delete("/api/v0/users/{name}", a.deleteUser)
}

func (a *API) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "lifecycle.API.listUsers")
	defer span.End()

	if !requireAdmin(ctx, w) {
		return
	}

	tenants, err := a.identity.List(ctx)
	if err != nil {
		a.logger.Errorf("failed to list tenants: %v", err)
		http.Error(w, "failed to list users", http.StatusInternalServerError)
		return
	}

	views := make([]TenantView, 0, len(tenants))
	for _, t := range tenants {
		views = append(views, TenantView{Name: t.Name, CreatedAt: t.CreatedAt})
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"users": views})
}

func (a *API) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "lifecycle.API.deleteUser")
	defer span.End()

	if !requireAdmin(ctx, w) {
		return
	}

	name := chi.URLParam(r, "name")

	if err := a.service.Destroy(ctx, name); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		a.logger.Errorf("failed to destroy tenant %s: %v", name, err)
		http.Error(w, "failed to delete user", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func requireAdmin(ctx context.Context, w http.ResponseWriter) bool {
	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok || !principal.Admin {
		http.Error(w, "admin access required", http.StatusForbidden)
		return false
	}
	return true
}
