// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/sqllab-service/internal/logging"
	"github.com/canonical/sqllab-service/internal/monitoring"
	"github.com/canonical/sqllab-service/internal/tracing"
)

type API struct {
	lifecycle LifecycleInterface
	service   ServiceInterface
	validate  *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(
	lifecycle LifecycleInterface,
	service ServiceInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		lifecycle: lifecycle,
		service:   service,
		validate:  validator.New(),
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	// registration is deliberately self-service and unauthenticated
	mux.Post("/api/v0/register", a.register)
	mux.Post("/api/v0/login", a.login)
}

func (a *API) register(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "identity.API.register")
	defer span.End()

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		badRequest(w, "username must be alphanumeric and password non-empty")
		return
	}

	ns, err := a.lifecycle.Create(ctx, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidName):
			badRequest(w, err.Error())
		case errors.Is(err, ErrDuplicateName):
			writeError(w, http.StatusConflict, "user already exists")
		default:
			a.logger.Errorf("failed to register tenant: %v", err)
			writeError(w, http.StatusInternalServerError, "registration failed")
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(RegisterResponse{
		Username:  req.Username,
		Namespace: ns,
	})
}

func (a *API) login(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "identity.API.login")
	defer span.End()

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		badRequest(w, "username and password are required")
		return
	}

	ok, err := a.service.Verify(ctx, req.Username, req.Password)
	if err != nil {
		a.logger.Errorf("failed to verify credentials: %v", err)
		writeError(w, http.StatusInternalServerError, "login failed")
		return
	}
	if !ok {
		a.logger.Security().AuthenticationFailure(req.Username)
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(LoginResponse{Status: "ok"})
}

func badRequest(w http.ResponseWriter, message string) {
	writeError(w, http.StatusBadRequest, message)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":  status,
		"message": message,
	})
}
