// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

type RegisterRequest struct {
	Username string `json:"username" validate:"required,alphanum,max=63"`
	Password string `json:"password" validate:"required,min=1,max=72"`
}

type RegisterResponse struct {
	Username  string `json:"username"`
	Namespace string `json:"namespace"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Status string `json:"status"`
}
