// Copyright 2026 The Ruoom Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ruoomkr/platform/internal/observability/logger"
	"github.com/ruoomkr/platform/internal/tenant"
)

// RequireTenantAccess rejects requests from users holding no role in the tenant named by
// the tenantID path parameter.
func (h *Handler) RequireTenantAccess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tenantID := chi.URLParam(r, "tenantID")
		if tenantID == "" {
			respondError(w, http.StatusBadRequest, "tenant_id is required")
			return
		}

		userID := GetUserID(r.Context())
		ok, err := h.tenantService.HasAccess(r.Context(), tenantID, userID)
		if err != nil {
			slog.ErrorContext(r.Context(), "failed to check tenant access",
				logger.TenantID(tenantID), logger.UserID(userID), logger.Error(err))
			respondError(w, http.StatusInternalServerError, "failed to check tenant access")
			return
		}
		if !ok {
			respondError(w, http.StatusForbidden, "no access to tenant")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// GetTenant returns a tenant the user belongs to
// @Summary Get Tenant
// @Tags Tenant
// @Produce json
// @Security CookieAuth
// @Param tenantID path string true "Tenant ID"
// @Success 200 {object} tenant.Tenant
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tenants/{tenantID} [get]
func (h *Handler) GetTenant(w http.ResponseWriter, r *http.Request) {
	t, err := h.tenantService.GetTenant(r.Context(), chi.URLParam(r, "tenantID"))
	if err != nil {
		if errors.Is(err, tenant.ErrTenantNotFound) {
			respondError(w, http.StatusNotFound, "tenant not found")
			return
		}
		slog.ErrorContext(r.Context(), "failed to get tenant", logger.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to get tenant")
		return
	}

	respondJSON(w, http.StatusOK, t)
}

// ListTenantSpaces returns the spaces of a tenant
// @Summary List Spaces
// @Tags Tenant
// @Produce json
// @Security CookieAuth
// @Param tenantID path string true "Tenant ID"
// @Success 200 {array} tenant.Space
// @Failure 403 {object} map[string]string
// @Router /tenants/{tenantID}/spaces [get]
func (h *Handler) ListTenantSpaces(w http.ResponseWriter, r *http.Request) {
	spaces, err := h.tenantService.ListSpaces(r.Context(), chi.URLParam(r, "tenantID"))
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to list spaces", logger.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to list spaces")
		return
	}

	respondJSON(w, http.StatusOK, spaces)
}
