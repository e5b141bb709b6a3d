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
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/ruoomkr/platform/internal/audit"
	"github.com/ruoomkr/platform/internal/observability/logger"
)

// SignInRequest represents a mock sign-in
type SignInRequest struct {
	Email string `json:"email" validate:"required,email" example:"owner@ruoom.kr"`
}

// CreateSession handles mock sign-in. The user ID is derived from the email so the same
// address always maps to the same user.
// @Summary Sign In
// @Description Create a session for an email address
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body SignInRequest true "Email"
// @Success 200 {object} session.User
// @Failure 400 {object} map[string]string
// @Router /auth/session [post]
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req SignInRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	userID := uuid.NewSHA1(uuid.NameSpaceURL, []byte("mailto:"+email)).String()

	sess, err := h.sessionService.Create(r.Context(), "", userID, email, getIPAddress(r), r.UserAgent())
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to create session", logger.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to create session")
		return
	}

	h.setSessionCookie(w, sess.ID)

	h.auditLogger.Log(r.Context(), audit.Event{
		Type:      audit.TypeSessionCreated,
		ActorID:   userID,
		Resource:  "session",
		IPAddress: getIPAddress(r),
		UserAgent: r.UserAgent(),
		Metadata:  map[string]any{"session_id": sess.ID},
	})

	respondJSON(w, http.StatusOK, sess.User())
}

// Logout handles user logout
// @Summary Logout
// @Description Destroy the current session
// @Tags Auth
// @Produce json
// @Security CookieAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/logout [post]
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	user, ok := h.sessionService.CurrentUser(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	if err := h.sessionService.SignOut(r.Context()); err != nil {
		slog.ErrorContext(r.Context(), "failed to destroy session", logger.SessionID(user.SessionID), logger.Error(err))
	}

	h.auditLogger.Log(r.Context(), audit.Event{
		Type:      audit.TypeLogout,
		ActorID:   user.ID,
		Resource:  "session",
		IPAddress: getIPAddress(r),
		UserAgent: r.UserAgent(),
		Metadata:  map[string]any{"session_id": user.SessionID},
	})

	h.clearSessionCookie(w)

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "logged out successfully",
	})
}

// GetCurrentUser returns the signed-in user
// @Summary Get Current User
// @Description Retrieve the currently signed-in user
// @Tags Auth
// @Produce json
// @Security CookieAuth
// @Success 200 {object} session.User
// @Failure 401 {object} map[string]string
// @Router /auth/me [get]
func (h *Handler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, ok := h.sessionService.CurrentUser(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "not authenticated")
		return
	}
	respondJSON(w, http.StatusOK, user)
}
