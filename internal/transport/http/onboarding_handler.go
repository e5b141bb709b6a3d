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
	"github.com/ruoomkr/platform/internal/onboarding"
)

// FieldChangeRequest sets or toggles a field on the active step
type FieldChangeRequest struct {
	Field string `json:"field" validate:"required" example:"businessName"`
	Value string `json:"value" example:"루움 피트니스"`
}

// FieldBlurRequest marks a field as touched
type FieldBlurRequest struct {
	Field string `json:"field" validate:"required" example:"email"`
}

// StartOnboarding creates a wizard for the signed-in user
// @Summary Start Onboarding
// @Tags Onboarding
// @Produce json
// @Security CookieAuth
// @Success 201 {object} onboarding.View
// @Router /onboarding [post]
func (h *Handler) StartOnboarding(w http.ResponseWriter, r *http.Request) {
	view, err := h.onboardingService.Start(r.Context(), GetUserID(r.Context()))
	if err != nil {
		respondOnboardingError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, view)
}

// GetOnboarding returns the current wizard view
// @Summary Get Onboarding
// @Tags Onboarding
// @Produce json
// @Security CookieAuth
// @Param wizardID path string true "Wizard ID"
// @Success 200 {object} onboarding.View
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /onboarding/{wizardID} [get]
func (h *Handler) GetOnboarding(w http.ResponseWriter, r *http.Request) {
	view, err := h.onboardingService.Get(r.Context(), GetUserID(r.Context()), chi.URLParam(r, "wizardID"))
	if err != nil {
		respondOnboardingError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// SetOnboardingField changes a field on the active step
// @Summary Set Field
// @Tags Onboarding
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param wizardID path string true "Wizard ID"
// @Param request body FieldChangeRequest true "Field"
// @Success 200 {object} onboarding.View
// @Failure 400 {object} map[string]string
// @Router /onboarding/{wizardID}/fields [patch]
func (h *Handler) SetOnboardingField(w http.ResponseWriter, r *http.Request) {
	var req FieldChangeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	view, err := h.onboardingService.Change(r.Context(), GetUserID(r.Context()), chi.URLParam(r, "wizardID"), req.Field, req.Value)
	if err != nil {
		respondOnboardingError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// ToggleOnboardingField flips a value of a multi-select field
// @Summary Toggle Field
// @Tags Onboarding
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param wizardID path string true "Wizard ID"
// @Param request body FieldChangeRequest true "Field"
// @Success 200 {object} onboarding.View
// @Failure 400 {object} map[string]string
// @Router /onboarding/{wizardID}/toggle [post]
func (h *Handler) ToggleOnboardingField(w http.ResponseWriter, r *http.Request) {
	var req FieldChangeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	view, err := h.onboardingService.Toggle(r.Context(), GetUserID(r.Context()), chi.URLParam(r, "wizardID"), req.Field, req.Value)
	if err != nil {
		respondOnboardingError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// BlurOnboardingField validates a single field after it loses focus
// @Summary Blur Field
// @Tags Onboarding
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param wizardID path string true "Wizard ID"
// @Param request body FieldBlurRequest true "Field"
// @Success 200 {object} onboarding.View
// @Failure 400 {object} map[string]string
// @Router /onboarding/{wizardID}/blur [post]
func (h *Handler) BlurOnboardingField(w http.ResponseWriter, r *http.Request) {
	var req FieldBlurRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	view, err := h.onboardingService.Blur(r.Context(), GetUserID(r.Context()), chi.URLParam(r, "wizardID"), req.Field)
	if err != nil {
		respondOnboardingError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// NextOnboardingStep submits the active step
// @Summary Next Step
// @Description Validates the active step. Returns 422 with field errors when blocked; on the last step provisions the tenant.
// @Tags Onboarding
// @Produce json
// @Security CookieAuth
// @Param wizardID path string true "Wizard ID"
// @Success 200 {object} onboarding.Result
// @Failure 409 {object} map[string]string
// @Failure 422 {object} onboarding.Result
// @Router /onboarding/{wizardID}/next [post]
func (h *Handler) NextOnboardingStep(w http.ResponseWriter, r *http.Request) {
	res, err := h.onboardingService.Next(r.Context(), GetUserID(r.Context()), chi.URLParam(r, "wizardID"))
	if err != nil {
		respondOnboardingError(w, r, err)
		return
	}
	if res.Outcome == onboarding.OutcomeBlocked {
		respondJSON(w, http.StatusUnprocessableEntity, res)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// PreviousOnboardingStep returns to the previous step
// @Summary Previous Step
// @Tags Onboarding
// @Produce json
// @Security CookieAuth
// @Param wizardID path string true "Wizard ID"
// @Success 200 {object} onboarding.View
// @Failure 409 {object} map[string]string
// @Router /onboarding/{wizardID}/back [post]
func (h *Handler) PreviousOnboardingStep(w http.ResponseWriter, r *http.Request) {
	view, err := h.onboardingService.Back(r.Context(), GetUserID(r.Context()), chi.URLParam(r, "wizardID"))
	if err != nil {
		respondOnboardingError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// DiscardOnboarding drops a wizard
// @Summary Discard Onboarding
// @Tags Onboarding
// @Security CookieAuth
// @Param wizardID path string true "Wizard ID"
// @Success 204
// @Router /onboarding/{wizardID} [delete]
func (h *Handler) DiscardOnboarding(w http.ResponseWriter, r *http.Request) {
	if err := h.onboardingService.Discard(r.Context(), GetUserID(r.Context()), chi.URLParam(r, "wizardID")); err != nil {
		respondOnboardingError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func respondOnboardingError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, onboarding.ErrWizardNotFound):
		respondError(w, http.StatusNotFound, "onboarding not found")
	case errors.Is(err, onboarding.ErrWizardForbidden):
		respondError(w, http.StatusForbidden, "onboarding belongs to another user")
	case errors.Is(err, onboarding.ErrUnknownField):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, onboarding.ErrWizardComplete), errors.Is(err, onboarding.ErrNoPreviousStep):
		respondError(w, http.StatusConflict, err.Error())
	default:
		slog.ErrorContext(r.Context(), "onboarding request failed", logger.Request(r), logger.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to complete onboarding, please retry")
	}
}
