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
	"net/http"

	"github.com/ruoomkr/platform/internal/onboarding"
	"github.com/ruoomkr/platform/internal/viewstate"
)

// Template browser tabs
const (
	tabRecommended = "recommended"
	tabAll         = "all"
)

var templateTabs = viewstate.NewTabs(tabRecommended, tabAll)

// ListBusinessTypes returns the business types offered in the first step
// @Summary List Business Types
// @Tags Options
// @Produce json
// @Success 200 {array} onboarding.Option
// @Router /options/business-types [get]
func (h *Handler) ListBusinessTypes(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, onboarding.BusinessTypeOptions())
}

// ListCategories returns the categories of a business type
// @Summary List Categories
// @Tags Options
// @Produce json
// @Param businessType query string false "Business type, unknown values fall back to other"
// @Success 200 {array} onboarding.Option
// @Router /options/categories [get]
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, onboarding.CategoryOptions(businessTypeParam(r)))
}

// ListSpaceTypes returns the space types of a business type
// @Summary List Space Types
// @Tags Options
// @Produce json
// @Param businessType query string false "Business type, unknown values fall back to other"
// @Success 200 {array} onboarding.Option
// @Router /options/space-types [get]
func (h *Handler) ListSpaceTypes(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, onboarding.SpaceTypeOptions(businessTypeParam(r)))
}

// ListAmenities returns the amenities of a business type
// @Summary List Amenities
// @Tags Options
// @Produce json
// @Param businessType query string false "Business type, unknown values fall back to other"
// @Success 200 {array} onboarding.Amenity
// @Router /options/amenities [get]
func (h *Handler) ListAmenities(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, onboarding.AmenityOptions(businessTypeParam(r)))
}

// TemplatePage is one page of the template browser
type TemplatePage struct {
	Tab  string                                `json:"tab"`
	Tabs []string                              `json:"tabs"`
	Page viewstate.Result[onboarding.Template] `json:"page"`
}

// ListTemplates pages through the template catalog. The recommended tab only lists
// templates matching businessType; an unknown businessType matches nothing.
// @Summary List Templates
// @Tags Options
// @Produce json
// @Param tab query string false "recommended or all"
// @Param businessType query string false "Business type"
// @Param page query int false "Page number"
// @Param perPage query int false "Page size"
// @Success 200 {object} TemplatePage
// @Router /templates [get]
func (h *Handler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	bt := businessTypeParam(r)
	if !onboarding.IsBusinessType(string(bt)) {
		bt = ""
	}

	recommended := make(map[string]bool)
	for _, t := range onboarding.RecommendedTemplates(bt) {
		recommended[t.ID] = true
	}
	items := onboarding.Templates()
	for i := range items {
		items[i].Recommended = recommended[items[i].ID]
	}

	tab := templateTabs.Select(q.Get("tab"))
	if tab == tabRecommended {
		items = viewstate.Filter(items, func(t onboarding.Template) bool { return t.Recommended })
	}

	respondJSON(w, http.StatusOK, TemplatePage{
		Tab:  tab,
		Tabs: templateTabs.Names(),
		Page: viewstate.Paginate(items, viewstate.ParsePage(q.Get("page"), q.Get("perPage"))),
	})
}

func businessTypeParam(r *http.Request) onboarding.BusinessType {
	return onboarding.BusinessType(r.URL.Query().Get("businessType"))
}
