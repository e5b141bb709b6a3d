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

package onboarding

import "slices"

// BusinessInfo is the payload of the business step.
type BusinessInfo struct {
	BusinessName     string       `json:"businessName"`
	BusinessType     BusinessType `json:"businessType"`
	BusinessCategory string       `json:"businessCategory"`
	Description      string       `json:"description"`
	Address          string       `json:"address"`
	Phone            string       `json:"phone"`
	Email            string       `json:"email"`
	Website          string       `json:"website,omitempty"`
}

// SpaceInfo is the payload of the space step. Image is an opaque reference to a
// client-side upload; nothing is fetched or stored for it.
type SpaceInfo struct {
	SpaceName   string   `json:"spaceName"`
	SpaceType   string   `json:"spaceType"`
	Capacity    int      `json:"capacity"`
	Description string   `json:"description,omitempty"`
	Amenities   []string `json:"amenities"`
	Image       string   `json:"image,omitempty"`
}

// Data is the aggregate collected across the wizard. A key is set only after its step
// validated.
type Data struct {
	BusinessInfo     *BusinessInfo `json:"businessInfo,omitempty"`
	SelectedTemplate *string       `json:"selectedTemplate,omitempty"`
	SpaceInfo        *SpaceInfo    `json:"spaceInfo,omitempty"`
}

// Clone returns a deep copy so callers cannot reach into wizard-owned memory.
func (d Data) Clone() Data {
	var out Data
	if d.BusinessInfo != nil {
		b := *d.BusinessInfo
		out.BusinessInfo = &b
	}
	if d.SelectedTemplate != nil {
		t := *d.SelectedTemplate
		out.SelectedTemplate = &t
	}
	if d.SpaceInfo != nil {
		s := *d.SpaceInfo
		s.Amenities = slices.Clone(d.SpaceInfo.Amenities)
		out.SpaceInfo = &s
	}
	return out
}

// IsComplete reports whether every step has merged its payload.
func (d Data) IsComplete() bool {
	return d.BusinessInfo != nil && d.SelectedTemplate != nil && d.SpaceInfo != nil
}

// merge copies only the keys present in patch.
func (d *Data) merge(patch Data) {
	patch = patch.Clone()
	if patch.BusinessInfo != nil {
		d.BusinessInfo = patch.BusinessInfo
	}
	if patch.SelectedTemplate != nil {
		d.SelectedTemplate = patch.SelectedTemplate
	}
	if patch.SpaceInfo != nil {
		d.SpaceInfo = patch.SpaceInfo
	}
}
