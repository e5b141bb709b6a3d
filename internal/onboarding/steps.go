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

import (
	"slices"
	"strings"
)

// BusinessStep collects BusinessInfo.
type BusinessStep struct {
	*form
}

// NewBusinessStep creates an empty business step.
func NewBusinessStep() *BusinessStep {
	s := &BusinessStep{}
	s.form = newForm(StepBusiness, []string{
		FieldBusinessName,
		FieldBusinessType,
		FieldBusinessCategory,
		FieldDescription,
		FieldAddress,
		FieldPhone,
		FieldEmail,
		FieldWebsite,
	}, nil, s.check)
	return s
}

func (s *BusinessStep) check(field string) string {
	value := s.values[field]
	if msg := ValidateBusinessField(field, value); msg != "" {
		return msg
	}
	if field == FieldBusinessCategory && !hasOption(CategoryOptions(s.businessType()), value) {
		return "선택한 업종에 해당하는 카테고리를 선택해주세요"
	}
	return ""
}

func (s *BusinessStep) businessType() BusinessType {
	return BusinessType(s.values[FieldBusinessType])
}

// Set updates a field. Changing the business type drops a category that does not belong
// to the new type.
func (s *BusinessStep) Set(field, value string) error {
	if err := s.set(field, value); err != nil {
		return err
	}
	if field == FieldBusinessType {
		s.Rebase(s.businessType())
	}
	return nil
}

func (s *BusinessStep) Toggle(field, value string) error { return s.toggle(field, value) }
func (s *BusinessStep) Blur(field string) error          { return s.blur(field) }
func (s *BusinessStep) Submit() bool                     { return s.submit() }
func (s *BusinessStep) View() StepView                   { return s.view() }

// Rebase clears the category when it is not an option of bt. A kept category is
// revalidated so an error shown for the previous type does not linger.
func (s *BusinessStep) Rebase(bt BusinessType) {
	cat := s.values[FieldBusinessCategory]
	if cat != "" && (bt == "" || !hasOption(CategoryOptions(bt), cat)) {
		s.reset(FieldBusinessCategory)
		return
	}
	s.revalidate(FieldBusinessCategory)
}

// BusinessType returns the currently entered business type.
func (s *BusinessStep) BusinessType() BusinessType { return s.businessType() }

func (s *BusinessStep) Payload() Data {
	v := s.values
	return Data{BusinessInfo: &BusinessInfo{
		BusinessName:     strings.TrimSpace(v[FieldBusinessName]),
		BusinessType:     BusinessType(v[FieldBusinessType]),
		BusinessCategory: v[FieldBusinessCategory],
		Description:      strings.TrimSpace(v[FieldDescription]),
		Address:          strings.TrimSpace(v[FieldAddress]),
		Phone:            strings.TrimSpace(v[FieldPhone]),
		Email:            strings.TrimSpace(v[FieldEmail]),
		Website:          strings.TrimSpace(v[FieldWebsite]),
	}}
}

// TemplateStep picks a site template. Recommendations follow the upstream business type
// but any catalog entry may be chosen.
type TemplateStep struct {
	*form
	bt BusinessType
}

// NewTemplateStep creates an empty template step.
func NewTemplateStep() *TemplateStep {
	s := &TemplateStep{}
	s.form = newForm(StepTemplate, []string{FieldTemplate}, nil, s.check)
	return s
}

func (s *TemplateStep) check(field string) string {
	id := strings.TrimSpace(s.values[field])
	if id == "" {
		return "템플릿을 선택해주세요"
	}
	if _, ok := TemplateByID(id); !ok {
		return "존재하지 않는 템플릿입니다"
	}
	return ""
}

func (s *TemplateStep) Set(field, value string) error    { return s.set(field, value) }
func (s *TemplateStep) Toggle(field, value string) error { return s.toggle(field, value) }
func (s *TemplateStep) Blur(field string) error          { return s.blur(field) }
func (s *TemplateStep) Submit() bool                     { return s.submit() }
func (s *TemplateStep) View() StepView                   { return s.view() }
func (s *TemplateStep) Rebase(bt BusinessType)           { s.bt = bt }

// Recommended returns the templates recommended for the upstream business type.
func (s *TemplateStep) Recommended() []Template { return RecommendedTemplates(s.bt) }

func (s *TemplateStep) Payload() Data {
	id := strings.TrimSpace(s.values[FieldTemplate])
	return Data{SelectedTemplate: &id}
}

// SpaceStep collects the tenant's first bookable space.
type SpaceStep struct {
	*form
	bt BusinessType
}

// NewSpaceStep creates an empty space step.
func NewSpaceStep() *SpaceStep {
	s := &SpaceStep{}
	s.form = newForm(StepSpace, []string{
		FieldSpaceName,
		FieldSpaceType,
		FieldCapacity,
		FieldDescription,
		FieldImage,
	}, []string{FieldAmenities}, s.check)
	return s
}

func (s *SpaceStep) check(field string) string {
	if field == FieldAmenities {
		opts := AmenityOptions(s.bt)
		for _, a := range s.sets[FieldAmenities] {
			if !hasAmenity(opts, a) {
				return "선택할 수 없는 편의시설이 포함되어 있습니다"
			}
		}
		return ""
	}
	value := s.values[field]
	if msg := ValidateSpaceField(field, value); msg != "" {
		return msg
	}
	if field == FieldSpaceType && !hasOption(SpaceTypeOptions(s.bt), value) {
		return "업종에 해당하는 공간 유형을 선택해주세요"
	}
	return ""
}

func (s *SpaceStep) Set(field, value string) error    { return s.set(field, value) }
func (s *SpaceStep) Toggle(field, value string) error { return s.toggle(field, value) }
func (s *SpaceStep) Blur(field string) error          { return s.blur(field) }
func (s *SpaceStep) Submit() bool                     { return s.submit() }
func (s *SpaceStep) View() StepView                   { return s.view() }

// Rebase drops a space type and any amenities that bt does not offer. Kept values are
// revalidated against bt.
func (s *SpaceStep) Rebase(bt BusinessType) {
	s.bt = bt
	if st := s.values[FieldSpaceType]; st != "" && !hasOption(SpaceTypeOptions(bt), st) {
		s.reset(FieldSpaceType)
	} else {
		s.revalidate(FieldSpaceType)
	}

	cur := s.sets[FieldAmenities]
	opts := AmenityOptions(bt)
	kept := slices.DeleteFunc(slices.Clone(cur), func(a string) bool { return !hasAmenity(opts, a) })
	if len(kept) != len(cur) {
		s.reset(FieldAmenities)
		s.sets[FieldAmenities] = kept
		return
	}
	s.revalidate(FieldAmenities)
}

func (s *SpaceStep) Payload() Data {
	v := s.values
	capacity, _ := ParseCapacity(v[FieldCapacity])
	return Data{SpaceInfo: &SpaceInfo{
		SpaceName:   strings.TrimSpace(v[FieldSpaceName]),
		SpaceType:   v[FieldSpaceType],
		Capacity:    capacity,
		Description: strings.TrimSpace(v[FieldDescription]),
		Amenities:   slices.Clone(s.sets[FieldAmenities]),
		Image:       strings.TrimSpace(v[FieldImage]),
	}}
}
