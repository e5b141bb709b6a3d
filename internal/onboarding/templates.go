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

// Template is a public booking-site template a tenant can start from.
type Template struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	Category     []BusinessType `json:"category"`
	Features     []string       `json:"features"`
	PreviewImage string         `json:"previewImage"`
	Color        string         `json:"color"`
	Recommended  bool           `json:"recommended,omitempty"`
}

var catalog = []Template{
	{
		ID:           "modern-fitness",
		Name:         "모던 피트니스",
		Description:  "강렬한 색감과 PT 예약 중심 레이아웃의 피트니스 템플릿",
		Category:     []BusinessType{BusinessGym, BusinessMartialArts},
		Features:     []string{"PT 예약", "트레이너 소개", "회원권 안내", "시설 갤러리"},
		PreviewImage: "/templates/modern-fitness.png",
		Color:        "#EF4444",
	},
	{
		ID:           "zen-wellness",
		Name:         "젠 웰니스",
		Description:  "차분한 톤의 요가/필라테스 스튜디오 템플릿",
		Category:     []BusinessType{BusinessYoga, BusinessPilates},
		Features:     []string{"클래스 시간표", "강사 소개", "수련 후기", "오시는 길"},
		PreviewImage: "/templates/zen-wellness.png",
		Color:        "#10B981",
	},
	{
		ID:           "rhythm-studio",
		Name:         "리듬 스튜디오",
		Description:  "영상과 공연 사진을 강조한 댄스 스튜디오 템플릿",
		Category:     []BusinessType{BusinessDance},
		Features:     []string{"클래스 영상", "레벨별 시간표", "공연 갤러리", "체험 수업 신청"},
		PreviewImage: "/templates/rhythm-studio.png",
		Color:        "#8B5CF6",
	},
	{
		ID:           "care-clinic",
		Name:         "케어 클리닉",
		Description:  "신뢰감 있는 진료 예약 중심 클리닉 템플릿",
		Category:     []BusinessType{BusinessClinic},
		Features:     []string{"진료 예약", "의료진 소개", "진료 과목", "공지사항"},
		PreviewImage: "/templates/care-clinic.png",
		Color:        "#3B82F6",
	},
	{
		ID:           "beauty-salon",
		Name:         "뷰티 살롱",
		Description:  "포트폴리오와 디자이너 예약을 강조한 뷰티 템플릿",
		Category:     []BusinessType{BusinessBeauty},
		Features:     []string{"디자이너 예약", "시술 메뉴", "포트폴리오", "이벤트"},
		PreviewImage: "/templates/beauty-salon.png",
		Color:        "#EC4899",
	},
	{
		ID:           "academy",
		Name:         "아카데미",
		Description:  "커리큘럼과 수강 신청 중심의 교육 템플릿",
		Category:     []BusinessType{BusinessEducation, BusinessDance},
		Features:     []string{"커리큘럼", "수강 신청", "강사 소개", "수강 후기"},
		PreviewImage: "/templates/academy.png",
		Color:        "#F59E0B",
	},
	{
		ID:           "simple",
		Name:         "심플",
		Description:  "어떤 업종에도 어울리는 기본 템플릿",
		Category:     []BusinessType{BusinessOther},
		Features:     []string{"예약", "소개", "오시는 길"},
		PreviewImage: "/templates/simple.png",
		Color:        "#6B7280",
	},
}

// Templates returns the full template catalog.
func Templates() []Template {
	out := make([]Template, len(catalog))
	for i, t := range catalog {
		out[i] = cloneTemplate(t)
	}
	return out
}

// RecommendedTemplates returns the catalog entries whose category list contains bt,
// flagged as recommended. An empty bt yields no recommendations.
func RecommendedTemplates(bt BusinessType) []Template {
	if bt == "" {
		return nil
	}
	var out []Template
	for _, t := range catalog {
		if slices.Contains(t.Category, bt) {
			c := cloneTemplate(t)
			c.Recommended = true
			out = append(out, c)
		}
	}
	return out
}

// TemplateByID looks up a catalog entry.
func TemplateByID(id string) (Template, bool) {
	for _, t := range catalog {
		if t.ID == id {
			return cloneTemplate(t), true
		}
	}
	return Template{}, false
}

func cloneTemplate(t Template) Template {
	t.Category = slices.Clone(t.Category)
	t.Features = slices.Clone(t.Features)
	return t
}
