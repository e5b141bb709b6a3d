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

// BusinessType identifies the kind of business a tenant runs.
type BusinessType string

// Business types offered in the first onboarding step
const (
	BusinessGym         BusinessType = "gym"
	BusinessYoga        BusinessType = "yoga"
	BusinessPilates     BusinessType = "pilates"
	BusinessDance       BusinessType = "dance"
	BusinessMartialArts BusinessType = "martial_arts"
	BusinessClinic      BusinessType = "clinic"
	BusinessBeauty      BusinessType = "beauty"
	BusinessEducation   BusinessType = "education"
	BusinessOther       BusinessType = "other"
)

// Option is a selectable value with its display label.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Amenity is an amenity option with the icon the UI renders next to it.
type Amenity struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

var businessTypes = []Option{
	{Value: string(BusinessGym), Label: "헬스/피트니스"},
	{Value: string(BusinessYoga), Label: "요가"},
	{Value: string(BusinessPilates), Label: "필라테스"},
	{Value: string(BusinessDance), Label: "댄스"},
	{Value: string(BusinessMartialArts), Label: "무술/격투기"},
	{Value: string(BusinessClinic), Label: "병원/클리닉"},
	{Value: string(BusinessBeauty), Label: "뷰티/미용"},
	{Value: string(BusinessEducation), Label: "교육/학원"},
	{Value: string(BusinessOther), Label: "기타"},
}

var categoryOptions = map[BusinessType][]Option{
	BusinessGym: {
		{Value: "pt", Label: "PT 전문"},
		{Value: "general_fitness", Label: "종합 피트니스"},
		{Value: "crossfit", Label: "크로스핏"},
		{Value: "women_only", Label: "여성 전용"},
		{Value: "24h", Label: "24시간 헬스장"},
	},
	BusinessYoga: {
		{Value: "hatha", Label: "하타 요가"},
		{Value: "vinyasa", Label: "빈야사 요가"},
		{Value: "ashtanga", Label: "아쉬탕가 요가"},
		{Value: "hot_yoga", Label: "핫 요가"},
		{Value: "meditation", Label: "명상"},
	},
	BusinessPilates: {
		{Value: "reformer", Label: "기구 필라테스"},
		{Value: "mat", Label: "매트 필라테스"},
		{Value: "rehab", Label: "재활 필라테스"},
		{Value: "group", Label: "그룹 필라테스"},
	},
	BusinessDance: {
		{Value: "kpop", Label: "K-POP 댄스"},
		{Value: "ballet", Label: "발레"},
		{Value: "jazz", Label: "재즈 댄스"},
		{Value: "dancesport", Label: "댄스스포츠"},
	},
	BusinessMartialArts: {
		{Value: "taekwondo", Label: "태권도"},
		{Value: "jiujitsu", Label: "주짓수"},
		{Value: "boxing", Label: "복싱"},
		{Value: "hapkido", Label: "합기도"},
	},
	BusinessClinic: {
		{Value: "physical_therapy", Label: "물리치료"},
		{Value: "manual_therapy", Label: "도수치료"},
		{Value: "oriental_medicine", Label: "한의원"},
		{Value: "dermatology", Label: "피부과"},
	},
	BusinessBeauty: {
		{Value: "hair", Label: "헤어샵"},
		{Value: "nail", Label: "네일샵"},
		{Value: "skincare", Label: "피부관리"},
		{Value: "waxing", Label: "왁싱"},
	},
	BusinessEducation: {
		{Value: "music", Label: "음악 학원"},
		{Value: "art", Label: "미술 학원"},
		{Value: "language", Label: "어학원"},
		{Value: "coding", Label: "코딩 교육"},
	},
	BusinessOther: {
		{Value: "other", Label: "기타"},
	},
}

var spaceTypeOptions = map[BusinessType][]Option{
	BusinessGym: {
		{Value: "weight_zone", Label: "웨이트존"},
		{Value: "cardio_zone", Label: "유산소존"},
		{Value: "pt_room", Label: "PT룸"},
		{Value: "gx_room", Label: "GX룸"},
	},
	BusinessYoga: {
		{Value: "yoga_studio", Label: "요가룸"},
		{Value: "hot_room", Label: "핫요가룸"},
		{Value: "meditation_room", Label: "명상실"},
	},
	BusinessPilates: {
		{Value: "reformer_room", Label: "기구실"},
		{Value: "mat_room", Label: "매트실"},
		{Value: "private_room", Label: "개인 레슨실"},
	},
	BusinessDance: {
		{Value: "dance_studio", Label: "댄스 스튜디오"},
		{Value: "practice_room", Label: "연습실"},
	},
	BusinessMartialArts: {
		{Value: "dojang", Label: "도장"},
		{Value: "ring", Label: "링"},
		{Value: "mat_area", Label: "매트 구역"},
	},
	BusinessClinic: {
		{Value: "treatment_room", Label: "치료실"},
		{Value: "consultation_room", Label: "상담실"},
		{Value: "exercise_room", Label: "운동치료실"},
	},
	BusinessBeauty: {
		{Value: "styling_zone", Label: "스타일링존"},
		{Value: "care_room", Label: "관리실"},
		{Value: "private_room", Label: "프라이빗룸"},
	},
	BusinessEducation: {
		{Value: "classroom", Label: "강의실"},
		{Value: "practice_room", Label: "연습실"},
		{Value: "study_room", Label: "자습실"},
	},
	BusinessOther: {
		{Value: "general", Label: "일반 공간"},
		{Value: "meeting_room", Label: "회의실"},
	},
}

var amenityOptions = map[BusinessType][]Amenity{
	BusinessGym: {
		{Value: "shower", Label: "샤워실", Icon: "shower-head"},
		{Value: "locker", Label: "락커", Icon: "lock"},
		{Value: "towel", Label: "수건 제공", Icon: "shirt"},
		{Value: "uniform", Label: "운동복 제공", Icon: "shirt"},
		{Value: "parking", Label: "주차", Icon: "car"},
		{Value: "wifi", Label: "와이파이", Icon: "wifi"},
	},
	BusinessYoga: {
		{Value: "mat", Label: "요가매트 제공", Icon: "layers"},
		{Value: "shower", Label: "샤워실", Icon: "shower-head"},
		{Value: "locker", Label: "락커", Icon: "lock"},
		{Value: "aircon", Label: "냉난방", Icon: "thermometer"},
		{Value: "tea", Label: "차 제공", Icon: "coffee"},
	},
	BusinessPilates: {
		{Value: "reformer", Label: "리포머", Icon: "dumbbell"},
		{Value: "cadillac", Label: "캐딜락", Icon: "dumbbell"},
		{Value: "shower", Label: "샤워실", Icon: "shower-head"},
		{Value: "locker", Label: "락커", Icon: "lock"},
		{Value: "parking", Label: "주차", Icon: "car"},
	},
	BusinessDance: {
		{Value: "mirror", Label: "전면 거울", Icon: "square"},
		{Value: "sound", Label: "음향 시스템", Icon: "speaker"},
		{Value: "locker", Label: "락커", Icon: "lock"},
		{Value: "aircon", Label: "냉난방", Icon: "thermometer"},
	},
	BusinessMartialArts: {
		{Value: "mat", Label: "매트", Icon: "layers"},
		{Value: "sandbag", Label: "샌드백", Icon: "target"},
		{Value: "shower", Label: "샤워실", Icon: "shower-head"},
		{Value: "locker", Label: "락커", Icon: "lock"},
	},
	BusinessClinic: {
		{Value: "waiting_room", Label: "대기실", Icon: "sofa"},
		{Value: "parking", Label: "주차", Icon: "car"},
		{Value: "wheelchair", Label: "휠체어 접근", Icon: "accessibility"},
		{Value: "wifi", Label: "와이파이", Icon: "wifi"},
	},
	BusinessBeauty: {
		{Value: "waiting_room", Label: "대기실", Icon: "sofa"},
		{Value: "drinks", Label: "음료 제공", Icon: "coffee"},
		{Value: "parking", Label: "주차", Icon: "car"},
		{Value: "wifi", Label: "와이파이", Icon: "wifi"},
	},
	BusinessEducation: {
		{Value: "projector", Label: "프로젝터", Icon: "projector"},
		{Value: "whiteboard", Label: "화이트보드", Icon: "presentation"},
		{Value: "wifi", Label: "와이파이", Icon: "wifi"},
		{Value: "aircon", Label: "냉난방", Icon: "thermometer"},
	},
	BusinessOther: {
		{Value: "wifi", Label: "와이파이", Icon: "wifi"},
		{Value: "parking", Label: "주차", Icon: "car"},
		{Value: "aircon", Label: "냉난방", Icon: "thermometer"},
	},
}

// BusinessTypeOptions returns every business type in display order.
func BusinessTypeOptions() []Option {
	return append([]Option(nil), businessTypes...)
}

// IsBusinessType reports whether v names a known business type.
func IsBusinessType(v string) bool {
	_, ok := categoryOptions[BusinessType(v)]
	return ok
}

// CategoryOptions returns the categories valid for bt. Unknown types fall back to "other".
func CategoryOptions(bt BusinessType) []Option {
	return lookup(categoryOptions, bt)
}

// SpaceTypeOptions returns the space types valid for bt. Unknown types fall back to "other".
func SpaceTypeOptions(bt BusinessType) []Option {
	return lookup(spaceTypeOptions, bt)
}

// AmenityOptions returns the amenities valid for bt. Unknown types fall back to "other".
func AmenityOptions(bt BusinessType) []Amenity {
	return lookup(amenityOptions, bt)
}

func lookup[T any](table map[BusinessType][]T, bt BusinessType) []T {
	opts, ok := table[bt]
	if !ok {
		opts = table[BusinessOther]
	}
	return append([]T(nil), opts...)
}

func hasOption(opts []Option, value string) bool {
	for _, o := range opts {
		if o.Value == value {
			return true
		}
	}
	return false
}

func hasAmenity(opts []Amenity, value string) bool {
	for _, a := range opts {
		if a.Value == value {
			return true
		}
	}
	return false
}
