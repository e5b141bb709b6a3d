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
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Field names. The JSON API uses the same identifiers.
const (
	FieldBusinessName     = "businessName"
	FieldBusinessType     = "businessType"
	FieldBusinessCategory = "businessCategory"
	FieldDescription      = "description"
	FieldAddress          = "address"
	FieldPhone            = "phone"
	FieldEmail            = "email"
	FieldWebsite          = "website"

	FieldTemplate = "selectedTemplate"

	FieldSpaceName   = "spaceName"
	FieldSpaceType   = "spaceType"
	FieldCapacity    = "capacity"
	FieldAmenities   = "amenities"
	FieldImage       = "image"
	MaxSpaceCapacity = 1000
)

var (
	phonePattern = regexp.MustCompile(`^01[016789]-\d{3,4}-\d{4}$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

const msgRequired = "필수 입력 항목입니다"

// ValidateBusinessField validates one business-info field. It returns an empty string when
// the value is acceptable. Category membership depends on the business type and is checked
// by the business step.
func ValidateBusinessField(field, value string) string {
	switch field {
	case FieldBusinessName:
		return lengthRule(value, 2, 100, "비즈니스명")
	case FieldBusinessType:
		if strings.TrimSpace(value) == "" {
			return "업종을 선택해주세요"
		}
		if !IsBusinessType(value) {
			return "올바른 업종을 선택해주세요"
		}
	case FieldBusinessCategory:
		if strings.TrimSpace(value) == "" {
			return "세부 카테고리를 선택해주세요"
		}
	case FieldDescription:
		return lengthRule(value, 20, 500, "비즈니스 소개")
	case FieldAddress:
		return lengthRule(value, 5, 200, "주소")
	case FieldPhone:
		if strings.TrimSpace(value) == "" {
			return msgRequired
		}
		if !phonePattern.MatchString(strings.TrimSpace(value)) {
			return "올바른 휴대폰 번호 형식이 아닙니다 (예: 010-1234-5678)"
		}
	case FieldEmail:
		if strings.TrimSpace(value) == "" {
			return msgRequired
		}
		if !emailPattern.MatchString(strings.TrimSpace(value)) {
			return "올바른 이메일 형식이 아닙니다"
		}
	case FieldWebsite:
		v := strings.TrimSpace(value)
		if v != "" && !strings.HasPrefix(v, "http") {
			return "웹사이트 주소는 http:// 또는 https://로 시작해야 합니다"
		}
	}
	return ""
}

// ValidateSpaceField validates one space field. Space type and amenity membership depend
// on the business type and are checked by the space step.
func ValidateSpaceField(field, value string) string {
	switch field {
	case FieldSpaceName:
		return lengthRule(value, 2, 50, "공간 이름")
	case FieldSpaceType:
		if strings.TrimSpace(value) == "" {
			return "공간 유형을 선택해주세요"
		}
	case FieldCapacity:
		return capacityRule(value)
	case FieldDescription:
		if utf8.RuneCountInString(strings.TrimSpace(value)) > 500 {
			return "공간 설명은 500자 이하로 입력해주세요"
		}
	}
	return ""
}

// ParseCapacity converts a validated capacity string.
func ParseCapacity(value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("invalid capacity %q: %w", value, err)
	}
	return n, nil
}

func capacityRule(value string) string {
	if strings.TrimSpace(value) == "" {
		return "수용 인원을 입력해주세요"
	}
	n, err := ParseCapacity(value)
	if err != nil {
		return "수용 인원은 숫자로 입력해주세요"
	}
	if n < 1 {
		return "수용 인원은 1명 이상이어야 합니다"
	}
	if n > MaxSpaceCapacity {
		return fmt.Sprintf("수용 인원은 %d명 이하여야 합니다", MaxSpaceCapacity)
	}
	return ""
}

func lengthRule(value string, minLen, maxLen int, label string) string {
	v := strings.TrimSpace(value)
	if v == "" {
		return label + "을(를) 입력해주세요"
	}
	n := utf8.RuneCountInString(v)
	if n < minLen {
		return fmt.Sprintf("%s은(는) %d자 이상 입력해주세요", label, minLen)
	}
	if n > maxLen {
		return fmt.Sprintf("%s은(는) %d자 이하로 입력해주세요", label, maxLen)
	}
	return ""
}
