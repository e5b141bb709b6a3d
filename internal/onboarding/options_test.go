package onboarding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func labels(opts []Option) []string {
	out := make([]string, len(opts))
	for i, o := range opts {
		out[i] = o.Label
	}
	return out
}

// TestPurpose: Validates that category options are filtered by business type.
// Scope: Unit Test
// Expected: gym offers "PT 전문" but not the yoga-only "하타 요가".
// Test Case ID: ONB-OPT-01
func TestCategoryOptions_GymExcludesYogaCategories(t *testing.T) {
	got := labels(CategoryOptions(BusinessGym))
	assert.Contains(t, got, "PT 전문")
	assert.NotContains(t, got, "하타 요가")
}

func TestOptions_UnknownTypeFallsBackToOther(t *testing.T) {
	assert.Equal(t, CategoryOptions(BusinessOther), CategoryOptions("casino"))
	assert.Equal(t, SpaceTypeOptions(BusinessOther), SpaceTypeOptions(""))
	assert.Equal(t, AmenityOptions(BusinessOther), AmenityOptions("unknown"))
}

func TestOptions_EveryBusinessTypeHasEntries(t *testing.T) {
	for _, bt := range BusinessTypeOptions() {
		t.Run(bt.Value, func(t *testing.T) {
			assert.NotEmpty(t, CategoryOptions(BusinessType(bt.Value)))
			assert.NotEmpty(t, SpaceTypeOptions(BusinessType(bt.Value)))
			assert.NotEmpty(t, AmenityOptions(BusinessType(bt.Value)))
			for _, a := range AmenityOptions(BusinessType(bt.Value)) {
				assert.NotEmpty(t, a.Icon, "amenity %s has no icon", a.Value)
			}
		})
	}
}

func TestOptions_ReturnCopies(t *testing.T) {
	opts := CategoryOptions(BusinessGym)
	opts[0].Label = "changed"
	assert.Equal(t, "PT 전문", CategoryOptions(BusinessGym)[0].Label)
}

func TestRecommendedTemplates(t *testing.T) {
	rec := RecommendedTemplates(BusinessYoga)
	require.NotEmpty(t, rec)
	for _, tpl := range rec {
		assert.True(t, tpl.Recommended)
		assert.Contains(t, tpl.Category, BusinessYoga)
	}

	assert.Empty(t, RecommendedTemplates(""))
	assert.Len(t, Templates(), len(catalog), "full catalog stays browsable")
	for _, tpl := range Templates() {
		assert.False(t, tpl.Recommended)
	}
}

func TestTemplateByID(t *testing.T) {
	tpl, ok := TemplateByID("zen-wellness")
	require.True(t, ok)
	assert.Equal(t, "젠 웰니스", tpl.Name)

	_, ok = TemplateByID("missing")
	assert.False(t, ok)
}
