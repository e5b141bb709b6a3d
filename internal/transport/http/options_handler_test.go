package http

import (
	"net/http"
	"slices"
	"testing"

	"github.com/ruoomkr/platform/internal/onboarding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions_BusinessScopedLists(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodGet, "/api/v1/options/business-types", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]onboarding.Option](t, resp), len(onboarding.BusinessTypeOptions()))

	resp = env.do(t, http.MethodGet, "/api/v1/options/categories?businessType=gym", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, onboarding.CategoryOptions(onboarding.BusinessGym), decode[[]onboarding.Option](t, resp))

	resp = env.do(t, http.MethodGet, "/api/v1/options/space-types?businessType=yoga", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, onboarding.SpaceTypeOptions(onboarding.BusinessYoga), decode[[]onboarding.Option](t, resp))

	resp = env.do(t, http.MethodGet, "/api/v1/options/amenities?businessType=clinic", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, onboarding.AmenityOptions(onboarding.BusinessClinic), decode[[]onboarding.Amenity](t, resp))

	resp = env.do(t, http.MethodGet, "/api/v1/options/categories", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, onboarding.CategoryOptions(onboarding.BusinessOther), decode[[]onboarding.Option](t, resp))

	resp = env.do(t, http.MethodGet, "/api/v1/options/space-types?businessType=bakery", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, onboarding.SpaceTypeOptions(onboarding.BusinessOther), decode[[]onboarding.Option](t, resp))

	resp = env.do(t, http.MethodGet, "/api/v1/options/amenities?businessType=", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, onboarding.AmenityOptions(onboarding.BusinessOther), decode[[]onboarding.Amenity](t, resp))
}

// TestPurpose: Validates template browsing tabs, recommendation flags and pagination.
// Scope: Unit Test
// Expected: recommended lists only matching templates; all lists the catalog with matches flagged; page size is honoured.
// Test Case ID: OPT-01
func TestOptions_TemplatesTabsAndPaging(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodGet, "/api/v1/templates?tab=recommended&businessType=gym", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	page := decode[TemplatePage](t, resp)
	assert.Equal(t, tabRecommended, page.Tab)
	assert.Equal(t, []string{tabRecommended, tabAll}, page.Tabs)
	require.Equal(t, len(onboarding.RecommendedTemplates(onboarding.BusinessGym)), page.Page.Total)
	for _, tpl := range page.Page.Items {
		assert.True(t, tpl.Recommended)
		assert.Contains(t, tpl.Category, onboarding.BusinessGym)
	}

	resp = env.do(t, http.MethodGet, "/api/v1/templates?tab=all&businessType=gym&perPage=2", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	page = decode[TemplatePage](t, resp)
	assert.Equal(t, len(onboarding.Templates()), page.Page.Total)
	assert.Len(t, page.Page.Items, 2)
	assert.Equal(t, 2, page.Page.PerPage)

	resp = env.do(t, http.MethodGet, "/api/v1/templates?tab=all&businessType=gym&perPage=50", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	page = decode[TemplatePage](t, resp)
	flagged := 0
	for _, tpl := range page.Page.Items {
		assert.Equal(t, slices.Contains(tpl.Category, onboarding.BusinessGym), tpl.Recommended, tpl.ID)
		if tpl.Recommended {
			flagged++
		}
	}
	assert.Equal(t, len(onboarding.RecommendedTemplates(onboarding.BusinessGym)), flagged)

	resp = env.do(t, http.MethodGet, "/api/v1/templates?tab=bogus", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	page = decode[TemplatePage](t, resp)
	assert.Equal(t, tabRecommended, page.Tab, "unknown tabs fall back to the default")
	assert.Zero(t, page.Page.Total, "no business type means no recommendations")

	resp = env.do(t, http.MethodGet, "/api/v1/templates?businessType=bakery", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	page = decode[TemplatePage](t, resp)
	assert.Zero(t, page.Page.Total, "unknown business types match no templates")

	resp = env.do(t, http.MethodGet, "/api/v1/templates?tab=all&businessType=bakery", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	page = decode[TemplatePage](t, resp)
	assert.Equal(t, len(onboarding.Templates()), page.Page.Total)
	for _, tpl := range page.Page.Items {
		assert.False(t, tpl.Recommended, tpl.ID)
	}
}
