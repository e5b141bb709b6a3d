package viewstate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTabs_Select(t *testing.T) {
	tabs := NewTabs("recommended", "all")
	assert.Equal(t, "all", tabs.Select("all"))
	assert.Equal(t, "recommended", tabs.Select(""))
	assert.Equal(t, "recommended", tabs.Select("popular"))
	assert.Equal(t, []string{"recommended", "all"}, tabs.Names())
	assert.Equal(t, "", NewTabs().Select("x"))
}

func TestParsePage(t *testing.T) {
	tests := []struct {
		page, perPage string
		want          Page
	}{
		{"", "", Page{Number: 1, PerPage: DefaultPerPage}},
		{"3", "5", Page{Number: 3, PerPage: 5}},
		{"0", "-1", Page{Number: 1, PerPage: DefaultPerPage}},
		{"abc", "1000", Page{Number: 1, PerPage: MaxPerPage}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParsePage(tt.page, tt.perPage), "page=%q perPage=%q", tt.page, tt.perPage)
	}
}

// TestPurpose: Validates page slicing including the final partial page and out-of-range pages.
// Scope: Unit Test
// Expected: Items, totals and page counts match; a page past the end is empty, not nil.
// Test Case ID: VS-01
func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	r := Paginate(items, Page{Number: 1, PerPage: 3})
	assert.Equal(t, []int{1, 2, 3}, r.Items)
	assert.Equal(t, 7, r.Total)
	assert.Equal(t, 3, r.TotalPages)

	r = Paginate(items, Page{Number: 3, PerPage: 3})
	assert.Equal(t, []int{7}, r.Items)

	r = Paginate(items, Page{Number: 4, PerPage: 3})
	assert.NotNil(t, r.Items)
	assert.Empty(t, r.Items)

	r = Paginate([]int{}, Page{})
	assert.Equal(t, 0, r.TotalPages)
	assert.Equal(t, 1, r.Page)

	huge := ParsePage("9223372036854775807", "100")
	assert.NotPanics(t, func() { r = Paginate(items, huge) })
	assert.Empty(t, r.Items)
	assert.Equal(t, huge.Number, r.Page)
	assert.Equal(t, 1, r.TotalPages)

	assert.NotPanics(t, func() { r = Paginate(items, Page{Number: 2, PerPage: math.MaxInt}) })
	assert.Empty(t, r.Items)
	r = Paginate(items, Page{Number: 1, PerPage: math.MaxInt})
	assert.Equal(t, items, r.Items)
}

func TestFilter(t *testing.T) {
	even := Filter([]int{1, 2, 3, 4}, func(n int) bool { return n%2 == 0 })
	assert.Equal(t, []int{2, 4}, even)
	assert.Equal(t, []int{1, 2}, Filter([]int{1, 2}, nil))
}
