package listutil

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePageParams(t *testing.T) {
	tests := []struct {
		name        string
		q           url.Values
		wantPage    int
		wantPerPage int
	}{
		{"defaults", url.Values{}, 1, DefaultPerPage},
		{"valid", url.Values{"page": {"3"}, "per_page": {"20"}}, 3, 20},
		{"perPageNotAllowed", url.Values{"per_page": {"25"}}, 1, DefaultPerPage},
		{"negativePage", url.Values{"page": {"-1"}}, 1, DefaultPerPage},
		{"garbage", url.Values{"page": {"x"}, "per_page": {"y"}}, 1, DefaultPerPage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ParsePageParams(tt.q)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantPerPage, p.PerPage)
		})
	}
}

func TestParseListParams(t *testing.T) {
	filters := []string{"all", "free", "alumni"}
	sorts := []string{"latest", "popular"}
	tabs := []string{"overall", "me"}

	p := ParseListParams(url.Values{
		"q": {"  React "}, "filter": {"free"}, "sort": {"popular"}, "tab": {"me"},
	}, filters, sorts, tabs)
	assert.Equal(t, "  React ", p.Query)
	assert.Equal(t, "free", p.Filter)
	assert.Equal(t, "popular", p.Sort)
	assert.Equal(t, "me", p.Tab)

	unknown := ParseListParams(url.Values{"filter": {"news"}, "sort": {"random"}, "tab": {"x"}}, filters, sorts, tabs)
	assert.Equal(t, AllSentinel, unknown.Filter)
	assert.Equal(t, "latest", unknown.Sort)
	assert.Equal(t, "overall", unknown.Tab)

	none := ParseListParams(url.Values{}, filters, nil, nil)
	assert.Equal(t, "", none.Sort)
	assert.Equal(t, "", none.Tab)
}

func TestNormalizeQuery(t *testing.T) {
	assert.Equal(t, "react", NormalizeQuery("  ReAct\t"))
	assert.Equal(t, "", NormalizeQuery("   "))
}

func TestMatchesFilter(t *testing.T) {
	assert.True(t, MatchesFilter(AllSentinel, "free"))
	assert.True(t, MatchesFilter("", "free"))
	assert.True(t, MatchesFilter("free", "free"))
	assert.False(t, MatchesFilter("free", "alumni"))
}

func TestContainsFold(t *testing.T) {
	assert.True(t, ContainsFold("", "anything"))
	assert.True(t, ContainsFold("react", "React 19 스터디", "김민지"))
	assert.True(t, ContainsFold("19 스터디", "React 19", "스터디"))
	assert.False(t, ContainsFold("vue", "React", "TypeScript"))
}

// TestNewPageInfo verifies pagination metadata computation.
func TestNewPageInfo(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		perPage    int
		total      int
		wantPages  int
		wantPage   int
		wantStart  int
		wantEnd    int
		wantOffset int
	}{
		{"basic", 1, 20, 85, 5, 1, 1, 20, 0},
		{"page2", 2, 20, 85, 5, 2, 21, 40, 20},
		{"lastPage", 5, 20, 85, 5, 5, 81, 85, 80},
		{"pageBeyondTotal", 10, 20, 85, 5, 5, 81, 85, 80},
		{"emptyList", 1, 20, 0, 1, 1, 0, 0, 0},
		{"exactFit", 1, 10, 10, 1, 1, 1, 10, 0},
		{"zeroPerPage", 1, 0, 3, 1, 1, 1, 3, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pi := NewPageInfo(tt.page, tt.perPage, tt.total)
			assert.Equal(t, tt.wantPages, pi.TotalPages, "TotalPages")
			assert.Equal(t, tt.wantPage, pi.Page, "Page")
			assert.Equal(t, tt.wantStart, pi.StartRow(), "StartRow")
			assert.Equal(t, tt.wantEnd, pi.EndRow(), "EndRow")
			assert.Equal(t, tt.wantOffset, pi.Offset(), "Offset")
		})
	}
}

// TestPageNumbers verifies page number window generation.
func TestPageNumbers(t *testing.T) {
	tests := []struct {
		name string
		page int
		tot  int
		want []int
	}{
		{"3pages_at1", 1, 3, []int{1, 2, 3}},
		{"10pages_at1", 1, 10, []int{1, 2, 3, 4, 5}},
		{"10pages_at5", 5, 10, []int{3, 4, 5, 6, 7}},
		{"10pages_at10", 10, 10, []int{6, 7, 8, 9, 10}},
		{"1page", 1, 1, []int{1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pi := NewPageInfo(tt.page, 20, tt.tot*20)
			assert.Equal(t, tt.want, pi.PageNumbers())
		})
	}
}

func TestPrevNextPage(t *testing.T) {
	pi := NewPageInfo(1, 10, 25)
	assert.Equal(t, 1, pi.PrevPage())
	assert.Equal(t, 2, pi.NextPage())

	last := NewPageInfo(3, 10, 25)
	assert.Equal(t, 2, last.PrevPage())
	assert.Equal(t, 3, last.NextPage())
}

func TestShowPagination(t *testing.T) {
	assert.False(t, NewPageInfo(1, 20, 20).ShowPagination())
	assert.True(t, NewPageInfo(1, 20, 21).ShowPagination())
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}
	assert.Equal(t, []int{1, 2, 3}, Paginate(items, NewPageInfo(1, 3, len(items))))
	assert.Equal(t, []int{7}, Paginate(items, NewPageInfo(3, 3, len(items))))
	assert.Empty(t, Paginate([]int{}, NewPageInfo(1, 3, 0)))
}
