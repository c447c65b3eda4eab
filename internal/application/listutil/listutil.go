package listutil

import (
	"net/url"
	"strconv"
	"strings"
)

// AllSentinel is the filter value that matches every record.
const AllSentinel = "all"

// DefaultPerPage is the default number of rows per page.
const DefaultPerPage = 10

// PerPageOptions are the allowed rows-per-page values.
var PerPageOptions = []int{5, 10, 20, 50}

// PageParams carries pagination parameters parsed from a request.
type PageParams struct {
	Page    int // 1-indexed page number
	PerPage int // rows per page
}

// ListParams carries the common list view controls parsed from a request.
type ListParams struct {
	PageParams
	Query  string // raw search text ("q")
	Filter string // primary filter ("filter"), AllSentinel when absent
	Sort   string // sort mode ("sort")
	Tab    string // view tab ("tab")
}

// PageInfo carries pagination metadata for rendering.
type PageInfo struct {
	Page       int
	PerPage    int
	Total      int
	TotalPages int
}

// ParsePageParams extracts page and per_page from URL query values.
// PRE: none
// POST: returns valid PageParams with defaults applied
func ParsePageParams(q url.Values) PageParams {
	page, _ := strconv.Atoi(q.Get("page"))
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(q.Get("per_page"))
	if !isValidPerPage(perPage) {
		perPage = DefaultPerPage
	}
	return PageParams{Page: page, PerPage: perPage}
}

// ParseChoice returns q[key] when it is one of allowed, def otherwise.
// PRE: none
// POST: result is def or a member of allowed
func ParseChoice(q url.Values, key string, allowed []string, def string) string {
	v := q.Get(key)
	for _, a := range allowed {
		if v == a {
			return v
		}
	}
	return def
}

// ParseListParams parses the shared list controls. Values outside the
// allowed sets fall back to AllSentinel (filter) or the first allowed value.
func ParseListParams(q url.Values, filters, sorts, tabs []string) ListParams {
	return ListParams{
		PageParams: ParsePageParams(q),
		Query:      q.Get("q"),
		Filter:     ParseChoice(q, "filter", filters, AllSentinel),
		Sort:       ParseChoice(q, "sort", sorts, first(sorts)),
		Tab:        ParseChoice(q, "tab", tabs, first(tabs)),
	}
}

// NormalizeQuery trims and lower-cases a search query.
func NormalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

// MatchesFilter reports whether value passes filter. AllSentinel and ""
// match everything; otherwise the match is exact.
func MatchesFilter(filter, value string) bool {
	return filter == "" || filter == AllSentinel || filter == value
}

// ContainsFold reports whether the normalized query is a substring of the
// lower-cased space-joined fields. An empty query matches everything.
// PRE: query is already normalized (see NormalizeQuery)
func ContainsFold(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(strings.Join(fields, " ")), query)
}

// NewPageInfo computes pagination metadata.
// PRE: total >= 0
// POST: returns PageInfo with TotalPages >= 1 and Page clamped to valid range
func NewPageInfo(page, perPage, total int) PageInfo {
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	totalPages := (total + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}
	return PageInfo{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	}
}

// Offset returns the index of the first row on the current page.
func (p PageInfo) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// StartRow returns the 1-indexed first row number on the current page.
// POST: Returns 0 if Total is 0, otherwise Offset+1
func (p PageInfo) StartRow() int {
	if p.Total == 0 {
		return 0
	}
	return p.Offset() + 1
}

// EndRow returns the 1-indexed last row number on the current page.
// POST: Returns min(Offset+PerPage, Total)
func (p PageInfo) EndRow() int {
	end := p.Offset() + p.PerPage
	if end > p.Total {
		end = p.Total
	}
	return end
}

// PageNumbers returns at most 5 page numbers centered on the current page.
func (p PageInfo) PageNumbers() []int {
	const maxButtons = 5
	start := p.Page - maxButtons/2
	if start < 1 {
		start = 1
	}
	end := start + maxButtons - 1
	if end > p.TotalPages {
		end = p.TotalPages
		start = end - maxButtons + 1
		if start < 1 {
			start = 1
		}
	}
	pages := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		pages = append(pages, i)
	}
	return pages
}

// ShowPagination returns true if pagination controls should be displayed.
func (p PageInfo) ShowPagination() bool {
	return p.Total > p.PerPage
}

// PrevPage returns the previous page number, never below 1.
func (p PageInfo) PrevPage() int {
	if p.Page <= 1 {
		return 1
	}
	return p.Page - 1
}

// NextPage returns the next page number, never above TotalPages.
func (p PageInfo) NextPage() int {
	if p.Page >= p.TotalPages {
		return p.TotalPages
	}
	return p.Page + 1
}

// Paginate returns the rows of items on the page described by p.
// PRE: p was built with Total == len(items)
// POST: result shares the backing array of items
func Paginate[T any](items []T, p PageInfo) []T {
	start := p.Offset()
	if start >= len(items) {
		return items[:0]
	}
	end := p.EndRow()
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

func isValidPerPage(n int) bool {
	for _, opt := range PerPageOptions {
		if n == opt {
			return true
		}
	}
	return false
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
