package projections

import (
	"context"

	"coala/internal/application/listutil"
	domainRecruit "coala/internal/domain/recruit"
)

// RecommendedCount is the number of listings in the recommendation strip.
const RecommendedCount = 2

// GetRecruitListQuery carries query parameters.
type GetRecruitListQuery struct {
	Category string
	Filter   string
	Query    string
}

// GetRecruitListResult carries the query result.
type GetRecruitListResult struct {
	Category    string
	Filter      string
	Query       string
	Categories  []domainRecruit.Option
	Filters     []domainRecruit.Option
	Items       []domainRecruit.Item
	Recommended []domainRecruit.Item
}

// GetRecruitListDeps holds dependencies for GetRecruitList.
type GetRecruitListDeps struct {
	RecruitStore RecruitStore
}

// QueryGetRecruitList derives the visible recruiting listings.
// PRE: none; empty category or filter behave like the "all" sentinel
// POST: Items pass the category, the status filter and the query over title,
// short description, tags and tech stack, in fixture order
// INVARIANT: Recommended is the first RecommendedCount non-closed listings regardless of filters
func QueryGetRecruitList(ctx context.Context, query GetRecruitListQuery, deps GetRecruitListDeps) (GetRecruitListResult, error) {
	items, err := deps.RecruitStore.List(ctx)
	if err != nil {
		return GetRecruitListResult{}, err
	}

	category := query.Category
	if category == "" {
		category = domainRecruit.CategoryAll
	}
	filter := query.Filter
	if filter == "" {
		filter = domainRecruit.FilterAll
	}
	needle := listutil.NormalizeQuery(query.Query)

	visible := make([]domainRecruit.Item, 0, len(items))
	recommended := make([]domainRecruit.Item, 0, RecommendedCount)
	for _, it := range items {
		if it.IsOpen() && len(recommended) < RecommendedCount {
			recommended = append(recommended, it)
		}
		if !listutil.MatchesFilter(category, it.Category) {
			continue
		}
		if !it.MatchesStatusFilter(filter) {
			continue
		}
		if !listutil.ContainsFold(needle, it.SearchText()) {
			continue
		}
		visible = append(visible, it)
	}

	return GetRecruitListResult{
		Category:    category,
		Filter:      filter,
		Query:       query.Query,
		Categories:  domainRecruit.CategoryOptions(),
		Filters:     domainRecruit.FilterOptions(),
		Items:       visible,
		Recommended: recommended,
	}, nil
}
