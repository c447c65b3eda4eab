package projections

import (
	"context"

	"coala/internal/application/listutil"
	domainInfo "coala/internal/domain/info"
)

// GetInfoShareQuery carries query parameters.
type GetInfoShareQuery struct {
	Filter    string
	Query     string
	LatestTab string
}

// GetInfoShareResult carries the query result.
type GetInfoShareResult struct {
	Filter     string
	Query      string
	LatestTab  string
	Filters    []domainInfo.Option
	LatestTabs []domainInfo.Option
	Featured   domainInfo.FeaturedArticle
	Calendar   domainInfo.Calendar
	Resources  []domainInfo.ResourceCard
	Latest     []domainInfo.LatestUpdate
}

// GetInfoShareDeps holds dependencies for GetInfoShare.
type GetInfoShareDeps struct {
	InfoStore InfoStore
}

// QueryGetInfoShare derives the info-share board.
// PRE: none; empty filter and tab behave like the "all" sentinel
// POST: Resources pass the type filter and the query over title, meta and source;
// Latest passes the latest tab; both keep fixture order
func QueryGetInfoShare(ctx context.Context, query GetInfoShareQuery, deps GetInfoShareDeps) (GetInfoShareResult, error) {
	resources, err := deps.InfoStore.ListResources(ctx)
	if err != nil {
		return GetInfoShareResult{}, err
	}
	latest, err := deps.InfoStore.ListLatest(ctx)
	if err != nil {
		return GetInfoShareResult{}, err
	}
	featured, err := deps.InfoStore.Featured(ctx)
	if err != nil {
		return GetInfoShareResult{}, err
	}
	calendar, err := deps.InfoStore.Calendar(ctx)
	if err != nil {
		return GetInfoShareResult{}, err
	}

	filter := query.Filter
	if filter == "" {
		filter = domainInfo.FilterAll
	}
	tab := query.LatestTab
	if tab == "" {
		tab = domainInfo.LatestAll
	}
	needle := listutil.NormalizeQuery(query.Query)

	visible := make([]domainInfo.ResourceCard, 0, len(resources))
	for _, c := range resources {
		if listutil.MatchesFilter(filter, c.Filter) && listutil.ContainsFold(needle, c.SearchText()) {
			visible = append(visible, c)
		}
	}

	visibleLatest := make([]domainInfo.LatestUpdate, 0, len(latest))
	for _, u := range latest {
		if listutil.MatchesFilter(tab, u.Type) {
			visibleLatest = append(visibleLatest, u)
		}
	}

	return GetInfoShareResult{
		Filter:     filter,
		Query:      query.Query,
		LatestTab:  tab,
		Filters:    domainInfo.Filters(),
		LatestTabs: domainInfo.LatestTabs(),
		Featured:   featured,
		Calendar:   calendar,
		Resources:  visible,
		Latest:     visibleLatest,
	}, nil
}
