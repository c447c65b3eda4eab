package projections

import (
	"context"
	"sort"

	"coala/internal/application/listutil"
	domainActivity "coala/internal/domain/activity"
)

// Leaderboard page copy.
const (
	LeaderboardEyebrow  = "2026 · 2월"
	LeaderboardTitle    = "활동 랭킹"
	LeaderboardSubtitle = "백준 문제풀이와 GitHub 커밋 기록을 합산한 종합 활동 순위입니다. 포인트는 24시간마다 업데이트됩니다."
)

// GetLeaderboardQuery carries query parameters.
type GetLeaderboardQuery struct {
	Tab   string
	Query string
}

// GetLeaderboardResult carries the query result.
type GetLeaderboardResult struct {
	Tab     string
	Query   string
	Tabs    []domainActivity.Tab
	Top3    []domainActivity.Member
	Rows    []domainActivity.Member
	Sources []domainActivity.Source
	Me      *domainActivity.Member
}

// GetLeaderboardDeps holds dependencies for GetLeaderboard.
type GetLeaderboardDeps struct {
	ActivityStore ActivityStore
}

// QueryGetLeaderboard derives the leaderboard table.
// PRE: none; unknown tabs behave like TabOverall
// POST: Rows follow the tab ordering, then are filtered by query over name and handles
// INVARIANT: Top3 is members with rank <= 3 ordered by rank, independent of tab and query
func QueryGetLeaderboard(ctx context.Context, query GetLeaderboardQuery, deps GetLeaderboardDeps) (GetLeaderboardResult, error) {
	members, err := deps.ActivityStore.ListMembers(ctx)
	if err != nil {
		return GetLeaderboardResult{}, err
	}
	sources, err := deps.ActivityStore.ListSources(ctx)
	if err != nil {
		return GetLeaderboardResult{}, err
	}

	tab := domainActivity.ParseTab(query.Tab)
	rows := orderMembers(members, tab)

	needle := listutil.NormalizeQuery(query.Query)
	if needle != "" {
		filtered := rows[:0:0]
		for _, m := range rows {
			if listutil.ContainsFold(needle, m.SearchText()) {
				filtered = append(filtered, m)
			}
		}
		rows = filtered
	}

	var top3 []domainActivity.Member
	var me *domainActivity.Member
	for i := range members {
		if members[i].IsTop3() {
			top3 = append(top3, members[i])
		}
		if members[i].IsMe && me == nil {
			m := members[i]
			me = &m
		}
	}
	sort.SliceStable(top3, func(i, j int) bool { return top3[i].Rank < top3[j].Rank })

	return GetLeaderboardResult{
		Tab:     tab,
		Query:   query.Query,
		Tabs:    domainActivity.Tabs(),
		Top3:    top3,
		Rows:    rows,
		Sources: sources,
		Me:      me,
	}, nil
}

// orderMembers returns a new slice ordered for tab.
func orderMembers(members []domainActivity.Member, tab string) []domainActivity.Member {
	rows := make([]domainActivity.Member, 0, len(members))
	for _, m := range members {
		if tab == domainActivity.TabMe && !m.IsMe {
			continue
		}
		rows = append(rows, m)
	}

	switch tab {
	case domainActivity.TabBaekjoon:
		sort.SliceStable(rows, func(i, j int) bool {
			oi, oj := rows[i].SolvedTier.Order(), rows[j].SolvedTier.Order()
			if oi != oj {
				return oi < oj
			}
			return rows[i].SolvedCount > rows[j].SolvedCount
		})
	case domainActivity.TabGithub:
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].GithubCommits > rows[j].GithubCommits
		})
	}
	return rows
}
