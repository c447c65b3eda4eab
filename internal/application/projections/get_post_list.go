package projections

import (
	"context"
	"sort"

	"coala/internal/application/listutil"
	domainPost "coala/internal/domain/post"
)

// Community page copy.
const (
	CommunityTitle    = "커뮤니티"
	CommunitySubtitle = "전체 게시글, 자유게시판, 졸업생게시판을 한 곳에서 관리해요."
)

// GetPostListQuery carries query parameters.
type GetPostListQuery struct {
	Board   domainPost.BoardFilter
	Query   string
	Sort    string
	Page    int
	PerPage int
}

// GetPostListResult carries the query result.
type GetPostListResult struct {
	Title      string
	Subtitle   string
	TotalLabel string
	Board      domainPost.BoardFilter
	BoardMeta  domainPost.CategoryMeta
	Filters    []domainPost.Board
	Query      string
	Sort       string
	Posts      []domainPost.Post
	Count      int
	Page       listutil.PageInfo
}

// GetPostListDeps holds dependencies for GetPostList.
type GetPostListDeps struct {
	PostStore PostStore
}

// QueryGetPostList derives the visible community posts.
// PRE: none; unknown boards behave like BoardAll, unknown sorts like SortLatest
// POST: Posts are filtered by board and by query over title and author, then kept
// in fixture order (latest) or ordered by descending popularity (popular)
// INVARIANT: The store's slice is never reordered; popular sort is stable
func QueryGetPostList(ctx context.Context, query GetPostListQuery, deps GetPostListDeps) (GetPostListResult, error) {
	posts, err := deps.PostStore.List(ctx)
	if err != nil {
		return GetPostListResult{}, err
	}

	board, ok := domainPost.ParseBoardFilter(string(query.Board))
	if !ok {
		board = domainPost.DefaultBoard
	}
	sortMode := query.Sort
	if sortMode != domainPost.SortPopular {
		sortMode = domainPost.SortLatest
	}
	needle := listutil.NormalizeQuery(query.Query)

	visible := make([]domainPost.Post, 0, len(posts))
	for _, p := range posts {
		if !listutil.MatchesFilter(string(board), string(p.Category)) {
			continue
		}
		if !listutil.ContainsFold(needle, p.Title, p.Author) {
			continue
		}
		visible = append(visible, p)
	}

	if sortMode == domainPost.SortPopular {
		sort.SliceStable(visible, func(i, j int) bool {
			return visible[i].PopularityScore() > visible[j].PopularityScore()
		})
	}

	perPage := query.PerPage
	if perPage <= 0 {
		perPage = listutil.DefaultPerPage
	}
	page := listutil.NewPageInfo(query.Page, perPage, len(visible))

	return GetPostListResult{
		Title:      CommunityTitle,
		Subtitle:   CommunitySubtitle,
		TotalLabel: domainPost.TotalCountLabel,
		Board:      board,
		BoardMeta:  domainPost.MetaFor(board),
		Filters:    domainPost.CategoryFilters(),
		Query:      query.Query,
		Sort:       sortMode,
		Posts:      listutil.Paginate(visible, page),
		Count:      len(visible),
		Page:       page,
	}, nil
}
