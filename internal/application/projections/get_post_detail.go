package projections

import (
	"context"
	"errors"

	storagePost "coala/internal/adapters/storage/post"
	domainPost "coala/internal/domain/post"
)

// ShareBaseURL prefixes public post links.
const ShareBaseURL = "https://coala.club/posts/"

// Placeholders shown for unknown posts.
const (
	MissingPostTitle  = "게시글 정보를 찾을 수 없어요"
	MissingPostAuthor = "알 수 없음"
	MissingPostTime   = "방금 전"
)

// GetPostDetailQuery carries query parameters.
type GetPostDetailQuery struct {
	PostID string
}

// GetPostDetailResult carries the query result.
type GetPostDetailResult struct {
	PostID    string
	Found     bool
	Post      domainPost.Post
	Meta      *domainPost.CategoryMeta
	Title     string
	Author    string
	Published string
	Detail    domainPost.Detail
	ShareURL  string
}

// GetPostDetailDeps holds dependencies for GetPostDetail.
type GetPostDetailDeps struct {
	PostStore PostStore
}

// QueryGetPostDetail resolves a post and its body.
// PRE: none
// POST: Unknown posts yield placeholder title, author and time with no board meta;
// posts without a body yield the fallback detail; only store failures are returned as errors
func QueryGetPostDetail(ctx context.Context, query GetPostDetailQuery, deps GetPostDetailDeps) (GetPostDetailResult, error) {
	result := GetPostDetailResult{
		PostID:    query.PostID,
		Title:     MissingPostTitle,
		Author:    MissingPostAuthor,
		Published: MissingPostTime,
		ShareURL:  ShareBaseURL + query.PostID,
	}

	p, err := deps.PostStore.GetByID(ctx, query.PostID)
	switch {
	case err == nil:
		meta := p.Meta()
		result.Found = true
		result.Post = p
		result.Meta = &meta
		result.Title = p.Title
		result.Author = p.Author
		result.Published = p.PublishedAt
	case !errors.Is(err, storagePost.ErrNotFound):
		return GetPostDetailResult{}, err
	}

	detail, err := deps.PostStore.GetDetail(ctx, query.PostID)
	switch {
	case err == nil:
		result.Detail = detail
	case errors.Is(err, storagePost.ErrNotFound):
		result.Detail = domainPost.FallbackDetail()
	default:
		return GetPostDetailResult{}, err
	}

	return result, nil
}
