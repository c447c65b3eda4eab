package projections

import (
	"context"

	domainActivity "coala/internal/domain/activity"
	domainHome "coala/internal/domain/home"
	domainInfo "coala/internal/domain/info"
	domainPost "coala/internal/domain/post"
	domainRecruit "coala/internal/domain/recruit"
)

// PostStore interface for community post queries.
type PostStore interface {
	List(ctx context.Context) ([]domainPost.Post, error)
	GetByID(ctx context.Context, id string) (domainPost.Post, error)
	GetDetail(ctx context.Context, id string) (domainPost.Detail, error)
}

// RecruitStore interface for recruiting listing queries.
type RecruitStore interface {
	List(ctx context.Context) ([]domainRecruit.Item, error)
	GetByID(ctx context.Context, id string) (domainRecruit.Item, error)
}

// ActivityStore interface for leaderboard queries.
type ActivityStore interface {
	ListMembers(ctx context.Context) ([]domainActivity.Member, error)
	ListSources(ctx context.Context) ([]domainActivity.Source, error)
}

// InfoStore interface for info-share queries.
type InfoStore interface {
	Featured(ctx context.Context) (domainInfo.FeaturedArticle, error)
	ListResources(ctx context.Context) ([]domainInfo.ResourceCard, error)
	Calendar(ctx context.Context) (domainInfo.Calendar, error)
	ListLatest(ctx context.Context) ([]domainInfo.LatestUpdate, error)
}

// HomeStore interface for home dashboard queries.
type HomeStore interface {
	Dashboard(ctx context.Context) (domainHome.Dashboard, error)
}

// DraftStore interface for a visitor's published drafts.
type DraftStore interface {
	ListByClient(ctx context.Context, clientID string, limit int) ([]domainPost.Draft, error)
}
