package info

import (
	"context"

	domain "coala/internal/domain/info"
)

// Store reads the info-share board.
type Store interface {
	Featured(ctx context.Context) (domain.FeaturedArticle, error)
	ListResources(ctx context.Context) ([]domain.ResourceCard, error)
	Calendar(ctx context.Context) (domain.Calendar, error)
	ListLatest(ctx context.Context) ([]domain.LatestUpdate, error)
}
