package activity

import (
	"context"

	domain "coala/internal/domain/activity"
)

// Store reads the activity leaderboard.
type Store interface {
	ListMembers(ctx context.Context) ([]domain.Member, error)
	ListSources(ctx context.Context) ([]domain.Source, error)
}
