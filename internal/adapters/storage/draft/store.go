package draft

import (
	"context"

	domain "coala/internal/domain/post"
)

// Store persists published writer drafts.
type Store interface {
	Save(ctx context.Context, value domain.Draft) error
	ListByClient(ctx context.Context, clientID string, limit int) ([]domain.Draft, error)
}
