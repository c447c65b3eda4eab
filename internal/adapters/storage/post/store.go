package post

import (
	"context"
	"errors"

	domain "coala/internal/domain/post"
)

// ErrNotFound is returned when no post or detail matches an id.
var ErrNotFound = errors.New("post not found")

// Store reads community posts.
type Store interface {
	List(ctx context.Context) ([]domain.Post, error)
	GetByID(ctx context.Context, id string) (domain.Post, error)
	GetDetail(ctx context.Context, id string) (domain.Detail, error)
}
