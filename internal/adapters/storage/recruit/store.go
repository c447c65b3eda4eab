package recruit

import (
	"context"
	"errors"

	domain "coala/internal/domain/recruit"
)

// ErrNotFound is returned when no listing matches an id.
var ErrNotFound = errors.New("recruit item not found")

// Store reads recruiting listings.
type Store interface {
	List(ctx context.Context) ([]domain.Item, error)
	GetByID(ctx context.Context, id string) (domain.Item, error)
}
