package home

import (
	"context"

	domain "coala/internal/domain/home"
)

// Store reads the home dashboard datasets.
type Store interface {
	Dashboard(ctx context.Context) (domain.Dashboard, error)
}
