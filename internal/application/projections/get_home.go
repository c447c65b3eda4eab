package projections

import (
	"context"
	"time"

	domainHome "coala/internal/domain/home"
)

// HeroSlideInterval is how long each hero slide stays active.
const HeroSlideInterval = 4800 * time.Millisecond

// GetHomeQuery carries query parameters.
type GetHomeQuery struct {
	// Slide is the requested hero slide index; out-of-range values wrap.
	Slide int
	// DisplayName overrides the profile name when a user is signed in.
	DisplayName string
}

// GetHomeResult carries the query result.
type GetHomeResult struct {
	domainHome.Dashboard
	ActiveSlide int
	NextSlide   int
}

// GetHomeDeps holds dependencies for GetHome.
type GetHomeDeps struct {
	HomeStore HomeStore
}

// QueryGetHome assembles the home dashboard.
// PRE: none
// POST: ActiveSlide is within [0, len(Slides)) when slides exist, else 0
func QueryGetHome(ctx context.Context, query GetHomeQuery, deps GetHomeDeps) (GetHomeResult, error) {
	dash, err := deps.HomeStore.Dashboard(ctx)
	if err != nil {
		return GetHomeResult{}, err
	}
	if query.DisplayName != "" {
		dash.Profile.Name = query.DisplayName
	}

	active, next := 0, 0
	if n := len(dash.Slides); n > 0 {
		active = ((query.Slide % n) + n) % n
		next = (active + 1) % n
	}

	return GetHomeResult{
		Dashboard:   dash,
		ActiveSlide: active,
		NextSlide:   next,
	}, nil
}
