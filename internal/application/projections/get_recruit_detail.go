package projections

import (
	"context"
	"errors"
	"strings"

	storageRecruit "coala/internal/adapters/storage/recruit"
	domainRecruit "coala/internal/domain/recruit"
)

// ErrNoRecruitItems is returned when the dataset has nothing to fall back to.
var ErrNoRecruitItems = errors.New("no recruit items available")

// GetRecruitDetailQuery carries query parameters.
type GetRecruitDetailQuery struct {
	RecruitID string
}

// GetRecruitDetailResult carries the query result.
type GetRecruitDetailResult struct {
	Item              domainRecruit.Item
	Requested         string
	FellBack          bool
	CategoryLabel     string
	RoleSummary       string
	TotalCurrent      int
	TotalMax          int
	ParticipationRate float64
	IsOpen            bool
}

// GetRecruitDetailDeps holds dependencies for GetRecruitDetail.
type GetRecruitDetailDeps struct {
	RecruitStore RecruitStore
}

// QueryGetRecruitDetail resolves a listing and its participation summary.
// PRE: none
// POST: Unknown ids resolve to the first listing with FellBack set;
// ParticipationRate is role totals as a percentage, 0 with no slots
func QueryGetRecruitDetail(ctx context.Context, query GetRecruitDetailQuery, deps GetRecruitDetailDeps) (GetRecruitDetailResult, error) {
	item, err := deps.RecruitStore.GetByID(ctx, query.RecruitID)
	fellBack := false
	if errors.Is(err, storageRecruit.ErrNotFound) {
		items, listErr := deps.RecruitStore.List(ctx)
		if listErr != nil {
			return GetRecruitDetailResult{}, listErr
		}
		if len(items) == 0 {
			return GetRecruitDetailResult{}, ErrNoRecruitItems
		}
		item, err, fellBack = items[0], nil, true
	}
	if err != nil {
		return GetRecruitDetailResult{}, err
	}

	current, max, rate := item.Participation()
	labels := make([]string, 0, len(item.Roles))
	for _, r := range item.Roles {
		labels = append(labels, r.Label)
	}

	return GetRecruitDetailResult{
		Item:              item,
		Requested:         query.RecruitID,
		FellBack:          fellBack,
		CategoryLabel:     item.DetailCategoryLabel(),
		RoleSummary:       strings.Join(labels, ", "),
		TotalCurrent:      current,
		TotalMax:          max,
		ParticipationRate: rate,
		IsOpen:            item.IsOpen(),
	}, nil
}
