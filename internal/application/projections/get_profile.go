package projections

import (
	"context"
	"errors"

	domainActivity "coala/internal/domain/activity"
	domainHome "coala/internal/domain/home"
	domainPost "coala/internal/domain/post"
)

// Profile tabs.
const (
	ProfileTabOverview = "overview"
	ProfileTabActivity = "activity"
	ProfileTabPosts    = "posts"
)

// DefaultBio is shown until the visitor writes their own.
const DefaultBio = "안녕하세요! 코알라 동아리에서 백엔드와 알고리즘을 공부하고 있어요."

// ProfilePostCount is how many posts the posts tab lists.
const ProfilePostCount = 3

// ProfileDraftCount is how many of the visitor's published drafts the posts tab lists.
const ProfileDraftCount = 5

// ErrNoMembers is returned when the activity dataset is empty.
var ErrNoMembers = errors.New("no activity members available")

// ProfileTab is a selectable profile section.
type ProfileTab struct {
	ID    string
	Label string
}

// ProfileTabs returns the profile sections in display order.
func ProfileTabs() []ProfileTab {
	return []ProfileTab{
		{ID: ProfileTabOverview, Label: "개요"},
		{ID: ProfileTabActivity, Label: "활동 내역"},
		{ID: ProfileTabPosts, Label: "작성 게시글"},
	}
}

// GetProfileQuery carries query parameters.
type GetProfileQuery struct {
	Tab         string
	Editing     bool
	Bio         string
	DisplayName string
	ClientID    string
}

// GetProfileResult carries the query result.
type GetProfileResult struct {
	Tab          string
	Tabs         []ProfileTab
	Editing      bool
	Bio          string
	Summary      domainHome.ProfileSummary
	Me           domainActivity.Member
	TierLabel    string
	SolvedPoints int
	CommitPoints int
	Posts        []domainPost.Post
	Drafts       []domainPost.Draft
}

// GetProfileDeps holds dependencies for GetProfile.
type GetProfileDeps struct {
	HomeStore     HomeStore
	ActivityStore ActivityStore
	PostStore     PostStore
	DraftStore    DraftStore
}

// QueryGetProfile assembles the profile page for the current visitor.
// PRE: none; unknown tabs fall back to the overview
// POST: Me is the member flagged isMe, or the last member when none is;
// Posts holds at most ProfilePostCount posts in list order; Drafts holds the
// visitor's newest ProfileDraftCount drafts, empty without a ClientID or DraftStore
func QueryGetProfile(ctx context.Context, query GetProfileQuery, deps GetProfileDeps) (GetProfileResult, error) {
	dash, err := deps.HomeStore.Dashboard(ctx)
	if err != nil {
		return GetProfileResult{}, err
	}
	members, err := deps.ActivityStore.ListMembers(ctx)
	if err != nil {
		return GetProfileResult{}, err
	}
	if len(members) == 0 {
		return GetProfileResult{}, ErrNoMembers
	}
	posts, err := deps.PostStore.List(ctx)
	if err != nil {
		return GetProfileResult{}, err
	}

	var drafts []domainPost.Draft
	if deps.DraftStore != nil && query.ClientID != "" {
		drafts, err = deps.DraftStore.ListByClient(ctx, query.ClientID, ProfileDraftCount)
		if err != nil {
			return GetProfileResult{}, err
		}
	}

	me := members[len(members)-1]
	for _, m := range members {
		if m.IsMe {
			me = m
			break
		}
	}

	if len(posts) > ProfilePostCount {
		posts = posts[:ProfilePostCount]
	}

	tab := ProfileTabOverview
	for _, t := range ProfileTabs() {
		if t.ID == query.Tab {
			tab = t.ID
		}
	}

	bio := query.Bio
	if bio == "" {
		bio = DefaultBio
	}
	summary := dash.Profile
	if query.DisplayName != "" {
		summary.Name = query.DisplayName
	}

	return GetProfileResult{
		Tab:          tab,
		Tabs:         ProfileTabs(),
		Editing:      query.Editing,
		Bio:          bio,
		Summary:      summary,
		Me:           me,
		TierLabel:    me.SolvedTier.Label(),
		SolvedPoints: me.SolvedPoints(),
		CommitPoints: me.CommitPoints(),
		Posts:        posts,
		Drafts:       drafts,
	}, nil
}
