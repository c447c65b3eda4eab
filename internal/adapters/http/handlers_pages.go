package web

import (
	"errors"
	"net/http"
	"strconv"

	"coala/internal/adapters/http/middleware"
	"coala/internal/application/listutil"
	"coala/internal/application/projections"
	domainPost "coala/internal/domain/post"
)

// handleHome renders the home dashboard. ?slide=N selects the hero slide.
func handleHome(w http.ResponseWriter, r *http.Request) {
	slide, _ := strconv.Atoi(r.URL.Query().Get("slide"))
	query := projections.GetHomeQuery{Slide: slide}
	if ra, err := loadAuth(r); err == nil && ra.session.IsLoggedIn() {
		query.DisplayName = ra.session.User().DisplayName()
	}

	result, err := projections.QueryGetHome(r.Context(), query, projections.GetHomeDeps{HomeStore: stores.HomeStore})
	if err != nil {
		internalError(w, err)
		return
	}
	respond(w, r, "home.html", "홈", homeView{
		GetHomeResult:   result,
		SlideIntervalMs: projections.HeroSlideInterval.Milliseconds(),
	})
}

type homeView struct {
	projections.GetHomeResult
	SlideIntervalMs int64
}

// handleCommunity lists posts of the active board. ?board= overrides the
// remembered board for this view only.
func handleCommunity(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	v := visitorOf(r)
	if b, ok := domainPost.ParseBoardFilter(q.Get("board")); ok && b != v.Board {
		// The context panel is built from the visitor's board, so it must see
		// the override the list uses.
		v.Board = b
		r = r.WithContext(middleware.ContextWithVisitor(r.Context(), v))
	}
	board := v.Board
	pp := listutil.ParsePageParams(q)

	result, err := projections.QueryGetPostList(r.Context(), projections.GetPostListQuery{
		Board:   board,
		Query:   q.Get("q"),
		Sort:    q.Get("sort"),
		Page:    pp.Page,
		PerPage: pp.PerPage,
	}, projections.GetPostListDeps{PostStore: stores.PostStore})
	if err != nil {
		internalError(w, err)
		return
	}
	respond(w, r, "community.html", result.Title, result)
}

// handleInfoShare renders the info-share board.
func handleInfoShare(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	result, err := projections.QueryGetInfoShare(r.Context(), projections.GetInfoShareQuery{
		Filter:    q.Get("filter"),
		Query:     q.Get("q"),
		LatestTab: q.Get("latest"),
	}, projections.GetInfoShareDeps{InfoStore: stores.InfoStore})
	if err != nil {
		internalError(w, err)
		return
	}
	respond(w, r, "info.html", "정보공유", result)
}

// handlePostDetail renders one post. Unknown ids render the placeholder detail.
func handlePostDetail(w http.ResponseWriter, r *http.Request) {
	result, err := projections.QueryGetPostDetail(r.Context(), projections.GetPostDetailQuery{
		PostID: r.PathValue("postId"),
	}, projections.GetPostDetailDeps{PostStore: stores.PostStore})
	if err != nil {
		internalError(w, err)
		return
	}
	respond(w, r, "post_detail.html", result.Title, result)
}

// handleRecruit lists recruiting posts.
func handleRecruit(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	result, err := projections.QueryGetRecruitList(r.Context(), projections.GetRecruitListQuery{
		Category: q.Get("category"),
		Filter:   q.Get("filter"),
		Query:    q.Get("q"),
	}, projections.GetRecruitListDeps{RecruitStore: stores.RecruitStore})
	if err != nil {
		internalError(w, err)
		return
	}
	respond(w, r, "recruit.html", "모집", result)
}

// handleRecruitDetail renders one listing. Unknown ids fall back to the first listing.
func handleRecruitDetail(w http.ResponseWriter, r *http.Request) {
	result, err := projections.QueryGetRecruitDetail(r.Context(), projections.GetRecruitDetailQuery{
		RecruitID: r.PathValue("recruitId"),
	}, projections.GetRecruitDetailDeps{RecruitStore: stores.RecruitStore})
	if errors.Is(err, projections.ErrNoRecruitItems) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		internalError(w, err)
		return
	}
	respond(w, r, "recruit_detail.html", result.Item.Title, result)
}

// handleActivity renders the leaderboard.
func handleActivity(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	result, err := projections.QueryGetLeaderboard(r.Context(), projections.GetLeaderboardQuery{
		Tab:   q.Get("tab"),
		Query: q.Get("q"),
	}, projections.GetLeaderboardDeps{ActivityStore: stores.ActivityStore})
	if err != nil {
		internalError(w, err)
		return
	}
	respond(w, r, "activity.html", projections.LeaderboardTitle, leaderboardView{
		GetLeaderboardResult: result,
		Eyebrow:              projections.LeaderboardEyebrow,
		Title:                projections.LeaderboardTitle,
		Subtitle:             projections.LeaderboardSubtitle,
	})
}

type leaderboardView struct {
	projections.GetLeaderboardResult
	Eyebrow  string
	Title    string
	Subtitle string
}

// ServiceTitle heads the service section.
const ServiceTitle = "서비스"

// handleService renders the service section placeholder.
func handleService(w http.ResponseWriter, r *http.Request) {
	respond(w, r, "service.html", ServiceTitle, placeholderView{
		Title:       ServiceTitle,
		Description: "현재 화면은 같은 디자인 시스템으로 확장 가능한 기본 템플릿입니다. 필요한 기능을 여기에 단계적으로 추가하면 됩니다.",
		Items:       []string{"모듈형 메뉴 영역", "카드형 콘텐츠 블록", "확장 가능한 작업 패널"},
	})
}

type placeholderView struct {
	Title       string
	Description string
	Items       []string
}
