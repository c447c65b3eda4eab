package navigation

import "coala/internal/domain/post"

// ItemKind tags a context panel entry.
type ItemKind string

// Item kinds
const (
	KindBoard  ItemKind = "board"
	KindAction ItemKind = "action"
)

// PanelItem is a selectable entry of the context panel.
type PanelItem struct {
	ID          string
	Label       string
	Icon        string
	Description string
	Badge       string
	Kind        ItemKind
	Value       string
	IsActive    bool
}

// ContextPanel describes the route-dependent side panel.
type ContextPanel struct {
	Title       string
	Description string
	Items       []PanelItem
}

// ActionDefinition is a static shortcut shown in a context panel.
type ActionDefinition struct {
	ID          string
	Label       string
	Icon        string
	Description string
}

var homeActions = []ActionDefinition{
	{ID: "home-recent", Label: "최근 업데이트", Icon: "bell", Description: "오늘 변경된 공지와 소식을 확인해요."},
	{ID: "home-leader", Label: "활동 랭킹", Icon: "chart", Description: "백준·GitHub 기여도 순위를 살펴봐요."},
	{ID: "home-resource", Label: "추천 자료", Icon: "book", Description: "커뮤니티 정보공유 게시판으로 이동할 수 있어요."},
}

var communityActions = []ActionDefinition{
	{ID: "community-info", Label: "정보공유", Icon: "book", Description: "토론형 아티클과 자료 카드 화면을 확인해요."},
	{ID: "community-manage", Label: "게시판 관리", Icon: "settings", Description: "게시판별 권한과 노출 규칙을 관리해요."},
	{ID: "community-announce", Label: "공지 등록", Icon: "edit", Description: "공지 사항을 작성하고 상단 고정을 설정해요."},
}

var recruitActions = []ActionDefinition{
	{ID: "recruit-open", Label: "모집 글 등록", Icon: "edit", Description: "스터디, 프로젝트, 멘토링 모집 글을 등록해요."},
	{ID: "recruit-manage", Label: "지원자 관리", Icon: "users", Description: "지원자 상태와 연락 내역을 확인해요."},
}

var activityActions = []ActionDefinition{
	{ID: "game-ranking", Label: "종합 랭킹", Icon: "chart", Description: "백준 · GitHub 활동을 합산한 종합 순위를 확인해요."},
	{ID: "game-baekjoon", Label: "백준 현황", Icon: "file", Description: "SOLVED 등급별 문제풀이 기록을 확인해요."},
	{ID: "game-github", Label: "GitHub 현황", Icon: "network", Description: "월별 커밋 기록과 활동 기여도를 확인해요."},
}

var serviceActions = []ActionDefinition{
	{ID: "service-status", Label: "서비스 상태", Icon: "network", Description: "서비스 상태와 점검 일정을 확인해요."},
	{ID: "service-guide", Label: "이용 가이드", Icon: "book", Description: "서비스 기능별 사용 가이드를 확인해요."},
}

var settingsActions = []ActionDefinition{
	{ID: "settings-profile", Label: "프로필 설정", Icon: "user", Description: "닉네임, 소개, 공개 범위를 변경해요."},
	{ID: "settings-theme", Label: "알림 및 테마", Icon: "palette", Description: "알림 기준과 화면 테마를 설정해요."},
}

// ActionCatalog returns every action definition across all panels.
func ActionCatalog() []ActionDefinition {
	var all []ActionDefinition
	for _, group := range [][]ActionDefinition{
		homeActions, communityActions, recruitActions, activityActions, serviceActions, settingsActions,
	} {
		all = append(all, group...)
	}
	return all
}

// toActionItems converts definitions into panel items; the item at activeIndex is active.
// A negative activeIndex leaves every item inactive.
func toActionItems(actions []ActionDefinition, activeIndex int) []PanelItem {
	items := make([]PanelItem, 0, len(actions))
	for i, a := range actions {
		items = append(items, PanelItem{
			ID:          a.ID,
			Label:       a.Label,
			Icon:        a.Icon,
			Description: a.Description,
			Kind:        KindAction,
			Value:       a.ID,
			IsActive:    i == activeIndex,
		})
	}
	return items
}

func toBoardItems(activeBoard post.BoardFilter, icon string) []PanelItem {
	boards := post.SidebarBoards()
	items := make([]PanelItem, 0, len(boards))
	for _, b := range boards {
		items = append(items, PanelItem{
			ID:       "board-" + string(b.ID),
			Label:    b.Label,
			Icon:     icon,
			Badge:    b.Badge,
			Kind:     KindBoard,
			Value:    string(b.ID),
			IsActive: activeBoard == b.ID,
		})
	}
	return items
}

// BuildContextPanel returns the side panel for a route.
// PRE: none
// POST: Returns (panel, true) for routes with a panel; (zero, false) for auth and unknown routes
// INVARIANT: At most one board item is active, and only when activeBoard is a known board
func BuildContextPanel(route Route, activeBoard post.BoardFilter) (ContextPanel, bool) {
	switch route {
	case RouteHome:
		return ContextPanel{
			Title:       "바로가기",
			Description: "자주 쓰는 영역을 빠르게 이동할 수 있어요.",
			Items:       toActionItems(homeActions, 0),
		}, true
	case RouteCommunity:
		items := toBoardItems(activeBoard, "users")
		items = append(items, toActionItems(communityActions, -1)...)
		return ContextPanel{
			Title:       "커뮤니티 메뉴",
			Description: "왼쪽에서 전체 게시글, 자유게시판, 졸업생게시판, 정보공유를 선택합니다.",
			Items:       items,
		}, true
	case RouteRecruit:
		return ContextPanel{
			Title:       "모집 메뉴",
			Description: "모집 글 작성부터 지원자 관리까지 바로 처리하세요.",
			Items:       toActionItems(recruitActions, 0),
		}, true
	case RouteActivity:
		return ContextPanel{
			Title:       "활동 메뉴",
			Description: "백준 문제풀이와 GitHub 커밋 활동 기록을 확인하세요.",
			Items:       toActionItems(activityActions, 0),
		}, true
	case RouteService:
		return ContextPanel{
			Title:       "서비스 메뉴",
			Description: "서비스 상태, 정책, 가이드를 확인할 수 있어요.",
			Items:       toActionItems(serviceActions, 0),
		}, true
	case RouteSettings:
		return ContextPanel{
			Title:       "프로필 설정",
			Description: "개인화 설정을 수정하세요.",
			Items:       toActionItems(settingsActions, 0),
		}, true
	default:
		return ContextPanel{}, false
	}
}
