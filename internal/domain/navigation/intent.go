package navigation

import "coala/internal/domain/post"

// IntentKind enumerates what selecting a panel item does.
type IntentKind int

// Intent kinds
const (
	IntentNone IntentKind = iota
	IntentSelectBoard
	IntentOpenCommunity
	IntentOpenInfo
	IntentOpenActivity
	IntentOpenRecruit
	IntentOpenService
	IntentOpenSettings
)

// String returns a stable name for logging.
func (k IntentKind) String() string {
	switch k {
	case IntentSelectBoard:
		return "select_board"
	case IntentOpenCommunity:
		return "open_community"
	case IntentOpenInfo:
		return "open_info"
	case IntentOpenActivity:
		return "open_activity"
	case IntentOpenRecruit:
		return "open_recruit"
	case IntentOpenService:
		return "open_service"
	case IntentOpenSettings:
		return "open_settings"
	default:
		return "none"
	}
}

// Intent is the navigation outcome of a panel selection.
type Intent struct {
	Kind  IntentKind
	Board post.BoardFilter // set for IntentSelectBoard
	Tab   string           // optional view tab for the target page
}

// Target returns the URL the intent navigates to, or "" for IntentNone.
func (i Intent) Target() string {
	switch i.Kind {
	case IntentSelectBoard, IntentOpenCommunity:
		return RouteCommunity.Path()
	case IntentOpenInfo:
		return "/community/info"
	case IntentOpenActivity:
		if i.Tab != "" {
			return RouteActivity.Path() + "?tab=" + i.Tab
		}
		return RouteActivity.Path()
	case IntentOpenRecruit:
		return RouteRecruit.Path()
	case IntentOpenService:
		return RouteService.Path()
	case IntentOpenSettings:
		return RouteSettings.Path()
	default:
		return ""
	}
}

// actionIntents maps every action id to its intent.
var actionIntents = map[string]Intent{
	"home-recent":        {Kind: IntentOpenCommunity},
	"home-leader":        {Kind: IntentOpenActivity},
	"home-resource":      {Kind: IntentOpenInfo},
	"community-info":     {Kind: IntentOpenInfo},
	"community-manage":   {Kind: IntentOpenCommunity},
	"community-announce": {Kind: IntentOpenCommunity},
	"recruit-open":       {Kind: IntentOpenRecruit},
	"recruit-manage":     {Kind: IntentOpenRecruit},
	"game-ranking":       {Kind: IntentOpenActivity},
	"game-baekjoon":      {Kind: IntentOpenActivity, Tab: "baekjoon"},
	"game-github":        {Kind: IntentOpenActivity, Tab: "github"},
	"service-status":     {Kind: IntentOpenService},
	"service-guide":      {Kind: IntentOpenService},
	"settings-profile":   {Kind: IntentOpenSettings},
	"settings-theme":     {Kind: IntentOpenSettings},
}

// ResolveIntent maps a (kind, value) selection to its intent.
// PRE: none
// POST: Returns IntentNone for unknown kinds, unknown boards and unknown action ids
func ResolveIntent(kind ItemKind, value string) Intent {
	switch kind {
	case KindBoard:
		board, ok := post.ParseBoardFilter(value)
		if !ok {
			return Intent{Kind: IntentNone}
		}
		return Intent{Kind: IntentSelectBoard, Board: board}
	case KindAction:
		if intent, ok := actionIntents[value]; ok {
			return intent
		}
		return Intent{Kind: IntentNone}
	default:
		return Intent{Kind: IntentNone}
	}
}
