package navigation

import "strings"

// Route identifies a top-level section of the portal.
type Route string

// Routes
const (
	RouteHome      Route = "home"
	RouteCommunity Route = "community"
	RouteRecruit   Route = "recruit"
	RouteActivity  Route = "game"
	RouteService   Route = "service"
	RouteSettings  Route = "settings"
	RouteLogin     Route = "login"
	RouteSignup    Route = "signup"
)

// AllRoutes lists every route in header order followed by the auxiliary ones.
var AllRoutes = []Route{
	RouteHome, RouteCommunity, RouteRecruit, RouteActivity, RouteService,
	RouteSettings, RouteLogin, RouteSignup,
}

var routePaths = map[Route]string{
	RouteHome:      "/",
	RouteCommunity: "/community",
	RouteRecruit:   "/recruit",
	RouteActivity:  "/activity",
	RouteService:   "/service",
	RouteSettings:  "/settings",
	RouteLogin:     "/login",
	RouteSignup:    "/signup",
}

var routeLabels = map[Route]string{
	RouteHome:      "홈",
	RouteCommunity: "커뮤니티",
	RouteRecruit:   "모집",
	RouteActivity:  "활동",
	RouteService:   "서비스",
	RouteSettings:  "프로필 설정",
	RouteLogin:     "로그인",
	RouteSignup:    "회원가입",
}

// prefixOrder is checked first to last; the first match wins.
var prefixOrder = []Route{
	RouteCommunity, RouteRecruit, RouteActivity, RouteService,
	RouteSettings, RouteLogin, RouteSignup,
}

// RouteFromPath resolves a URL path to its route.
// PRE: none
// POST: Returns the first route whose path is a prefix of pathname, RouteHome otherwise
func RouteFromPath(pathname string) Route {
	for _, r := range prefixOrder {
		if strings.HasPrefix(pathname, routePaths[r]) {
			return r
		}
	}
	return RouteHome
}

// Path returns the canonical URL path of the route. Unknown routes map to "/".
func (r Route) Path() string {
	if p, ok := routePaths[r]; ok {
		return p
	}
	return "/"
}

// Label returns the display label of the route.
func (r Route) Label() string {
	return routeLabels[r]
}

// IsAuth reports whether the route is an authentication page.
// INVARIANT: Route value is not mutated
func (r Route) IsAuth() bool {
	return r == RouteLogin || r == RouteSignup
}

// HeaderNavItem is a main-menu entry.
type HeaderNavItem struct {
	Route Route
	Label string
	Path  string
}

// HeaderNavItems returns the main-menu entries in display order.
func HeaderNavItems() []HeaderNavItem {
	routes := []Route{RouteHome, RouteCommunity, RouteRecruit, RouteActivity, RouteService}
	items := make([]HeaderNavItem, 0, len(routes))
	for _, r := range routes {
		items = append(items, HeaderNavItem{Route: r, Label: r.Label(), Path: r.Path()})
	}
	return items
}
