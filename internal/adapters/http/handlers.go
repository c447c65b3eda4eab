package web

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"coala/internal/adapters/authapi"
	"coala/internal/adapters/http/middleware"
	"coala/internal/adapters/storage/clientstore"
	"coala/internal/application/session"
	"coala/internal/domain/post"
)

// RouteInfo describes one registered endpoint.
type RouteInfo struct {
	Pattern     string
	Description string
	handler     http.HandlerFunc
}

// routeTable lists every page and endpoint in registration order.
var routeTable = []RouteInfo{
	{"GET /{$}", "home dashboard", handleHome},
	{"GET /community", "community post list", handleCommunity},
	{"GET /community/info", "info-share board", handleInfoShare},
	{"GET /community/write", "markdown writer", handleWriter},
	{"POST /community/write", "writer preview or publish", handleWriter},
	{"GET /community/posts/{postId}", "post detail", handlePostDetail},
	{"GET /recruit", "recruit listings", handleRecruit},
	{"GET /recruit/{recruitId}", "recruit detail", handleRecruitDetail},
	{"GET /activity", "activity leaderboard", handleActivity},
	{"GET /settings", "profile settings", handleSettings},
	{"POST /settings", "save profile introduction", handleSettings},
	{"GET /service", "service section", handleService},
	{"GET /login", "login form", handleLogin},
	{"POST /login", "login submit", handleLogin},
	{"GET /signup", "signup form", handleSignup},
	{"POST /signup", "signup submit", handleSignup},
	{"POST /logout", "end the session", handleLogout},
	{"GET /context/select", "context panel selection", handleContextSelect},
	{"GET /debug/perf", "request and query timings", handlePerf},
	{"/", "unmatched paths redirect home", handleFallback},
}

// Routes returns the endpoint table, including those served outside it.
func Routes() []RouteInfo {
	out := []RouteInfo{
		{Pattern: "GET /static/", Description: "embedded assets"},
		{Pattern: "GET /metrics", Description: "prometheus metrics"},
	}
	for _, rt := range routeTable {
		out = append(out, RouteInfo{Pattern: rt.Pattern, Description: rt.Description})
	}
	return out
}

func registerRoutes(mux *http.ServeMux) {
	for _, rt := range routeTable {
		mux.HandleFunc(rt.Pattern, rt.handler)
	}
}

// handleFallback sends unmatched paths to the home page.
func handleFallback(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// generateID creates a new UUID string.
func generateID() string {
	return uuid.New().String()
}

// internalError logs the real error and returns a generic message to the client.
// This prevents leaking internal details per OWASP A05.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

func isHTMLRequest(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "text/html") || strings.Contains(accept, "application/xhtml+xml")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json_encode_failed", "error", err.Error())
	}
}

// respond renders page for browsers and the bare result for API clients.
func respond(w http.ResponseWriter, r *http.Request, page, title string, result any) {
	if !isHTMLRequest(r) {
		writeJSON(w, http.StatusOK, result)
		return
	}
	renderTemplate(w, r, http.StatusOK, page, title, result)
}

// visitorOf returns the request's visitor. Requests that bypassed the visitor
// middleware get an anonymous visitor on the default board.
func visitorOf(r *http.Request) middleware.Visitor {
	if v, ok := middleware.VisitorFromContext(r.Context()); ok {
		return v
	}
	return middleware.Visitor{Board: post.DefaultBoard}
}

// visitorStore returns the durable storage scoped to the request's visitor.
func visitorStore(r *http.Request) (*clientstore.Scoped, bool) {
	v := visitorOf(r)
	if v.ClientID == "" || stores == nil || stores.ClientStore == nil {
		return nil, false
	}
	return clientstore.ForClient(stores.ClientStore, v.ClientID), true
}

// requestAuth bundles the visitor's session with the auth client that serves it.
type requestAuth struct {
	session *session.Session
	client  *authapi.Client
	expired bool
}

// loadAuth builds and hydrates the visitor's session. A failed refresh inside any
// call made through the client clears the session and sets expired.
func loadAuth(r *http.Request) (*requestAuth, error) {
	tokens, ok := visitorStore(r)
	if !ok {
		return nil, errNoVisitor
	}
	backend := authBackend
	if backend == nil {
		backend = authapi.NewBackend(authapi.Config{})
	}
	ra := &requestAuth{client: backend.For(tokens)}
	ra.session = session.New(tokens, ra.client)
	ra.client.OnSessionExpired = func(ctx context.Context) {
		ra.expired = true
		ra.session.Expire(ctx)
	}
	if err := ra.session.Hydrate(r.Context()); err != nil {
		return nil, err
	}
	return ra, nil
}

var errNoVisitor = errors.New("request has no visitor storage")
