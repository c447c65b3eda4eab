package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"coala/internal/domain/post"
)

// contextKey is an unexported type for context keys in this package.
type contextKey string

const visitorContextKey contextKey = "visitor"

// Cookie names.
const (
	ClientCookieName = "coala_client"
	BoardCookieName  = "coala_board"
)

const clientCookieMaxAge = 365 * 24 * 60 * 60

// Visitor identifies one browser and carries its UI state.
type Visitor struct {
	ClientID string
	Board    post.BoardFilter
	// New is true when the client cookie was issued on this request.
	New bool
}

// CookieOptions configures the visitor cookies.
type CookieOptions struct {
	Secure bool
}

// Visitors returns middleware that identifies the browser by its client cookie.
// A missing or malformed cookie is replaced by a fresh UUID. The active board is
// read from the board cookie and defaults to post.DefaultBoard.
func Visitors(opts CookieOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			v := Visitor{Board: post.DefaultBoard}

			if c, err := r.Cookie(ClientCookieName); err == nil {
				if id, err := uuid.Parse(c.Value); err == nil {
					v.ClientID = id.String()
				}
			}
			if v.ClientID == "" {
				v.ClientID = uuid.NewString()
				v.New = true
				http.SetCookie(w, &http.Cookie{
					Name:     ClientCookieName,
					Value:    v.ClientID,
					HttpOnly: true,
					Secure:   opts.Secure,
					SameSite: http.SameSiteLaxMode,
					Path:     "/",
					MaxAge:   clientCookieMaxAge,
				})
			}

			if c, err := r.Cookie(BoardCookieName); err == nil {
				if board, ok := post.ParseBoardFilter(c.Value); ok {
					v.Board = board
				}
			}

			next.ServeHTTP(w, r.WithContext(ContextWithVisitor(r.Context(), v)))
		})
	}
}

// VisitorFromContext extracts the visitor from the request context.
func VisitorFromContext(ctx context.Context) (Visitor, bool) {
	v, ok := ctx.Value(visitorContextKey).(Visitor)
	return v, ok
}

// ContextWithVisitor returns a context with the given visitor set.
func ContextWithVisitor(ctx context.Context, v Visitor) context.Context {
	return context.WithValue(ctx, visitorContextKey, v)
}

// SetBoardCookie remembers the active community board.
func SetBoardCookie(w http.ResponseWriter, board post.BoardFilter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     BoardCookieName,
		Value:    string(board),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
		MaxAge:   clientCookieMaxAge,
	})
}
