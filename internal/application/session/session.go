// Package session holds the signed-in state of one visitor.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"coala/internal/adapters/authapi"
	"coala/internal/adapters/storage/clientstore"
	"coala/internal/domain/user"
)

// Authenticator is the part of the auth backend the session needs.
type Authenticator interface {
	Login(ctx context.Context, req user.LoginRequest) (user.AuthResponse, error)
	Signup(ctx context.Context, req user.SignupRequest) (user.AuthResponse, error)
	Logout(ctx context.Context) error
}

// Session is the current user of one visitor plus the storage holding their tokens.
// It is created per request and is not safe for concurrent use.
type Session struct {
	tokens authapi.TokenStore
	auth   Authenticator
	user   *user.UserData
}

// New creates a logged-out session. Call Hydrate to restore stored state.
func New(tokens authapi.TokenStore, auth Authenticator) *Session {
	return &Session{tokens: tokens, auth: auth}
}

// Hydrate restores the user record from storage.
// PRE: none
// POST: A missing or unparseable record leaves the session logged out; only storage errors are returned
func (s *Session) Hydrate(ctx context.Context) error {
	s.user = nil
	raw, ok, err := s.tokens.Get(ctx, clientstore.KeyUser)
	if err != nil {
		return fmt.Errorf("read user: %w", err)
	}
	if !ok || raw == "" {
		return nil
	}
	var u user.UserData
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		slog.Warn("auth_event", "event", "stored_user_unreadable", "error", err.Error())
		return nil
	}
	s.user = &u
	return nil
}

// User returns the signed-in user, or nil.
func (s *Session) User() *user.UserData {
	return s.user
}

// IsLoggedIn reports whether a user is present.
func (s *Session) IsLoggedIn() bool {
	return s.user != nil
}

// Login authenticates and persists the returned tokens and user.
// PRE: req passes Validate
// POST: On success the session holds the returned user; on failure nothing is stored
func (s *Session) Login(ctx context.Context, req user.LoginRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	resp, err := s.auth.Login(ctx, req)
	if err != nil {
		return err
	}
	return s.establish(ctx, resp, "login")
}

// Signup registers and persists the returned tokens and user.
// PRE: req passes Validate
// POST: On success the session holds the returned user; on failure nothing is stored
func (s *Session) Signup(ctx context.Context, req user.SignupRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	resp, err := s.auth.Signup(ctx, req)
	if err != nil {
		return err
	}
	return s.establish(ctx, resp, "signup")
}

// Logout notifies the backend and always clears local state.
// PRE: none
// POST: Session keys are removed and the session is logged out, even when the backend call fails
func (s *Session) Logout(ctx context.Context) error {
	if err := s.auth.Logout(ctx); err != nil {
		slog.Info("auth_event", "event", "logout_upstream_failed", "error", err.Error())
	}
	s.user = nil
	if err := s.tokens.Delete(ctx, clientstore.SessionKeys...); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	slog.Info("auth_event", "event", "logout")
	return nil
}

// Expire drops the in-memory user after the auth client cleared storage.
func (s *Session) Expire(context.Context) {
	s.user = nil
}

func (s *Session) establish(ctx context.Context, resp user.AuthResponse, event string) error {
	if err := authapi.Persist(ctx, s.tokens, resp); err != nil {
		return err
	}
	s.user = resp.User
	userID := int64(0)
	if resp.User != nil {
		userID = resp.User.ID
	}
	slog.Info("auth_event", "event", event, "user_id", userID)
	return nil
}
