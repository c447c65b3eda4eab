package authapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"coala/internal/adapters/storage/clientstore"
	"coala/internal/domain/user"
)

// Backend endpoints.
const (
	PathLogin   = "/api/auth/login"
	PathSignup  = "/api/auth/signup"
	PathLogout  = "/api/auth/logout"
	PathRefresh = "/api/auth/refresh"
)

var errEmptyToken = errors.New("auth response carried no access token")

// AuthResponse is the token bundle shared by login, signup and refresh.
type AuthResponse = user.AuthResponse

// Login exchanges credentials for tokens. Nothing is persisted here.
func (c *Client) Login(ctx context.Context, req user.LoginRequest) (AuthResponse, error) {
	var resp AuthResponse
	if err := c.Do(ctx, http.MethodPost, PathLogin, req, &resp); err != nil {
		return AuthResponse{}, err
	}
	return resp, nil
}

// Signup registers a member and returns its tokens. Nothing is persisted here.
func (c *Client) Signup(ctx context.Context, req user.SignupRequest) (AuthResponse, error) {
	var resp AuthResponse
	if err := c.Do(ctx, http.MethodPost, PathSignup, req, &resp); err != nil {
		return AuthResponse{}, err
	}
	return resp, nil
}

// Logout tells the backend the session ended.
func (c *Client) Logout(ctx context.Context) error {
	return c.Do(ctx, http.MethodPost, PathLogout, nil, nil)
}

// Refresh exchanges a refresh token for a new bundle without touching storage.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (AuthResponse, error) {
	var resp AuthResponse
	req := map[string]string{"refreshToken": refreshToken}
	if err := c.Do(ctx, http.MethodPost, PathRefresh, req, &resp); err != nil {
		return AuthResponse{}, err
	}
	return resp, nil
}

// Persist stores a token bundle under the session keys.
// PRE: resp carries an access token
// POST: accessToken and refreshToken are written; user is written only when present
func Persist(ctx context.Context, tokens TokenStore, resp AuthResponse) error {
	return persist(ctx, tokens, resp)
}

func persist(ctx context.Context, tokens TokenStore, resp AuthResponse) error {
	if resp.AccessToken == "" {
		return errEmptyToken
	}
	if err := tokens.Set(ctx, clientstore.KeyAccessToken, resp.AccessToken); err != nil {
		return fmt.Errorf("store access token: %w", err)
	}
	if err := tokens.Set(ctx, clientstore.KeyRefreshToken, resp.RefreshToken); err != nil {
		return fmt.Errorf("store refresh token: %w", err)
	}
	if resp.User != nil {
		raw, err := json.Marshal(resp.User)
		if err != nil {
			return fmt.Errorf("encode user: %w", err)
		}
		if err := tokens.Set(ctx, clientstore.KeyUser, string(raw)); err != nil {
			return fmt.Errorf("store user: %w", err)
		}
	}
	return nil
}
