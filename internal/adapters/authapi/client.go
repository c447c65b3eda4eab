// Package authapi is the client of the upstream authentication backend.
package authapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"coala/internal/adapters/http/perf"
	"coala/internal/adapters/metrics"
	"coala/internal/adapters/storage/clientstore"
)

// DefaultTimeout bounds one upstream round trip.
const DefaultTimeout = 10 * time.Second

// maxBodyBytes caps how much of an upstream body is read.
const maxBodyBytes = 1 << 20

// TokenStore is the visitor storage the client reads tokens from and writes refreshed ones to.
type TokenStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
}

// Config holds settings shared by every visitor's client.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
	Recorder   perf.Recorder
}

// Backend is the shared connection to the auth service. Bind it to a
// visitor with For.
type Backend struct {
	baseURL    string
	httpClient *http.Client
	recorder   perf.Recorder
}

// NewBackend creates a Backend from cfg.
// PRE: none
// POST: Returns a backend; a missing HTTPClient gets one with cfg.Timeout (DefaultTimeout when zero)
func NewBackend(cfg Config) *Backend {
	hc := cfg.HTTPClient
	if hc == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}
		hc = &http.Client{Timeout: timeout}
	}
	return &Backend{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: hc,
		recorder:   cfg.Recorder,
	}
}

// Client sends requests on behalf of one visitor.
type Client struct {
	backend *Backend
	tokens  TokenStore
	// OnSessionExpired runs after a failed refresh has cleared the stored session.
	OnSessionExpired func(ctx context.Context)
}

// For binds the backend to a visitor's token storage.
func (b *Backend) For(tokens TokenStore) *Client {
	return &Client{backend: b, tokens: tokens}
}

// Do sends a JSON request and decodes a JSON answer into out (when non-nil).
// PRE: path starts with "/"
// POST: A 401 on the first attempt with a stored refresh token triggers exactly one
// refresh and one resend; if that refresh fails the session keys are cleared,
// OnSessionExpired runs and ErrSessionExpired is returned.
// Other non-2xx answers return *APIError
func (c *Client) Do(ctx context.Context, method, path string, in, out any) error {
	var payload []byte
	if in != nil {
		var err error
		if payload, err = json.Marshal(in); err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
	}

	status, body, err := c.send(ctx, method, path, payload, true)
	if err != nil {
		return err
	}

	if status == http.StatusUnauthorized {
		refreshToken, ok, err := c.tokens.Get(ctx, clientstore.KeyRefreshToken)
		if err != nil {
			return fmt.Errorf("read refresh token: %w", err)
		}
		if ok && refreshToken != "" {
			if err := c.refresh(ctx, refreshToken); err != nil {
				return c.expire(ctx, err)
			}
			metrics.IncRetry()
			status, body, err = c.send(ctx, method, path, payload, true)
			if err != nil {
				return err
			}
		}
	}

	if status < 200 || status > 299 {
		return newAPIError(status, body)
	}
	if out != nil && len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// refresh exchanges the refresh token and persists the new tokens.
func (c *Client) refresh(ctx context.Context, refreshToken string) error {
	payload, err := json.Marshal(map[string]string{"refreshToken": refreshToken})
	if err != nil {
		return err
	}
	status, body, err := c.send(ctx, http.MethodPost, PathRefresh, payload, false)
	if err != nil {
		metrics.ObserveRefresh(false)
		return err
	}
	if status < 200 || status > 299 {
		metrics.ObserveRefresh(false)
		return newAPIError(status, body)
	}

	var resp AuthResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		metrics.ObserveRefresh(false)
		return fmt.Errorf("decode refresh response: %w", err)
	}
	if resp.AccessToken == "" {
		metrics.ObserveRefresh(false)
		return errEmptyToken
	}
	if err := persist(ctx, c.tokens, resp); err != nil {
		metrics.ObserveRefresh(false)
		return err
	}
	metrics.ObserveRefresh(true)
	return nil
}

// expire clears the stored session after a failed refresh.
func (c *Client) expire(ctx context.Context, cause error) error {
	if err := c.tokens.Delete(ctx, clientstore.SessionKeys...); err != nil {
		slog.Error("auth_event", "event", "session_clear_failed", "error", err.Error())
	}
	metrics.IncSessionExpired()
	slog.Warn("auth_event", "event", "session_expired", "cause", cause.Error())
	if c.OnSessionExpired != nil {
		c.OnSessionExpired(ctx)
	}
	return ErrSessionExpired
}

// send performs one round trip. withAuth attaches the stored access token.
func (c *Client) send(ctx context.Context, method, path string, payload []byte, withAuth bool) (int, []byte, error) {
	if c.backend.baseURL == "" {
		return 0, nil, ErrNoBaseURL
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.backend.baseURL+path, body)
	if err != nil {
		return 0, nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if withAuth {
		token, ok, err := c.tokens.Get(ctx, clientstore.KeyAccessToken)
		if err != nil {
			return 0, nil, fmt.Errorf("read access token: %w", err)
		}
		if ok && token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.backend.httpClient.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		c.observe(path, 0, elapsed)
		return 0, nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	c.observe(path, resp.StatusCode, elapsed)
	if err != nil {
		return 0, nil, fmt.Errorf("read response: %w", err)
	}
	return resp.StatusCode, respBody, nil
}

func (c *Client) observe(path string, status int, d time.Duration) {
	metrics.ObserveUpstream(endpointLabel(path), status, d)
	if c.backend.recorder != nil {
		c.backend.recorder.Record(perf.Entry{
			Kind:       perf.KindUpstream,
			Path:       path,
			StatusCode: status,
			DurationMs: float64(d.Microseconds()) / 1000,
			Timestamp:  time.Now(),
		})
	}
}

// endpointLabel keeps metric label cardinality bounded.
func endpointLabel(path string) string {
	switch path {
	case PathLogin, PathSignup, PathLogout, PathRefresh:
		return strings.TrimPrefix(path, "/api/auth/")
	default:
		return "other"
	}
}
