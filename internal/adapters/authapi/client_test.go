package authapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coala/internal/adapters/http/perf"
	"coala/internal/adapters/storage/clientstore"
	"coala/internal/domain/user"
)

type memTokens struct {
	mu   sync.Mutex
	vals map[string]string
}

func newMemTokens(kv ...string) *memTokens {
	m := &memTokens{vals: map[string]string{}}
	for i := 0; i+1 < len(kv); i += 2 {
		m.vals[kv[i]] = kv[i+1]
	}
	return m
}

func (m *memTokens) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.vals[key]
	return v, ok, nil
}

func (m *memTokens) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.vals[key] = value
	return nil
}

func (m *memTokens) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.vals, k)
	}
	return nil
}

// fakeBackend accepts "Bearer fresh" on /api/me and refreshes "good-refresh" only.
type fakeBackend struct {
	meCalls      atomic.Int32
	refreshCalls atomic.Int32
	refreshFails bool
}

func (f *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/me", func(w http.ResponseWriter, r *http.Request) {
		f.meCalls.Add(1)
		if r.Header.Get("Authorization") != "Bearer fresh" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"token expired"}`))
			return
		}
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	mux.HandleFunc(PathRefresh, func(w http.ResponseWriter, r *http.Request) {
		f.refreshCalls.Add(1)
		var body struct {
			RefreshToken string `json:"refreshToken"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		if f.refreshFails || body.RefreshToken != "good-refresh" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"refresh rejected"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"accessToken":  "fresh",
			"refreshToken": "rotated",
			"tokenType":    "Bearer",
			"user":         map[string]any{"id": 7, "email": "k@coala.club", "name": "김코알라"},
		})
	})
	mux.HandleFunc(PathLogin, func(w http.ResponseWriter, r *http.Request) {
		var req user.LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Password != "pw" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"message":"이메일 또는 비밀번호가 올바르지 않습니다."}`))
			return
		}
		_, _ = w.Write([]byte(`{"accessToken":"a1","refreshToken":"r1","tokenType":"Bearer","user":{"id":1,"email":"a@b.c","name":"A"}}`))
	})
	return mux
}

func newTestBackend(t *testing.T, f *fakeBackend) (*Backend, *perf.Collector) {
	t.Helper()
	srv := httptest.NewServer(f.handler())
	t.Cleanup(srv.Close)
	rec := perf.NewCollector(64)
	return NewBackend(Config{BaseURL: srv.URL + "/", Recorder: rec}), rec
}

func TestDo_RefreshesOnceAndRetries(t *testing.T) {
	f := &fakeBackend{}
	b, rec := newTestBackend(t, f)
	tokens := newMemTokens(clientstore.KeyAccessToken, "stale", clientstore.KeyRefreshToken, "good-refresh")
	client := b.For(tokens)

	var out struct {
		OK bool `json:"ok"`
	}
	err := client.Do(context.Background(), http.MethodGet, "/api/me", nil, &out)
	require.NoError(t, err)

	assert.True(t, out.OK)
	assert.Equal(t, int32(2), f.meCalls.Load(), "original request plus exactly one retry")
	assert.Equal(t, int32(1), f.refreshCalls.Load())

	access, _, _ := tokens.Get(context.Background(), clientstore.KeyAccessToken)
	refresh, _, _ := tokens.Get(context.Background(), clientstore.KeyRefreshToken)
	rawUser, ok, _ := tokens.Get(context.Background(), clientstore.KeyUser)
	assert.Equal(t, "fresh", access)
	assert.Equal(t, "rotated", refresh)
	require.True(t, ok)
	assert.Contains(t, rawUser, "김코알라")

	assert.Equal(t, int64(3), rec.TotalRecorded())
}

func TestDo_FailedRefreshClearsSession(t *testing.T) {
	f := &fakeBackend{refreshFails: true}
	b, _ := newTestBackend(t, f)
	tokens := newMemTokens(
		clientstore.KeyAccessToken, "stale",
		clientstore.KeyRefreshToken, "good-refresh",
		clientstore.KeyUser, `{"id":1}`,
	)
	client := b.For(tokens)
	expired := 0
	client.OnSessionExpired = func(context.Context) { expired++ }

	err := client.Do(context.Background(), http.MethodGet, "/api/me", nil, nil)
	require.ErrorIs(t, err, ErrSessionExpired)

	assert.Equal(t, 1, expired)
	assert.Equal(t, int32(1), f.meCalls.Load(), "no resend after a failed refresh")
	for _, k := range clientstore.SessionKeys {
		_, ok, _ := tokens.Get(context.Background(), k)
		assert.False(t, ok, "key %s should be cleared", k)
	}
}

func TestDo_UnauthorizedWithoutRefreshToken(t *testing.T) {
	f := &fakeBackend{}
	b, _ := newTestBackend(t, f)
	client := b.For(newMemTokens())

	err := client.Do(context.Background(), http.MethodGet, "/api/me", nil, nil)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.True(t, apiErr.IsUnauthorized())
	assert.Equal(t, "token expired", apiErr.Message)
	assert.Equal(t, int32(0), f.refreshCalls.Load())
}

func TestDo_RetryHappensAtMostOnce(t *testing.T) {
	// Refresh succeeds but the resent request is still rejected.
	var calls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/api/me", func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	})
	mux.HandleFunc(PathRefresh, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"accessToken":"x","refreshToken":"y","tokenType":"Bearer"}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := NewBackend(Config{BaseURL: srv.URL}).For(newMemTokens(clientstore.KeyRefreshToken, "r"))
	err := client.Do(context.Background(), http.MethodGet, "/api/me", nil, nil)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, int32(2), calls.Load())
}

func TestLogin(t *testing.T) {
	f := &fakeBackend{}
	b, _ := newTestBackend(t, f)
	client := b.For(newMemTokens())

	resp, err := client.Login(context.Background(), user.LoginRequest{Email: "a@b.c", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "a1", resp.AccessToken)
	require.NotNil(t, resp.User)
	assert.Equal(t, "A", resp.User.Name)

	_, err = client.Login(context.Background(), user.LoginRequest{Email: "a@b.c", Password: "nope"})
	require.Error(t, err)
	assert.Equal(t, "이메일 또는 비밀번호가 올바르지 않습니다.", UserMessage(err))
}

func TestNoBaseURL(t *testing.T) {
	client := NewBackend(Config{}).For(newMemTokens())
	err := client.Logout(context.Background())
	assert.ErrorIs(t, err, ErrNoBaseURL)
	assert.Equal(t, DefaultErrorMessage, UserMessage(err))
}

func TestNewAPIError_NonJSONBody(t *testing.T) {
	e := newAPIError(http.StatusBadGateway, []byte("<html>bad gateway</html>"))
	assert.Equal(t, "", e.Message)
	assert.Equal(t, DefaultErrorMessage, e.UserMessage())
}

func TestPersist_SkipsMissingUser(t *testing.T) {
	tokens := newMemTokens()
	err := Persist(context.Background(), tokens, AuthResponse{AccessToken: "a", RefreshToken: "r"})
	require.NoError(t, err)
	_, ok, _ := tokens.Get(context.Background(), clientstore.KeyUser)
	assert.False(t, ok)

	assert.ErrorIs(t, Persist(context.Background(), tokens, AuthResponse{}), errEmptyToken)
}
