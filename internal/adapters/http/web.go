package web

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log"
	"net/http"
	"time"

	"coala/internal/adapters/authapi"
	"coala/internal/adapters/http/middleware"
	"coala/internal/adapters/http/perf"
	"coala/internal/adapters/metrics"
	activityStore "coala/internal/adapters/storage/activity"
	"coala/internal/adapters/storage/clientstore"
	draftStore "coala/internal/adapters/storage/draft"
	homeStore "coala/internal/adapters/storage/home"
	infoStore "coala/internal/adapters/storage/info"
	postStore "coala/internal/adapters/storage/post"
	recruitStore "coala/internal/adapters/storage/recruit"
)

// Stores holds all storage dependencies.
type Stores struct {
	PostStore     postStore.Store
	RecruitStore  recruitStore.Store
	ActivityStore activityStore.Store
	InfoStore     infoStore.Store
	HomeStore     homeStore.Store
	ClientStore   clientstore.Store
	DraftStore    draftStore.Store
}

// Options configures the HTTP surface.
type Options struct {
	// CSRFKey is the 32-byte form protection secret.
	CSRFKey []byte
	// Production enables Secure cookies.
	Production bool
	// TrustedOrigins lists host:port origins accepted for form posts.
	TrustedOrigins []string
	// RatePerMinute is the per-IP request budget.
	RatePerMinute int
	// SlowRequest is the threshold above which requests are logged as slow.
	SlowRequest time.Duration
}

// ErrInvalidCSRFKey is returned when a configured CSRF key is not 32 hex-encoded bytes.
var ErrInvalidCSRFKey = errors.New("csrf key must be 64 hex characters (32 bytes)")

// ErrMissingCSRFKey is returned when production runs without a CSRF key.
var ErrMissingCSRFKey = errors.New("csrf key is required in production")

// LoadCSRFKey decodes the configured CSRF secret (hex-encoded, 32 bytes).
// In production the key MUST be set. In development a random key is generated per startup.
func LoadCSRFKey(keyHex string, production bool) ([]byte, error) {
	if keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil || len(key) != 32 {
			return nil, ErrInvalidCSRFKey
		}
		return key, nil
	}
	if production {
		return nil, ErrMissingCSRFKey
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return nil, err
	}
	log.Println("WARNING: using random CSRF key (forms won't survive restart). Set COALA_CSRF_KEY for production.")
	return key, nil
}

// Global stores instance (set by NewMux)
var stores *Stores

// Global auth backend (set by NewMux)
var authBackend *authapi.Backend

// Global perf collector (set by NewMux)
var perfCollector *perf.Collector

// secureCookies marks visitor and board cookies Secure.
var secureCookies bool

// timeNow is a variable for testability.
var timeNow = time.Now

// NewMux wires HTTP handlers for the app. The returned stop function releases
// background goroutines and must be called when the server shuts down.
func NewMux(opts Options, s *Stores, backend *authapi.Backend, collector *perf.Collector) (http.Handler, func()) {
	stores = s
	authBackend = backend
	perfCollector = collector
	secureCookies = opts.Production

	mux := http.NewServeMux()
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(staticFS())))
	mux.Handle("GET /metrics", metrics.Handler())
	registerRoutes(mux)

	limiter := middleware.NewRateLimiter(opts.RatePerMinute)
	var recorder perf.Recorder
	if collector != nil {
		recorder = collector
	}

	// Request order: Timing -> RateLimit -> Visitors -> CSRF -> SecurityHeaders -> Mux
	handler := middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(opts.CSRFKey, middleware.CSRFOptions{
			Secure:         opts.Production,
			TrustedOrigins: opts.TrustedOrigins,
		}),
		middleware.Visitors(middleware.CookieOptions{Secure: opts.Production}),
		middleware.RateLimit(limiter),
		middleware.Timing(recorder, opts.SlowRequest, mux),
	)
	return handler, limiter.Stop
}
