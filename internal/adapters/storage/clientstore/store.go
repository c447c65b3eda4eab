package clientstore

import (
	"context"
	"errors"
)

// Keys held for each visitor.
const (
	KeyAccessToken  = "accessToken"
	KeyRefreshToken = "refreshToken"
	KeyUser         = "user"
	// KeyProfileBio holds the visitor's edited profile introduction.
	KeyProfileBio = "profileBio"
)

// SessionKeys are the keys cleared together when a session ends.
var SessionKeys = []string{KeyAccessToken, KeyRefreshToken, KeyUser}

// ErrEmptyClientID is returned when a visitor id is missing.
var ErrEmptyClientID = errors.New("client id cannot be empty")

// Store persists per-visitor key/value state.
type Store interface {
	Get(ctx context.Context, clientID, key string) (string, bool, error)
	Set(ctx context.Context, clientID, key, value string) error
	Delete(ctx context.Context, clientID string, keys ...string) error
}

// Scoped is a Store bound to one visitor. It satisfies the token store
// interfaces used by the auth client and the session.
type Scoped struct {
	store    Store
	clientID string
}

// ForClient binds store to a visitor id.
func ForClient(store Store, clientID string) *Scoped {
	return &Scoped{store: store, clientID: clientID}
}

// ClientID returns the visitor id the scope is bound to.
func (s *Scoped) ClientID() string {
	return s.clientID
}

// Get returns the value stored under key.
func (s *Scoped) Get(ctx context.Context, key string) (string, bool, error) {
	return s.store.Get(ctx, s.clientID, key)
}

// Set stores value under key.
func (s *Scoped) Set(ctx context.Context, key, value string) error {
	return s.store.Set(ctx, s.clientID, key, value)
}

// Delete removes the given keys.
func (s *Scoped) Delete(ctx context.Context, keys ...string) error {
	return s.store.Delete(ctx, s.clientID, keys...)
}
