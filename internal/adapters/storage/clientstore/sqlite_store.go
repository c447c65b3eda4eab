package clientstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"coala/internal/adapters/storage"
)

const timeLayout = "2006-01-02T15:04:05Z07:00"

// SQLiteStore implements Store using the client_storage table.
type SQLiteStore struct {
	db  storage.SQLDB
	now func() time.Time
}

// NewSQLiteStore creates a new SQLiteStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db, now: time.Now}
}

// Get retrieves a value.
// PRE: clientID and key are non-empty
// POST: Returns (value, true, nil) when present, ("", false, nil) when absent
func (s *SQLiteStore) Get(ctx context.Context, clientID, key string) (string, bool, error) {
	if clientID == "" {
		return "", false, ErrEmptyClientID
	}
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM client_storage WHERE client_id = ? AND key = ?`, clientID, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("client storage get %q: %w", key, err)
	}
	return value, true, nil
}

// Set inserts or replaces a value.
// PRE: clientID and key are non-empty
// POST: value is durable for (clientID, key)
func (s *SQLiteStore) Set(ctx context.Context, clientID, key, value string) error {
	if clientID == "" {
		return ErrEmptyClientID
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO client_storage (client_id, key, value, updated_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(client_id, key) DO UPDATE SET
		   value=excluded.value, updated_at=excluded.updated_at`,
		clientID, key, value, s.now().UTC().Format(timeLayout))
	if err != nil {
		return fmt.Errorf("client storage set %q: %w", key, err)
	}
	return nil
}

// Delete removes keys for a visitor. Missing keys are ignored.
// PRE: clientID is non-empty
// POST: none of keys remain for clientID
func (s *SQLiteStore) Delete(ctx context.Context, clientID string, keys ...string) error {
	if clientID == "" {
		return ErrEmptyClientID
	}
	if len(keys) == 0 {
		return nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(keys)), ",")
	args := make([]any, 0, len(keys)+1)
	args = append(args, clientID)
	for _, k := range keys {
		args = append(args, k)
	}
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM client_storage WHERE client_id = ? AND key IN (`+placeholders+`)`, args...)
	if err != nil {
		return fmt.Errorf("client storage delete: %w", err)
	}
	return nil
}
