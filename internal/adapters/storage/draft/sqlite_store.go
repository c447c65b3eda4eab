package draft

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"coala/internal/adapters/storage"
	domain "coala/internal/domain/post"
)

const timeLayout = "2006-01-02T15:04:05Z07:00"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new SQLiteStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Save inserts or updates a draft.
// PRE: draft has been validated
// POST: Draft is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, d domain.Draft) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO post_draft (id, client_id, title, tags, markdown, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   title=excluded.title, tags=excluded.tags, markdown=excluded.markdown`,
		d.ID, d.ClientID, d.Title, strings.Join(d.Tags, ","), d.Markdown,
		d.CreatedAt.UTC().Format(timeLayout))
	return err
}

// ListByClient returns the newest drafts of a visitor.
// PRE: clientID is non-empty
// POST: Returns at most limit drafts ordered by created_at DESC (all when limit <= 0)
func (s *SQLiteStore) ListByClient(ctx context.Context, clientID string, limit int) ([]domain.Draft, error) {
	query := `SELECT id, client_id, title, tags, markdown, created_at
		 FROM post_draft WHERE client_id = ? ORDER BY created_at DESC, id`
	args := []any{clientID}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var drafts []domain.Draft
	for rows.Next() {
		var d domain.Draft
		var tags, createdAt string
		if err := rows.Scan(&d.ID, &d.ClientID, &d.Title, &tags, &d.Markdown, &createdAt); err != nil {
			return nil, err
		}
		d.Tags = domain.ParseTags(tags)
		d.CreatedAt, err = time.Parse(timeLayout, createdAt)
		if err != nil {
			slog.Warn("draft: failed to parse time", "draft_id", d.ID, "raw", createdAt, "error", err)
		}
		drafts = append(drafts, d)
	}
	return drafts, rows.Err()
}
