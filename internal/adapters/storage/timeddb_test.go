package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coala/internal/adapters/http/perf"
)

func TestTimedDB_RecordsEveryCall(t *testing.T) {
	db := openTestDB(t)
	collector := perf.NewCollector(100)
	tdb := NewTimedDB(db, collector, 0)
	ctx := context.Background()

	_, err := tdb.ExecContext(ctx, "CREATE TABLE kv (k TEXT PRIMARY KEY, v TEXT)")
	require.NoError(t, err)
	_, err = tdb.ExecContext(ctx, "INSERT INTO kv (k, v) VALUES (?, ?)", "a", "1")
	require.NoError(t, err)

	var v string
	require.NoError(t, tdb.QueryRowContext(ctx, "SELECT v FROM kv WHERE k = ?", "a").Scan(&v))
	assert.Equal(t, "1", v)

	rows, err := tdb.QueryContext(ctx, "SELECT k FROM kv")
	require.NoError(t, err)
	rows.Close()

	assert.Equal(t, int64(4), collector.TotalRecorded())
	snap := collector.Snapshot(time.Now().Add(-time.Minute), 10)
	assert.Len(t, snap.SlowestQueries, 3)
	assert.Empty(t, snap.SlowestPaths)
}

func TestTimedDB_NilRecorder(t *testing.T) {
	db := openTestDB(t)
	tdb := NewTimedDB(db, nil, time.Second)

	_, err := tdb.ExecContext(context.Background(), "SELECT 1")
	assert.NoError(t, err)
}

func TestNewTimedDB_DefaultThreshold(t *testing.T) {
	tdb := NewTimedDB(openTestDB(t), nil, 0)
	assert.Equal(t, DefaultSlowQuery, tdb.threshold)
}
