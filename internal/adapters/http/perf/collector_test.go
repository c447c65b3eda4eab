package perf

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCollector_SnapshotGroupsByKind verifies requests, queries and upstream calls are reported separately.
func TestCollector_SnapshotGroupsByKind(t *testing.T) {
	c := NewCollector(100)
	now := time.Now()

	c.Record(Entry{Kind: KindRequest, Path: "GET /community", StatusCode: 200, DurationMs: 10, Timestamp: now})
	c.Record(Entry{Kind: KindRequest, Path: "GET /community", StatusCode: 200, DurationMs: 30, Timestamp: now})
	c.Record(Entry{Kind: KindQuery, Path: "ExecContext", DurationMs: 5, Timestamp: now})
	c.Record(Entry{Kind: KindUpstream, Path: "POST /api/auth/login", StatusCode: 200, DurationMs: 40, Timestamp: now})

	snap := c.Snapshot(now.Add(-time.Minute), 10)
	assert.Equal(t, int64(4), snap.TotalRecorded)
	require.Len(t, snap.SlowestPaths, 1)
	assert.Equal(t, 20.0, snap.SlowestPaths[0].AvgMs)
	assert.Equal(t, 30.0, snap.SlowestPaths[0].MaxMs)
	require.Len(t, snap.SlowestQueries, 1)
	require.Len(t, snap.SlowestUpstream, 1)
	assert.Equal(t, "POST /api/auth/login", snap.SlowestUpstream[0].Path)
}

// TestCollector_RingBuffer_Overwrites verifies oldest entries are overwritten when full.
func TestCollector_RingBuffer_Overwrites(t *testing.T) {
	c := NewCollector(3)
	now := time.Now()

	for i := 0; i < 5; i++ {
		c.Record(Entry{Kind: KindRequest, Path: "GET /recruit", DurationMs: float64(i), Timestamp: now})
	}

	assert.Equal(t, int64(5), c.TotalRecorded())
	snap := c.Snapshot(now.Add(-time.Minute), 10)
	require.Len(t, snap.SlowestPaths, 1)
	assert.Equal(t, 3, snap.SlowestPaths[0].Count)
}

// TestCollector_Percentiles verifies P50/P95/P99 calculation.
func TestCollector_Percentiles(t *testing.T) {
	c := NewCollector(200)
	now := time.Now()

	for i := 1; i <= 100; i++ {
		c.Record(Entry{Kind: KindRequest, Path: "GET /activity", DurationMs: float64(i), Timestamp: now})
	}

	snap := c.Snapshot(now.Add(-time.Minute), 10)
	assert.InDelta(t, 50.5, snap.RequestP50Ms, 1)
	assert.InDelta(t, 95, snap.RequestP95Ms, 1)
	assert.InDelta(t, 99, snap.RequestP99Ms, 1)
}

// TestCollector_Snapshot_FiltersBySince verifies old entries are excluded.
func TestCollector_Snapshot_FiltersBySince(t *testing.T) {
	c := NewCollector(100)
	old := time.Now().Add(-2 * time.Hour)
	recent := time.Now()

	c.Record(Entry{Kind: KindRequest, Path: "GET /old", DurationMs: 100, Timestamp: old})
	c.Record(Entry{Kind: KindRequest, Path: "GET /new", DurationMs: 10, Timestamp: recent})

	snap := c.Snapshot(time.Now().Add(-time.Hour), 10)
	require.Len(t, snap.SlowestPaths, 1)
	assert.Equal(t, "GET /new", snap.SlowestPaths[0].Path)
}

// TestCollector_TopN verifies the slowest list is truncated and ordered.
func TestCollector_TopN(t *testing.T) {
	c := NewCollector(100)
	now := time.Now()
	for i, p := range []string{"GET /a", "GET /b", "GET /c"} {
		c.Record(Entry{Kind: KindRequest, Path: p, DurationMs: float64(i + 1), Timestamp: now})
	}

	snap := c.Snapshot(now.Add(-time.Minute), 2)
	require.Len(t, snap.SlowestPaths, 2)
	assert.Equal(t, "GET /c", snap.SlowestPaths[0].Path)
	assert.Equal(t, "GET /b", snap.SlowestPaths[1].Path)
}

// TestCollector_ConcurrentWrites verifies goroutine safety of Record.
func TestCollector_ConcurrentWrites(t *testing.T) {
	c := NewCollector(1000)
	now := time.Now()
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				c.Record(Entry{Kind: KindRequest, Path: "GET /c", DurationMs: float64(n), Timestamp: now})
			}
		}(i)
	}
	wg.Wait()
	assert.Equal(t, int64(1000), c.TotalRecorded())
}

func TestEntryKind_String(t *testing.T) {
	assert.Equal(t, "request", KindRequest.String())
	assert.Equal(t, "query", KindQuery.String())
	assert.Equal(t, "upstream", KindUpstream.String())
}

// BenchmarkCollectorRecord measures per-call cost of Record().
func BenchmarkCollectorRecord(b *testing.B) {
	c := NewCollector(DefaultRingSize)
	e := Entry{Kind: KindRequest, Path: "GET /bench", StatusCode: 200, DurationMs: 1.5, Timestamp: time.Now()}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Record(e)
	}
}

// BenchmarkCollectorSnapshot measures cost of computing percentiles + top-N.
func BenchmarkCollectorSnapshot(b *testing.B) {
	c := NewCollector(DefaultRingSize)
	now := time.Now()
	for i := 0; i < DefaultRingSize; i++ {
		c.Record(Entry{Kind: KindRequest, Path: "GET /bench", StatusCode: 200, DurationMs: float64(i % 100), Timestamp: now})
	}
	since := now.Add(-time.Hour)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Snapshot(since, 10)
	}
}
