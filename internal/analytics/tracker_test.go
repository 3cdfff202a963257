package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tauqeerkhan/portfolio/internal/storage"
)

func newTestTracker(t *testing.T, now time.Time) *Tracker {
	t.Helper()
	db, err := storage.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	tr := NewTracker(db, "test-salt", nil)
	tr.now = func() time.Time { return now }
	require.NoError(t, tr.Migrate(context.Background()))
	return tr
}

func TestHashIP_StableAndSalted(t *testing.T) {
	a := NewTracker(nil, "salt-a", nil)
	b := NewTracker(nil, "salt-b", nil)

	assert.Len(t, a.HashIP("203.0.113.7"), 16)
	assert.Equal(t, a.HashIP("203.0.113.7"), a.HashIP("203.0.113.7"))
	assert.NotEqual(t, a.HashIP("203.0.113.7"), a.HashIP("203.0.113.8"))
	assert.NotEqual(t, a.HashIP("203.0.113.7"), b.HashIP("203.0.113.7"))
}

func TestShouldTrack(t *testing.T) {
	tests := []struct {
		path string
		dnt  string
		want bool
	}{
		{"/", "", true},
		{"/sections/about", "", true},
		{"/", "1", false},
		{"/static/tour.js", "", false},
		{"/admin/dashboard", "", false},
		{"/privacy", "", false},
		{"/ws/tour", "", false},
		{"/metrics", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.path+"/"+tt.dnt, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldTrack(tt.path, tt.dnt))
		})
	}
}

func TestRecordAndStats(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	tr := newTestTracker(t, now)
	ctx := context.Background()

	require.NoError(t, tr.Record(ctx, "10.0.0.1", "curl", "/", "developer"))
	require.NoError(t, tr.Record(ctx, "10.0.0.1", "curl", "/sections/about", "developer"))
	require.NoError(t, tr.Record(ctx, "10.0.0.2", "firefox", "/", "finance"))

	tr.now = func() time.Time { return now.AddDate(0, 0, -3) }
	require.NoError(t, tr.Record(ctx, "10.0.0.3", "safari", "/", "developer"))
	tr.now = func() time.Time { return now }

	stats, err := tr.Stats(ctx)
	require.NoError(t, err)

	assert.EqualValues(t, 4, stats.TotalVisitors)
	assert.EqualValues(t, 3, stats.UniqueVisitors)
	assert.EqualValues(t, 3, stats.VisitorsToday)
	assert.EqualValues(t, 4, stats.VisitorsThisWeek)
	require.NotEmpty(t, stats.TopPaths)
	assert.Equal(t, PathStat{Path: "/", Visits: 3}, stats.TopPaths[0])
	require.Len(t, stats.RecentVisitors, 4)
	assert.Equal(t, tr.HashIP("10.0.0.2"), stats.RecentVisitors[0].HashedIP)
	assert.Equal(t, 2026, stats.RecentVisitors[0].Timestamp.Year())
}

func TestCleanup_RemovesExpiredRows(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	tr := newTestTracker(t, now.AddDate(-2, 0, 0))
	ctx := context.Background()

	require.NoError(t, tr.Record(ctx, "10.0.0.1", "curl", "/", ""))
	tr.now = func() time.Time { return now }
	require.NoError(t, tr.Record(ctx, "10.0.0.2", "curl", "/", ""))

	n, err := tr.Cleanup(ctx, 365*24*time.Hour)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	recent, err := tr.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, tr.HashIP("10.0.0.2"), recent[0].HashedIP)
}

func TestDeleteVisitor(t *testing.T) {
	tr := newTestTracker(t, time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC))
	ctx := context.Background()

	require.NoError(t, tr.Record(ctx, "10.0.0.1", "curl", "/", ""))
	require.NoError(t, tr.Record(ctx, "10.0.0.1", "curl", "/sections/skills", ""))
	require.NoError(t, tr.Record(ctx, "10.0.0.2", "curl", "/", ""))

	n, err := tr.DeleteVisitor(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	stats, err := tr.Stats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.TotalVisitors)
}

func TestRunCleanup_StopsOnCancel(t *testing.T) {
	tr := newTestTracker(t, time.Now())
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- tr.RunCleanup(ctx, time.Hour, 10*time.Millisecond) }()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("RunCleanup did not return after cancel")
	}
}
