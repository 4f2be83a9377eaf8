package daily

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(MemoryDSN)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestMigrateIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, Migrate(s.db))

	var n int
	require.NoError(t, s.db.QueryRow(`SELECT COUNT(1) FROM _migrations`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestSummary(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	sum, err := s.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, Summary{}, sum)

	rows := []Result{
		{SessionID: "a", Date: "2025-08-21", Difficulty: "medium", Mode: "vs_computer", Attempts: 6, Seconds: 80, Won: true},
		{SessionID: "b", Date: "2025-08-21", Difficulty: "easy", Mode: "vs_computer", Attempts: 10, Seconds: 200},
		{SessionID: "c", Date: "2025-08-22", Difficulty: "hard_repeats", Mode: "vs_human", Attempts: 4, Seconds: 120, Won: true},
	}
	for _, r := range rows {
		require.NoError(t, s.InsertResult(ctx, r))
	}
	// duplicate session ids are ignored
	require.NoError(t, s.InsertResult(ctx, rows[0]))

	sum, err = s.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, Summary{Played: 3, Won: 2, BestAttempts: 4, BestSeconds: 80}, sum)
}

func TestDailyLeaderboard(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	date := "2025-08-21"

	played, err := s.AlreadyPlayed(ctx, date)
	require.NoError(t, err)
	assert.False(t, played)

	for _, r := range []Result{
		{SessionID: "slow", Date: date, Daily: true, Attempts: 3, Seconds: 300, Won: true},
		{SessionID: "fast", Date: date, Daily: true, Attempts: 7, Seconds: 60, Won: true},
		{SessionID: "tie", Date: date, Daily: true, Attempts: 5, Seconds: 60, Won: true},
		{SessionID: "lost", Date: date, Daily: true, Attempts: 10, Seconds: 10},
		{SessionID: "casual", Date: date, Attempts: 1, Seconds: 1, Won: true},
		{SessionID: "yesterday", Date: "2025-08-20", Daily: true, Attempts: 1, Seconds: 1, Won: true},
	} {
		require.NoError(t, s.InsertResult(ctx, r))
	}

	played, err = s.AlreadyPlayed(ctx, date)
	require.NoError(t, err)
	assert.True(t, played)

	lb, err := s.Leaderboard(ctx, date, 0)
	require.NoError(t, err)
	require.Len(t, lb, 3)
	assert.Equal(t, "tie", lb[0].SessionID)
	assert.Equal(t, "fast", lb[1].SessionID)
	assert.Equal(t, "slow", lb[2].SessionID)

	lb, err = s.Leaderboard(ctx, date, 1)
	require.NoError(t, err)
	assert.Len(t, lb, 1)
}

func TestOpenCreatesDirectory(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "data", "results.db")
	s, err := NewStore(dsn)
	require.NoError(t, err)
	require.NoError(t, s.Close())
	assert.FileExists(t, dsn)
}
