package recorder

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *SQLiteRecorder {
	t.Helper()
	r, err := NewSQLiteRecorder(filepath.Join(t.TempDir(), "sub", "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { r.Close() })
	return r
}

func TestSQLiteRecorder_RecentLookups(t *testing.T) {
	r := openTemp(t)
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, r.RecordLookup(&LookupEvent{
		Timestamp: base, Symbol: "AAPL", Source: "api", OK: true,
		Points: 100, LatestClose: 187.25, Duration: 120 * time.Millisecond,
	}))
	require.NoError(t, r.RecordLookup(&LookupEvent{
		Timestamp: base.Add(time.Minute), Symbol: "ZZZZ", Source: "api",
		Status: 404, Message: "Stock symbol not found",
	}))

	got, err := r.RecentLookups(10)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "ZZZZ", got[0].Symbol)
	assert.False(t, got[0].OK)
	assert.Equal(t, 404, got[0].Status)
	assert.Equal(t, "Stock symbol not found", got[0].Message)

	assert.Equal(t, "AAPL", got[1].Symbol)
	assert.True(t, got[1].OK)
	assert.Equal(t, 100, got[1].Points)
	assert.InDelta(t, 187.25, got[1].LatestClose, 1e-9)
	assert.Equal(t, 120*time.Millisecond, got[1].Duration)
	assert.True(t, got[1].Timestamp.Equal(base))
}

func TestSQLiteRecorder_Limit(t *testing.T) {
	r := openTemp(t)
	for i := 0; i < 5; i++ {
		require.NoError(t, r.RecordLookup(&LookupEvent{Symbol: "KO", OK: true}))
	}
	got, err := r.RecentLookups(3)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestSQLiteRecorder_RecordPrediction(t *testing.T) {
	r := openTemp(t)
	require.NoError(t, r.RecordPrediction(&PredictionEvent{
		Symbol: "MSFT", Source: "local", Days: 30, PredictedClose: 411.2, OK: true,
	}))

	var n int
	require.NoError(t, r.db.QueryRow(`SELECT COUNT(*) FROM predictions WHERE symbol = 'MSFT'`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestSQLiteRecorder_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	r, err := NewSQLiteRecorder(path)
	require.NoError(t, err)
	require.NoError(t, r.RecordLookup(&LookupEvent{Symbol: "NVDA", OK: true}))
	require.NoError(t, r.Close())

	r, err = NewSQLiteRecorder(path)
	require.NoError(t, err)
	defer r.Close()
	got, err := r.RecentLookups(0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "NVDA", got[0].Symbol)
}

func TestNoopRecorder(t *testing.T) {
	var r Recorder = NewNoopRecorder()
	assert.NoError(t, r.RecordLookup(&LookupEvent{}))
	got, err := r.RecentLookups(5)
	assert.NoError(t, err)
	assert.Empty(t, got)
}
