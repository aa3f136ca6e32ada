package session

import (
	"testing"
	"time"

	"github.com/arturoeanton/go-log-analyzer-ollama/internal/domain"
	"github.com/arturoeanton/go-log-analyzer-ollama/internal/index"
	"github.com/stretchr/testify/require"
)

func TestNewSessionNotReady(t *testing.T) {
	s := New()
	require.False(t, s.Ready())
	require.Nil(t, s.Index())
	require.Empty(t, s.Chunks())

	_, ok := s.LatestTimestamp()
	require.False(t, ok)
}

func TestResetReplacesEverything(t *testing.T) {
	s := New()

	idxA, err := index.NewFlat(2)
	require.NoError(t, err)
	latestA := time.Date(2024, time.January, 15, 10, 0, 0, 0, time.Local)
	s.Reset(
		[]string{"a1", "a2"},
		[]string{"chunk-a"},
		idxA,
		domain.LogStats{Counts: domain.SeverityCounts{"ERROR": 2}},
		domain.SessionStats{TotalLines: 2, TotalErrors: 2, Latest: &latestA},
	)
	require.True(t, s.Ready())

	idxB, err := index.NewFlat(3)
	require.NoError(t, err)
	s.Reset(
		[]string{"b1"},
		[]string{"chunk-b"},
		idxB,
		domain.LogStats{Counts: domain.SeverityCounts{"INFO": 1}},
		domain.SessionStats{TotalLines: 1},
	)

	require.Equal(t, []string{"b1"}, s.Lines())
	require.Equal(t, []string{"chunk-b"}, s.Chunks())
	require.Same(t, idxB, s.Index())
	require.Equal(t, 1, s.Summary().TotalLines)
	require.Zero(t, s.Stats().Counts["ERROR"])

	_, ok := s.LatestTimestamp()
	require.False(t, ok, "previous upload's latest timestamp must not survive")
}
