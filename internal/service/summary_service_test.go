package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/arturoeanton/go-log-analyzer-ollama/internal/port"
	"github.com/arturoeanton/go-log-analyzer-ollama/internal/session"
	"github.com/stretchr/testify/require"
)

func TestSummaryNotReady(t *testing.T) {
	svc := NewSummaryService(&fakeAI{}, session.New(), 300)
	_, err := svc.Report(context.Background())
	require.ErrorIs(t, err, port.ErrNotReady)
}

func TestSummaryReport(t *testing.T) {
	sess := sessionWith(t, []string{
		"2024-01-15 10:00:00 ERROR failed to connect to database",
		"2024-01-15 10:00:01 INFO retrying",
	})
	ai := &fakeAI{
		chatResponse: `{"top_incidents": [{"title": "DB outage", "timestamp": "2024-01-15 10:00:00", "severity": "ERROR"}], "recommended_actions": ["Check the database host"]}`,
	}
	svc := NewSummaryService(ai, sess, 300)

	report, err := svc.Report(context.Background())
	require.NoError(t, err)
	require.Len(t, report.TopIncidents, 1)
	require.Equal(t, "DB outage", report.TopIncidents[0].Title)
	require.Equal(t, []string{"Check the database host"}, report.RecommendedActions)
	require.Equal(t, 1, ai.chatCalls)
}

func TestSummarySampleCap(t *testing.T) {
	var lines []string
	for i := 0; i < 20; i++ {
		lines = append(lines, fmt.Sprintf("2024-01-15 10:00:%02d INFO line %d", i%60, i))
	}
	sess := sessionWith(t, lines)

	// Capture the prompt through a provider that records it.
	rec := &recordingAI{fakeAI: fakeAI{chatResponse: `{"top_incidents": [], "recommended_actions": []}`}}
	svc := NewSummaryService(rec, sess, 5)

	_, err := svc.Report(context.Background())
	require.NoError(t, err)
	require.Contains(t, rec.lastPrompt, "line 4")
	require.NotContains(t, rec.lastPrompt, "line 5\n")
}

type recordingAI struct {
	fakeAI
	lastPrompt string
}

func (r *recordingAI) Chat(ctx context.Context, system, user string, chunks []string) (string, error) {
	r.lastPrompt = user
	return r.fakeAI.Chat(ctx, system, user, chunks)
}
