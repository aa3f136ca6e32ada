package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/arturoeanton/go-log-analyzer-ollama/internal/domain"
	"github.com/arturoeanton/go-log-analyzer-ollama/internal/port"
	"github.com/arturoeanton/go-log-analyzer-ollama/internal/session"
)

// SummaryService produces an LLM incident report over a sample of the raw
// log lines.
type SummaryService struct {
	ai         port.AIProvider
	session    *session.Session
	sampleSize int
}

// NewSummaryService creates a new summary service. sampleSize caps how many
// leading lines are handed to the model.
func NewSummaryService(ai port.AIProvider, sess *session.Session, sampleSize int) *SummaryService {
	if sampleSize <= 0 {
		sampleSize = 300
	}
	return &SummaryService{ai: ai, session: sess, sampleSize: sampleSize}
}

// Report generates the structured summary for the live log file.
func (s *SummaryService) Report(ctx context.Context) (*domain.SummaryReport, error) {
	if !s.session.Ready() {
		return nil, port.ErrNotReady
	}

	lines := s.session.Lines()
	if len(lines) == 0 {
		return nil, port.ErrNotReady
	}
	if len(lines) > s.sampleSize {
		lines = lines[:s.sampleSize]
	}

	prompt := buildSummaryPrompt(strings.Join(lines, "\n"))
	raw, err := s.ai.Chat(ctx, summarySystemPrompt, prompt, nil)
	if err != nil {
		return nil, fmt.Errorf("summary: %w", err)
	}

	var report domain.SummaryReport
	if err := decodeModelJSON(raw, &report); err != nil {
		return nil, fmt.Errorf("decode summary response: %v: %w", err, port.ErrProviderUnavailable)
	}
	return &report, nil
}
