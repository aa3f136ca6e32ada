package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/arturoeanton/go-log-analyzer-ollama/internal/chunker"
	"github.com/arturoeanton/go-log-analyzer-ollama/internal/domain"
	"github.com/arturoeanton/go-log-analyzer-ollama/internal/index"
	"github.com/arturoeanton/go-log-analyzer-ollama/internal/logparse"
	"github.com/arturoeanton/go-log-analyzer-ollama/internal/port"
	"github.com/arturoeanton/go-log-analyzer-ollama/internal/session"
)

// AnalyzeService runs the full upload pipeline: chunk, embed, index, stats.
type AnalyzeService struct {
	ai      port.AIProvider
	session *session.Session
}

// NewAnalyzeService creates a new analyze service.
func NewAnalyzeService(ai port.AIProvider, sess *session.Session) *AnalyzeService {
	return &AnalyzeService{ai: ai, session: sess}
}

// ProcessLogFile replaces the live session with an analysis of the given
// lines. All indexing work happens synchronously inside this call; nothing
// of the previous upload survives it.
func (s *AnalyzeService) ProcessLogFile(ctx context.Context, lines []string) (*domain.UploadReport, error) {
	if len(lines) == 0 {
		return nil, port.ErrEmptyLogFile
	}

	slog.Info("processing log file", "lines", len(lines))

	agg := logparse.Aggregate(lines)
	chunks := chunker.Split(lines)

	vectors, err := s.ai.EmbedBatch(ctx, chunks)
	if err != nil {
		return nil, fmt.Errorf("embed chunks: %w", err)
	}
	if len(vectors) != len(chunks) || len(vectors) == 0 {
		return nil, fmt.Errorf("embed chunks: got %d vectors for %d chunks: %w",
			len(vectors), len(chunks), port.ErrProviderUnavailable)
	}

	// The embedding dimension is provider-defined, discovered here.
	idx, err := index.NewFlat(len(vectors[0]))
	if err != nil {
		return nil, fmt.Errorf("create index: %w", err)
	}
	if err := idx.Add(vectors); err != nil {
		return nil, fmt.Errorf("index vectors: %w", err)
	}

	summary := domain.SessionStats{
		TotalLines:    len(lines),
		TotalErrors:   agg.Stats.Counts["ERROR"],
		TotalWarnings: agg.Stats.Counts["WARNING"],
	}
	if agg.HasTimestamps {
		earliest, latest := agg.Earliest, agg.Latest
		summary.Earliest = &earliest
		summary.Latest = &latest
	}

	s.session.Reset(lines, chunks, idx, agg.Stats, summary)

	slog.Info("log file analyzed",
		"lines", len(lines),
		"chunks", len(chunks),
		"dimension", idx.Dimension(),
		"skipped", agg.Skipped,
	)

	return &domain.UploadReport{
		TotalLines:  len(lines),
		TotalChunks: len(chunks),
		Stats:       agg.Stats,
	}, nil
}
