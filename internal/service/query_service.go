package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/arturoeanton/go-log-analyzer-ollama/internal/domain"
	"github.com/arturoeanton/go-log-analyzer-ollama/internal/port"
	"github.com/arturoeanton/go-log-analyzer-ollama/internal/session"
)

// retrieveLimit caps how many chunks either retrieval stage returns.
const retrieveLimit = 3

// QueryService resolves free-text questions against the live log session:
// deterministic date-aware keyword matching first, vector similarity as the
// fallback, then a chat completion grounded in the retrieved excerpts.
type QueryService struct {
	ai      port.AIProvider
	session *session.Session
}

// NewQueryService creates a new query service.
func NewQueryService(ai port.AIProvider, sess *session.Session) *QueryService {
	return &QueryService{ai: ai, session: sess}
}

// SearchRelevantChunks returns up to retrieveLimit chunks for the query.
// Keyword matches win outright; the embedding provider is only consulted
// when no chunk matches. An unbuilt index yields an empty result.
func (s *QueryService) SearchRelevantChunks(ctx context.Context, query string) ([]string, error) {
	idx := s.session.Index()
	if idx == nil {
		return nil, nil
	}

	chunks := s.session.Chunks()
	latest, hasLatest := s.session.LatestTimestamp()

	if matches := keywordSearch(query, chunks, latest, hasLatest, retrieveLimit); len(matches) > 0 {
		slog.Info("keyword search hit", "query", query, "matches", len(matches))
		return matches, nil
	}

	vector, err := s.ai.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	results, err := idx.Search(vector, retrieveLimit)
	if err != nil {
		return nil, fmt.Errorf("vector search: %w", err)
	}

	relevant := make([]string, 0, len(results))
	for _, r := range results {
		relevant = append(relevant, chunks[r.Index])
	}
	slog.Info("vector search fallback", "query", query, "matches", len(relevant))
	return relevant, nil
}

// keywordSearch scans chunks in storage order and keeps the first limit
// chunks that contain at least one query variant and every content keyword.
// Not a ranked top-k: first found in order wins.
func keywordSearch(query string, chunks []string, latest time.Time, hasLatest bool, limit int) []string {
	variants := generateQueryVariants(query, latest, hasLatest)
	keywords := contentKeywords(query)

	var matches []string
	for _, chunk := range chunks {
		lowered := strings.ToLower(chunk)

		if !containsAny(lowered, variants) {
			continue
		}
		if !containsAll(lowered, keywords) {
			continue
		}

		matches = append(matches, chunk)
		if len(matches) >= limit {
			break
		}
	}
	return matches
}

func containsAny(text string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(text, n) {
			return true
		}
	}
	return false
}

func containsAll(text string, needles []string) bool {
	for _, n := range needles {
		if !strings.Contains(text, n) {
			return false
		}
	}
	return true
}

// Chat answers a query using the retrieved excerpts and the session's
// aggregate stats, expecting structured JSON back from the chat model.
func (s *QueryService) Chat(ctx context.Context, query string) (*domain.ChatAnswer, error) {
	if !s.session.Ready() {
		return nil, port.ErrNotReady
	}

	relevant, err := s.SearchRelevantChunks(ctx, query)
	if err != nil {
		return nil, err
	}

	prompt := buildChatPrompt(query, s.session.Summary())
	raw, err := s.ai.Chat(ctx, chatSystemPrompt, prompt, relevant)
	if err != nil {
		return nil, fmt.Errorf("chat: %w", err)
	}

	var answer domain.ChatAnswer
	if err := decodeModelJSON(raw, &answer); err != nil {
		return nil, fmt.Errorf("decode chat response: %v: %w", err, port.ErrProviderUnavailable)
	}
	answer.RelevantLogs = relevant
	return &answer, nil
}

// ChatStream streams a free-form answer for the query. The streamed variant
// skips the JSON contract; it is meant for interactive display.
func (s *QueryService) ChatStream(ctx context.Context, query string) (<-chan string, error) {
	if !s.session.Ready() {
		return nil, port.ErrNotReady
	}

	relevant, err := s.SearchRelevantChunks(ctx, query)
	if err != nil {
		return nil, err
	}

	prompt := buildStreamPrompt(query, s.session.Summary())
	stream, err := s.ai.ChatStream(ctx, chatSystemPrompt, prompt, relevant)
	if err != nil {
		return nil, fmt.Errorf("chat stream: %w", err)
	}
	return stream, nil
}
