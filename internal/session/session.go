// Package session holds the state of the single live log analysis. Exactly
// one file is live at a time; an upload replaces all prior state wholesale.
package session

import (
	"sync"
	"time"

	"github.com/arturoeanton/go-log-analyzer-ollama/internal/domain"
	"github.com/arturoeanton/go-log-analyzer-ollama/internal/index"
)

// Session owns the raw lines, chunk list, vector index and aggregate stats
// of the current upload. The mutex only guards the state swap; serializing
// uploads against queries is the calling layer's responsibility.
type Session struct {
	mu      sync.RWMutex
	lines   []string
	chunks  []string
	index   *index.Flat
	stats   domain.LogStats
	summary domain.SessionStats
}

// New returns an empty, not-ready session.
func New() *Session {
	return &Session{}
}

// Reset replaces every piece of session state with the given upload's.
// Nothing from the previous upload remains reachable afterwards.
func (s *Session) Reset(lines, chunks []string, idx *index.Flat, stats domain.LogStats, summary domain.SessionStats) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = lines
	s.chunks = chunks
	s.index = idx
	s.stats = stats
	s.summary = summary
}

// Ready reports whether a vector index exists. Callers must treat false as
// a precondition failure, not an internal error.
func (s *Session) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index != nil
}

// Lines returns the raw lines of the live file.
func (s *Session) Lines() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lines
}

// Chunks returns the ordered chunk list of the live file.
func (s *Session) Chunks() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.chunks
}

// Index returns the vector index, or nil before the first upload.
func (s *Session) Index() *index.Flat {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index
}

// Stats returns the aggregate statistics of the live file.
func (s *Session) Stats() domain.LogStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats
}

// Summary returns the compact per-upload stats handed to the chat model.
func (s *Session) Summary() domain.SessionStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.summary
}

// LatestTimestamp returns the newest timestamp observed in the live file,
// used to resolve relative date phrases in queries.
func (s *Session) LatestTimestamp() (time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.summary.Latest == nil {
		return time.Time{}, false
	}
	return *s.summary.Latest, true
}
