// Package chunker splits a log file into overlapping windows of consecutive
// lines, the retrieval unit for both keyword and vector search.
package chunker

import (
	"strings"

	"github.com/arturoeanton/go-log-analyzer-ollama/internal/logparse"
)

const (
	// Size is the number of lines per chunk.
	Size = 5
	// Overlap is how many lines consecutive chunks share.
	Overlap = 2
)

// Split builds the ordered chunk list for the given raw lines. Each line is
// first augmented with a human-readable date restatement, then a window of
// Size lines slides forward by Size-Overlap until every line is covered. The
// final chunk may be shorter than Size.
func Split(lines []string) []string {
	if len(lines) == 0 {
		return nil
	}

	augmented := make([]string, len(lines))
	for i, line := range lines {
		augmented[i] = logparse.AugmentLine(line)
	}

	step := Size - Overlap
	var chunks []string
	for i := 0; i < len(augmented); i += step {
		end := i + Size
		if end > len(augmented) {
			end = len(augmented)
		}
		chunks = append(chunks, strings.Join(augmented[i:end], "\n"))
	}
	return chunks
}
