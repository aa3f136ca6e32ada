package chunker

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitWindows(t *testing.T) {
	lines := []string{"l0", "l1", "l2", "l3", "l4", "l5", "l6"}
	chunks := Split(lines)

	require.Len(t, chunks, 3)
	require.Equal(t, "l0\nl1\nl2\nl3\nl4", chunks[0])
	require.Equal(t, "l3\nl4\nl5\nl6", chunks[1])
	require.Equal(t, "l6", chunks[2])
}

func TestSplitShortFile(t *testing.T) {
	chunks := Split([]string{"only", "two"})
	require.Equal(t, []string{"only\ntwo"}, chunks)
}

func TestSplitEmpty(t *testing.T) {
	require.Nil(t, Split(nil))
}

func TestSplitCoverage(t *testing.T) {
	step := Size - Overlap
	for n := 1; n <= 12; n++ {
		lines := make([]string, n)
		for i := range lines {
			lines[i] = fmt.Sprintf("line-%02d", i)
		}
		chunks := Split(lines)

		require.Len(t, chunks, (n+step-1)/step, "n=%d", n)
		for i, line := range lines {
			found := false
			for _, chunk := range chunks {
				if strings.Contains(chunk, line) {
					found = true
					break
				}
			}
			require.True(t, found, "n=%d line %d not covered", n, i)
		}
	}
}

func TestSplitAugmentsTimestampedLines(t *testing.T) {
	chunks := Split([]string{
		"2024-01-15 10:30:00 [ERROR] boom",
		"no timestamp here",
	})

	require.Len(t, chunks, 1)
	require.Contains(t, chunks[0], "| DateText: January 15, 2024 10:30:00")
	require.Contains(t, chunks[0], "no timestamp here")
	require.NotContains(t, strings.Split(chunks[0], "\n")[1], "DateText")
}
