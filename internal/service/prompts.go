package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/arturoeanton/go-log-analyzer-ollama/internal/domain"
)

const chatSystemPrompt = `You are a helpful AI assistant for analyzing logs. Answer the user's query based only on the provided file summary and log excerpts.`

const summarySystemPrompt = `You are a senior DevOps engineer analyzing production log files.`

// buildChatPrompt renders the session stats plus the JSON answer contract.
// Retrieved excerpts travel separately as context chunks.
func buildChatPrompt(query string, stats domain.SessionStats) string {
	return fmt.Sprintf(`**FILE SUMMARY CONTEXT:**
- Total Lines: %d
- Total Errors: %d
- Total Warnings: %d

**INSTRUCTION:**
Based on the file summary and the log excerpts, answer the user's query.
Your response MUST be in JSON format with the following keys:
1. `+"`answer`"+`: A clear, direct answer to the user's query. If you cannot answer from the context, state that clearly.
2. `+"`suggested_followup`"+`: A list of 2-3 relevant follow-up questions the user might want to ask. If there are no good suggestions, return an empty list.
Your answer should be based *only* on the provided context.

**User Query:** %s

**OUTPUT FORMAT (JSON only):**
{
  "answer": "Your direct answer here.",
  "suggested_followup": ["A follow-up question?", "Another one?"]
}`, stats.TotalLines, stats.TotalErrors, stats.TotalWarnings, query)
}

// buildStreamPrompt is the free-form counterpart used for streaming answers.
func buildStreamPrompt(query string, stats domain.SessionStats) string {
	return fmt.Sprintf(`**FILE SUMMARY CONTEXT:**
- Total Lines: %d
- Total Errors: %d
- Total Warnings: %d

Based on the file summary and the log excerpts, answer the user's query in plain text.

**User Query:** %s`, stats.TotalLines, stats.TotalErrors, stats.TotalWarnings, query)
}

// buildSummaryPrompt asks for the structured incident report over a raw
// log sample.
func buildSummaryPrompt(sample string) string {
	return fmt.Sprintf(`**INSTRUCTION:**
Analyze the following sample of a log file and generate a summary report in JSON format.
The report must include two keys:
1. `+"`top_incidents`"+`: A list of the 3-5 most critical or frequent issues found in the logs. Each item in the list should be a JSON object with keys `+"`title`, `timestamp`, and `severity`"+`.
2. `+"`recommended_actions`"+`: A list of 3-5 concrete, actionable steps to address the identified issues. Each item should be a string.

**LOG FILE SAMPLE:**
---
%s
---

**OUTPUT FORMAT (JSON only):**
{
  "top_incidents": [
    {"title": "Example: Database connection timeout", "timestamp": "YYYY-MM-DD HH:MM:SS", "severity": "ERROR"}
  ],
  "recommended_actions": [
    "Example: Increase the database connection pool size."
  ]
}`, sample)
}

// decodeModelJSON unwraps an optional markdown code fence around the model's
// JSON output and decodes it into v.
func decodeModelJSON(raw string, v any) error {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return json.Unmarshal([]byte(strings.TrimSpace(s)), v)
}
