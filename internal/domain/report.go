package domain

// Incident is one notable issue identified by the summary model.
type Incident struct {
	Title     string `json:"title"`
	Timestamp string `json:"timestamp"`
	Severity  string `json:"severity"`
}

// SummaryReport is the structured output of the LLM summary pass.
type SummaryReport struct {
	TopIncidents       []Incident `json:"top_incidents"`
	RecommendedActions []string   `json:"recommended_actions"`
}

// ChatAnswer is the structured output of a RAG chat query. RelevantLogs
// carries the chunks the answer was grounded on.
type ChatAnswer struct {
	Answer            string   `json:"answer"`
	SuggestedFollowup []string `json:"suggested_followup"`
	RelevantLogs      []string `json:"relevant_logs"`
}
