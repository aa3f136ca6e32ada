package domain

import "time"

// SeverityCounts maps a severity label (ERROR, WARNING, INFO) to the number
// of lines classified under it. Only observed severities are present.
type SeverityCounts map[string]int

// TimeSeriesPoint is one bucket of the error/warning timeline. Time is the
// bucket label ("2006-01-02 15:04"), or "unknown" for lines without a
// parseable timestamp.
type TimeSeriesPoint struct {
	Time     string `json:"time"`
	Errors   int    `json:"errors"`
	Warnings int    `json:"warnings"`
}

// ErrorTypeCount is a named error-cause bucket and its occurrence count.
type ErrorTypeCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// LogStats is the full aggregate view of one uploaded log file.
type LogStats struct {
	Counts     SeverityCounts    `json:"counts"`
	TimeSeries []TimeSeriesPoint `json:"time_series"`
	ErrorTypes []ErrorTypeCount  `json:"error_types"`
}

// SessionStats is the compact per-upload summary handed to the chat model as
// context. Earliest/Latest are nil when no line carried a timestamp.
type SessionStats struct {
	TotalLines    int
	TotalErrors   int
	TotalWarnings int
	Earliest      *time.Time
	Latest        *time.Time
}

// UploadReport is returned to the caller after a log file is processed.
type UploadReport struct {
	TotalLines  int
	TotalChunks int
	Stats       LogStats
}
