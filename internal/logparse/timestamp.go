// Package logparse turns raw log lines into timestamps, severity labels and
// aggregate statistics. It only understands the single leading
// "YYYY-MM-DD HH:MM:SS" timestamp convention.
package logparse

import (
	"regexp"
	"time"
)

const (
	timestampLayout = "2006-01-02 15:04:05"
	dateTextLayout  = "January 02, 2006 15:04:05"
)

// Anchored at the start of the line; timestamps appearing mid-line are not
// recognized.
var timestampPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}`)

// ExtractTimestamp parses the timestamp prefix of a line. Strings that match
// the shape but are not valid calendar dates (month 13, day 32) report
// absent rather than an error.
func ExtractTimestamp(line string) (time.Time, bool) {
	m := timestampPattern.FindString(line)
	if m == "" {
		return time.Time{}, false
	}
	ts, err := time.ParseInLocation(timestampLayout, m, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

// AugmentLine appends a human-readable restatement of the line's timestamp,
// so chunk text contains both machine and human date renderings. Lines
// without a timestamp are returned unchanged.
func AugmentLine(line string) string {
	ts, ok := ExtractTimestamp(line)
	if !ok {
		return line
	}
	return line + " | DateText: " + ts.Format(dateTextLayout)
}
