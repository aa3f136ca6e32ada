package logparse

import (
	"regexp"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/arturoeanton/go-log-analyzer-ollama/internal/domain"
)

const (
	// UnknownBucket collects error/warning lines without a parseable
	// timestamp. It still appears in the sorted output series.
	UnknownBucket = "unknown"

	// GenericCategory is assigned to ERROR lines matching no known pattern.
	GenericCategory = "Generic Error"

	bucketLabelLayout = "2006-01-02 15:04"
)

// severityRules are evaluated in order; the first matching substring wins.
// Lines matching none are INFO.
var severityRules = []struct {
	needle string
	label  string
}{
	{"error", "ERROR"},
	{"warning", "WARNING"},
}

// categoryRules are evaluated in order against the lowercased line; the
// first matching pattern wins.
var categoryRules = []struct {
	name    string
	pattern *regexp.Regexp
}{
	{"Timeout", regexp.MustCompile(`connection timed out`)},
	{"Auth Fail", regexp.MustCompile(`authentication failed|invalid credentials`)},
	{"DB Error", regexp.MustCompile(`failed to connect to database|database connection`)},
	{"Null Pointer", regexp.MustCompile(`nullpointerexception`)},
	{"Payment Failed", regexp.MustCompile(`payment failed`)},
}

// categoryOrder fixes the output order of error-type counts.
var categoryOrder = []string{
	"Timeout", "Auth Fail", "DB Error", "Null Pointer", "Payment Failed", GenericCategory,
}

func classifySeverity(lower string) string {
	for _, r := range severityRules {
		if strings.Contains(lower, r.needle) {
			return r.label
		}
	}
	return "INFO"
}

func classifyCategory(lower string) string {
	for _, r := range categoryRules {
		if r.pattern.MatchString(lower) {
			return r.name
		}
	}
	return GenericCategory
}

// BucketMinutes picks the time-series bucket width for a file spanning the
// given duration: the smallest width that keeps the series compact.
// Boundary spans use the smaller width.
func BucketMinutes(span time.Duration) int {
	switch {
	case span <= 2*time.Hour:
		return 1
	case span <= 24*time.Hour:
		return 5
	case span <= 7*24*time.Hour:
		return 60
	case span <= 14*24*time.Hour:
		return 180
	default:
		return 720
	}
}

func floorToBucket(ts time.Time, minutes int) time.Time {
	bucketSeconds := int64(minutes) * 60
	return time.Unix(ts.Unix()/bucketSeconds*bucketSeconds, 0)
}

// Aggregation is the result of one statistics pass over a log file.
type Aggregation struct {
	Stats         domain.LogStats
	Earliest      time.Time
	Latest        time.Time
	HasTimestamps bool
	Skipped       int
}

type seriesCell struct {
	errors   int
	warnings int
}

// Aggregate classifies every line into a severity bucket, extracts error
// categories, and builds the adaptively bucketed error/warning time series.
// Lines that are not valid UTF-8 are skipped and excluded from every bucket.
func Aggregate(lines []string) Aggregation {
	agg := Aggregation{
		Stats: domain.LogStats{Counts: domain.SeverityCounts{}},
	}

	type event struct {
		ts      time.Time
		warning bool
	}
	var events []event
	series := map[string]*seriesCell{}
	categories := map[string]int{}

	cell := func(label string) *seriesCell {
		c, ok := series[label]
		if !ok {
			c = &seriesCell{}
			series[label] = c
		}
		return c
	}

	for _, line := range lines {
		if !utf8.ValidString(line) {
			agg.Skipped++
			continue
		}

		ts, hasTS := ExtractTimestamp(line)
		if hasTS {
			if !agg.HasTimestamps || ts.Before(agg.Earliest) {
				agg.Earliest = ts
			}
			if !agg.HasTimestamps || ts.After(agg.Latest) {
				agg.Latest = ts
			}
			agg.HasTimestamps = true
		}

		lower := strings.ToLower(line)
		severity := classifySeverity(lower)
		agg.Stats.Counts[severity]++

		switch severity {
		case "ERROR":
			if hasTS {
				events = append(events, event{ts: ts})
			} else {
				cell(UnknownBucket).errors++
			}
			categories[classifyCategory(lower)]++
		case "WARNING":
			if hasTS {
				events = append(events, event{ts: ts, warning: true})
			} else {
				cell(UnknownBucket).warnings++
			}
		}
	}

	if len(events) > 0 {
		width := BucketMinutes(agg.Latest.Sub(agg.Earliest))
		for _, ev := range events {
			label := floorToBucket(ev.ts, width).Format(bucketLabelLayout)
			if ev.warning {
				cell(label).warnings++
			} else {
				cell(label).errors++
			}
		}
	}

	labels := make([]string, 0, len(series))
	for label := range series {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	for _, label := range labels {
		c := series[label]
		agg.Stats.TimeSeries = append(agg.Stats.TimeSeries, domain.TimeSeriesPoint{
			Time:     label,
			Errors:   c.errors,
			Warnings: c.warnings,
		})
	}

	for _, name := range categoryOrder {
		if n := categories[name]; n > 0 {
			agg.Stats.ErrorTypes = append(agg.Stats.ErrorTypes, domain.ErrorTypeCount{Name: name, Count: n})
		}
	}

	return agg
}
