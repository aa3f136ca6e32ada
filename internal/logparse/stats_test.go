package logparse

import (
	"testing"
	"time"

	"github.com/arturoeanton/go-log-analyzer-ollama/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestAggregateEndToEnd(t *testing.T) {
	agg := Aggregate([]string{
		"2024-01-15 10:00:00 [ERROR] DB timeout",
		"2024-01-15 10:00:05 [INFO] ok",
	})

	require.Equal(t, domain.SeverityCounts{"ERROR": 1, "INFO": 1}, agg.Stats.Counts)
	// "DB timeout" does not contain the exact phrase "connection timed out".
	require.Equal(t, []domain.ErrorTypeCount{{Name: GenericCategory, Count: 1}}, agg.Stats.ErrorTypes)

	require.True(t, agg.HasTimestamps)
	require.Equal(t, time.Date(2024, time.January, 15, 10, 0, 0, 0, time.Local), agg.Earliest)
	require.Equal(t, time.Date(2024, time.January, 15, 10, 0, 5, 0, time.Local), agg.Latest)

	require.Len(t, agg.Stats.TimeSeries, 1)
	require.Equal(t, 1, agg.Stats.TimeSeries[0].Errors)
	require.Equal(t, 0, agg.Stats.TimeSeries[0].Warnings)
}

func TestSeverityExclusive(t *testing.T) {
	lines := []string{
		"2024-01-15 10:00:00 ERROR with a warning inside", // error wins
		"2024-01-15 10:00:01 WARNING disk almost full",
		"2024-01-15 10:00:02 all good",
		"plain line without severity",
	}
	agg := Aggregate(lines)

	total := 0
	for _, n := range agg.Stats.Counts {
		total += n
	}
	require.Equal(t, len(lines), total)
	require.Equal(t, 1, agg.Stats.Counts["ERROR"])
	require.Equal(t, 1, agg.Stats.Counts["WARNING"])
	require.Equal(t, 2, agg.Stats.Counts["INFO"])
}

func TestSkippedLinesExcluded(t *testing.T) {
	lines := []string{
		"2024-01-15 10:00:00 error one",
		"\xff\xfe garbled error bytes",
		"2024-01-15 10:00:01 fine",
	}
	agg := Aggregate(lines)

	require.Equal(t, 1, agg.Skipped)
	total := 0
	for _, n := range agg.Stats.Counts {
		total += n
	}
	require.Equal(t, len(lines)-1, total)
}

func TestErrorCategories(t *testing.T) {
	agg := Aggregate([]string{
		"2024-01-15 10:00:00 ERROR connection timed out to upstream",
		"2024-01-15 10:00:01 ERROR authentication failed for admin",
		"2024-01-15 10:00:02 ERROR invalid credentials supplied",
		"2024-01-15 10:00:03 ERROR failed to connect to database",
		"2024-01-15 10:00:04 ERROR java.lang.NullPointerException at handler",
		"2024-01-15 10:00:05 ERROR payment failed for order 17",
		"2024-01-15 10:00:06 ERROR something unclassified",
	})

	require.Equal(t, []domain.ErrorTypeCount{
		{Name: "Timeout", Count: 1},
		{Name: "Auth Fail", Count: 2},
		{Name: "DB Error", Count: 1},
		{Name: "Null Pointer", Count: 1},
		{Name: "Payment Failed", Count: 1},
		{Name: GenericCategory, Count: 1},
	}, agg.Stats.ErrorTypes)

	// Every ERROR line lands in exactly one category.
	total := 0
	for _, c := range agg.Stats.ErrorTypes {
		total += c.Count
	}
	require.Equal(t, agg.Stats.Counts["ERROR"], total)
}

func TestCategoryFirstMatchWins(t *testing.T) {
	agg := Aggregate([]string{
		"2024-01-15 10:00:00 ERROR connection timed out after authentication failed",
	})
	require.Equal(t, []domain.ErrorTypeCount{{Name: "Timeout", Count: 1}}, agg.Stats.ErrorTypes)
}

func TestBucketMinutes(t *testing.T) {
	cases := []struct {
		span time.Duration
		want int
	}{
		{time.Hour, 1},
		{2 * time.Hour, 1}, // boundary uses the smaller width
		{2*time.Hour + time.Minute, 5},
		{24 * time.Hour, 5},
		{24*time.Hour + time.Minute, 60},
		{7 * 24 * time.Hour, 60},
		{10 * 24 * time.Hour, 180},
		{14 * 24 * time.Hour, 180},
		{14*24*time.Hour + time.Minute, 720},
		{0, 1},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, BucketMinutes(tc.span), "span %v", tc.span)
	}
}

func TestUnknownBucket(t *testing.T) {
	agg := Aggregate([]string{
		"error without any timestamp",
		"warning without any timestamp",
		"2024-01-15 10:00:00 ERROR with timestamp",
	})

	var unknown *domain.TimeSeriesPoint
	for i := range agg.Stats.TimeSeries {
		if agg.Stats.TimeSeries[i].Time == UnknownBucket {
			unknown = &agg.Stats.TimeSeries[i]
		}
	}
	require.NotNil(t, unknown)
	require.Equal(t, 1, unknown.Errors)
	require.Equal(t, 1, unknown.Warnings)
}

func TestTimeSeriesSorted(t *testing.T) {
	agg := Aggregate([]string{
		"2024-01-15 11:45:00 ERROR late",
		"2024-01-15 10:05:00 ERROR early",
		"error without timestamp",
	})

	series := agg.Stats.TimeSeries
	require.Len(t, series, 3)
	for i := 1; i < len(series); i++ {
		require.LessOrEqual(t, series[i-1].Time, series[i].Time)
	}
}

func TestBucketFlooring(t *testing.T) {
	// Span over two days -> 60 minute buckets; both events floor to the hour.
	agg := Aggregate([]string{
		"2024-01-15 10:17:00 ERROR one",
		"2024-01-15 10:43:00 ERROR two",
		"2024-01-17 09:00:00 WARNING later",
	})

	require.Equal(t, "2024-01-15 10:00", agg.Stats.TimeSeries[0].Time)
	require.Equal(t, 2, agg.Stats.TimeSeries[0].Errors)
}
