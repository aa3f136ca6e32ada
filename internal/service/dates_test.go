package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func latestAt(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.Local)
}

func TestQueryVariantsForExplicitDate(t *testing.T) {
	variants := generateQueryVariants("errors on the 3rd of january", latestAt(2024, time.June, 1), true)

	require.Contains(t, variants, "errors on the 3rd of january")
	require.Contains(t, variants, "errors on the 3 of january")
	require.Contains(t, variants, "january 3")
	require.Contains(t, variants, "3 january")
	require.Contains(t, variants, "january 03")
	require.Contains(t, variants, "january 3, 2024")
	require.Contains(t, variants, "january 3 2024")
}

func TestQueryVariantsCommaRemoval(t *testing.T) {
	variants := generateQueryVariants("what happened on January 15, 2023", latestAt(2024, time.June, 1), true)

	require.Contains(t, variants, "what happened on january 15 2023")
	require.Contains(t, variants, "january 15, 2023")
	require.Contains(t, variants, "15 january")
}

func TestQueryVariantsRelativePhrase(t *testing.T) {
	latest := latestAt(2024, time.February, 10)
	variants := generateQueryVariants("show failures from the last 24 hours", latest, true)

	require.Contains(t, variants, "february 10")
	require.Contains(t, variants, "february 9")
	require.Contains(t, variants, "10 february")
}

func TestQueryVariantsPastDayPhrase(t *testing.T) {
	latest := latestAt(2024, time.March, 1)
	variants := generateQueryVariants("anything unusual in the past day?", latest, true)

	require.Contains(t, variants, "march 1")
	require.Contains(t, variants, "february 29") // 2024 is a leap year
}

func TestQueryVariantsNoDateAnchor(t *testing.T) {
	variants := generateQueryVariants("why did the payments fail", latestAt(2024, time.June, 1), true)
	require.ElementsMatch(t, []string{"why did the payments fail"}, variants)
}

func TestQueryVariantsMonthWithoutDay(t *testing.T) {
	// No day number near the month name: date variants are omitted and the
	// resolver proceeds with plain substring matching.
	variants := generateQueryVariants("anything odd in january", latestAt(2024, time.June, 1), true)
	require.ElementsMatch(t, []string{"anything odd in january"}, variants)
}

func TestQueryVariantsImpossibleDate(t *testing.T) {
	variants := generateQueryVariants("errors on february 30", latestAt(2024, time.June, 1), true)
	require.NotContains(t, variants, "february 30, 2024")
	require.NotContains(t, variants, "march 1")
}

func TestQueryVariantsRelativeWithoutLatest(t *testing.T) {
	variants := generateQueryVariants("errors in the last 24 hours", time.Time{}, false)
	require.ElementsMatch(t, []string{"errors in the last 24 hours"}, variants)
}

func TestContentKeywords(t *testing.T) {
	keywords := contentKeywords("what were the payment errors on the 3rd of january")
	require.ElementsMatch(t, []string{"payment", "errors"}, keywords)
}

func TestContentKeywordsAllFiltered(t *testing.T) {
	require.Empty(t, contentKeywords("what is on the 3rd of january"))
}
