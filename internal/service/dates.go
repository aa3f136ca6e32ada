package service

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Date handling for stage-1 retrieval. Chunk text embeds dates as
// "January 02, 2006 ..." (see logparse.AugmentLine), so queries mentioning a
// date are widened into the same renderings before substring matching.

var monthsByName = map[string]time.Month{
	"january": time.January, "february": time.February, "march": time.March,
	"april": time.April, "may": time.May, "june": time.June, "july": time.July,
	"august": time.August, "september": time.September, "october": time.October,
	"november": time.November, "december": time.December,
}

var (
	ordinalPattern = regexp.MustCompile(`\b(\d+)(st|nd|rd|th)\b`)
	monthPattern   = regexp.MustCompile(`\b(january|february|march|april|may|june|july|august|september|october|november|december)\b`)
	dayPattern     = regexp.MustCompile(`\b(\d{1,2})\b`)
	yearPattern    = regexp.MustCompile(`\b(\d{4})\b`)

	last24Pattern  = regexp.MustCompile(`(last|past)\s+24\s+hours`)
	lastDayPattern = regexp.MustCompile(`(last|past)\s+day`)
)

// generateQueryVariants produces the lowercase strings whose presence in a
// chunk counts as a date/keyword anchor: the query itself, normalized forms,
// and date-text renderings of any date the query mentions. Relative phrases
// resolve against the latest observed log timestamp.
func generateQueryVariants(query string, latest time.Time, hasLatest bool) []string {
	base := strings.ToLower(strings.TrimSpace(query))
	variants := map[string]struct{}{}
	if base != "" {
		variants[base] = struct{}{}
	}

	cleaned := ordinalPattern.ReplaceAllString(base, "$1")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned != "" {
		variants[cleaned] = struct{}{}
	}

	if dt, ok := parseQueryDate(cleaned, latest, hasLatest); ok {
		addDateVariants(dt, variants)
	}

	if hasLatest {
		if last24Pattern.MatchString(base) {
			addDateVariants(latest, variants)
			addDateVariants(latest.Add(-24*time.Hour), variants)
		}
		if lastDayPattern.MatchString(base) {
			addDateVariants(latest, variants)
			addDateVariants(latest.AddDate(0, 0, -1), variants)
		}
	}

	out := make([]string, 0, len(variants))
	for v := range variants {
		out = append(out, v)
	}
	return out
}

// parseQueryDate finds a full-word month name and a nearby day number
// (and optional year) in the cleaned query. The year defaults to the latest
// log timestamp's year. Queries whose date-like text cannot be resolved into
// a real calendar date simply yield no date variants.
func parseQueryDate(cleaned string, latest time.Time, hasLatest bool) (time.Time, bool) {
	loc := monthPattern.FindStringIndex(cleaned)
	if loc == nil {
		return time.Time{}, false
	}
	month := monthsByName[cleaned[loc[0]:loc[1]]]

	// Only text near the month name participates, mirroring how people
	// write dates ("on the 3rd of january", "january 15 2024").
	start := loc[0] - 15
	if start < 0 {
		start = 0
	}
	end := loc[1] + 15
	if end > len(cleaned) {
		end = len(cleaned)
	}
	window := cleaned[start:end]

	day := 0
	for _, m := range dayPattern.FindAllString(window, -1) {
		n, err := strconv.Atoi(m)
		if err == nil && n >= 1 && n <= 31 {
			day = n
			break
		}
	}
	if day == 0 {
		return time.Time{}, false
	}

	year := 0
	if m := yearPattern.FindString(window); m != "" {
		year, _ = strconv.Atoi(m)
	}
	if year == 0 {
		if hasLatest {
			year = latest.Year()
		} else {
			year = time.Now().Year()
		}
	}

	dt := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
	if dt.Day() != day || dt.Month() != month {
		// Normalized away (e.g. february 30): not a real date.
		return time.Time{}, false
	}
	return dt, true
}

// addDateVariants adds the renderings the chunker embeds into chunk text,
// with both zero-padded and unpadded day numbers.
func addDateVariants(dt time.Time, variants map[string]struct{}) {
	month := strings.ToLower(dt.Month().String())
	year := strconv.Itoa(dt.Year())

	days := []string{fmt.Sprintf("%02d", dt.Day())}
	if unpadded := strconv.Itoa(dt.Day()); unpadded != days[0] {
		days = append(days, unpadded)
	}

	for _, day := range days {
		variants[month+" "+day] = struct{}{}
		variants[day+" "+month] = struct{}{}
		variants[month+" "+day+", "+year] = struct{}{}
		variants[month+" "+day+" "+year] = struct{}{}
	}
}

// stopwords are query words that carry no content.
var stopwords = map[string]struct{}{
	"what": {}, "is": {}, "teh": {}, "the": {}, "on": {}, "in": {},
	"from": {}, "observed": {}, "most": {}, "common": {}, "a": {},
	"were": {}, "of": {}, "find": {}, "all": {},
}

// dateVocabulary covers words consumed by date-variant generation; they are
// not content keywords.
var dateVocabulary = func() map[string]struct{} {
	words := map[string]struct{}{
		"last": {}, "past": {}, "hours": {}, "day": {},
	}
	for name := range monthsByName {
		words[name] = struct{}{}
	}
	for d := 1; d <= 31; d++ {
		n := strconv.Itoa(d)
		words[n] = struct{}{}
		for _, suffix := range []string{"st", "nd", "rd", "th"} {
			words[n+suffix] = struct{}{}
		}
	}
	return words
}()

// contentKeywords returns the query's words minus stopwords and date
// vocabulary. A matching chunk must contain every one of them.
func contentKeywords(query string) []string {
	seen := map[string]struct{}{}
	var keywords []string
	for _, word := range strings.Fields(strings.ToLower(query)) {
		if _, ok := stopwords[word]; ok {
			continue
		}
		if _, ok := dateVocabulary[word]; ok {
			continue
		}
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}
		keywords = append(keywords, word)
	}
	return keywords
}
