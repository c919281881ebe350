// Package news builds search queries from event and outcome text and fetches
// recency-bounded articles from the news-search provider.
package news

import (
	"fmt"
	"strings"
	"unicode"
)

// stopWords are tokens too generic to search on.
var stopWords = map[string]struct{}{
	"in": {}, "on": {}, "at": {}, "by": {}, "for": {}, "to": {}, "of": {},
	"the": {}, "a": {}, "an": {}, "will": {}, "does": {}, "is": {}, "are": {},
	"this": {}, "that": {}, "be": {}, "and": {}, "or": {},
}

// stripPunct removes everything but letters, digits, and spaces.
func stripPunct(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// OutcomeQuery builds the search string for an outcome-scoped retrieval: the
// first three title tokens longer than three characters, joined with the
// cleaned outcome name. The result may be degenerate (shorter than three
// characters); callers must skip the network call in that case.
func OutcomeQuery(eventTitle, outcomeName string) string {
	var keywords []string
	for _, w := range strings.Fields(stripPunct(eventTitle)) {
		if len(w) > 3 {
			keywords = append(keywords, w)
		}
		if len(keywords) == 3 {
			break
		}
	}
	keywords = append(keywords, strings.Fields(stripPunct(outcomeName))...)
	return strings.TrimSpace(strings.Join(keywords, " "))
}

// EventQuery builds the broader event-level search string: the top two
// non-stop-word tokens quoted and OR-joined, falling back to the quoted title
// when nothing usable remains.
func EventQuery(title string) string {
	cleaned := strings.NewReplacer("?", "", "!", "", ".", "").Replace(title)

	var keywords []string
	for _, w := range strings.Fields(cleaned) {
		if _, stop := stopWords[strings.ToLower(w)]; stop || len(w) <= 2 {
			continue
		}
		keywords = append(keywords, w)
	}

	switch {
	case len(keywords) >= 2:
		return fmt.Sprintf("%q OR %q", keywords[0], keywords[1])
	case len(keywords) == 1:
		return fmt.Sprintf("%q", keywords[0])
	default:
		return fmt.Sprintf("%q", cleaned)
	}
}
