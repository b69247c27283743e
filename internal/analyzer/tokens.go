// Package analyzer implements the resume / job-description matching and
// feedback engine. Every operation is a pure function of its text inputs:
// no I/O, no shared mutable state, safe for concurrent use. No function in
// this package returns an error for any string input, including the empty
// string; degenerate inputs map to defined fallback values instead.
package analyzer

import (
	"regexp"
	"strings"
)

// tokenPattern matches maximal runs of ASCII letters of length >= 2.
// Single-letter runs, digits, and punctuation never become tokens.
var tokenPattern = regexp.MustCompile(`[a-zA-Z]{2,}`)

// commonStopWords is the closed set of English function words removed by
// FilterMeaningful: articles, conjunctions, prepositions, pronouns, forms
// of "to be", and wh-words.
var commonStopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {},
	"in": {}, "on": {}, "at": {}, "to": {}, "for": {}, "of": {},
	"is": {}, "was": {}, "be": {}, "are": {}, "were": {}, "been": {},
	"with": {}, "from": {}, "by": {}, "as": {}, "it": {}, "this": {},
	"that": {}, "these": {}, "those": {}, "i": {}, "you": {}, "he": {},
	"she": {}, "we": {}, "they": {}, "what": {}, "which": {}, "who": {},
	"when": {}, "where": {}, "why": {}, "how": {},
}

// Normalize lowercases text and extracts its alphabetic tokens in
// left-to-right order. Empty input yields an empty sequence.
func Normalize(text string) []string {
	return tokenPattern.FindAllString(strings.ToLower(text), -1)
}

// FilterMeaningful removes stop words and tokens of length <= 2 from a
// normalized token sequence. The length check is redundant with Normalize's
// two-letter floor but kept so the filter is safe on any input. Order is
// preserved and duplicates are kept; callers that need set semantics build
// the set themselves.
func FilterMeaningful(tokens []string) []string {
	filtered := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if _, stop := commonStopWords[tok]; stop {
			continue
		}
		if len(tok) <= 2 {
			continue
		}
		filtered = append(filtered, tok)
	}
	return filtered
}
