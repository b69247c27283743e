package analyzer

import (
	"math"
	"strings"
)

// vectorizerStopWords is the English stop word list used for TF-IDF
// vectorization. It is deliberately independent of commonStopWords: the
// vectorizer mirrors the stock English list of the original scoring model
// rather than the engine's own keyword filter.
var vectorizerStopWords = map[string]struct{}{
	"a": {}, "about": {}, "above": {}, "after": {}, "again": {}, "against": {},
	"all": {}, "am": {}, "an": {}, "and": {}, "any": {}, "are": {}, "as": {},
	"at": {}, "be": {}, "because": {}, "been": {}, "before": {}, "being": {},
	"below": {}, "between": {}, "both": {}, "but": {}, "by": {}, "can": {},
	"could": {}, "did": {}, "do": {}, "does": {}, "doing": {}, "down": {},
	"during": {}, "each": {}, "few": {}, "for": {}, "from": {}, "further": {},
	"had": {}, "has": {}, "have": {}, "having": {}, "he": {}, "her": {},
	"here": {}, "hers": {}, "him": {}, "his": {}, "how": {}, "i": {}, "if": {},
	"in": {}, "into": {}, "is": {}, "it": {}, "its": {}, "itself": {},
	"just": {}, "me": {}, "more": {}, "most": {}, "my": {}, "myself": {},
	"no": {}, "nor": {}, "not": {}, "now": {}, "of": {}, "off": {}, "on": {},
	"once": {}, "only": {}, "or": {}, "other": {}, "our": {}, "ours": {},
	"out": {}, "over": {}, "own": {}, "same": {}, "she": {}, "should": {},
	"so": {}, "some": {}, "such": {}, "than": {}, "that": {}, "the": {},
	"their": {}, "theirs": {}, "them": {}, "then": {}, "there": {},
	"these": {}, "they": {}, "this": {}, "those": {}, "through": {}, "to": {},
	"too": {}, "under": {}, "until": {}, "up": {}, "very": {}, "was": {},
	"we": {}, "were": {}, "what": {}, "when": {}, "where": {}, "which": {},
	"while": {}, "who": {}, "whom": {}, "why": {}, "will": {}, "with": {},
	"you": {}, "your": {}, "yours": {}, "yourself": {},
}

// Similarity scores the alignment of the two documents on a 0-100 scale
// using cosine similarity over TF-IDF vectors. The corpus for IDF weighting
// is exactly the document pair, so document frequency of a term is 1 or 2.
// Empty or whitespace-only input, or a vocabulary emptied by stop word
// removal, yields 0.0 rather than an error.
func Similarity(resumeText, jobText string) float64 {
	if strings.TrimSpace(resumeText) == "" || strings.TrimSpace(jobText) == "" {
		return 0.0
	}

	resumeCounts := termCounts(resumeText)
	jobCounts := termCounts(jobText)
	if len(resumeCounts) == 0 || len(jobCounts) == 0 {
		// No usable vocabulary after stop word removal. Defined fallback,
		// not a failure.
		return 0.0
	}

	idf := pairIDF(resumeCounts, jobCounts)
	resumeVec := tfidfVector(resumeCounts, idf)
	jobVec := tfidfVector(jobCounts, idf)

	cos := cosine(resumeVec, jobVec)
	return math.Round(cos*100*100) / 100
}

// termCounts tokenizes one document and counts its non-stop-word terms.
func termCounts(text string) map[string]int {
	counts := make(map[string]int)
	for _, tok := range Normalize(text) {
		if _, stop := vectorizerStopWords[tok]; stop {
			continue
		}
		counts[tok]++
	}
	return counts
}

// pairIDF computes smoothed inverse document frequencies for the
// two-document corpus: idf = ln((1+n)/(1+df)) + 1 with n = 2.
func pairIDF(a, b map[string]int) map[string]float64 {
	idf := make(map[string]float64, len(a)+len(b))
	for term := range a {
		df := 1.0
		if _, ok := b[term]; ok {
			df = 2.0
		}
		idf[term] = math.Log(3.0/(1.0+df)) + 1.0
	}
	for term := range b {
		if _, ok := idf[term]; !ok {
			idf[term] = math.Log(3.0/2.0) + 1.0
		}
	}
	return idf
}

// tfidfVector weights raw term counts by IDF and L2-normalizes the result.
func tfidfVector(counts map[string]int, idf map[string]float64) map[string]float64 {
	vec := make(map[string]float64, len(counts))
	var norm float64
	for term, count := range counts {
		w := float64(count) * idf[term]
		vec[term] = w
		norm += w * w
	}
	if norm == 0 {
		return vec
	}
	norm = math.Sqrt(norm)
	for term := range vec {
		vec[term] /= norm
	}
	return vec
}

// cosine computes the cosine similarity of two L2-normalized sparse
// vectors. A zero vector on either side yields 0.
func cosine(a, b map[string]float64) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var dot float64
	for term, wa := range a {
		if wb, ok := b[term]; ok {
			dot += wa * wb
		}
	}
	// Vectors are unit length, but guard against accumulated rounding
	// pushing the dot product past 1.
	if dot > 1 {
		dot = 1
	}
	return dot
}
