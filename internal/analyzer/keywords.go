package analyzer

import "sort"

// DefaultMaxItems is the display truncation applied to matched/missing
// keyword lists when the caller does not pass a limit.
const DefaultMaxItems = 15

// densityLimit caps the keyword density ranking.
const densityLimit = 15

// KeywordAnalysis reports the keyword overlap between a resume and a job
// description. Matched and Missing are sorted lexicographically and
// truncated for display; the two totals always reflect the untruncated
// set sizes.
type KeywordAnalysis struct {
	Matched           []string `json:"matched"`
	Missing           []string `json:"missing"`
	MatchedCountTotal int      `json:"matched_count_total"`
	MissingCountTotal int      `json:"missing_count_total"`
}

// DensityEntry is one row of the keyword density ranking.
type DensityEntry struct {
	Token string `json:"token"`
	Count int    `json:"count"`
}

// AnalyzeKeywords computes matched and missing keyword sets between the two
// documents. maxItems bounds the returned lists only, not the totals;
// values <= 0 fall back to DefaultMaxItems.
func AnalyzeKeywords(resumeText, jobText string, maxItems int) KeywordAnalysis {
	if maxItems <= 0 {
		maxItems = DefaultMaxItems
	}

	resumeSet := keywordSet(resumeText)
	jobSet := keywordSet(jobText)

	matched := make([]string, 0, len(jobSet))
	missing := make([]string, 0, len(jobSet))
	for tok := range jobSet {
		if _, ok := resumeSet[tok]; ok {
			matched = append(matched, tok)
		} else {
			missing = append(missing, tok)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)

	return KeywordAnalysis{
		Matched:           truncate(matched, maxItems),
		Missing:           truncate(missing, maxItems),
		MatchedCountTotal: len(matched),
		MissingCountTotal: len(missing),
	}
}

// KeywordDensity ranks the resume's own meaningful tokens by frequency,
// descending, with ties broken by first occurrence in the text. At most
// 15 entries are returned.
func KeywordDensity(resumeText string) []DensityEntry {
	words := FilterMeaningful(Normalize(resumeText))

	counts := make(map[string]int, len(words))
	firstSeen := make(map[string]int, len(words))
	for i, w := range words {
		if _, ok := counts[w]; !ok {
			firstSeen[w] = i
		}
		counts[w]++
	}

	entries := make([]DensityEntry, 0, len(counts))
	for tok, n := range counts {
		entries = append(entries, DensityEntry{Token: tok, Count: n})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return firstSeen[entries[i].Token] < firstSeen[entries[j].Token]
	})

	if len(entries) > densityLimit {
		entries = entries[:densityLimit]
	}
	return entries
}

// keywordSet builds the deduplicated keyword set for one document.
func keywordSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range FilterMeaningful(Normalize(text)) {
		set[tok] = struct{}{}
	}
	return set
}

func truncate(items []string, max int) []string {
	if len(items) > max {
		return items[:max]
	}
	return items
}
