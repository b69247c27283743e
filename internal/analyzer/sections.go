package analyzer

import (
	"math"
	"strings"
)

// Fixed keyword lists for the section heuristics. Closed constants, not
// configuration: the scores must be reproducible across runs.
var (
	skillsKeywords = []string{
		"python", "java", "javascript", "sql", "aws", "azure", "react",
		"angular", "node", "django", "flask", "tableau", "power bi",
		"excel", "git", "docker", "kubernetes",
	}

	actionVerbs = []string{
		"led", "developed", "managed", "increased", "improved", "reduced",
		"implemented", "created", "designed", "built", "achieved",
	}

	educationKeywords = []string{
		"bachelor", "master", "phd", "degree", "certification",
		"university", "college", "institute",
	}
)

// SectionScores holds four independent heuristic sub-scores, each in
// [0,100] and rounded to one decimal place.
type SectionScores struct {
	Skills     float64 `json:"skills"`
	Experience float64 `json:"experience"`
	Education  float64 `json:"education"`
	Formatting float64 `json:"formatting"`
}

// ComputeSectionScores scores the resume on skills, experience wording,
// education signals, and length. Each sub-score saturates at 100. The job
// description is accepted for interface symmetry but does not influence
// the current heuristics.
func ComputeSectionScores(resumeText, jobText string) SectionScores {
	_ = jobText
	resumeLower := strings.ToLower(resumeText)

	skillsFound := countHits(resumeLower, skillsKeywords)
	skillsScore := math.Min(100, float64(skillsFound)/10*100)

	actionCount := countHits(resumeLower, actionVerbs)
	experienceScore := math.Min(100, float64(actionCount)/5*100)

	educationFound := countHits(resumeLower, educationKeywords)
	educationScore := math.Min(100, float64(educationFound)/2*100)

	// Word count via the tokenizer, not a raw whitespace split. A resume
	// under 100 words is too short to assess length and gets a flat 50.
	wordCount := len(Normalize(resumeText))
	formattingScore := 50.0
	if wordCount > 100 {
		formattingScore = math.Min(100, float64(wordCount)/500*100)
	}

	return SectionScores{
		Skills:     round1(skillsScore),
		Experience: round1(experienceScore),
		Education:  round1(educationScore),
		Formatting: round1(formattingScore),
	}
}

// countHits counts how many of the terms appear in the lowercased text as
// case-insensitive substrings. Each term contributes at most one hit.
func countHits(lowerText string, terms []string) int {
	hits := 0
	for _, term := range terms {
		if strings.Contains(lowerText, term) {
			hits++
		}
	}
	return hits
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
