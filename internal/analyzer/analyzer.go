package analyzer

import "math"

// Score band labels derived from the similarity score.
const (
	ratingExcellent = "Excellent Match"
	ratingGood      = "Good Match"
	ratingNeedsWork = "Needs Improvement"
)

// Result bundles every output of one analysis run. It is a plain value:
// serializable as-is and safe to hand to renderers and storage.
type Result struct {
	Score          float64         `json:"score"`
	Rating         string          `json:"rating"`
	Strength       string          `json:"strength"`
	Readiness      float64         `json:"readiness"`
	SectionScores  SectionScores   `json:"section_scores"`
	Keywords       KeywordAnalysis `json:"keywords"`
	Feedback       []FeedbackItem  `json:"feedback"`
	KeywordDensity []DensityEntry  `json:"keyword_density"`
}

// Analyze runs the full engine over the two documents. maxItems bounds the
// displayed keyword lists (<= 0 uses the default). Like every other
// function in this package it cannot fail.
func Analyze(resumeText, jobText string, maxItems int) Result {
	score := Similarity(resumeText, jobText)
	sections := ComputeSectionScores(resumeText, jobText)
	keywords := AnalyzeKeywords(resumeText, jobText, maxItems)

	feedback := GenerateFeedback(
		resumeText,
		keywords.Matched,
		keywords.Missing,
		keywords.MatchedCountTotal,
		keywords.MissingCountTotal,
	)

	rating, strength := classify(score)
	sectionMean := (sections.Skills + sections.Experience + sections.Education + sections.Formatting) / 4
	readiness := math.Round((score+sectionMean)/2*10) / 10

	return Result{
		Score:          score,
		Rating:         rating,
		Strength:       strength,
		Readiness:      readiness,
		SectionScores:  sections,
		Keywords:       keywords,
		Feedback:       feedback,
		KeywordDensity: KeywordDensity(resumeText),
	}
}

// classify maps a similarity score to its rating and strength labels.
func classify(score float64) (rating, strength string) {
	switch {
	case score >= 80:
		return ratingExcellent, "Professional"
	case score >= 60:
		return ratingGood, "Intermediate"
	default:
		return ratingNeedsWork, "Beginner"
	}
}
