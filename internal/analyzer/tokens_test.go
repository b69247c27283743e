package analyzer

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_LowercasesAndSplits(t *testing.T) {
	tokens := Normalize("Senior Go Developer, 5+ years")

	assert.Equal(t, []string{"senior", "go", "developer", "years"}, tokens)
}

func TestNormalize_DropsDigitsPunctuationAndSingleLetters(t *testing.T) {
	tokens := Normalize("a b2code x 100% C# I")

	// "a", "b", "I" are single-letter runs; digits and symbols split runs
	assert.Equal(t, []string{"code"}, tokens)
}

func TestNormalize_EmptyInput(t *testing.T) {
	assert.Empty(t, Normalize(""))
	assert.Empty(t, Normalize("   \t\n"))
	assert.Empty(t, Normalize("12345 !!! 6+7"))
}

func TestNormalize_OutputAlwaysMatchesTokenPattern(t *testing.T) {
	pattern := regexp.MustCompile(`^[a-z]{2,}$`)
	inputs := []string{
		"Résumé naïve café",
		"python3.11 SQL-Server node_js",
		"UPPER lower MiXeD",
		"tabs\tand\nnewlines",
	}

	for _, input := range inputs {
		for _, tok := range Normalize(input) {
			assert.Regexp(t, pattern, tok, "input %q produced bad token %q", input, tok)
		}
	}
}

func TestFilterMeaningful_RemovesStopWords(t *testing.T) {
	tokens := []string{"the", "quick", "and", "brown", "fox", "is", "here"}

	filtered := FilterMeaningful(tokens)

	assert.Equal(t, []string{"quick", "brown", "fox", "here"}, filtered)
}

func TestFilterMeaningful_RemovesShortTokens(t *testing.T) {
	// Length <= 2 is filtered even though Normalize already enforces >= 2
	filtered := FilterMeaningful([]string{"go", "db", "sql", "aws"})

	assert.Equal(t, []string{"sql", "aws"}, filtered)
}

func TestFilterMeaningful_KeepsDuplicatesAndOrder(t *testing.T) {
	filtered := FilterMeaningful([]string{"data", "the", "data", "sql", "data"})

	assert.Equal(t, []string{"data", "data", "sql", "data"}, filtered)
}

func TestFilterMeaningful_NeverReturnsStopWordOrShortToken(t *testing.T) {
	filtered := FilterMeaningful(Normalize("What we do when the team is at an API by Go"))

	for _, tok := range filtered {
		_, stop := commonStopWords[tok]
		assert.False(t, stop, "stop word %q leaked through filter", tok)
		assert.Greater(t, len(tok), 2)
	}
}

func TestFilterMeaningful_EmptyInput(t *testing.T) {
	assert.Empty(t, FilterMeaningful(nil))
	assert.Empty(t, FilterMeaningful([]string{}))
}
