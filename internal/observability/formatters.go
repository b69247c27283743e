// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/analyzer"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSummary outputs the headline scores of an analysis.
func (p *Printer) PrintSummary(result analyzer.Result) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Match Score:  %.2f%%\n", result.Score))
	sb.WriteString(fmt.Sprintf("Rating:       %s\n", result.Rating))
	sb.WriteString(fmt.Sprintf("Strength:     %s\n", result.Strength))
	sb.WriteString(fmt.Sprintf("Readiness:    %.1f\n", result.Readiness))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Skills:       %.1f\n", result.SectionScores.Skills))
	sb.WriteString(fmt.Sprintf("Experience:   %.1f\n", result.SectionScores.Experience))
	sb.WriteString(fmt.Sprintf("Education:    %.1f\n", result.SectionScores.Education))
	sb.WriteString(fmt.Sprintf("Formatting:   %.1f", result.SectionScores.Formatting))

	p.printBox("ANALYSIS SUMMARY", sb.String())
}

// PrintKeywords outputs matched and missing keywords with untruncated totals.
func (p *Printer) PrintKeywords(keywords analyzer.KeywordAnalysis) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Matched: %d total\n", keywords.MatchedCountTotal))
	count := min(len(keywords.Matched), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", keywords.Matched[i]))
	}
	if len(keywords.Matched) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(keywords.Matched)-maxItemsToShow))
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Missing: %d total\n", keywords.MissingCountTotal))
	count = min(len(keywords.Missing), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", keywords.Missing[i]))
	}
	if len(keywords.Missing) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(keywords.Missing)-maxItemsToShow))
	}

	p.printBox("KEYWORDS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintFeedback outputs the generated feedback items.
func (p *Printer) PrintFeedback(items []analyzer.FeedbackItem) {
	if len(items) == 0 {
		return
	}

	var sb strings.Builder
	for i, item := range items {
		sb.WriteString(fmt.Sprintf("[%s] %s\n", strings.ToUpper(item.Type), item.Title))
		sb.WriteString(fmt.Sprintf("  %s\n", item.Message))
		if i < len(items)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("FEEDBACK", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDensity outputs the most frequent meaningful tokens.
func (p *Printer) PrintDensity(entries []analyzer.DensityEntry) {
	if len(entries) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(entries), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("%-20s %d", entries[i].Token, entries[i].Count))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("KEYWORD DENSITY", sb.String())
}
