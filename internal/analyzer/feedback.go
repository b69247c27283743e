package analyzer

import (
	"fmt"
	"strings"
)

// Feedback severity tags.
const (
	FeedbackCritical = "critical"
	FeedbackWarning  = "warning"
	FeedbackSuccess  = "success"
)

// feedbackVerbs is the verb subset checked by the weak-action-verbs rule.
var feedbackVerbs = []string{"led", "developed", "managed", "implemented", "designed"}

// FeedbackItem is one advisory message produced by the feedback rules.
type FeedbackItem struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// GenerateFeedback turns keyword counts and resume text signals into an
// ordered list of advisory messages. Rules are evaluated in a fixed order
// and each appends at most one item; the result is never empty. Order
// reflects rule order, not severity.
func GenerateFeedback(resumeText string, matched, missing []string, matchedTotal, missingTotal int) []FeedbackItem {
	var feedback []FeedbackItem
	resumeLower := strings.ToLower(resumeText)

	if matchedTotal < 8 {
		feedback = append(feedback, FeedbackItem{
			Type:    FeedbackCritical,
			Title:   "Low keyword match",
			Message: fmt.Sprintf("Only %d relevant keywords were found. Aim for at least 10-20 job-specific terms.", matchedTotal),
		})
	}

	if missingTotal > 15 {
		suggestions := "job-specific terms"
		if len(missing) > 0 {
			head := missing
			if len(head) > 5 {
				head = head[:5]
			}
			suggestions = strings.Join(head, ", ")
		}
		feedback = append(feedback, FeedbackItem{
			Type:    FeedbackWarning,
			Title:   "Missing key skills",
			Message: fmt.Sprintf("%d important keywords are missing. Consider adding: %s.", missingTotal, suggestions),
		})
	}

	if !strings.Contains(resumeLower, "increased") &&
		!strings.Contains(resumeLower, "improved") &&
		!strings.Contains(resumeText, "%") {
		feedback = append(feedback, FeedbackItem{
			Type:    FeedbackWarning,
			Title:   "No measurable achievements",
			Message: `Add quantifiable metrics (e.g., "reduced processing time by 30%", "improved conversion by 12%").`,
		})
	}

	hasVerb := false
	for _, verb := range feedbackVerbs {
		if strings.Contains(resumeLower, verb) {
			hasVerb = true
			break
		}
	}
	if !hasVerb {
		feedback = append(feedback, FeedbackItem{
			Type:    FeedbackWarning,
			Title:   "Weak action verbs",
			Message: "Use stronger action verbs: Led, Developed, Managed, Implemented, Designed.",
		})
	}

	if matchedTotal >= 12 && missingTotal <= 8 {
		feedback = append(feedback, FeedbackItem{
			Type:    FeedbackSuccess,
			Title:   "Great keyword alignment",
			Message: "Your resume aligns well with this role. Keep tailoring for each application.",
		})
	}

	if len(feedback) == 0 {
		feedback = append(feedback, FeedbackItem{
			Type:    FeedbackSuccess,
			Title:   "Good resume foundation",
			Message: "Your resume looks solid. Continue tailoring it for each role.",
		})
	}

	return feedback
}
