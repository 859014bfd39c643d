// Package insights derives human-readable strengths and gaps from skill
// sets. The rules live in static ordered tables so that adding a rule is a
// data change, not new branching.
package insights

import (
	"fmt"
	"strings"
)

const maxItems = 5

// Keyword cues checked against the lowercased resume text, in order.
var strengthKeywords = []struct {
	Keyword string
	Message string
}{
	{"python", "Good Python coding experience"},
	{"api", "Experience working with APIs"},
	{"backend", "Backend development exposure"},
	{"automation", "QA automation or framework development experience"},
	{"ml", "Machine Learning exposure"},
	{"deep learning", "Deep Learning familiarity"},
	{"sql", "Database and SQL knowledge"},
}

// Canned explanations for well-known missing skills. The cloud providers
// share one combined message.
var gapMessages = map[string]string{
	"aws":              "Cloud experience missing (AWS/Azure/GCP)",
	"azure":            "Cloud experience missing (AWS/Azure/GCP)",
	"gcp":              "Cloud experience missing (AWS/Azure/GCP)",
	"docker":           "Docker containerization not shown",
	"sql":              "No SQL or database experience mentioned",
	"machine learning": "ML knowledge expected but not visible",
	"nlp":              "NLP skills missing",
}

// Strengths lists up to 5 strengths: one per skill present in both the
// resume and the JD, then keyword-based messages for cues found in the
// resume text. Duplicate messages are suppressed.
func Strengths(resumeSkills, jdSkills []string, resumeText string) []string {
	textLower := strings.ToLower(resumeText)
	var strengths []string
	seen := make(map[string]struct{})
	add := func(msg string) {
		if _, ok := seen[msg]; ok {
			return
		}
		seen[msg] = struct{}{}
		strengths = append(strengths, msg)
	}

	required := make(map[string]struct{}, len(jdSkills))
	for _, s := range jdSkills {
		required[s] = struct{}{}
	}
	for _, s := range resumeSkills {
		if _, ok := required[s]; ok {
			add(fmt.Sprintf("Strong presence of %s", s))
		}
	}

	for _, kw := range strengthKeywords {
		if strings.Contains(textLower, kw.Keyword) {
			add(kw.Message)
		}
	}

	if len(strengths) > maxItems {
		strengths = strengths[:maxItems]
	}
	return strengths
}

// Gaps maps each missing skill to its canned message, preserving input
// order and capping at 5. Skills without a dedicated message fall back to
// "<skill> not mentioned".
func Gaps(missingSkills []string) []string {
	var gaps []string
	for _, skill := range missingSkills {
		if len(gaps) == maxItems {
			break
		}
		if msg, ok := gapMessages[skill]; ok {
			gaps = append(gaps, msg)
		} else {
			gaps = append(gaps, fmt.Sprintf("%s not mentioned", skill))
		}
	}
	return gaps
}
