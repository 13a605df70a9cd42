package analyzer

import (
	"fmt"
	"strings"
)

// A finding becomes a suggestion when its lowercase text contains one of
// these markers.
var suggestionTriggers = []string{"missing", "too", "no", "not", "slow", "large", "multiple", "broken"}

// Rewrites are literal and ordered; each one operates on the output of
// the previous. The replacement is textual, not grammatical, so findings
// like "Cache-Control: Not set" come out as "Cache-Control: Enable set".
var suggestionRewrites = [...][2]string{
	{"Missing", "Add"},
	{"Too short", "Increase length of"},
	{"Too long", "Reduce length of"},
	{"No ", "Add "},
	{"Not ", "Enable "},
}

// improvements rewrites issue-flavored findings into actionable
// suggestions, prefixed with their category in brackets.
func improvements(sets map[Category][]Finding) []string {
	var out []string
	for _, category := range categories {
		for _, finding := range sets[category] {
			if !triggered(finding.Text) {
				continue
			}
			text := finding.Text
			for _, rewrite := range suggestionRewrites {
				text = strings.ReplaceAll(text, rewrite[0], rewrite[1])
			}
			out = append(out, fmt.Sprintf("[%s] %s", category, text))
		}
	}
	return out
}

func triggered(text string) bool {
	lower := strings.ToLower(text)
	for _, keyword := range suggestionTriggers {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
