package analyzer

import (
	"math"
	"testing"
)

func issueFindings(cat Category, n int) []Finding {
	findings := make([]Finding, n)
	for i := range findings {
		findings[i] = issue(cat, "test-issue", "synthetic problem %d", i)
	}
	return findings
}

func TestScoreCategoryDeductions(t *testing.T) {
	tests := []struct {
		category Category
		issues   int
		want     float64
	}{
		{CategoryMeta, 0, 100},
		{CategoryMeta, 2, 70},
		{CategoryContent, 3, 70},
		{CategoryTechnical, 4, 20},
		{CategorySpeed, 2, 50},
		{CategorySecurity, 3, 10},
		{CategoryLinks, 1, 85},
	}

	for _, tt := range tests {
		got := scoreCategory(tt.category, issueFindings(tt.category, tt.issues))
		if got != tt.want {
			t.Errorf("%s with %d issues: expected %.0f, got %.0f", tt.category, tt.issues, tt.want, got)
		}
	}
}

func TestScoreCategoryClampsToZero(t *testing.T) {
	for _, category := range categories {
		got := scoreCategory(category, issueFindings(category, 50))
		if got != 0 {
			t.Errorf("%s saturated: expected 0, got %.2f", category, got)
		}
	}
}

func TestScoreCategoryIgnoresNonIssues(t *testing.T) {
	findings := []Finding{
		good(CategoryMeta, "a", "all fine"),
		info(CategoryMeta, "b", "just saying"),
		warn(CategoryMeta, "c", "worth a look"),
	}
	if got := scoreCategory(CategoryMeta, findings); got != 100 {
		t.Errorf("Expected 100 with no issue findings, got %.2f", got)
	}
}

func TestScoreAllWeightedSum(t *testing.T) {
	sets := map[Category][]Finding{
		CategoryMeta:      issueFindings(CategoryMeta, 2),      // 70
		CategoryContent:   issueFindings(CategoryContent, 1),   // 90
		CategoryTechnical: nil,                                 // 100
		CategorySpeed:     issueFindings(CategorySpeed, 1),     // 75
		CategorySecurity:  issueFindings(CategorySecurity, 10), // 0 (clamped)
		CategoryLinks:     nil,                                 // 100
	}

	metrics, overall := scoreAll(sets)

	want := 70*0.20 + 90*0.25 + 100*0.15 + 75*0.15 + 0*0.15 + 100*0.10
	if math.Abs(overall-want) > 1e-9 {
		t.Errorf("Expected overall %.4f, got %.4f", want, overall)
	}

	if len(metrics) != 6 {
		t.Fatalf("Expected 6 metrics, got %d", len(metrics))
	}
	for name, score := range metrics {
		if score < 0 || score > 100 {
			t.Errorf("Metric %s out of range: %.2f", name, score)
		}
	}
	if metrics["Security"] != 0 {
		t.Errorf("Expected clamped security score 0, got %.2f", metrics["Security"])
	}
}

func TestWeightsSumToOne(t *testing.T) {
	sum := 0.0
	for _, w := range weights {
		sum += w
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("Weights sum to %.6f, expected 1.0", sum)
	}
}
