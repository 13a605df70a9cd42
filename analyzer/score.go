package analyzer

import "math"

// Each issue finding costs its category a fixed deduction.
var deductions = map[Category]float64{
	CategoryMeta:      15,
	CategoryContent:   10,
	CategoryTechnical: 20,
	CategorySpeed:     25,
	CategorySecurity:  30,
	CategoryLinks:     15,
}

// weights form a convex combination; they sum to 1.0.
var weights = map[Category]float64{
	CategoryMeta:      0.20,
	CategoryContent:   0.25,
	CategoryTechnical: 0.15,
	CategorySpeed:     0.15,
	CategorySecurity:  0.15,
	CategoryLinks:     0.10,
}

// scoreCategory deducts a fixed amount per issue finding and clamps the
// result to [0,100].
func scoreCategory(category Category, findings []Finding) float64 {
	issues := 0
	for _, f := range findings {
		if f.Severity == SeverityIssue {
			issues++
		}
	}
	return clamp(100 - deductions[category]*float64(issues))
}

// scoreAll computes the six sub-scores keyed by display name and the
// weighted overall score.
func scoreAll(sets map[Category][]Finding) (map[string]float64, float64) {
	metrics := make(map[string]float64, len(categories))
	overall := 0.0
	for _, category := range categories {
		score := scoreCategory(category, sets[category])
		metrics[string(category)] = score
		overall += score * weights[category]
	}
	return metrics, clamp(overall)
}

func clamp(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}
