package analyzer

import "fmt"

// Category is the display name of one analysis dimension.
type Category string

const (
	CategoryMeta      Category = "Meta Tags"
	CategoryContent   Category = "Content"
	CategoryTechnical Category = "Technical"
	CategorySpeed     Category = "Speed"
	CategorySecurity  Category = "Security"
	CategoryLinks     Category = "Links"
)

// categories fixes the ordering of every per-category map traversal so
// reports and improvement lists come out deterministic.
var categories = []Category{
	CategoryMeta,
	CategoryContent,
	CategoryTechnical,
	CategorySpeed,
	CategorySecurity,
	CategoryLinks,
}

// Severity classifies a finding. Only SeverityIssue findings count
// toward score deductions; SeverityWarning flags something worth fixing
// that the scoring contract does not penalize.
type Severity string

const (
	SeverityGood    Severity = "good"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityIssue   Severity = "issue"
)

// Finding is a single observation about the page. The text is rendered
// once at construction; scoring keys off Severity, never off the text.
type Finding struct {
	Category Category `json:"category"`
	Severity Severity `json:"severity"`
	Kind     string   `json:"kind"`
	Text     string   `json:"text"`
}

func good(cat Category, kind, format string, args ...interface{}) Finding {
	return Finding{Category: cat, Severity: SeverityGood, Kind: kind, Text: fmt.Sprintf(format, args...)}
}

func info(cat Category, kind, format string, args ...interface{}) Finding {
	return Finding{Category: cat, Severity: SeverityInfo, Kind: kind, Text: fmt.Sprintf(format, args...)}
}

func warn(cat Category, kind, format string, args ...interface{}) Finding {
	return Finding{Category: cat, Severity: SeverityWarning, Kind: kind, Text: fmt.Sprintf(format, args...)}
}

func issue(cat Category, kind, format string, args ...interface{}) Finding {
	return Finding{Category: cat, Severity: SeverityIssue, Kind: kind, Text: fmt.Sprintf(format, args...)}
}
