package analyzer

// Analysis is the full audit report for a single page.
type Analysis struct {
	URL            string             `json:"url"`
	OverallScore   float64            `json:"overall_score"`
	Metrics        map[string]float64 `json:"metrics"`
	LoadTime       float64            `json:"load_time"`
	MobileFriendly bool               `json:"mobile_friendly"`
	SSLCertified   bool               `json:"ssl_certified"`

	Meta      []Finding `json:"meta_analysis"`
	Content   []Finding `json:"content_analysis"`
	Technical []Finding `json:"technical_analysis"`
	Speed     []Finding `json:"speed_analysis"`
	Security  []Finding `json:"security_analysis"`
	Links     []Finding `json:"link_analysis"`

	H1Text       []string `json:"h1_text,omitempty"`
	Improvements []string `json:"improvements"`
}
