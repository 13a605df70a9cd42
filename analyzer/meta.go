package analyzer

import (
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// AnalyzeMeta inspects the document head: title, meta description,
// robots directive, canonical URL, viewport and Open Graph tags.
// Findings are emitted in that fixed order.
func AnalyzeMeta(doc *goquery.Document) []Finding {
	var findings []Finding

	// Title lengths of exactly 30 and 60 chars are optimal.
	title := doc.Find("title").First().Text()
	if title == "" {
		findings = append(findings, issue(CategoryMeta, "title-missing", "Missing title tag"))
	} else {
		switch length := utf8.RuneCountInString(title); {
		case length < 30:
			findings = append(findings, issue(CategoryMeta, "title-short", "Title tag is too short (%d chars, recommended: 50-60)", length))
		case length > 60:
			findings = append(findings, issue(CategoryMeta, "title-long", "Title tag is too long (%d chars, recommended: 50-60)", length))
		default:
			findings = append(findings, good(CategoryMeta, "title-optimal", "Title tag length is optimal (%d chars)", length))
		}
	}

	desc, _ := doc.Find("meta[name='description']").Attr("content")
	if desc == "" {
		findings = append(findings, issue(CategoryMeta, "description-missing", "Missing meta description"))
	} else {
		switch length := utf8.RuneCountInString(desc); {
		case length < 120:
			findings = append(findings, issue(CategoryMeta, "description-short", "Meta description is too short (%d chars, recommended: 120-155)", length))
		case length > 155:
			findings = append(findings, issue(CategoryMeta, "description-long", "Meta description is too long (%d chars, recommended: 120-155)", length))
		default:
			findings = append(findings, good(CategoryMeta, "description-optimal", "Meta description length is optimal (%d chars)", length))
		}
	}

	if robots := doc.Find("meta[name='robots']"); robots.Length() > 0 {
		content, _ := robots.Attr("content")
		findings = append(findings, info(CategoryMeta, "robots", "Robots meta tag found: %s", content))
	} else {
		findings = append(findings, issue(CategoryMeta, "robots-missing", "No robots meta tag found"))
	}

	if canonical := doc.Find("link[rel='canonical']"); canonical.Length() > 0 {
		href, _ := canonical.Attr("href")
		findings = append(findings, info(CategoryMeta, "canonical", "Canonical URL is set to: %s", href))
	} else {
		findings = append(findings, issue(CategoryMeta, "canonical-missing", "No canonical URL specified"))
	}

	if doc.Find("meta[name='viewport']").Length() > 0 {
		findings = append(findings, good(CategoryMeta, "viewport", "Viewport meta tag is properly set for mobile devices"))
	} else {
		findings = append(findings, issue(CategoryMeta, "viewport-missing", "Missing viewport meta tag for mobile responsiveness"))
	}

	if count := doc.Find("meta[property^='og:']").Length(); count > 0 {
		findings = append(findings, info(CategoryMeta, "open-graph", "Found %d Open Graph tags for social media sharing", count))
	} else {
		findings = append(findings, issue(CategoryMeta, "open-graph-missing", "No Open Graph tags found for social media optimization"))
	}

	return findings
}
