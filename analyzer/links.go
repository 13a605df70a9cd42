package analyzer

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// AnalyzeLinks counts anchors and classifies them as internal or
// external against the page's own host. Empty and fragment-only hrefs
// stay in the total but are excluded from classification. Reachability
// is never probed.
func AnalyzeLinks(doc *goquery.Document, base *url.URL) []Finding {
	anchors := doc.Find("a[href]")

	internal, external := 0, 0
	anchors.Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		if href == "" || strings.HasPrefix(href, "#") {
			return
		}
		resolved, err := base.Parse(href)
		if err != nil {
			return
		}
		if resolved.Host == base.Host || resolved.Host == "" {
			internal++
		} else {
			external++
		}
	})

	findings := []Finding{
		info(CategoryLinks, "total", "Total links found: %d", anchors.Length()),
		info(CategoryLinks, "internal", "Internal links: %d", internal),
		info(CategoryLinks, "external", "External links: %d", external),
	}

	if nofollow := doc.Find("a[rel~='nofollow']").Length(); nofollow > 0 {
		findings = append(findings, info(CategoryLinks, "nofollow", "Links with nofollow: %d", nofollow))
	}

	return findings
}
