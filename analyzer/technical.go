package analyzer

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const maxPathDepth = 3

// AnalyzeTechnical reports server headers, compression, caching, content
// type, URL depth and viewport configuration.
func AnalyzeTechnical(pageURL *url.URL, header http.Header, doc *goquery.Document) []Finding {
	var findings []Finding

	if server := header.Get("Server"); server != "" {
		findings = append(findings, info(CategoryTechnical, "server", "Server: %s", server))
	} else {
		findings = append(findings, issue(CategoryTechnical, "server-hidden", "Server: Not disclosed"))
	}

	if strings.Contains(strings.ToLower(header.Get("Content-Encoding")), "gzip") {
		findings = append(findings, good(CategoryTechnical, "compression", "Content compression (gzip) is enabled"))
	} else {
		findings = append(findings, issue(CategoryTechnical, "compression-off", "Content compression is not enabled"))
	}

	if cacheControl := header.Get("Cache-Control"); cacheControl != "" {
		findings = append(findings, info(CategoryTechnical, "cache-control", "Cache-Control: %s", cacheControl))
	} else {
		findings = append(findings, issue(CategoryTechnical, "cache-control-unset", "Cache-Control: Not set"))
	}

	if expires := header.Get("Expires"); expires != "" {
		findings = append(findings, info(CategoryTechnical, "expires", "Expires: %s", expires))
	} else {
		findings = append(findings, issue(CategoryTechnical, "expires-unset", "Expires: Not set"))
	}

	if contentType := header.Get("Content-Type"); contentType != "" {
		findings = append(findings, info(CategoryTechnical, "content-type", "Content-Type: %s", contentType))
	} else {
		findings = append(findings, issue(CategoryTechnical, "content-type-unset", "Content-Type: Not set"))
	}

	depth := 0
	for _, segment := range strings.Split(pageURL.Path, "/") {
		if segment != "" {
			depth++
		}
	}
	if depth > maxPathDepth {
		findings = append(findings, warn(CategoryTechnical, "url-depth", "URL structure is deep (%d levels, recommended: maximum 3)", depth))
	}

	// A missing viewport tag is Meta's concern; here only its content
	// is judged.
	if viewport := doc.Find("meta[name='viewport']"); viewport.Length() > 0 {
		content, _ := viewport.Attr("content")
		if strings.Contains(content, "width=device-width") && strings.Contains(content, "initial-scale=1") {
			findings = append(findings, good(CategoryTechnical, "viewport", "Viewport is properly configured for mobile devices"))
		} else {
			findings = append(findings, issue(CategoryTechnical, "viewport-misconfigured", "Viewport meta tag needs optimization"))
		}
	}

	return findings
}
