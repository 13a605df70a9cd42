package analyzer

import (
	"net/url"
	"time"

	"github.com/auditly/backend/registry"
)

// AnalyzeSecurity checks the transport scheme and, when registry data is
// available, derives domain age and expiry horizon. A failed lookup
// collapses into a single degraded finding.
func AnalyzeSecurity(pageURL *url.URL, reg registry.Registration, lookupErr error, now time.Time) []Finding {
	var findings []Finding

	if pageURL.Scheme == "https" {
		findings = append(findings, good(CategorySecurity, "https", "Website is secured with HTTPS"))
	} else {
		findings = append(findings, issue(CategorySecurity, "https-missing", "Website is not using HTTPS (security risk)"))
	}

	if lookupErr != nil {
		findings = append(findings, issue(CategorySecurity, "registry-unavailable", "Could not fetch domain registration information"))
		return findings
	}

	if !reg.Created.IsZero() {
		age := int(now.Sub(reg.Created).Hours() / 24)
		findings = append(findings, info(CategorySecurity, "domain-age", "Domain age: %d days", age))
	}
	if !reg.Expires.IsZero() {
		left := int(reg.Expires.Sub(now).Hours() / 24)
		findings = append(findings, info(CategorySecurity, "domain-expiry", "Days until domain expiry: %d", left))
	}

	return findings
}
