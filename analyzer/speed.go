package analyzer

import (
	"net/http"
	"strconv"
	"time"
)

const (
	maxResponseSeconds = 2.0
	maxPageSizeMB      = 3.0
)

// AnalyzeSpeed judges the primary response time and the advertised page
// size. A missing Content-Length header is reported as a good 0.00MB
// page; the body is deliberately not measured as a fallback.
func AnalyzeSpeed(elapsed time.Duration, header http.Header) []Finding {
	var findings []Finding

	seconds := elapsed.Seconds()
	if seconds > maxResponseSeconds {
		findings = append(findings, issue(CategorySpeed, "response-slow", "Slow server response time: %.2fs (recommended: < 2s)", seconds))
	} else {
		findings = append(findings, good(CategorySpeed, "response", "Good server response time: %.2fs", seconds))
	}

	var sizeMB float64
	if length, err := strconv.Atoi(header.Get("Content-Length")); err == nil {
		sizeMB = float64(length) / (1024 * 1024)
	}
	if sizeMB > maxPageSizeMB {
		findings = append(findings, issue(CategorySpeed, "size-large", "Large page size: %.2fMB (recommended: < 3MB)", sizeMB))
	} else {
		findings = append(findings, good(CategorySpeed, "size", "Good page size: %.2fMB", sizeMB))
	}

	return findings
}
