// Package analyzer turns a fetched page into a scored quality report
// with human-readable improvement suggestions.
package analyzer

import (
	"context"
	"fmt"
	"time"

	"github.com/auditly/backend/fetcher"
	"github.com/auditly/backend/registry"
	"github.com/auditly/backend/stats"
)

// PageSource fetches the raw page and its readable text. The two calls
// are independent round-trips; a failed text extraction only degrades
// the content findings.
type PageSource interface {
	FetchPage(ctx context.Context, url string) (*fetcher.Page, error)
	ExtractText(ctx context.Context, url string) (string, error)
}

// RegistryClient looks up domain registration data for a hostname.
type RegistryClient interface {
	Lookup(ctx context.Context, host string) (registry.Registration, error)
}

// MobileProber reports whether the page answers a mobile user agent.
type MobileProber interface {
	MobileFriendly(ctx context.Context, url string) bool
}

// Engine runs the audit pipeline: fetch, extract, score, suggest. It
// holds no per-request state; every Analyze call builds fresh values.
type Engine struct {
	pages    PageSource
	registry RegistryClient
	probe    MobileProber
	stats    *stats.Storage
	now      func() time.Time
}

// NewEngine wires the engine's collaborators. storage may be nil when
// no counters should be kept.
func NewEngine(pages PageSource, reg RegistryClient, probe MobileProber, storage *stats.Storage) *Engine {
	return &Engine{
		pages:    pages,
		registry: reg,
		probe:    probe,
		stats:    storage,
		now:      time.Now,
	}
}

// Analyze audits a single URL. A transport failure on the primary fetch
// is fatal; every other failure degrades into a finding or a false flag.
// The caller is expected to have validated the URL scheme.
func (e *Engine) Analyze(ctx context.Context, rawURL string) (*Analysis, error) {
	start := e.now()

	page, err := e.pages.FetchPage(ctx, rawURL)
	if err != nil {
		e.stats.RecordFetchFailure()
		return nil, fmt.Errorf("analyze %s: %w", rawURL, err)
	}

	text, err := e.pages.ExtractText(ctx, rawURL)
	if err != nil {
		text = ""
	}

	sets := make(map[Category][]Finding, len(categories))
	sets[CategoryMeta] = AnalyzeMeta(page.Doc)

	content, h1Text := AnalyzeContent(page.Doc, text)
	sets[CategoryContent] = content

	sets[CategoryTechnical] = AnalyzeTechnical(page.URL, page.Header, page.Doc)
	sets[CategorySpeed] = AnalyzeSpeed(page.Elapsed, page.Header)

	reg, regErr := e.registry.Lookup(ctx, page.URL.Hostname())
	if regErr != nil {
		e.stats.RecordRegistryFailure()
	}
	sets[CategorySecurity] = AnalyzeSecurity(page.URL, reg, regErr, e.now())
	sets[CategoryLinks] = AnalyzeLinks(page.Doc, page.URL)

	metrics, overall := scoreAll(sets)

	analysis := &Analysis{
		URL:            rawURL,
		OverallScore:   overall,
		Metrics:        metrics,
		MobileFriendly: e.probe.MobileFriendly(ctx, rawURL),
		SSLCertified:   page.URL.Scheme == "https",
		Meta:           sets[CategoryMeta],
		Content:        sets[CategoryContent],
		Technical:      sets[CategoryTechnical],
		Speed:          sets[CategorySpeed],
		Security:       sets[CategorySecurity],
		Links:          sets[CategoryLinks],
		H1Text:         h1Text,
		Improvements:   improvements(sets),
	}
	analysis.LoadTime = e.now().Sub(start).Seconds()

	e.stats.RecordAnalysis(analysis.LoadTime)
	return analysis, nil
}
