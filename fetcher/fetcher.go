// Package fetcher retrieves pages for analysis: a raw GET that keeps
// response metadata and a readability pass that strips boilerplate.
package fetcher

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
)

const desktopUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Page is the immutable input handed to the extractors. A non-2xx
// status still produces a Page; only transport failures do not.
type Page struct {
	URL        *url.URL
	StatusCode int
	Header     http.Header
	Elapsed    time.Duration
	Body       []byte
	Doc        *goquery.Document
}

// FetchError marks a transport-level failure on the primary GET.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string { return fmt.Sprintf("fetch %s: %v", e.URL, e.Err) }
func (e *FetchError) Unwrap() error { return e.Err }

// Fetcher issues the analysis fetches over a shared pooled transport.
type Fetcher struct {
	client    *http.Client
	userAgent string
}

// New creates a Fetcher with connection pooling and a request timeout.
func New() *Fetcher {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}
	return NewWithClient(&http.Client{
		Timeout:   15 * time.Second,
		Transport: transport,
	})
}

// NewWithClient creates a Fetcher around an existing client.
func NewWithClient(client *http.Client) *Fetcher {
	return &Fetcher{client: client, userAgent: desktopUserAgent}
}

// FetchPage performs the primary GET and parses the body into a
// document. The elapsed time covers the request and the body read.
func (f *Fetcher) FetchPage(ctx context.Context, rawURL string) (*Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &FetchError{URL: rawURL, Err: err}
	}
	req.Header.Set("User-Agent", f.userAgent)

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{URL: rawURL, Err: err}
	}
	elapsed := time.Since(start)

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, &FetchError{URL: rawURL, Err: err}
	}

	return &Page{
		URL:        resp.Request.URL,
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Elapsed:    elapsed,
		Body:       body,
		Doc:        doc,
	}, nil
}

// ExtractText fetches the page a second time and returns its main text
// with markup and boilerplate removed. Callers treat an error or an
// empty result as "no text available".
func (f *Fetcher) ExtractText(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	article, err := readability.FromReader(resp.Body, resp.Request.URL)
	if err != nil {
		return "", fmt.Errorf("extract text from %s: %w", rawURL, err)
	}
	return strings.TrimSpace(article.TextContent), nil
}
