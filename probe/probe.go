// Package probe answers single-purpose yes/no checks about a page.
package probe

import (
	"context"
	"net/http"
	"time"
)

const mobileUserAgent = "Mozilla/5.0 (iPhone; CPU iPhone OS 14_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.0 Mobile/15E148 Safari/604.1"

// Prober issues probe requests with its own client.
type Prober struct {
	client *http.Client
}

// New creates a Prober with a request timeout.
func New() *Prober {
	return NewWithClient(&http.Client{Timeout: 15 * time.Second})
}

// NewWithClient creates a Prober around an existing client.
func NewWithClient(client *http.Client) *Prober {
	return &Prober{client: client}
}

// MobileFriendly reports whether the page answers a request carrying a
// mobile user agent with HTTP 200. Any failure counts as not mobile
// friendly.
func (p *Prober) MobileFriendly(ctx context.Context, rawURL string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return false
	}
	req.Header.Set("User-Agent", mobileUserAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}
