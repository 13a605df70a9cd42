// Package registry resolves domain registration data over whois.
package registry

import (
	"context"
	"fmt"
	"strings"
	"time"

	whois "github.com/likexian/whois"
	whoisparser "github.com/likexian/whois-parser"
)

// Registration holds the dates a registry reported. Zero values mean
// the registry did not disclose them.
type Registration struct {
	Created time.Time
	Expires time.Time
}

// Client queries whois servers with a bounded timeout.
type Client struct {
	whois *whois.Client
}

// NewClient creates a whois client with a 10 second timeout.
func NewClient() *Client {
	return &Client{whois: whois.NewClient().SetTimeout(10 * time.Second)}
}

// Lookup fetches and parses the whois record for host. Callers decide
// how to degrade on error; Lookup itself never swallows one.
func (c *Client) Lookup(ctx context.Context, host string) (Registration, error) {
	raw, err := c.whois.Whois(host)
	if err != nil {
		return Registration{}, fmt.Errorf("whois %s: %w", host, err)
	}

	parsed, err := whoisparser.Parse(raw)
	if err != nil {
		return Registration{}, fmt.Errorf("parse whois %s: %w", host, err)
	}
	if parsed.Domain == nil {
		return Registration{}, fmt.Errorf("whois %s: no domain section", host)
	}

	return Registration{
		Created: parseDate(parsed.Domain.CreatedDate),
		Expires: parseDate(parsed.Domain.ExpirationDate),
	}, nil
}

// Registries disagree on date formats; the common ones are tried in
// order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02-Jan-2006",
	"2006.01.02",
}

func parseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
