// Package fetcher defines the interface for retrieving raw page content.
// Implement the Fetcher interface to plug in custom transports (proxies,
// authenticated sessions, headless browsers).
package fetcher

import (
	"context"
	"errors"
	"time"
)

// Fetcher abstracts page fetching strategies.
type Fetcher interface {
	// Fetch retrieves the raw body of a URL.
	Fetch(ctx context.Context, url string, opts Options) (Content, error)

	// Close releases any resources (browser instances, etc.).
	Close() error

	// Type returns a string identifying the fetcher type (e.g., "static", "dynamic").
	Type() string
}

// Options controls a single fetch.
type Options struct {
	UserAgent       string
	Timeout         time.Duration
	WaitForSelector string // CSS selector to wait for (dynamic fetchers)
	Headers         map[string]string
}

// Content is the raw response of a fetch.
type Content struct {
	URL         string
	Body        []byte
	StatusCode  int
	ContentType string
	FetchedAt   time.Time
}

// ErrEmptyBody is returned when a response carried no body at all.
var ErrEmptyBody = errors.New("empty response body")

// Chrome user agent for better compatibility
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// coalesce returns the first non-empty string.
func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
