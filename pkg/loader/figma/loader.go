// Package figma loads the node tree of a Figma file through the REST API
// and flattens it into a single text document.
package figma

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmylchreest/docload/internal/logger"
	"github.com/jmylchreest/docload/pkg/document"
	"github.com/jmylchreest/docload/pkg/fetcher"
)

// DefaultAPIBase is the root of the Figma REST API.
const DefaultAPIBase = "https://api.figma.com/v1"

// TokenHeader carries the personal access token on every request.
const TokenHeader = "X-Figma-Token"

// Loader fetches selected nodes of one Figma file.
type Loader struct {
	accessToken string
	ids         string
	key         string
	apiBase     string
	fetcher     fetcher.Fetcher
}

// Option configures a Loader.
type Option func(*Loader)

// WithAPIBase overrides the API root, e.g. for a proxy or a test server.
func WithAPIBase(base string) Option {
	return func(l *Loader) {
		l.apiBase = strings.TrimSuffix(base, "/")
	}
}

// WithFetcher sets the fetcher used for the API request.
func WithFetcher(f fetcher.Fetcher) Option {
	return func(l *Loader) {
		l.fetcher = f
	}
}

// New creates a loader for the nodes ids (already comma-joined or otherwise
// encoded) of the file identified by key.
func New(accessToken, ids, key string, opts ...Option) *Loader {
	l := &Loader{
		accessToken: accessToken,
		ids:         ids,
		key:         key,
		apiBase:     DefaultAPIBase,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.fetcher == nil {
		l.fetcher = NewFetcher(fetcher.DefaultStaticConfig().Timeout)
	}
	return l
}

// NewFetcher returns a static fetcher without a body size cap. Node
// exports of large files routinely exceed the fetcher's default limit, and
// a truncated body cannot be decoded.
func NewFetcher(timeout time.Duration) *fetcher.StaticFetcher {
	return fetcher.NewStatic(fetcher.StaticConfig{Timeout: timeout, MaxBodySize: -1})
}

// URL returns the nodes endpoint for the configured file and ids.
// key and ids are inserted verbatim.
func (l *Loader) URL() string {
	return fmt.Sprintf("%s/files/%s/nodes?ids=%s", l.apiBase, l.key, l.ids)
}

// Load performs one API request and returns a single document holding the
// flattened response. Fetch and decode errors are returned as is.
func (l *Loader) Load(ctx context.Context) ([]document.Document, error) {
	url := l.URL()
	logger.Debug("figma load starting", "url", url, "fetcher", l.fetcher.Type())

	content, err := l.fetcher.Fetch(ctx, url, fetcher.Options{
		Headers: map[string]string{TokenHeader: l.accessToken},
	})
	if err != nil {
		return nil, fmt.Errorf("figma request failed: %w", err)
	}

	text, err := Flatten(content.Body)
	if err != nil {
		return nil, err
	}

	logger.Debug("figma load complete", "url", url, "text_size", len(text))
	return []document.Document{document.New(text, url)}, nil
}

var _ document.Loader = (*Loader)(nil)
