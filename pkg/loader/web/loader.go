// Package web loads web pages through a partitioner and turns each page
// into one document.
package web

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/jmylchreest/docload/internal/logger"
	"github.com/jmylchreest/docload/pkg/document"
	"github.com/jmylchreest/docload/pkg/loader"
	"github.com/jmylchreest/docload/pkg/partition"
)

// ElementSeparator joins element texts in a document.
const ElementSeparator = "\n\n"

// Loader partitions a fixed list of URLs.
type Loader struct {
	urls              []string
	continueOnFailure bool
	headers           map[string]string
	options           partition.Options
	partitionerName   string
	partitioner       partition.Partitioner
	caps              partition.Capabilities
}

// Option configures a Loader.
type Option func(*Loader)

// WithContinueOnFailure controls whether a failing URL is logged and
// skipped (true, the default) or aborts Load.
func WithContinueOnFailure(continueOnFailure bool) Option {
	return func(l *Loader) {
		l.continueOnFailure = continueOnFailure
	}
}

// WithHeaders sets request headers. They are only sent when the
// partitioner supports header passthrough.
func WithHeaders(headers map[string]string) Option {
	return func(l *Loader) {
		l.headers = headers
	}
}

// WithPartitionOptions sets options forwarded verbatim to the partitioner.
func WithPartitionOptions(opts partition.Options) Option {
	return func(l *Loader) {
		l.options = opts
	}
}

// WithPartitioner uses p instead of a registered partitioner.
func WithPartitioner(p partition.Partitioner) Option {
	return func(l *Loader) {
		l.partitioner = p
	}
}

// WithPartitionerName selects a registered partitioner by name.
func WithPartitionerName(name string) Option {
	return func(l *Loader) {
		l.partitionerName = name
	}
}

// New creates a loader for urls. It fails with loader.ErrConfig when the
// partitioner is unavailable or reports an unparseable version.
func New(urls []string, opts ...Option) (*Loader, error) {
	l := &Loader{
		urls:              slices.Clone(urls),
		continueOnFailure: true,
		partitionerName:   partition.DefaultName,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.headers = maps.Clone(l.headers)
	l.options = maps.Clone(l.options)

	if l.partitioner == nil {
		p, err := partition.Lookup(l.partitionerName)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", loader.ErrConfig, err)
		}
		l.partitioner = p
	}

	caps, err := partition.CapabilitiesFor(l.partitioner.Version())
	if err != nil {
		return nil, fmt.Errorf("%w: partitioner version: %w", loader.ErrConfig, err)
	}
	l.caps = caps

	if len(l.headers) > 0 && !caps.SupportsHeaders {
		logger.Warn("partitioner version does not support request headers; the headers parameter is ignored",
			"version", l.partitioner.Version(),
			"required", partition.HeadersSince.String())
	}

	logger.Debug("web loader created",
		"urls", len(urls),
		"version", caps.Version.String(),
		"supports_headers", caps.SupportsHeaders,
		"supports_generic", caps.SupportsGenericPartition)
	return l, nil
}

// Capabilities returns the feature flags resolved at construction.
func (l *Loader) Capabilities() partition.Capabilities {
	return l.caps
}

// Load partitions every URL in order and returns one document per URL
// that succeeded. With continue-on-failure disabled the first failure is
// returned as a *loader.FetchError and no documents are returned.
func (l *Loader) Load(ctx context.Context) ([]document.Document, error) {
	var docs []document.Document
	for _, url := range l.urls {
		elements, err := l.partition(ctx, url)
		if err != nil {
			if !l.continueOnFailure {
				return nil, &loader.FetchError{URL: url, Err: err}
			}
			logger.Error("error fetching or processing url", "url", url, "error", err)
			continue
		}
		docs = append(docs, document.New(joinElements(elements), url))
	}
	return docs, nil
}

func (l *Loader) partition(ctx context.Context, url string) ([]partition.Element, error) {
	switch {
	case len(l.headers) > 0 && l.caps.SupportsHeaders:
		return l.partitioner.PartitionHTML(ctx, url, l.headers, l.options)
	case l.caps.SupportsGenericPartition:
		return l.partitioner.Partition(ctx, url, l.options)
	default:
		return l.partitioner.PartitionHTML(ctx, url, nil, l.options)
	}
}

func joinElements(elements []partition.Element) string {
	parts := make([]string, len(elements))
	for i, el := range elements {
		parts[i] = el.String()
	}
	return strings.Join(parts, ElementSeparator)
}

var _ document.Loader = (*Loader)(nil)
