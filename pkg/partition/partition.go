// Package partition splits fetched documents into typed text elements.
//
// A Partitioner is the content-partitioning capability used by the URL
// loader. It exposes two entry points: an HTML-specific one that can send
// custom request headers, and a generic one that detects the content type
// of the response first. Which of them a caller may use depends on the
// partitioner's reported version (see Capabilities).
package partition

import (
	"context"
	"errors"
)

// ElementType classifies an Element.
type ElementType string

const (
	Title         ElementType = "Title"
	NarrativeText ElementType = "NarrativeText"
	ListItem      ElementType = "ListItem"
	Table         ElementType = "Table"
	Text          ElementType = "Text"
)

// Element is one piece of a partitioned document.
type Element struct {
	Type ElementType
	Text string
}

// String returns the element text.
func (e Element) String() string {
	return e.Text
}

// Options are passed through verbatim from the loader to the partitioner.
// The built-in partitioner understands the keys documented on Settings.
type Options map[string]any

// Partitioner fetches a URL and splits it into elements.
type Partitioner interface {
	// Version reports the partitioner version, e.g. "0.5.12" or "0.6.0-dev".
	Version() string

	// PartitionHTML fetches url as HTML. headers may be nil.
	PartitionHTML(ctx context.Context, url string, headers map[string]string, opts Options) ([]Element, error)

	// Partition fetches url and detects its content type before partitioning.
	Partition(ctx context.Context, url string, opts Options) ([]Element, error)
}

// ErrUnsupportedContentType is returned by Partition for content it cannot split.
var ErrUnsupportedContentType = errors.New("unsupported content type")
