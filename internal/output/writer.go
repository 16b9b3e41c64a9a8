// Package output serializes loaded documents for the CLI.
package output

import (
	"fmt"
	"io"

	"github.com/jmylchreest/docload/pkg/document"
)

// Format represents output format types.
type Format string

const (
	FormatJSON  Format = "json"
	FormatJSONL Format = "jsonl"
	FormatYAML  Format = "yaml"
)

// Writer serializes documents.
type Writer interface {
	// Write outputs (or buffers) a single document.
	Write(doc document.Document) error

	// Close writes anything buffered.
	Close() error
}

// WriterOption configures a writer.
type WriterOption func(*writerConfig)

type writerConfig struct {
	indent string
}

// WithIndent sets the JSON indentation. An empty string writes compact JSON.
func WithIndent(indent string) WriterOption {
	return func(c *writerConfig) {
		c.indent = indent
	}
}

// NewWriter creates a writer for the specified format.
func NewWriter(w io.Writer, format Format, opts ...WriterOption) (Writer, error) {
	cfg := &writerConfig{indent: "  "}
	for _, opt := range opts {
		opt(cfg)
	}

	switch format {
	case FormatJSON:
		return NewJSONWriter(w, cfg.indent), nil
	case FormatJSONL:
		return NewJSONLWriter(w), nil
	case FormatYAML:
		return NewYAMLWriter(w), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// WriteAll writes docs and closes w.
func WriteAll(w Writer, docs []document.Document) error {
	for _, doc := range docs {
		if err := w.Write(doc); err != nil {
			return err
		}
	}
	return w.Close()
}
