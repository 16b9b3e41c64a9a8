// Package document defines the record produced by every loader.
package document

import "context"

// SourceKey is the metadata key holding the URL a document was loaded from.
const SourceKey = "source"

// Document is a loaded piece of text plus metadata describing where it came from.
// Metadata always carries SourceKey.
type Document struct {
	Content  string         `json:"content" yaml:"content"`
	Metadata map[string]any `json:"metadata" yaml:"metadata"`
}

// New creates a document with the given content and source URL.
func New(content, source string) Document {
	return Document{
		Content:  content,
		Metadata: map[string]any{SourceKey: source},
	}
}

// Source returns the source URL recorded in the metadata, or "" if missing.
func (d Document) Source() string {
	s, _ := d.Metadata[SourceKey].(string)
	return s
}

// Loader loads documents from an external source.
type Loader interface {
	// Load fetches the source and returns its documents.
	Load(ctx context.Context) ([]Document, error)
}
