package output

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/jmylchreest/docload/pkg/document"
)

// JSONWriter buffers documents and writes them as one JSON array.
type JSONWriter struct {
	w      *bufio.Writer
	indent string
	docs   []document.Document
}

// NewJSONWriter creates a JSON writer.
func NewJSONWriter(w io.Writer, indent string) *JSONWriter {
	return &JSONWriter{
		w:      bufio.NewWriter(w),
		indent: indent,
		docs:   make([]document.Document, 0),
	}
}

// Write buffers a document.
func (w *JSONWriter) Write(doc document.Document) error {
	w.docs = append(w.docs, doc)
	return nil
}

// Close writes the buffered documents as a JSON array.
func (w *JSONWriter) Close() error {
	enc := json.NewEncoder(w.w)
	enc.SetEscapeHTML(false)
	if w.indent != "" {
		enc.SetIndent("", w.indent)
	}
	if err := enc.Encode(w.docs); err != nil {
		return err
	}
	return w.w.Flush()
}

// JSONLWriter writes one JSON document per line as they arrive.
type JSONLWriter struct {
	w   *bufio.Writer
	enc *json.Encoder
}

// NewJSONLWriter creates a JSONL writer.
func NewJSONLWriter(w io.Writer) *JSONLWriter {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	enc.SetEscapeHTML(false)
	return &JSONLWriter{w: bw, enc: enc}
}

// Write writes a single document as a JSON line.
func (w *JSONLWriter) Write(doc document.Document) error {
	if err := w.enc.Encode(doc); err != nil {
		return err
	}
	return w.w.Flush()
}

// Close flushes the writer.
func (w *JSONLWriter) Close() error {
	return w.w.Flush()
}
