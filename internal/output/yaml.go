package output

import (
	"bufio"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/docload/pkg/document"
)

// YAMLWriter buffers documents and writes them as one YAML sequence.
type YAMLWriter struct {
	w    *bufio.Writer
	docs []document.Document
}

// NewYAMLWriter creates a YAML writer.
func NewYAMLWriter(w io.Writer) *YAMLWriter {
	return &YAMLWriter{
		w:    bufio.NewWriter(w),
		docs: make([]document.Document, 0),
	}
}

// Write buffers a document.
func (w *YAMLWriter) Write(doc document.Document) error {
	w.docs = append(w.docs, doc)
	return nil
}

// Close writes the buffered documents as YAML.
func (w *YAMLWriter) Close() error {
	encoder := yaml.NewEncoder(w.w)
	encoder.SetIndent(2)
	if err := encoder.Encode(w.docs); err != nil {
		return err
	}
	if err := encoder.Close(); err != nil {
		return err
	}
	return w.w.Flush()
}
