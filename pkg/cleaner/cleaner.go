// Package cleaner provides optional HTML pre-processing applied before a
// page is partitioned into elements.
package cleaner

import (
	"errors"
	"fmt"
	"sort"
)

// Cleaner transforms fetched HTML before it is partitioned.
type Cleaner interface {
	// Clean transforms the input HTML.
	Clean(html string) (string, error)

	// Name returns the cleaner type for logging/debugging.
	Name() string
}

// Format describes what a cleaner emits.
type Format int

const (
	// FormatHTML output can be parsed as HTML again (the default).
	FormatHTML Format = iota
	// FormatText output is plain text or markdown.
	FormatText
)

// Formatter is implemented by cleaners whose output is not HTML.
type Formatter interface {
	Format() Format
}

// OutputFormat reports the format c produces.
func OutputFormat(c Cleaner) Format {
	if f, ok := c.(Formatter); ok {
		return f.Format()
	}
	return FormatHTML
}

// ErrUnavailable is returned for unknown cleaners or ones not compiled in.
var ErrUnavailable = errors.New("cleaner not available")

// Names of the built-in cleaners accepted by ByName.
const (
	NameNone        = "none"
	NameReadability = "readability"
	NameTrafilatura = "trafilatura"
	NameMarkdown    = "markdown"
)

var builtins = map[string]func() Cleaner{
	NameNone:        func() Cleaner { return NewNoop() },
	NameReadability: func() Cleaner { return NewReadability(nil) },
	NameTrafilatura: func() Cleaner { return NewTrafilatura(nil) },
	NameMarkdown:    func() Cleaner { return NewMarkdown() },
}

// availability is implemented by cleaners that may be compiled out.
type availability interface {
	IsAvailable() bool
}

// ByName returns the built-in cleaner called name. An empty name selects
// the no-op cleaner.
func ByName(name string) (Cleaner, error) {
	if name == "" {
		name = NameNone
	}
	build, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnavailable, name)
	}
	c := build()
	if a, ok := c.(availability); ok && !a.IsAvailable() {
		return nil, fmt.Errorf("%w: %q is not compiled in", ErrUnavailable, name)
	}
	return c, nil
}

// Names lists the built-in cleaner names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
