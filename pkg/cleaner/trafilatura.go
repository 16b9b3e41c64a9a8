//go:build trafilatura

package cleaner

import (
	"bytes"
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// TrafilaturaConfig configures the Trafilatura cleaner.
type TrafilaturaConfig struct {
	// IncludeComments keeps user comment sections.
	IncludeComments bool
	// ExcludeTables drops tables from the extracted content.
	ExcludeTables bool
	// DisableFallback turns off the Readability/DomDistiller fallback.
	DisableFallback bool
}

// TrafilaturaCleaner strips boilerplate (navigation, ads, footers) with
// go-trafilatura and returns the main content as HTML.
type TrafilaturaCleaner struct {
	opts trafilatura.Options
}

// NewTrafilatura creates a new Trafilatura cleaner. Pass nil for defaults.
func NewTrafilatura(cfg *TrafilaturaConfig) *TrafilaturaCleaner {
	if cfg == nil {
		cfg = &TrafilaturaConfig{}
	}
	return &TrafilaturaCleaner{
		opts: trafilatura.Options{
			ExcludeComments: !cfg.IncludeComments,
			ExcludeTables:   cfg.ExcludeTables,
			IncludeLinks:    true,
			IncludeImages:   false,
			EnableFallback:  !cfg.DisableFallback,
		},
	}
}

// Clean extracts the main content, falling back to the input when nothing was found.
func (c *TrafilaturaCleaner) Clean(htmlContent string) (string, error) {
	result, err := trafilatura.Extract(strings.NewReader(htmlContent), c.opts)
	if err != nil {
		return "", err
	}
	if result == nil || result.ContentNode == nil {
		return htmlContent, nil
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, result.ContentNode); err != nil {
		return htmlContent, nil
	}
	return buf.String(), nil
}

// Name returns the cleaner type.
func (c *TrafilaturaCleaner) Name() string {
	return NameTrafilatura
}

// IsAvailable returns true when trafilatura is compiled in.
func (c *TrafilaturaCleaner) IsAvailable() bool {
	return true
}
