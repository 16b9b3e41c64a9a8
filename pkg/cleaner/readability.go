package cleaner

import (
	"bytes"
	"net/url"
	"strings"

	readability "codeberg.org/readeck/go-readability/v2"
	"golang.org/x/net/html"
)

// ReadabilityConfig configures the Readability cleaner.
type ReadabilityConfig struct {
	// CharThreshold is the minimum character count for valid content (default: 500).
	CharThreshold int
	// BaseURL is used for resolving relative URLs. If empty, URLs remain relative.
	BaseURL string
}

// ReadabilityCleaner keeps only the main article of a page using
// go-readability, a port of Mozilla's Readability.js.
type ReadabilityCleaner struct {
	baseURL *url.URL
	parser  readability.Parser
}

// NewReadability creates a new Readability cleaner. Pass nil for defaults.
func NewReadability(cfg *ReadabilityConfig) *ReadabilityCleaner {
	if cfg == nil {
		cfg = &ReadabilityConfig{}
	}

	parser := readability.NewParser()
	if cfg.CharThreshold > 0 {
		parser.CharThresholds = cfg.CharThreshold
	}

	c := &ReadabilityCleaner{parser: parser}
	if cfg.BaseURL != "" {
		// An unparsable base URL leaves links relative
		c.baseURL, _ = url.Parse(cfg.BaseURL)
	}
	return c
}

// Clean returns the article HTML, or the input when no article was found.
func (c *ReadabilityCleaner) Clean(htmlContent string) (string, error) {
	article, err := c.parser.Parse(strings.NewReader(htmlContent), c.baseURL)
	if err != nil {
		return "", err
	}
	if article.Node == nil {
		return htmlContent, nil
	}

	var buf bytes.Buffer
	if err := article.RenderHTML(&buf); err != nil {
		buf.Reset()
		if err := html.Render(&buf, article.Node); err != nil {
			return htmlContent, nil
		}
	}
	if buf.Len() == 0 {
		return htmlContent, nil
	}
	return buf.String(), nil
}

// Name returns the cleaner type.
func (c *ReadabilityCleaner) Name() string {
	return NameReadability
}
