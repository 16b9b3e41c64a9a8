package partition

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"

	"github.com/jmylchreest/docload/internal/logger"
	"github.com/jmylchreest/docload/pkg/cleaner"
	"github.com/jmylchreest/docload/pkg/fetcher"
)

// HTMLVersion is the version reported by the built-in partitioner. It
// supports both header passthrough and generic partitioning.
const HTMLVersion = "0.6.0"

// Config configures the built-in partitioner.
type Config struct {
	// Fetcher retrieves pages. Defaults to a static fetcher.
	Fetcher fetcher.Fetcher
}

// HTMLPartitioner fetches pages and splits their markup into elements with goquery.
type HTMLPartitioner struct {
	fetcher fetcher.Fetcher
}

// NewHTML creates the built-in partitioner.
func NewHTML(cfg Config) *HTMLPartitioner {
	if cfg.Fetcher == nil {
		cfg.Fetcher = fetcher.NewStatic(fetcher.DefaultStaticConfig())
	}
	return &HTMLPartitioner{fetcher: cfg.Fetcher}
}

// Version returns HTMLVersion.
func (p *HTMLPartitioner) Version() string {
	return HTMLVersion
}

// PartitionHTML fetches url, sending headers, and partitions the body as HTML.
func (p *HTMLPartitioner) PartitionHTML(ctx context.Context, url string, headers map[string]string, opts Options) ([]Element, error) {
	s, err := DecodeSettings(opts)
	if err != nil {
		return nil, err
	}

	content, err := p.fetch(ctx, url, headers, s)
	if err != nil {
		return nil, err
	}
	return partitionMarkup(content, s)
}

// Partition fetches url and picks HTML or text partitioning from the
// response content type.
func (p *HTMLPartitioner) Partition(ctx context.Context, url string, opts Options) ([]Element, error) {
	s, err := DecodeSettings(opts)
	if err != nil {
		return nil, err
	}

	content, err := p.fetch(ctx, url, nil, s)
	if err != nil {
		return nil, err
	}

	kind, mediaType := detect(content.ContentType, content.Body)
	logger.Debug("partition content type detected", "url", url, "media_type", mediaType)

	switch kind {
	case kindHTML:
		return partitionMarkup(content, s)
	case kindText:
		text, err := decodeText(content)
		if err != nil {
			return nil, err
		}
		return PartitionText(text), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedContentType, mediaType)
	}
}

// Close releases the underlying fetcher.
func (p *HTMLPartitioner) Close() error {
	return p.fetcher.Close()
}

func (p *HTMLPartitioner) fetch(ctx context.Context, url string, headers map[string]string, s Settings) (fetcher.Content, error) {
	return p.fetcher.Fetch(ctx, url, fetcher.Options{
		UserAgent:       s.UserAgent,
		Timeout:         s.Timeout,
		WaitForSelector: s.WaitForSelector,
		Headers:         headers,
	})
}

// partitionMarkup decodes the body, applies the configured cleaner and
// partitions the result.
func partitionMarkup(content fetcher.Content, s Settings) ([]Element, error) {
	markup, err := decodeText(content)
	if err != nil {
		return nil, err
	}

	cl, err := cleaner.ByName(s.Cleaner)
	if err != nil {
		return nil, err
	}
	cleaned, err := cl.Clean(markup)
	if err != nil {
		return nil, fmt.Errorf("%s cleaner failed: %w", cl.Name(), err)
	}

	if cleaner.OutputFormat(cl) == cleaner.FormatText {
		return PartitionText(cleaned), nil
	}
	return PartitionHTML(cleaned, s.SkipHeadersFooters)
}

// decodeText returns the body as UTF-8. Bodies that are not valid UTF-8
// are converted using the declared or sniffed charset.
func decodeText(content fetcher.Content) (string, error) {
	if utf8.Valid(content.Body) {
		return string(content.Body), nil
	}
	r, err := charset.NewReader(bytes.NewReader(content.Body), content.ContentType)
	if err != nil {
		return "", fmt.Errorf("failed to decode %s: %w", content.URL, err)
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return "", fmt.Errorf("failed to decode %s: %w", content.URL, err)
	}
	return buf.String(), nil
}

const (
	removedSelector      = "script, style, noscript, iframe, svg, template"
	headerFooterSelector = "header, footer, nav"
)

// inlineElements continue the surrounding run of text. Any other element
// that is not a block starts a new run.
var inlineElements = map[string]bool{
	"a": true, "abbr": true, "b": true, "bdi": true, "bdo": true, "cite": true,
	"code": true, "data": true, "dfn": true, "em": true, "font": true, "i": true,
	"kbd": true, "label": true, "mark": true, "q": true, "s": true, "samp": true,
	"small": true, "span": true, "strong": true, "sub": true, "sup": true,
	"time": true, "u": true, "var": true,
}

// PartitionHTML splits markup into elements in document order. Blocks nested
// in another block are emitted once, as part of the outermost one. Text
// outside any block (in divs, sections or directly under body) is emitted
// as Text, one element per run between container boundaries.
func PartitionHTML(markup string, skipHeadersFooters bool) ([]Element, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find(removedSelector).Remove()
	if skipHeadersFooters {
		doc.Find(headerFooterSelector).Remove()
	}

	root := doc.Find("body")
	if root.Length() == 0 {
		root = doc.Selection
	}

	w := &htmlWalker{}
	for _, n := range root.Nodes {
		w.walk(n)
	}
	w.flush()
	return w.elements, nil
}

type htmlWalker struct {
	elements []Element
	run      strings.Builder
}

func (w *htmlWalker) walk(n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			w.run.WriteString(c.Data)
		case html.ElementNode:
			switch {
			case c.Data == "br":
				w.run.WriteString(" ")
			case inlineElements[c.Data]:
				w.walk(c)
			case isBlock(c.Data):
				w.flush()
				if el, ok := blockElement(goquery.NewDocumentFromNode(c).Selection); ok {
					w.elements = append(w.elements, el)
				}
			default:
				w.flush()
				w.walk(c)
				w.flush()
			}
		}
	}
}

// flush emits the pending run of text, if any.
func (w *htmlWalker) flush() {
	if text := cleanText(w.run.String()); text != "" {
		w.elements = append(w.elements, Element{Type: Text, Text: text})
	}
	w.run.Reset()
}

func isBlock(tag string) bool {
	switch tag {
	case "h1", "h2", "h3", "h4", "h5", "h6", "p", "li", "pre", "blockquote", "table":
		return true
	}
	return false
}

func blockElement(s *goquery.Selection) (Element, bool) {
	var el Element
	switch goquery.NodeName(s) {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		el = Element{Type: Title, Text: cleanText(s.Text())}
	case "li":
		el = Element{Type: ListItem, Text: cleanText(s.Text())}
	case "table":
		el = Element{Type: Table, Text: tableText(s)}
	case "pre":
		el = Element{Type: Text, Text: strings.TrimSpace(s.Text())}
	default:
		el = Element{Type: NarrativeText, Text: cleanText(s.Text())}
	}
	return el, el.Text != ""
}

// tableText renders one line per row with cells separated by spaces.
func tableText(s *goquery.Selection) string {
	var rows []string
	s.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		var cells []string
		tr.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
			if t := cleanText(cell.Text()); t != "" {
				cells = append(cells, t)
			}
		})
		if len(cells) > 0 {
			rows = append(rows, strings.Join(cells, " "))
		}
	})
	if len(rows) == 0 {
		return cleanText(s.Text())
	}
	return strings.Join(rows, "\n")
}

// cleanText normalizes whitespace in text.
func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
