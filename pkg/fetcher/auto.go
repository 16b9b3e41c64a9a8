package fetcher

import (
	"bytes"
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jmylchreest/docload/internal/logger"
)

// minTextLength is the body text size below which a page counts as
// possibly unrendered.
const minTextLength = 100

var (
	spaMarkers = []string{
		`<div id="root"></div>`,
		`<div id="app"></div>`,
		`<app-root></app-root>`,
		`<div id="__next"></div>`,
		`<div id="__nuxt"></div>`,
		`data-reactroot`,
		`ng-app`,
		`v-cloak`,
	}
	loadingIndicators  = []string{"loading", "please wait", "javascript required", "enable javascript"}
	noscriptIndicators = []string{"javascript", "enable", "required", "browser"}
)

// AutoFetcher fetches statically and re-fetches with a browser when the
// page looks like it needs JavaScript to render.
type AutoFetcher struct {
	static  Fetcher
	dynamic Fetcher
}

// NewAuto combines a static and a dynamic fetcher.
func NewAuto(static, dynamic Fetcher) *AutoFetcher {
	return &AutoFetcher{static: static, dynamic: dynamic}
}

// Fetch tries the static fetcher first. HTTP error statuses are returned
// as-is; transport failures and JavaScript shells go to the dynamic fetcher.
func (f *AutoFetcher) Fetch(ctx context.Context, url string, opts Options) (Content, error) {
	content, err := f.static.Fetch(ctx, url, opts)
	if err != nil {
		if content.StatusCode != 0 {
			return content, err
		}
		logger.Debug("static fetch failed, retrying with browser", "url", url, "error", err)
		return f.dynamic.Fetch(ctx, url, opts)
	}

	if needsJavaScript(content.Body) {
		logger.Debug("page needs javascript, retrying with browser", "url", url)
		return f.dynamic.Fetch(ctx, url, opts)
	}
	return content, nil
}

// needsJavaScript reports whether body looks like an unrendered
// single-page app or a "please enable JavaScript" placeholder.
func needsJavaScript(body []byte) bool {
	if len(bytes.TrimSpace(body)) == 0 {
		return true
	}

	lower := strings.ToLower(string(body))
	for _, marker := range spaMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return false
	}

	noscript := strings.ToLower(doc.Find("noscript").Text())
	if containsAny(noscript, noscriptIndicators) {
		return true
	}

	doc.Find("script, style, noscript").Remove()
	text := strings.TrimSpace(doc.Find("body").Text())
	return len(text) < minTextLength && containsAny(strings.ToLower(text), loadingIndicators)
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}

// Close releases both fetchers.
func (f *AutoFetcher) Close() error {
	staticErr := f.static.Close()
	if err := f.dynamic.Close(); err != nil {
		return err
	}
	return staticErr
}

// Type returns the fetcher type.
func (f *AutoFetcher) Type() string {
	return "auto"
}
