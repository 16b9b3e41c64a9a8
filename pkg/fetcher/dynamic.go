package fetcher

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"

	"github.com/jmylchreest/docload/internal/logger"
)

// DynamicConfig holds configuration for the dynamic fetcher.
type DynamicConfig struct {
	UserAgent string
	Timeout   time.Duration
	// WaitDuration is an extra pause after the page became visible.
	WaitDuration time.Duration
	// ExecPath is the browser binary. Empty means FindChromePath.
	ExecPath string
}

// DefaultDynamicConfig returns sensible defaults.
func DefaultDynamicConfig() DynamicConfig {
	return DynamicConfig{
		UserAgent: defaultUserAgent,
		Timeout:   30 * time.Second,
	}
}

// DynamicFetcher renders pages in a headless Chrome via chromedp and
// returns the resulting DOM as HTML.
type DynamicFetcher struct {
	config    DynamicConfig
	allocCtx  context.Context
	cancelCtx context.CancelFunc
}

// NewDynamic creates a dynamic fetcher backed by a browser allocator.
// The browser itself is started lazily on the first fetch.
func NewDynamic(cfg DynamicConfig) *DynamicFetcher {
	defaults := DefaultDynamicConfig()
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaults.UserAgent
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaults.Timeout
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.UserAgent(cfg.UserAgent),
		chromedp.WindowSize(1920, 1080),
	)
	if cfg.ExecPath == "" {
		cfg.ExecPath = FindChromePath()
	}
	if cfg.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(cfg.ExecPath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(context.Background(), opts...)
	logger.Debug("dynamic fetcher allocator created", "user_agent", cfg.UserAgent, "timeout", cfg.Timeout)

	return &DynamicFetcher{
		config:    cfg,
		allocCtx:  allocCtx,
		cancelCtx: cancel,
	}
}

// Fetch navigates to targetURL and returns the rendered outer HTML.
func (f *DynamicFetcher) Fetch(ctx context.Context, targetURL string, opts Options) (Content, error) {
	logger.Debug("dynamic fetch starting", "url", targetURL)

	result := Content{
		URL:       targetURL,
		FetchedAt: time.Now(),
	}

	browserCtx, cancelBrowser := chromedp.NewContext(f.allocCtx)
	defer cancelBrowser()

	// Tie the browser tab to the caller's context as well
	stop := context.AfterFunc(ctx, cancelBrowser)
	defer stop()

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = f.config.Timeout
	}
	timeoutCtx, cancelTimeout := context.WithTimeout(browserCtx, timeout)
	defer cancelTimeout()

	var actions []chromedp.Action
	if len(opts.Headers) > 0 {
		headers := make(network.Headers, len(opts.Headers))
		for k, v := range opts.Headers {
			headers[k] = v
		}
		actions = append(actions, network.Enable(), network.SetExtraHTTPHeaders(headers))
	}
	if opts.UserAgent != "" {
		actions = append(actions, emulation.SetUserAgentOverride(opts.UserAgent))
	}

	waitSelector := coalesce(opts.WaitForSelector, "body")
	var html string
	actions = append(actions,
		chromedp.Navigate(targetURL),
		chromedp.WaitVisible(waitSelector),
	)
	if f.config.WaitDuration > 0 {
		actions = append(actions, chromedp.Sleep(f.config.WaitDuration))
	}
	actions = append(actions, chromedp.OuterHTML("html", &html))

	logger.Debug("dynamic fetch executing browser actions", "action_count", len(actions), "selector", waitSelector)
	if err := chromedp.Run(timeoutCtx, actions...); err != nil {
		logger.Debug("dynamic fetch browser automation failed", "url", targetURL, "error", err)
		return result, fmt.Errorf("browser automation failed: %w", err)
	}

	if html == "" {
		return result, ErrEmptyBody
	}
	result.Body = []byte(html)
	result.StatusCode = 200 // chromedp doesn't easily expose status codes
	result.ContentType = "text/html; charset=utf-8"

	logger.Debug("dynamic fetch complete", "url", targetURL, "html_size", len(html))
	return result, nil
}

// Close releases browser resources.
func (f *DynamicFetcher) Close() error {
	if f.cancelCtx != nil {
		f.cancelCtx()
	}
	return nil
}

// Type returns the fetcher type.
func (f *DynamicFetcher) Type() string {
	return "dynamic"
}
