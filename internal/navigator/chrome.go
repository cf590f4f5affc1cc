package navigator

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/rs/zerolog"
)

// Options configures the headless browser session.
type Options struct {
	Headless  bool
	UserAgent string
}

// Chrome is a chromedp-backed Navigator. One Chrome value owns one browser
// process for the lifetime of a crawl.
type Chrome struct {
	ctx         context.Context
	cancel      context.CancelFunc
	allocCancel context.CancelFunc
	log         zerolog.Logger
}

// NewChrome starts a headless browser session. The caller must Close it.
// Set CHROME_PATH to point at a specific Chrome/Chromium binary.
func NewChrome(ctx context.Context, opts Options, log zerolog.Logger) (*Chrome, error) {
	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", opts.Headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if opts.UserAgent != "" {
		allocOpts = append(allocOpts, chromedp.UserAgent(opts.UserAgent))
	}
	if p := os.Getenv("CHROME_PATH"); p != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(p))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, allocOpts...)
	browserCtx, cancel := chromedp.NewContext(allocCtx)

	// Start the browser process eagerly so a missing binary fails here
	// instead of on the first navigation.
	if err := chromedp.Run(browserCtx, chromedp.Navigate("about:blank")); err != nil {
		cancel()
		allocCancel()
		return nil, fmt.Errorf("failed to start browser: %w", err)
	}

	return &Chrome{
		ctx:         browserCtx,
		cancel:      cancel,
		allocCancel: allocCancel,
		log:         log,
	}, nil
}

// Close releases the browser session and its allocator.
func (c *Chrome) Close() {
	c.cancel()
	c.allocCancel()
}

// Open navigates to url and waits for the document body.
func (c *Chrome) Open(url string) error {
	c.log.Debug().Str("url", url).Msg("navigating")
	if err := chromedp.Run(c.ctx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
	); err != nil {
		return fmt.Errorf("failed to open %s: %w", url, err)
	}
	return nil
}

// WaitVisible blocks until a match for selector is visible or timeout elapses.
func (c *Chrome) WaitVisible(selector string, timeout time.Duration) error {
	waitCtx, cancel := context.WithTimeout(c.ctx, timeout)
	defer cancel()
	if err := chromedp.Run(waitCtx, chromedp.WaitVisible(selector, chromedp.ByQuery)); err != nil {
		return fmt.Errorf("timed out waiting for %q: %w", selector, err)
	}
	return nil
}

// WaitReady blocks until a match for selector is present or timeout elapses.
func (c *Chrome) WaitReady(selector string, timeout time.Duration) error {
	waitCtx, cancel := context.WithTimeout(c.ctx, timeout)
	defer cancel()
	if err := chromedp.Run(waitCtx, chromedp.WaitReady(selector, chromedp.ByQuery)); err != nil {
		return fmt.Errorf("timed out waiting for %q: %w", selector, err)
	}
	return nil
}

// Count reports how many elements currently match selector.
func (c *Chrome) Count(selector string) int {
	var n int
	js := fmt.Sprintf(`document.querySelectorAll(%q).length`, selector)
	if err := chromedp.Run(c.ctx, chromedp.EvaluateAsDevTools(js, &n)); err != nil {
		c.log.Debug().Err(err).Str("selector", selector).Msg("count failed")
		return 0
	}
	return n
}

type lookupResult struct {
	Found bool   `json:"found"`
	Value string `json:"value"`
}

func (c *Chrome) lookup(js string) (string, bool) {
	var res lookupResult
	if err := chromedp.Run(c.ctx, chromedp.EvaluateAsDevTools(js, &res)); err != nil {
		c.log.Debug().Err(err).Msg("element lookup failed")
		return "", false
	}
	if !res.Found {
		return "", false
	}
	return res.Value, true
}

// Text returns the visible text of the index-th match for selector.
func (c *Chrome) Text(selector string, index int) (string, bool) {
	js := fmt.Sprintf(`(() => {
		const el = document.querySelectorAll(%q)[%d];
		if (!el) return {found: false, value: ""};
		return {found: true, value: el.innerText || el.textContent || ""};
	})()`, selector, index)
	return c.lookup(js)
}

// Attribute returns the named attribute of the index-th match for selector.
func (c *Chrome) Attribute(selector string, index int, name string) (string, bool) {
	js := fmt.Sprintf(`(() => {
		const el = document.querySelectorAll(%q)[%d];
		if (!el) return {found: false, value: ""};
		const v = el.getAttribute(%q);
		if (v === null) return {found: false, value: ""};
		return {found: true, value: v};
	})()`, selector, index, name)
	return c.lookup(js)
}

// OuterHTML returns the markup of the index-th match for selector.
func (c *Chrome) OuterHTML(selector string, index int) (string, bool) {
	js := fmt.Sprintf(`(() => {
		const el = document.querySelectorAll(%q)[%d];
		if (!el) return {found: false, value: ""};
		return {found: true, value: el.outerHTML};
	})()`, selector, index)
	return c.lookup(js)
}

// Click scrolls the index-th match for selector into view and activates it.
func (c *Chrome) Click(selector string, index int) error {
	js := fmt.Sprintf(`(() => {
		const el = document.querySelectorAll(%q)[%d];
		if (!el) return false;
		el.scrollIntoView({behavior: 'instant', block: 'center'});
		el.click();
		return true;
	})()`, selector, index)

	var clicked bool
	if err := chromedp.Run(c.ctx, chromedp.EvaluateAsDevTools(js, &clicked)); err != nil {
		return fmt.Errorf("click failed for %q: %w", selector, err)
	}
	if !clicked {
		return &NotFoundError{Selector: selector, Index: index}
	}
	return nil
}

// Visible probes whether selector becomes visible within the timeout.
func (c *Chrome) Visible(selector string, timeout time.Duration) bool {
	waitCtx, cancel := context.WithTimeout(c.ctx, timeout)
	defer cancel()
	return chromedp.Run(waitCtx, chromedp.WaitVisible(selector, chromedp.ByQuery)) == nil
}

// Back returns to the previous page in session history.
func (c *Chrome) Back() error {
	if err := chromedp.Run(c.ctx, chromedp.NavigateBack()); err != nil {
		return fmt.Errorf("failed to navigate back: %w", err)
	}
	return nil
}

var _ Navigator = (*Chrome)(nil)
