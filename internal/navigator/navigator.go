// Package navigator provides the page-navigation capability used by the
// crawler: opening URLs, bounded waits for page state, indexed element reads
// and clicks, and history navigation. The chromedp-backed implementation
// lives in chrome.go; tests substitute fakes.
package navigator

import "time"

// Navigator is a single exclusively-owned browser session. It is acquired
// once at the start of a crawl and released exactly once via Close. Element
// reads return (value, ok) rather than errors: a missing element is an
// ordinary absent outcome, not a failure.
type Navigator interface {
	// Open navigates the session to url and waits for the document body.
	Open(url string) error

	// WaitVisible blocks until at least one element matching selector is
	// visible, or the timeout elapses.
	WaitVisible(selector string, timeout time.Duration) error

	// WaitReady blocks until an element matching selector is present in the
	// document, or the timeout elapses.
	WaitReady(selector string, timeout time.Duration) error

	// Count reports how many elements currently match selector.
	Count(selector string) int

	// Text returns the visible text of the index-th element matching
	// selector.
	Text(selector string, index int) (string, bool)

	// Attribute returns the named attribute of the index-th element
	// matching selector.
	Attribute(selector string, index int, name string) (string, bool)

	// OuterHTML returns the full markup of the index-th element matching
	// selector.
	OuterHTML(selector string, index int) (string, bool)

	// Click activates the index-th element matching selector.
	Click(selector string, index int) error

	// Visible probes whether an element matching selector becomes visible
	// within the timeout. A negative probe is not an error.
	Visible(selector string, timeout time.Duration) bool

	// Back returns to the previous page in session history.
	Back() error

	// Close releases the browser session. Safe to call exactly once.
	Close()
}
