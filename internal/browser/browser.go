// Package browser abstracts the page/DOM/automation surface the booking
// driver needs, so selector matching and outcome classification can run
// against synthetic fixtures instead of a live browser.
package browser

import "time"

// Page is one open browser tab.
type Page interface {
	// Goto navigates and waits for the page to settle.
	Goto(url string) error
	URL() string
	Title() (string, error)

	// WaitForSelector blocks until an element matching selector is visible,
	// or the timeout elapses.
	WaitForSelector(selector string, timeout time.Duration) (Element, error)
	// Query returns the first match, or (nil, nil) when nothing matches.
	Query(selector string) (Element, error)
	QueryAll(selector string) ([]Element, error)

	// WaitForNavigation blocks until the in-flight page transition completes.
	WaitForNavigation(timeout time.Duration) error
	Screenshot(path string) error
}

// Element is a located DOM element.
type Element interface {
	// Fill replaces any existing content with value.
	Fill(value string) error
	// Click dispatches a native click.
	Click() error
	// DispatchClick fires a click event from script, for elements a native
	// click cannot reach.
	DispatchClick() error
	Press(key string) error
	Text() (string, error)

	// Predicates swallow errors and report false; they exist to filter
	// selector candidates, not to diagnose.
	Visible() bool
	Enabled() bool
	InViewport() bool
}
