package skedda

import (
	"fmt"
	"strings"

	"github.com/example/skedda-booker/internal/browser"
	"github.com/example/skedda-booker/internal/domain/booking"
)

// submit resolves the confirmation control, activates it, and handles at most
// one post-submission dialog.
func (d *Driver) submit() error {
	btn, err := d.findConfirmButton()
	if err != nil {
		return d.wrapf(err, "resolving confirm button")
	}
	if err := d.clickWithFallback(btn); err != nil {
		return d.wrapf(err, "clicking confirm button")
	}
	d.dismissDialog()
	return nil
}

// findConfirmButton runs the two-phase resolution: structural selectors from
// layout-scoped to generic, filtered to in-viewport enabled elements; then a
// text scan over all buttons for the confirm keywords in priority order.
func (d *Driver) findConfirmButton() (browser.Element, error) {
	for _, c := range confirmButtons {
		els, err := d.Page.QueryAll(c.selector)
		if err != nil {
			continue
		}
		for _, el := range els {
			if el.InViewport() && el.Enabled() {
				d.Log.Debug().Str("selector", c.selector).Str("element", c.desc).Msg("confirm button matched structurally")
				return el, nil
			}
		}
	}

	buttons, err := d.Page.QueryAll("button")
	if err == nil {
		for _, kw := range confirmKeywords {
			for _, el := range buttons {
				if !el.Visible() || !el.Enabled() {
					continue
				}
				text, err := el.Text()
				if err != nil {
					continue
				}
				if strings.Contains(strings.ToLower(strings.TrimSpace(text)), kw) {
					d.Log.Debug().Str("keyword", kw).Str("text", strings.TrimSpace(text)).Msg("confirm button matched by text")
					return el, nil
				}
			}
		}
	}

	return nil, booking.ErrConfirmButtonNotFound
}

// clickWithFallback tries a native click and, on failure, a script-dispatched
// click on the same element. There is no third strategy.
func (d *Driver) clickWithFallback(el browser.Element) error {
	err := el.Click()
	if err == nil {
		return nil
	}
	d.Log.Debug().Err(err).Msg("native click failed, dispatching click from script")
	if derr := el.DispatchClick(); derr != nil {
		return fmt.Errorf("native click failed (%v), dispatched click failed: %w", err, derr)
	}
	return nil
}

// dismissDialog clicks the first visible confirmation control it can find in
// a modal context, then stops: one dialog interaction per attempt, chained
// dialogs are out of scope. All failures here are non-fatal.
func (d *Driver) dismissDialog() {
	for _, c := range dialogConfirmButtons {
		el, err := d.Page.Query(c.selector)
		if err != nil || el == nil {
			continue
		}
		if el.Visible() && el.Enabled() {
			d.Log.Debug().Str("selector", c.selector).Msg("dismissing post-submission dialog")
			if err := d.clickWithFallback(el); err != nil {
				d.Log.Warn().Err(err).Msg("dialog click failed")
			}
			return
		}
	}

	for _, container := range dialogContainers {
		els, err := d.Page.QueryAll(container + " button")
		if err != nil {
			continue
		}
		for _, el := range els {
			if !el.Visible() || !el.Enabled() {
				continue
			}
			text, err := el.Text()
			if err != nil {
				continue
			}
			lower := strings.ToLower(strings.TrimSpace(text))
			for _, kw := range confirmKeywords {
				if strings.Contains(lower, kw) {
					d.Log.Debug().Str("container", container).Str("text", strings.TrimSpace(text)).Msg("dismissing post-submission dialog by text")
					if err := d.clickWithFallback(el); err != nil {
						d.Log.Warn().Err(err).Msg("dialog click failed")
					}
					return
				}
			}
		}
	}
}
