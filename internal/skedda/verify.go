package skedda

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/example/skedda-booker/internal/domain/booking"
)

// verifyOutcome waits out the post-submission settle window, then classifies
// the attempt. Success means the page landed back on the literal base booking
// URL with no query string; anything else, including the base URL with
// leftover parameters, is a failure.
func (d *Driver) verifyOutcome(ctx context.Context) error {
	if err := sleepCtx(ctx, d.verifyDelay()); err != nil {
		return err
	}

	current := d.Page.URL()
	if current == d.Config.URLs.BaseURL {
		d.Log.Info().Str("url", current).Msg("booking confirmed")
		return nil
	}

	title, _ := d.Page.Title()
	verr := &booking.VerificationError{URL: current, PageTitle: title}
	if text := d.firstErrorText(); text != "" {
		verr.Explicit = true
		verr.Reason = text
	} else {
		verr.Reason = fmt.Sprintf("no confirmation redirect (url=%s, title=%q)", current, title)
	}

	d.recordFailure(verr.Reason)
	d.captureFailureScreenshot()
	return verr
}

// firstErrorText scans the error-banner selectors for the first visible
// element with non-empty text.
func (d *Driver) firstErrorText() string {
	for _, sel := range errorBanners {
		els, err := d.Page.QueryAll(sel)
		if err != nil {
			continue
		}
		for _, el := range els {
			if !el.Visible() {
				continue
			}
			text, err := el.Text()
			if err != nil {
				continue
			}
			if t := strings.TrimSpace(text); t != "" {
				return t
			}
		}
	}
	return ""
}

// recordFailure appends to the failure log. A log write failure is only a
// warning; it never masks the verification error.
func (d *Driver) recordFailure(reason string) {
	if d.Failures == nil {
		return
	}
	if err := d.Failures.Append(reason); err != nil {
		d.Log.Warn().Err(err).Msg("could not write failure log")
	}
}

// captureFailureScreenshot saves a best-effort snapshot of the failed page
// into the working directory.
func (d *Driver) captureFailureScreenshot() {
	name := fmt.Sprintf("booking_failure_%s.png", time.Now().Format("20060102_150405"))
	if err := d.Page.Screenshot(name); err != nil {
		d.Log.Debug().Err(err).Msg("failure screenshot not captured")
		return
	}
	d.Log.Info().Str("file", name).Msg("failure screenshot captured")
}
