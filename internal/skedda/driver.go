// Package skedda drives a Skedda-based booking site through the browser
// abstraction: navigate the deep link, log in when needed, fill the form,
// confirm, and classify the outcome.
package skedda

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/example/skedda-booker/internal/browser"
	"github.com/example/skedda-booker/internal/config"
	"github.com/example/skedda-booker/internal/domain/booking"
	"github.com/example/skedda-booker/internal/faillog"
)

const (
	defaultWaitTimeout = 30 * time.Second
	// Client-side validation re-renders after field writes.
	defaultSettleDelay = 2 * time.Second
	// The server-driven redirect back to the base URL takes several seconds.
	defaultVerifyDelay = 5 * time.Second
)

// Driver performs one booking attempt against one page. No state survives the
// attempt.
type Driver struct {
	Page     browser.Page
	Config   *config.Config
	Creds    config.Credentials
	Failures *faillog.Log
	Log      zerolog.Logger

	// Zero values fall back to the package defaults.
	WaitTimeout time.Duration
	SettleDelay time.Duration
	VerifyDelay time.Duration
}

// New builds a Driver with the wait budget taken from config defaults.
func New(page browser.Page, cfg *config.Config, creds config.Credentials, failures *faillog.Log, log zerolog.Logger) *Driver {
	d := &Driver{
		Page:     page,
		Config:   cfg,
		Creds:    creds,
		Failures: failures,
		Log:      log,
	}
	if cfg.Defaults.TimeoutSeconds > 0 {
		d.WaitTimeout = time.Duration(cfg.Defaults.TimeoutSeconds) * time.Second
	}
	return d
}

var _ booking.Booker = (*Driver)(nil)

// Book runs the whole sequence: deep link, session, form, confirm, verify.
// Every failure is terminal for the attempt; nothing is retried.
func (d *Driver) Book(ctx context.Context, req booking.Request) error {
	link := booking.DeepLink(d.Config.URLs.BaseURL, req.Facility.SpaceID, req.Date, req.StartTime, req.EndTime)
	d.Log.Info().
		Str("facility", req.Facility.Name).
		Str("date", req.Date).
		Str("start", req.StartTime).
		Str("end", req.EndTime).
		Msg("opening booking deep link")

	if err := d.Page.Goto(link); err != nil {
		return d.wrapf(err, "loading booking page")
	}
	if err := d.ensureAuthenticated(ctx); err != nil {
		return err
	}
	if err := d.fillBookingForm(ctx, req); err != nil {
		return err
	}
	if err := d.submit(); err != nil {
		return err
	}
	return d.verifyOutcome(ctx)
}

func (d *Driver) waitTimeout() time.Duration {
	if d.WaitTimeout > 0 {
		return d.WaitTimeout
	}
	return defaultWaitTimeout
}

func (d *Driver) settleDelay() time.Duration {
	if d.SettleDelay > 0 {
		return d.SettleDelay
	}
	return defaultSettleDelay
}

func (d *Driver) verifyDelay() time.Duration {
	if d.VerifyDelay > 0 {
		return d.VerifyDelay
	}
	return defaultVerifyDelay
}

// queryFirst returns the first visible, enabled element among the candidates.
func (d *Driver) queryFirst(candidates []candidate) browser.Element {
	for _, c := range candidates {
		el, err := d.Page.Query(c.selector)
		if err != nil || el == nil {
			continue
		}
		if el.Visible() && el.Enabled() {
			d.Log.Debug().Str("selector", c.selector).Str("element", c.desc).Msg("matched")
			return el
		}
	}
	return nil
}

// waitForAny waits until any candidate appears, then re-resolves in priority
// order so the most specific selector wins even when a generic one appeared
// first.
func (d *Driver) waitForAny(candidates []candidate, timeout time.Duration) (browser.Element, error) {
	joined := make([]string, len(candidates))
	for i, c := range candidates {
		joined[i] = c.selector
	}
	if _, err := d.Page.WaitForSelector(strings.Join(joined, ", "), timeout); err != nil {
		return nil, err
	}
	if el := d.queryFirst(candidates); el != nil {
		return el, nil
	}
	return nil, errNoCandidate
}

var errNoCandidate = errors.New("no selector candidate matched a visible, enabled element")

// wrapf adds the page position to a lower-level failure before it propagates.
func (d *Driver) wrapf(err error, what string) error {
	return fmt.Errorf("%s (url=%s): %w", what, d.Page.URL(), err)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
