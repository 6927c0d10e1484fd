package skedda

import (
	"context"

	"github.com/example/skedda-booker/internal/domain/booking"
)

// fillBookingForm populates the title and signature inputs. Fill policy is
// best effort: a field with no matching input is left blank rather than
// failing the attempt. A settle delay follows the writes so client-side
// validation can re-render before submission.
func (d *Driver) fillBookingForm(ctx context.Context, req booking.Request) error {
	d.fillField("title", titleFields, req.Title)
	d.fillField("signature", signatureFields, req.Signature)
	return sleepCtx(ctx, d.settleDelay())
}

func (d *Driver) fillField(name string, candidates []candidate, value string) {
	for _, c := range candidates {
		el, err := d.Page.Query(c.selector)
		if err != nil || el == nil {
			continue
		}
		if !el.Visible() || !el.Enabled() {
			continue
		}
		if err := el.Fill(value); err != nil {
			d.Log.Debug().Err(err).Str("selector", c.selector).Msg("fill failed, trying next candidate")
			continue
		}
		d.Log.Debug().Str("field", name).Str("selector", c.selector).Msg("field filled")
		return
	}
	d.Log.Warn().Str("field", name).Msg("no matching input, leaving field blank")
}
