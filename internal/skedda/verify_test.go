package skedda

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/example/skedda-booker/internal/browser/browsertest"
	"github.com/example/skedda-booker/internal/domain/booking"
	"github.com/example/skedda-booker/internal/faillog"
)

func TestVerifyOutcomeSuccess(t *testing.T) {
	page := browsertest.New(`<html><body></body></html>`, testBaseURL, "Bookings")
	d, logPath := newTestDriver(t, page)

	require.NoError(t, d.verifyOutcome(context.Background()))

	_, err := os.Stat(logPath)
	require.True(t, os.IsNotExist(err))
	require.Empty(t, page.Screenshots)
}

func TestVerifyOutcomeQueryStringIsNotSuccess(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"leftover booking params", testBaseURL + "?nbstart=2025-06-15T12%3A00%3A00"},
		{"any query string", testBaseURL + "?x=1"},
		{"different path", "https://parkhurst.skedda.com/booking/confirm"},
		{"login page", "https://parkhurst.skedda.com/login"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := browsertest.New(`<html><body></body></html>`, tt.url, "Bookings")
			d, _ := newTestDriver(t, page)

			err := d.verifyOutcome(context.Background())
			var verr *booking.VerificationError
			require.ErrorAs(t, err, &verr)
			require.False(t, verr.Explicit)
			require.Contains(t, verr.Reason, tt.url)
			require.Equal(t, tt.url, verr.URL)
		})
	}
}

func TestVerifyOutcomeExplicitError(t *testing.T) {
	page := browsertest.New(`<html><body>
	  <div class="alert-danger">Space is already booked</div>
	</body></html>`, testBaseURL+"?nbspaces=1244466", "Parkhurst Bookings")
	d, logPath := newTestDriver(t, page)

	err := d.verifyOutcome(context.Background())
	var verr *booking.VerificationError
	require.ErrorAs(t, err, &verr)
	require.True(t, verr.Explicit)
	require.Equal(t, "Space is already booked", verr.Reason)
	require.Equal(t, "Parkhurst Bookings", verr.PageTitle)

	data, rerr := os.ReadFile(logPath)
	require.NoError(t, rerr)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 1, "exactly one failure line per attempt")
	require.True(t, strings.HasSuffix(lines[0], " - Space is already booked"))

	require.Len(t, page.Screenshots, 1)
}

func TestVerifyOutcomeIgnoresHiddenBanners(t *testing.T) {
	page := browsertest.New(`<html><body>
	  <div class="alert-danger" hidden>stale error</div>
	  <div class="text-danger" style="display:none">another stale one</div>
	</body></html>`, testBaseURL+"?x=1", "Bookings")
	d, _ := newTestDriver(t, page)

	err := d.verifyOutcome(context.Background())
	var verr *booking.VerificationError
	require.ErrorAs(t, err, &verr)
	require.False(t, verr.Explicit, "hidden banners must not be reported")
}

func TestVerifyOutcomeBannerPriority(t *testing.T) {
	// .alert-danger is scanned before [role=alert].
	page := browsertest.New(`<html><body>
	  <div role="alert">secondary message</div>
	  <div class="alert-danger">primary message</div>
	</body></html>`, testBaseURL+"?x=1", "Bookings")
	d, _ := newTestDriver(t, page)

	err := d.verifyOutcome(context.Background())
	var verr *booking.VerificationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "primary message", verr.Reason)
}

func TestVerifyOutcomeLogWriteFailureIsNonFatal(t *testing.T) {
	page := browsertest.New(`<html><body>
	  <div class="alert-danger">Space is already booked</div>
	</body></html>`, testBaseURL+"?x=1", "Bookings")
	d, _ := newTestDriver(t, page)
	d.Failures = faillog.New(filepath.Join(t.TempDir(), "no-such-dir", "failures.log"))

	err := d.verifyOutcome(context.Background())
	var verr *booking.VerificationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "Space is already booked", verr.Reason, "log trouble must not mask the original error")
}
