package booking

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeepLinkGolden(t *testing.T) {
	got := DeepLink("https://parkhurst.skedda.com/booking", "1244466", "2025-06-15", "12:00", "13:00")
	want := "https://parkhurst.skedda.com/booking?nbend=2025-06-15T13%3A00%3A00&nbspaces=1244466&nbstart=2025-06-15T12%3A00%3A00"
	require.Equal(t, want, got)
}

func TestDeepLinkRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		space string
		date  string
		start string
		end   string
	}{
		{"tennis", "1244466", "2025-06-15", "12:00", "13:00"},
		{"early slot", "99", "2026-01-02", "06:30", "07:00"},
		{"late slot", "5551212", "2026-12-31", "22:45", "23:45"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			link := DeepLink("https://parkhurst.skedda.com/booking", tt.space, tt.date, tt.start, tt.end)
			u, err := url.Parse(link)
			require.NoError(t, err)

			q := u.Query()
			require.Equal(t, tt.date+"T"+tt.start+":00", q.Get("nbstart"))
			require.Equal(t, tt.date+"T"+tt.end+":00", q.Get("nbend"))
			require.Equal(t, tt.space, q.Get("nbspaces"))
		})
	}
}
