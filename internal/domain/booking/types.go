package booking

import "context"

// Request describes one booking attempt. It is built once from CLI input plus
// config defaults and not modified afterwards.
type Request struct {
	Facility  Facility
	Date      string // YYYY-MM-DD, local calendar date
	StartTime string // HH:MM local wall clock
	EndTime   string // HH:MM local wall clock
	Signature string
	Title     string // optional override; empty means derive from times
}

// Facility is a bookable space as the target site knows it.
type Facility struct {
	SpaceID string
	Name    string
}

// Booker performs a single booking attempt start-to-finish.
type Booker interface {
	Book(ctx context.Context, req Request) error
}
