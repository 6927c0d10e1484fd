package booking

import (
	"fmt"
	"time"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"

	// Fallback when neither the CLI nor the config says how far ahead to book.
	defaultAdvanceDays = 15
)

// UseConfigAdvance marks --book-in-advance-days passed without a value: the
// number of days comes from config (or the built-in default).
const UseConfigAdvance = -1

// ParseDate validates a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, NewValidationError(fmt.Sprintf("invalid date %q (want YYYY-MM-DD)", s))
	}
	return d, nil
}

// ValidateTimes checks both HH:MM strings and that start is strictly before end.
func ValidateTimes(start, end string) error {
	s, err := time.Parse(timeLayout, start)
	if err != nil {
		return NewValidationError(fmt.Sprintf("invalid start time %q (want HH:MM)", start))
	}
	e, err := time.Parse(timeLayout, end)
	if err != nil {
		return NewValidationError(fmt.Sprintf("invalid end time %q (want HH:MM)", end))
	}
	if !s.Before(e) {
		return NewValidationError(fmt.Sprintf("start time %s must be before end time %s", start, end))
	}
	return nil
}

// ResolveDate picks the booking date from an explicit --date value, an
// advance-days offset, or the configured default. advanceDays < 0 ("flag not
// given" or UseConfigAdvance) falls through to cfgAdvanceDays, and a zero
// cfgAdvanceDays falls through to the built-in 15-day default.
func ResolveDate(explicit string, advanceDays, cfgAdvanceDays int, today time.Time) (string, error) {
	if explicit != "" {
		d, err := ParseDate(explicit)
		if err != nil {
			return "", err
		}
		return d.Format(dateLayout), nil
	}
	days := advanceDays
	if days < 0 {
		days = cfgAdvanceDays
	}
	if days <= 0 {
		days = defaultAdvanceDays
	}
	return today.AddDate(0, 0, days).Format(dateLayout), nil
}

// CheckNotPast rejects dates before today unless force is set. It runs before
// any browser work so a past-date request has no side effects at all.
func CheckNotPast(date string, today time.Time, force bool) error {
	d, err := ParseDate(date)
	if err != nil {
		return err
	}
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	if d.Before(day) && !force {
		return NewValidationError(fmt.Sprintf("date %s is in the past (use --force-date to book anyway)", date))
	}
	return nil
}
