package booking

import "fmt"

// DefaultBufferMinutes pads the booking title on both sides so neighbours see
// the setup/teardown window, not just the playing time.
const DefaultBufferMinutes = 15

// FormatTitle derives the human-readable booking title from HH:MM start/end
// times: "{start-buffer} - {end+buffer}" in 12-hour clock with an AM/PM
// suffix, e.g. 12:00/13:00 with a 15 minute buffer -> "11:45AM - 1:15PM".
// Buffer arithmetic wraps across midnight; the title carries no date, so no
// rollover is signalled.
func FormatTitle(start, end string, bufferMinutes int) (string, error) {
	s, err := minutesOfDay(start)
	if err != nil {
		return "", err
	}
	e, err := minutesOfDay(end)
	if err != nil {
		return "", err
	}
	from := wrapMinutes(s - bufferMinutes)
	to := wrapMinutes(e + bufferMinutes)
	return clock12(from) + " - " + clock12(to), nil
}

func wrapMinutes(m int) int {
	const day = 24 * 60
	m %= day
	if m < 0 {
		m += day
	}
	return m
}

func clock12(m int) string {
	h, min := m/60, m%60
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	h %= 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d%s", h, min, suffix)
}

func minutesOfDay(hhmm string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(hhmm, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid time %q (want HH:MM)", hhmm)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time %q (want HH:MM)", hhmm)
	}
	return h*60 + m, nil
}
