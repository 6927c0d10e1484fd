// Package faillog appends booking failures to a plain-text log so unattended
// runs leave a trail.
package faillog

import (
	"fmt"
	"os"
	"time"
)

const DefaultPath = "booking_failures.log"

// Log is an append-only failure log: one line per failure, ISO timestamp,
// dash, message.
type Log struct {
	path string
	now  func() time.Time
}

func New(path string) *Log {
	return &Log{path: path, now: time.Now}
}

// Append writes one failure line. Callers treat errors as non-fatal.
func (l *Log) Append(message string) error {
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening failure log: %w", err)
	}
	defer f.Close()

	line := fmt.Sprintf("%s - %s\n", l.now().Format(time.RFC3339), message)
	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("writing failure log: %w", err)
	}
	return nil
}
