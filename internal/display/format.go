// Package display formats numbers and durations for human-facing output.
package display

import (
	"time"

	"github.com/dustin/go-humanize"
)

// FormatCount returns n with thousands separators (e.g. "12,345").
func FormatCount(n int) string {
	return humanize.Comma(int64(n))
}

// FormatRate returns a per-second rate label (e.g. "1,250 items/s").
// A zero or negative elapsed time yields "n/a".
func FormatRate(n int, elapsed time.Duration) string {
	if elapsed <= 0 {
		return "n/a"
	}
	perSec := float64(n) / elapsed.Seconds()
	return humanize.CommafWithDigits(perSec, 1) + " items/s"
}

// FormatElapsed rounds d for display: milliseconds under a second,
// tenths of a second under a minute, whole seconds above.
func FormatElapsed(d time.Duration) string {
	switch {
	case d < time.Second:
		return d.Round(time.Millisecond).String()
	case d < time.Minute:
		return d.Round(100 * time.Millisecond).String()
	default:
		return d.Round(time.Second).String()
	}
}
