package daylight

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseClock converts an "HH:MM" time of day to fractional hours
// (hour + minute/60).
func ParseClock(s string) (float64, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || !isClockField(hh) || !isClockField(mm) {
		return 0, fmt.Errorf("%w: %q is not HH:MM", ErrMalformedTime, s)
	}

	hours, err := strconv.Atoi(hh)
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("%w: bad hour in %q", ErrMalformedTime, s)
	}
	minutes, err := strconv.Atoi(mm)
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("%w: bad minute in %q", ErrMalformedTime, s)
	}

	return float64(hours) + float64(minutes)/60.0, nil
}

// isClockField reports whether f is one or two ASCII digits.
func isClockField(f string) bool {
	if len(f) == 0 || len(f) > 2 {
		return false
	}
	for i := 0; i < len(f); i++ {
		if f[i] < '0' || f[i] > '9' {
			return false
		}
	}
	return true
}

// FormatHours renders fractional hours as "Hh MMm".
func FormatHours(h float64) string {
	total := int(h*60 + 0.5)
	return fmt.Sprintf("%dh %02dm", total/60, total%60)
}
