package utils

import (
	"strings"
	"time"
)

const layoutDate = "2006-01-02"

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ParseDate parses YYYY-MM-DD in local timezone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(layoutDate, strings.TrimSpace(s), time.Local)
}

// DaysUntil returns whole days from now until t, floored at zero. Used
// to feed the flight pricing adjuster.
func DaysUntil(t time.Time, now time.Time) int {
	d := t.Sub(now).Hours() / 24
	if d < 0 {
		return 0
	}
	return int(d)
}
