package engagement

import (
	"time"
)

// DefaultTimezone is the canonical zone for every day-boundary
// comparison in this package: streak continuation, daily activity
// rows and the reminder batch all agree on it. Configurable, but it
// must be the same zone everywhere.
const DefaultTimezone = "Asia/Tokyo"

// dayOf truncates t to midnight in loc.
func dayOf(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// daysBetween returns the number of calendar days from a to b, both
// normalized to midnight in loc. Negative when b is before a. Rounding
// absorbs the odd-length days of DST zones.
func daysBetween(a, b time.Time, loc *time.Location) int {
	a = dayOf(a, loc)
	b = dayOf(b, loc)
	return int(b.Sub(a).Round(24*time.Hour) / (24 * time.Hour))
}
