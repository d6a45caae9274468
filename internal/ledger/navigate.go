package ledger

import "time"

// AdvanceDay shifts current by delta calendar days in its own location,
// keeping the wall-clock time. Month and year rollover and DST changes
// are handled by calendar arithmetic, not fixed 24h offsets.
func AdvanceDay(current time.Time, delta int) time.Time {
	return current.AddDate(0, 0, delta)
}

// SameDay reports whether t falls on day's calendar day in day's location.
func SameDay(t, day time.Time) bool {
	y1, m1, d1 := t.In(day.Location()).Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ParseDay parses a "2006-01-02" date in loc. The time of day is taken
// from clock so records added on a browsed day keep a realistic timestamp.
func ParseDay(s string, loc *time.Location, clock time.Time) (time.Time, error) {
	d, err := time.ParseInLocation("2006-01-02", s, loc)
	if err != nil {
		return time.Time{}, err
	}
	c := clock.In(loc)
	return time.Date(d.Year(), d.Month(), d.Day(), c.Hour(), c.Minute(), c.Second(), 0, loc), nil
}
