package contribution

import "time"

// ThisWeekStart returns Monday 00:00 UTC of the week containing now.
func ThisWeekStart(now time.Time) time.Time {
	now = now.UTC()
	weekday := int(now.Weekday())
	// time.Weekday counts Sunday as 0; weeks here start on Monday.
	if weekday == 0 {
		weekday = 7
	}
	day := now.Truncate(24 * time.Hour)
	return day.AddDate(0, 0, -(weekday - 1))
}

// LastWeekBounds returns the prior week's [start, end) window, so the
// end is exactly this week's start. Every instant belongs to one
// window only.
func LastWeekBounds(now time.Time) (time.Time, time.Time) {
	end := ThisWeekStart(now)
	return end.AddDate(0, 0, -7), end
}
