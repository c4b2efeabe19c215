package punch

import (
	"time"

	puncherrors "github.com/DeboraBSilva/Punchclock/internal/punch/errors"
)

const (
	dayLayout   = "2006-01-02"
	clockLayout = "15:04"

	defaultFromClock = "08:00"
	defaultToClock   = "17:00"
)

// TimeRange is a punch's resolved start and end, always on the same
// calendar date in UTC.
type TimeRange struct {
	From time.Time
	To   time.Time
}

// ResolveTimeRange turns the wire format (a day plus two wall clock
// times, all optional) into concrete timestamps.
//
// On create (prev == nil) an absent day means today and absent clock
// times fall back to a standard 08:00 to 17:00 working day. On update
// (prev != nil) absent parts are taken from the stored range, so a
// request that only moves the day keeps both times of day, and a
// request that only changes one clock time leaves everything else
// untouched. Resolving an already resolved range is a no op.
func ResolveTimeRange(day, fromTime, toTime string, prev *TimeRange, now time.Time) (TimeRange, error) {
	date, err := resolveDate(day, prev, now)
	if err != nil {
		return TimeRange{}, err
	}

	from, err := resolveClock(fromTime, prevFromClock(prev), defaultFromClock)
	if err != nil {
		return TimeRange{}, err
	}

	to, err := resolveClock(toTime, prevToClock(prev), defaultToClock)
	if err != nil {
		return TimeRange{}, err
	}

	resolved := TimeRange{
		From: combine(date, from),
		To:   combine(date, to),
	}

	if !resolved.To.After(resolved.From) {
		return TimeRange{}, puncherrors.ErrInvalidTimeRange
	}

	return resolved, nil
}

func resolveDate(day string, prev *TimeRange, now time.Time) (time.Time, error) {
	if day != "" {
		date, err := time.ParseInLocation(dayLayout, day, time.UTC)
		if err != nil {
			return time.Time{}, puncherrors.ErrInvalidDayFormat
		}
		return date, nil
	}
	if prev != nil {
		return prev.From.UTC().Truncate(24 * time.Hour), nil
	}
	return now.UTC().Truncate(24 * time.Hour), nil
}

func resolveClock(supplied, stored, fallback string) (time.Time, error) {
	value := supplied
	if value == "" {
		value = stored
	}
	if value == "" {
		value = fallback
	}

	clock, err := time.ParseInLocation(clockLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, puncherrors.ErrInvalidTimeFormat
	}
	return clock, nil
}

func prevFromClock(prev *TimeRange) string {
	if prev == nil {
		return ""
	}
	return prev.From.UTC().Format(clockLayout)
}

func prevToClock(prev *TimeRange) string {
	if prev == nil {
		return ""
	}
	return prev.To.UTC().Format(clockLayout)
}

func combine(date, clock time.Time) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), 0, 0,
		time.UTC,
	)
}
