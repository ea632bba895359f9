package study

import (
	"fmt"
	"time"
)

// DayKeyLayout is the format of activity and review date keys.
const DayKeyLayout = "2006-01-02"

// DayStart returns the start of the current day in the given location, converted to UTC.
func DayStart(now time.Time, loc *time.Location) time.Time {
	local := now.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc).UTC()
}

// NextDayStart returns the start of the next day in the given location, converted to UTC.
func NextDayStart(now time.Time, loc *time.Location) time.Time {
	// AddDate handles DST correctly, Add(24h) does not
	next := DayStart(now, loc).In(loc).AddDate(0, 0, 1)
	return time.Date(next.Year(), next.Month(), next.Day(), 0, 0, 0, 0, loc).UTC()
}

// DayKey returns the calendar date of t in loc as YYYY-MM-DD.
func DayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DayKeyLayout)
}

// ParseDayKey parses a YYYY-MM-DD key into midnight of that date in loc.
func ParseDayKey(key string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DayKeyLayout, key, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse day key %q: %w", key, err)
	}
	return t, nil
}

// addDays shifts a day key by n calendar days.
func addDays(day time.Time, n int) time.Time {
	shifted := day.AddDate(0, 0, n)
	return time.Date(shifted.Year(), shifted.Month(), shifted.Day(), 0, 0, 0, 0, day.Location())
}
