package model

import (
	"fmt"
	"time"
)

// The tracker week starts on Saturday. All day keys are YYYY-MM-DD strings
// built from local calendar fields, never from a UTC-normalized timestamp:
// serializing through UTC shifts the day near timezone boundaries and DST
// transitions.

const dayKeyLayout = "2006-01-02"

// DayKey returns the canonical key for the local calendar day of t.
func DayKey(t time.Time) string {
	y, m, d := t.Date()
	return fmt.Sprintf("%04d-%02d-%02d", y, m, d)
}

// ParseDayKey is the inverse of DayKey: local midnight of the keyed day.
func ParseDayKey(key string) (time.Time, error) {
	parsed, err := time.ParseInLocation(dayKeyLayout, key, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("model: invalid day key %q: %w", key, err)
	}
	return parsed, nil
}

// AddDays moves n calendar days, landing on local midnight of the target
// day even across a DST change.
func AddDays(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d+n, 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns local midnight of the most recent Saturday on or
// before t.
func StartOfWeek(t time.Time) time.Time {
	y, m, d := t.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	offset := (int(midnight.Weekday()) + 1) % 7
	return AddDays(midnight, -offset)
}

// WeekdayIndex maps a date onto the Saturday-first scheme: Sat=0 ... Fri=6.
func WeekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 1) % 7
}

// DayIndex is WeekdayIndex for a day key.
func DayIndex(key string) (int, error) {
	t, err := ParseDayKey(key)
	if err != nil {
		return 0, err
	}
	return WeekdayIndex(t), nil
}

// WeekRangeLabel renders the 7-day span starting at start, e.g.
// "Jan 6, 2024 – Jan 12, 2024".
func WeekRangeLabel(start time.Time) string {
	end := AddDays(start, 6)
	return start.Format("Jan 2, 2006") + " – " + end.Format("Jan 2, 2006")
}
