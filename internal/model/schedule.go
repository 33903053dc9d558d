package model

import (
	"errors"
	"fmt"
	"strings"
)

// Schedule is a weekly day pattern, Saturday-first (index 0 = Saturday).
type Schedule [7]bool

// DayAbbrevs lists the day labels in Saturday-first order.
var DayAbbrevs = [7]string{"Sat", "Sun", "Mon", "Tue", "Wed", "Thu", "Fri"}

var (
	ErrEmptySchedule   = errors.New("model: schedule has no days")
	ErrInvalidSchedule = errors.New("model: invalid schedule text")
)

// EveryDay is the legacy default for items that predate day schedules.
func EveryDay() Schedule {
	return Schedule{true, true, true, true, true, true, true}
}

// SingleDay returns a schedule active only on the given Saturday-first index.
func SingleDay(index int) Schedule {
	var s Schedule
	if index >= 0 && index < 7 {
		s[index] = true
	}
	return s
}

// Weekdays covers Sun through Thu, the working week in a Saturday-first
// calendar.
func Weekdays() Schedule {
	return Schedule{false, true, true, true, true, true, false}
}

// Weekend covers Fri and Sat.
func Weekend() Schedule {
	return Schedule{true, false, false, false, false, false, true}
}

func (s Schedule) IsEmpty() bool {
	for _, on := range s {
		if on {
			return false
		}
	}
	return true
}

func (s Schedule) IsEveryDay() bool {
	for _, on := range s {
		if !on {
			return false
		}
	}
	return true
}

// Count reports how many days are active.
func (s Schedule) Count() int {
	n := 0
	for _, on := range s {
		if on {
			n++
		}
	}
	return n
}

// On reports whether the Saturday-first index is active. Out-of-range
// indexes are never active.
func (s Schedule) On(index int) bool {
	if index < 0 || index >= 7 {
		return false
	}
	return s[index]
}

// Toggle flips one day and returns the result.
func (s Schedule) Toggle(index int) Schedule {
	if index >= 0 && index < 7 {
		s[index] = !s[index]
	}
	return s
}

// Text renders the user-facing edit form: "All" when every day is active,
// otherwise a comma-joined list of active day abbreviations in
// Saturday-first order.
func (s Schedule) Text() string {
	if s.IsEveryDay() {
		return "All"
	}
	parts := make([]string, 0, 7)
	for i, on := range s {
		if on {
			parts = append(parts, DayAbbrevs[i])
		}
	}
	return strings.Join(parts, ",")
}

// ParseScheduleText is the inverse of Text. It accepts a case-insensitive
// "All" or a comma-separated list of day abbreviations; duplicates are
// idempotent. Unknown tokens and an empty result are rejected.
func ParseScheduleText(text string) (Schedule, error) {
	trimmed := strings.TrimSpace(text)
	if strings.EqualFold(trimmed, "All") {
		return EveryDay(), nil
	}
	var s Schedule
	for _, token := range strings.Split(trimmed, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		index := -1
		for i, abbrev := range DayAbbrevs {
			if strings.EqualFold(token, abbrev) {
				index = i
				break
			}
		}
		if index < 0 {
			return Schedule{}, fmt.Errorf("%w: unknown day %q", ErrInvalidSchedule, token)
		}
		s[index] = true
	}
	if s.IsEmpty() {
		return Schedule{}, ErrEmptySchedule
	}
	return s, nil
}
