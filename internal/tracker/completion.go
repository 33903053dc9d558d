package tracker

import (
	"github.com/sandeepkv93/routined/internal/model"
)

// CompletionLog records check-offs as week-start key -> day key -> item id.
// Presence means done; unchecking deletes the entry so the mapping stays
// sparse. Empty day and week maps may remain behind as containers.
type CompletionLog map[string]map[string]map[string]bool

// weekKeyFor resolves the owning week bucket of a day key. The lookup is
// never confined to the displayed week: streaks reach into arbitrary
// historical weeks.
func weekKeyFor(dayKey string) (string, bool) {
	day, err := model.ParseDayKey(dayKey)
	if err != nil {
		return "", false
	}
	return model.DayKey(model.StartOfWeek(day)), true
}

func (c CompletionLog) IsDone(dayKey, itemID string) bool {
	weekKey, ok := weekKeyFor(dayKey)
	if !ok {
		return false
	}
	week, ok := c[weekKey]
	if !ok {
		return false
	}
	day, ok := week[dayKey]
	if !ok {
		return false
	}
	return day[itemID]
}

func (c CompletionLog) SetDone(dayKey, itemID string, done bool) {
	weekKey, ok := weekKeyFor(dayKey)
	if !ok {
		return
	}
	week, ok := c[weekKey]
	if !ok {
		if !done {
			return
		}
		week = make(map[string]map[string]bool)
		c[weekKey] = week
	}
	day, ok := week[dayKey]
	if !ok {
		if !done {
			return
		}
		day = make(map[string]bool)
		week[dayKey] = day
	}
	if done {
		day[itemID] = true
		return
	}
	delete(day, itemID)
}

// ResetWeek clears every day entry for one week bucket, leaving all other
// weeks untouched.
func (c CompletionLog) ResetWeek(weekKey string) {
	if _, ok := c[weekKey]; ok {
		c[weekKey] = make(map[string]map[string]bool)
	}
}

// PurgeItem removes the item id from every day of every week. Called when
// an item is deleted so no bucket retains a dangling id.
func (c CompletionLog) PurgeItem(itemID string) {
	for _, week := range c {
		for _, day := range week {
			delete(day, itemID)
		}
	}
}

// Clone deep-copies the log, keeping only true entries.
func (c CompletionLog) Clone() CompletionLog {
	out := make(CompletionLog, len(c))
	for weekKey, week := range c {
		outWeek := make(map[string]map[string]bool, len(week))
		for dayKey, day := range week {
			outDay := make(map[string]bool, len(day))
			for itemID, done := range day {
				if done {
					outDay[itemID] = true
				}
			}
			outWeek[dayKey] = outDay
		}
		out[weekKey] = outWeek
	}
	return out
}
