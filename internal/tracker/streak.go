package tracker

import (
	"github.com/sandeepkv93/routined/internal/model"
)

// Streak counts consecutive completed days walking backward from
// uptoDayKey inclusive. Each day resolves its own week bucket, so the walk
// crosses week boundaries freely. Any day without a recorded completion
// breaks the run, whether or not the item was scheduled that day.
func (s *State) Streak(itemID, uptoDayKey string) int {
	cursor, err := model.ParseDayKey(uptoDayKey)
	if err != nil {
		return 0
	}
	streak := 0
	for {
		key := model.DayKey(cursor)
		if !s.Completion.IsDone(key, itemID) {
			return streak
		}
		streak++
		cursor = model.AddDays(cursor, -1)
	}
}

// Progress is a day's done/total aggregate. Total 0 is the distinguished
// no-data state, rendered as an em-dash instead of a fraction.
type Progress struct {
	Done  int
	Total int
}

func (p Progress) HasData() bool {
	return p.Total > 0
}

// Percent is only meaningful when HasData holds.
func (p Progress) Percent() int {
	if p.Total == 0 {
		return 0
	}
	return int(float64(p.Done)/float64(p.Total)*100 + 0.5)
}

// DayProgress aggregates over every item scheduled on the day. The category
// filter applied to the visible list never narrows this count.
func (s *State) DayProgress(dayKey string) Progress {
	var p Progress
	for _, it := range s.Items {
		if !it.ScheduledOn(dayKey) {
			continue
		}
		p.Total++
		if s.Completion.IsDone(dayKey, it.ID) {
			p.Done++
		}
	}
	return p
}
