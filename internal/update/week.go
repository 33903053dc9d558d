package update

import (
	"fmt"

	"github.com/sandeepkv93/routined/internal/model"
	"github.com/sandeepkv93/routined/internal/views"
)

func (m Model) shiftSelectedDay(delta int) Model {
	day, err := model.ParseDayKey(m.State.Selected)
	if err != nil {
		return m
	}
	if err := m.State.SetSelectedDay(model.DayKey(model.AddDays(day, delta))); err != nil {
		m.Status = StatusBar{Text: "error: " + err.Error(), IsError: true}
		return m
	}
	m.clampCursor()
	m.persist()
	return m
}

func (m Model) shiftWeek(delta int) Model {
	m.State.ShiftWeek(delta)
	m.clampCursor()
	m.persist()
	return m
}

func (m Model) gotoToday() Model {
	now := m.now()
	m.State.SetWeekStart(now)
	if err := m.State.SetSelectedDay(model.DayKey(now)); err != nil {
		m.Status = StatusBar{Text: "error: " + err.Error(), IsError: true}
		return m
	}
	m.clampCursor()
	m.persist()
	m.Status = StatusBar{Text: "jumped to today", IsError: false}
	return m
}

func (m Model) weekRangeLabel() string {
	start, err := model.ParseDayKey(m.State.WeekStart)
	if err != nil {
		return m.State.WeekStart
	}
	return model.WeekRangeLabel(start)
}

func (m Model) renderWeekStrip() string {
	todayKey := model.DayKey(m.now())
	data := views.WeekStripData{RangeLabel: m.weekRangeLabel()}
	for i, dayKey := range m.State.WeekDayKeys() {
		day, err := model.ParseDayKey(dayKey)
		if err != nil {
			continue
		}
		prog := m.State.DayProgress(dayKey)
		progLabel := "–"
		if prog.HasData() {
			progLabel = fmt.Sprintf("%d/%d", prog.Done, prog.Total)
		}
		data.Cards = append(data.Cards, views.DayCardData{
			Abbrev:     model.DayAbbrevs[i],
			DayOfMonth: day.Day(),
			Selected:   dayKey == m.State.Selected,
			Today:      dayKey == todayKey,
			Progress:   progLabel,
		})
	}
	return views.RenderWeekStrip(data)
}
