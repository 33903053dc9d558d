package tracker

import (
	"time"

	"github.com/sandeepkv93/routined/internal/model"
)

type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

func NormalizeTheme(raw string) Theme {
	if Theme(raw) == ThemeLight {
		return ThemeLight
	}
	return ThemeDark
}

// UIState holds transient presentation flags. It is partitioned from the
// durable item and completion data so persistence and cascade logic can
// treat it independently.
type UIState struct {
	OpenDesc map[string]bool
}

func NewUIState() UIState {
	return UIState{OpenDesc: make(map[string]bool)}
}

// State is the whole application state, persisted as a single document.
// All mutations go through methods here; the TUI shell persists and
// re-renders after each one.
type State struct {
	Theme      Theme
	WeekStart  string // day key of the active week's Saturday
	Selected   string // day key, always within [WeekStart, WeekStart+6]
	Items      []model.Item
	Completion CompletionLog
	UI         UIState
}

// NewDefaultState seeds the tracker with three starter routines scheduled
// every day, the current week, and today selected.
func NewDefaultState(now time.Time) State {
	ws := model.StartOfWeek(now)
	return State{
		Theme:     ThemeDark,
		WeekStart: model.DayKey(ws),
		Selected:  model.DayKey(now),
		Items: []model.Item{
			model.NewItem("Walk 30 min", model.CategoryHealth, "Easy pace. If busy: 10 minutes is fine.", model.EveryDay()),
			model.NewItem("Read 20 min", model.CategoryStudy, "Any book/article. Just keep it consistent.", model.EveryDay()),
			model.NewItem("Deep work 45 min", model.CategoryWork, "No phone. One task only.", model.EveryDay()),
		},
		Completion: make(CompletionLog),
		UI:         NewUIState(),
	}
}

// SetWeekStart moves the active week to the one containing date and snaps
// the selected day back to the week's Saturday when it would fall outside
// the new range.
func (s *State) SetWeekStart(date time.Time) {
	ws := model.StartOfWeek(date)
	s.WeekStart = model.DayKey(ws)

	sel, err := model.ParseDayKey(s.Selected)
	if err != nil {
		s.Selected = s.WeekStart
		return
	}
	end := model.AddDays(ws, 6)
	if sel.Before(ws) || sel.After(end) {
		s.Selected = s.WeekStart
	}
}

// ShiftWeek moves delta whole weeks.
func (s *State) ShiftWeek(delta int) {
	ws, err := model.ParseDayKey(s.WeekStart)
	if err != nil {
		return
	}
	s.SetWeekStart(model.AddDays(ws, 7*delta))
}

// SetSelectedDay selects a day inside the active week; out-of-week keys
// move the active week along with the selection.
func (s *State) SetSelectedDay(dayKey string) error {
	day, err := model.ParseDayKey(dayKey)
	if err != nil {
		return err
	}
	s.Selected = model.DayKey(day)
	s.SetWeekStart(day)
	return nil
}

// WeekDayKeys lists the seven day keys of the active week.
func (s *State) WeekDayKeys() []string {
	ws, err := model.ParseDayKey(s.WeekStart)
	if err != nil {
		return nil
	}
	keys := make([]string, 7)
	for i := 0; i < 7; i++ {
		keys[i] = model.DayKey(model.AddDays(ws, i))
	}
	return keys
}

func (s *State) SetDone(dayKey, itemID string, done bool) {
	s.Completion.SetDone(dayKey, itemID, done)
}

func (s *State) IsDone(dayKey, itemID string) bool {
	return s.Completion.IsDone(dayKey, itemID)
}

// ResetWeek clears the active week's check-offs only.
func (s *State) ResetWeek() {
	s.Completion.ResetWeek(s.WeekStart)
}

func (s *State) ToggleTheme() {
	if s.Theme == ThemeDark {
		s.Theme = ThemeLight
		return
	}
	s.Theme = ThemeDark
}

// ToggleDesc flips the description-expanded flag for an item.
func (s *State) ToggleDesc(itemID string) {
	if s.UI.OpenDesc == nil {
		s.UI.OpenDesc = make(map[string]bool)
	}
	s.UI.OpenDesc[itemID] = !s.UI.OpenDesc[itemID]
}
