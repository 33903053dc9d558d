package tracker

import (
	"testing"
	"time"

	"github.com/sandeepkv93/routined/internal/model"
)

// Week of Saturday 2024-01-06, Tuesday 2024-01-09 selected: adding with the
// default (unconfirmed) draft yields a Tuesday-only schedule, a single
// check-off gives streak 1, and week navigation must not disturb either.
func TestAddOnSelectedDayScenario(t *testing.T) {
	now := time.Date(2024, 1, 9, 9, 0, 0, 0, time.Local)
	s := NewDefaultState(now)
	s.Items = nil

	index, err := model.DayIndex(s.Selected)
	if err != nil {
		t.Fatalf("day index: %v", err)
	}
	picker, err := NewDayPicker(index)
	if err != nil {
		t.Fatalf("new picker: %v", err)
	}

	it, ok := s.AddItem("Walk", model.CategoryHealth, "", picker.Draft())
	if !ok {
		t.Fatal("add declined")
	}
	want := model.Schedule{false, false, false, true, false, false, false}
	if it.Days != want {
		t.Fatalf("schedule got %v want %v", it.Days, want)
	}

	s.SetDone("2024-01-09", it.ID, true)
	if got := s.Streak(it.ID, "2024-01-09"); got != 1 {
		t.Fatalf("streak got %d want 1", got)
	}

	s.ShiftWeek(1)
	s.ShiftWeek(-1)
	if got := s.Streak(it.ID, "2024-01-09"); got != 1 {
		t.Fatalf("streak after week navigation got %d want 1", got)
	}
	if !s.IsDone("2024-01-09", it.ID) {
		t.Fatal("completion lost after week navigation")
	}
}

func TestToggleTheme(t *testing.T) {
	s := NewDefaultState(time.Now())
	if s.Theme != ThemeDark {
		t.Fatalf("default theme got %q", s.Theme)
	}
	s.ToggleTheme()
	if s.Theme != ThemeLight {
		t.Fatalf("theme got %q want light", s.Theme)
	}
	s.ToggleTheme()
	if s.Theme != ThemeDark {
		t.Fatalf("theme got %q want dark", s.Theme)
	}
}

func TestNormalizeTheme(t *testing.T) {
	if NormalizeTheme("light") != ThemeLight {
		t.Fatal("light must normalize to light")
	}
	for _, raw := range []string{"dark", "", "neon"} {
		if NormalizeTheme(raw) != ThemeDark {
			t.Fatalf("%q must normalize to dark", raw)
		}
	}
}
