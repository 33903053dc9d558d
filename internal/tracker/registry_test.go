package tracker

import (
	"errors"
	"testing"
	"time"

	"github.com/sandeepkv93/routined/internal/model"
)

func emptyState() State {
	s := NewDefaultState(time.Date(2024, 1, 9, 12, 0, 0, 0, time.Local))
	s.Items = nil
	return s
}

func TestAddItemDeclinesBlankName(t *testing.T) {
	s := emptyState()
	if _, ok := s.AddItem("   ", model.CategoryHealth, "", model.EveryDay()); ok {
		t.Fatal("expected blank name declined")
	}
	if len(s.Items) != 0 {
		t.Fatalf("expected no items, got %d", len(s.Items))
	}
}

func TestAddItemCoercesUnknownCategory(t *testing.T) {
	s := emptyState()
	it, ok := s.AddItem("Walk", model.Category("Chores"), "", model.EveryDay())
	if !ok {
		t.Fatal("expected add to succeed")
	}
	if it.Category != model.CategoryHealth {
		t.Fatalf("category got %q want Health", it.Category)
	}
}

func TestAddItemPrepends(t *testing.T) {
	s := emptyState()
	s.AddItem("First", model.CategoryHealth, "", model.EveryDay())
	second, _ := s.AddItem("Second", model.CategoryWork, "", model.EveryDay())
	if s.Items[0].ID != second.ID {
		t.Fatal("expected newest item first")
	}
}

func TestEditItemAllOrNothing(t *testing.T) {
	s := emptyState()
	it, _ := s.AddItem("Walk", model.CategoryHealth, "old", model.EveryDay())

	err := s.EditItem(it.ID, "Walk further", model.CategoryHealth, "new", "Funday")
	if err == nil {
		t.Fatal("expected invalid schedule text rejected")
	}
	got, _ := s.Item(it.ID)
	if got.Name != "Walk" || got.Desc != "old" || !got.Days.IsEveryDay() {
		t.Fatalf("partial mutation after failed edit: %#v", got)
	}

	if err := s.EditItem(it.ID, "Walk further", model.CategoryStudy, "new", "Mon,Wed"); err != nil {
		t.Fatalf("edit failed: %v", err)
	}
	got, _ = s.Item(it.ID)
	if got.Name != "Walk further" || got.Category != model.CategoryStudy || got.Desc != "new" {
		t.Fatalf("edit not applied: %#v", got)
	}
	if got.Days.Text() != "Mon,Wed" {
		t.Fatalf("schedule got %q want Mon,Wed", got.Days.Text())
	}
}

func TestEditItemUnknownID(t *testing.T) {
	s := emptyState()
	if err := s.EditItem("nope", "Name", model.CategoryHealth, "", "All"); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestDeleteItemCascades(t *testing.T) {
	s := emptyState()
	it, _ := s.AddItem("Walk", model.CategoryHealth, "", model.EveryDay())
	other, _ := s.AddItem("Read", model.CategoryStudy, "", model.EveryDay())

	s.SetDone("2024-01-09", it.ID, true)
	s.SetDone("2024-01-16", it.ID, true)
	s.SetDone("2024-01-09", other.ID, true)
	s.ToggleDesc(it.ID)

	if err := s.DeleteItem(it.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, ok := s.Item(it.ID); ok {
		t.Fatal("item still present after delete")
	}
	for weekKey, week := range s.Completion {
		for dayKey, day := range week {
			if day[it.ID] {
				t.Fatalf("dangling completion under %s/%s", weekKey, dayKey)
			}
		}
	}
	if _, ok := s.UI.OpenDesc[it.ID]; ok {
		t.Fatal("transient UI flag survived delete")
	}
	if !s.IsDone("2024-01-09", other.ID) {
		t.Fatal("other item's completion must survive")
	}
}

func TestVisibleForDay(t *testing.T) {
	s := emptyState()
	s.AddItem("Walk", model.CategoryHealth, "", model.EveryDay())
	s.AddItem("Gym", model.CategoryHealth, "", model.SingleDay(3)) // Tuesday
	s.AddItem("Deep work", model.CategoryWork, "", model.EveryDay())

	all := s.VisibleForDay("2024-01-09", model.CategoryAll) // Tuesday
	if len(all) != 3 {
		t.Fatalf("all filter got %d want 3", len(all))
	}
	health := s.VisibleForDay("2024-01-09", string(model.CategoryHealth))
	if len(health) != 2 {
		t.Fatalf("health filter got %d want 2", len(health))
	}
	wednesday := s.VisibleForDay("2024-01-10", model.CategoryAll)
	if len(wednesday) != 2 {
		t.Fatalf("wednesday got %d want 2", len(wednesday))
	}
}

func TestSetWeekStartSnapsSelection(t *testing.T) {
	s := NewDefaultState(time.Date(2024, 1, 9, 12, 0, 0, 0, time.Local))
	if s.WeekStart != "2024-01-06" || s.Selected != "2024-01-09" {
		t.Fatalf("unexpected initial state: week=%s selected=%s", s.WeekStart, s.Selected)
	}

	s.ShiftWeek(1)
	if s.WeekStart != "2024-01-13" {
		t.Fatalf("week start got %s want 2024-01-13", s.WeekStart)
	}
	if s.Selected != "2024-01-13" {
		t.Fatalf("selection must snap to Saturday, got %s", s.Selected)
	}

	s.ShiftWeek(-1)
	if s.WeekStart != "2024-01-06" || s.Selected != "2024-01-06" {
		t.Fatalf("unexpected state after shift back: week=%s selected=%s", s.WeekStart, s.Selected)
	}
}

func TestSetSelectedDayMovesWeek(t *testing.T) {
	s := NewDefaultState(time.Date(2024, 1, 9, 12, 0, 0, 0, time.Local))
	if err := s.SetSelectedDay("2024-01-20"); err != nil {
		t.Fatalf("set selected day: %v", err)
	}
	if s.WeekStart != "2024-01-20" || s.Selected != "2024-01-20" {
		t.Fatalf("unexpected state: week=%s selected=%s", s.WeekStart, s.Selected)
	}
	if err := s.SetSelectedDay("bogus"); err == nil {
		t.Fatal("expected error for malformed day key")
	}
}

func TestWeekDayKeys(t *testing.T) {
	s := NewDefaultState(time.Date(2024, 1, 9, 12, 0, 0, 0, time.Local))
	keys := s.WeekDayKeys()
	want := []string{"2024-01-06", "2024-01-07", "2024-01-08", "2024-01-09", "2024-01-10", "2024-01-11", "2024-01-12"}
	if len(keys) != 7 {
		t.Fatalf("got %d keys", len(keys))
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("key[%d] got %s want %s", i, keys[i], want[i])
		}
	}
}

func TestResetWeekOnlyActiveWeek(t *testing.T) {
	s := emptyState()
	it, _ := s.AddItem("Walk", model.CategoryHealth, "", model.EveryDay())
	s.SetDone("2024-01-09", it.ID, true)
	s.SetDone("2024-01-16", it.ID, true)

	s.ResetWeek()
	if s.IsDone("2024-01-09", it.ID) {
		t.Fatal("active week should be cleared")
	}
	if !s.IsDone("2024-01-16", it.ID) {
		t.Fatal("other weeks must be untouched")
	}
}
