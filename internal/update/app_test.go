package update

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/routined/internal/model"
	"github.com/sandeepkv93/routined/internal/tracker"
)

var testNow = time.Date(2024, 1, 9, 9, 0, 0, 0, time.Local)

func newTestModel() Model {
	m := NewModel(tracker.NewDefaultState(testNow))
	m.now = func() time.Time { return testNow }
	return m
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

func TestNewModelDefaults(t *testing.T) {
	m := newTestModel()
	if m.Focus != FocusList {
		t.Fatalf("expected list focus, got %q", m.Focus)
	}
	if m.Filter != model.CategoryAll {
		t.Fatalf("expected All filter, got %q", m.Filter)
	}
	if m.State.Selected != "2024-01-09" {
		t.Fatalf("selected got %q", m.State.Selected)
	}
	if m.Keys.Quit != "q" {
		t.Fatalf("expected quit key q, got %q", m.Keys.Quit)
	}
}

func TestDayAndWeekNavigationKeys(t *testing.T) {
	m := newTestModel()

	m = press(t, m, keyRunes("l"))
	if m.State.Selected != "2024-01-10" {
		t.Fatalf("l: selected got %q", m.State.Selected)
	}
	m = press(t, m, keyRunes("h"))
	if m.State.Selected != "2024-01-09" {
		t.Fatalf("h: selected got %q", m.State.Selected)
	}

	m = press(t, m, keyRunes("H"))
	if m.State.WeekStart != "2023-12-30" {
		t.Fatalf("H: week start got %q", m.State.WeekStart)
	}
	m = press(t, m, keyRunes("L"), keyRunes("L"))
	if m.State.WeekStart != "2024-01-13" {
		t.Fatalf("LL: week start got %q", m.State.WeekStart)
	}

	m = press(t, m, keyRunes("t"))
	if m.State.Selected != "2024-01-09" || m.State.WeekStart != "2024-01-06" {
		t.Fatalf("t: got %q / %q", m.State.Selected, m.State.WeekStart)
	}
}

func TestToggleDoneKey(t *testing.T) {
	m := newTestModel()
	item := m.visibleItems()[0]

	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if !m.State.IsDone("2024-01-09", item.ID) {
		t.Fatal("space must mark done")
	}
	if m.State.Streak(item.ID, "2024-01-09") != 1 {
		t.Fatal("streak must reflect the check-off")
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if m.State.IsDone("2024-01-09", item.ID) {
		t.Fatal("space must toggle back off")
	}
}

func TestCursorMovementClampsToVisible(t *testing.T) {
	m := newTestModel()
	n := len(m.visibleItems())

	for i := 0; i < n+3; i++ {
		m = press(t, m, keyRunes("j"))
	}
	if m.Cursor != n-1 {
		t.Fatalf("cursor got %d want %d", m.Cursor, n-1)
	}
	for i := 0; i < n+3; i++ {
		m = press(t, m, keyRunes("k"))
	}
	if m.Cursor != 0 {
		t.Fatalf("cursor got %d want 0", m.Cursor)
	}
}

func TestFilterCycleKey(t *testing.T) {
	m := newTestModel()
	seen := []string{m.Filter}
	for i := 0; i < 3; i++ {
		m = press(t, m, keyRunes("f"))
		seen = append(seen, m.Filter)
	}
	want := []string{"All", "Health", "Study", "Work"}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("filter cycle got %v want %v", seen, want)
		}
	}
	m = press(t, m, keyRunes("f"))
	if m.Filter != model.CategoryAll {
		t.Fatalf("filter must wrap to All, got %q", m.Filter)
	}
}

func TestAddFormFlowDefaultsToSelectedDay(t *testing.T) {
	m := newTestModel()
	before := len(m.State.Items)

	m = press(t, m, keyRunes("a"))
	if m.Focus != FocusAdd || m.Picker == nil {
		t.Fatal("a must open the add form with a picker")
	}
	if m.Picker.State() != tracker.PickerCollapsed {
		t.Fatalf("picker must start collapsed, got %q", m.Picker.State())
	}

	m = press(t, m,
		keyRunes("Stretch"),
		tea.KeyMsg{Type: tea.KeyEnter}, // to category
		tea.KeyMsg{Type: tea.KeyEnter}, // to desc
		tea.KeyMsg{Type: tea.KeyEnter}, // to days
		tea.KeyMsg{Type: tea.KeyEnter}, // submit, picker never opened
	)
	if m.Focus != FocusList {
		t.Fatalf("form must close after submit, focus %q", m.Focus)
	}
	if len(m.State.Items) != before+1 {
		t.Fatalf("items got %d want %d", len(m.State.Items), before+1)
	}
	added := m.State.Items[0]
	if added.Name != "Stretch" {
		t.Fatalf("name got %q", added.Name)
	}
	want := model.SingleDay(3) // Tuesday in Saturday-first order
	if added.Days != want {
		t.Fatalf("schedule got %v want %v", added.Days, want)
	}
}

func TestAddFormSubmitRejectedWhilePickerOpen(t *testing.T) {
	m := newTestModel()
	before := len(m.State.Items)

	m = press(t, m,
		keyRunes("a"),
		keyRunes("Yoga"),
		tea.KeyMsg{Type: tea.KeyEnter},
		tea.KeyMsg{Type: tea.KeyEnter},
		tea.KeyMsg{Type: tea.KeyEnter},
		tea.KeyMsg{Type: tea.KeySpace}, // open picker
	)
	if m.Picker.State() != tracker.PickerOpen {
		t.Fatalf("picker must be open, got %q", m.Picker.State())
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if len(m.State.Items) != before {
		t.Fatal("submit must be rejected while picker is open")
	}
	if !m.Status.IsError || !strings.Contains(m.Status.Text, "picker") {
		t.Fatalf("expected corrective status, got %+v", m.Status)
	}
	if m.Focus != FocusAdd {
		t.Fatal("form must stay open after rejection")
	}

	// Confirm, then submit succeeds.
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyEnter})
	if len(m.State.Items) != before+1 {
		t.Fatalf("items got %d want %d", len(m.State.Items), before+1)
	}
}

func TestAddFormPickerToggleAndPreset(t *testing.T) {
	m := newTestModel()
	m = press(t, m,
		keyRunes("a"),
		keyRunes("Run"),
		tea.KeyMsg{Type: tea.KeyEnter},
		tea.KeyMsg{Type: tea.KeyEnter},
		tea.KeyMsg{Type: tea.KeyEnter},
		tea.KeyMsg{Type: tea.KeySpace},
		keyRunes("1"), // toggle Sat on
		keyRunes("4"), // toggle Tue off (was the default)
		keyRunes("7"), // toggle Fri on
	)
	want := model.Schedule{true, false, false, false, false, false, true}
	if m.Picker.Draft() != want {
		t.Fatalf("draft got %v want %v", m.Picker.Draft(), want)
	}

	m = press(t, m, keyRunes("W"))
	if m.Picker.Draft() != model.Weekdays() {
		t.Fatalf("preset got %v", m.Picker.Draft())
	}
}

func TestDeleteConfirmFlow(t *testing.T) {
	m := newTestModel()
	target := m.visibleItems()[0]
	m.State.SetDone("2024-01-09", target.ID, true)

	m = press(t, m, keyRunes("d"))
	if m.Focus != FocusConfirm || m.Confirm.Kind != ConfirmDelete {
		t.Fatalf("d must prompt for confirmation, got %+v", m.Confirm)
	}

	m = press(t, m, keyRunes("n"))
	if m.Focus != FocusList {
		t.Fatal("n must cancel the prompt")
	}
	if _, ok := m.State.Item(target.ID); !ok {
		t.Fatal("cancelled delete must keep the routine")
	}

	m = press(t, m, keyRunes("d"), keyRunes("y"))
	if _, ok := m.State.Item(target.ID); ok {
		t.Fatal("confirmed delete must remove the routine")
	}
	if m.State.IsDone("2024-01-09", target.ID) {
		t.Fatal("delete must cascade to completion history")
	}
}

func TestResetWeekConfirmFlow(t *testing.T) {
	m := newTestModel()
	item := m.visibleItems()[0]
	m.State.SetDone("2024-01-09", item.ID, true)

	m = press(t, m, keyRunes("r"), keyRunes("y"))
	if m.State.IsDone("2024-01-09", item.ID) {
		t.Fatal("reset must clear the current week")
	}
}

func TestEditFormAllOrNothing(t *testing.T) {
	m := newTestModel()
	original := m.visibleItems()[0]

	m = press(t, m, keyRunes("e"))
	if m.Focus != FocusEdit {
		t.Fatalf("e must open the edit form, got %q", m.Focus)
	}

	// Clear the schedule text and replace it with garbage.
	m.scheduleInput.SetValue("Funday")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if !m.Status.IsError {
		t.Fatal("bad schedule text must be rejected")
	}
	got, _ := m.State.Item(original.ID)
	if got != original {
		t.Fatal("rejected edit must leave the routine untouched")
	}

	m.scheduleInput.SetValue("Mon,Wed")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if m.Focus != FocusList {
		t.Fatal("valid edit must close the form")
	}
	got, _ = m.State.Item(original.ID)
	if got.Days.Text() != "Mon,Wed" {
		t.Fatalf("schedule got %q want Mon,Wed", got.Days.Text())
	}
}

func TestPaletteFilterCommand(t *testing.T) {
	m := newTestModel()
	m = press(t, m,
		keyRunes("/"),
		keyRunes("filter study"),
		tea.KeyMsg{Type: tea.KeyEnter},
	)
	if m.Filter != "Study" {
		t.Fatalf("filter got %q want Study", m.Filter)
	}
	if m.Focus != FocusList {
		t.Fatal("palette must close after execution")
	}
}

func TestPaletteGotoCommand(t *testing.T) {
	m := newTestModel()
	m = press(t, m,
		keyRunes("/"),
		keyRunes("goto 2024-02-14"),
		tea.KeyMsg{Type: tea.KeyEnter},
	)
	if m.State.Selected != "2024-02-14" {
		t.Fatalf("selected got %q", m.State.Selected)
	}
	if m.State.WeekStart != "2024-02-10" {
		t.Fatalf("week start got %q", m.State.WeekStart)
	}
}

func TestPaletteUnknownCommandSetsError(t *testing.T) {
	m := newTestModel()
	m = press(t, m,
		keyRunes("/"),
		keyRunes("frobnicate"),
		tea.KeyMsg{Type: tea.KeyEnter},
	)
	if !m.Status.IsError {
		t.Fatalf("expected error status, got %+v", m.Status)
	}
}

func TestThemeKeyTogglesAndPersistsInView(t *testing.T) {
	m := newTestModel()
	m = press(t, m, keyRunes("T"))
	if m.State.Theme != tracker.ThemeLight {
		t.Fatalf("theme got %q want light", m.State.Theme)
	}
	m = press(t, m, keyRunes("T"))
	if m.State.Theme != tracker.ThemeDark {
		t.Fatalf("theme got %q want dark", m.State.Theme)
	}
}

func TestImportLoadedMsgSwapsStateAtomically(t *testing.T) {
	m := newTestModel()
	itemsBefore := len(m.State.Items)

	m = press(t, m, ImportLoadedMsg{Path: "bad.json", Raw: []byte(`{"items":[]}`)})
	if len(m.State.Items) != itemsBefore {
		t.Fatal("invalid import must not touch the live state")
	}
	if !m.Status.IsError {
		t.Fatalf("expected error status, got %+v", m.Status)
	}

	raw := []byte(`{"items":[{"id":"x","name":"Swim","category":"Health","desc":""}],"completion":{}}`)
	m = press(t, m, ImportLoadedMsg{Path: "good.json", Raw: raw})
	if len(m.State.Items) != 1 || m.State.Items[0].Name != "Swim" {
		t.Fatalf("import must replace the state, got %+v", m.State.Items)
	}
	if m.Status.IsError {
		t.Fatalf("unexpected error status: %+v", m.Status)
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel()
	updated, cmd := m.Update(keyRunes("q"))
	next := updated.(Model)
	if !next.Quitting {
		t.Fatal("q must set quitting")
	}
	if cmd == nil {
		t.Fatal("q must return tea.Quit")
	}
}

func TestViewRendersWeekAndRoutines(t *testing.T) {
	m := newTestModel()
	out := m.View()
	if !strings.Contains(out, "2024-01-09") {
		t.Fatalf("view must show the selected day:\n%s", out)
	}
	if !strings.Contains(out, "Walk 30 min") {
		t.Fatalf("view must list seeded routines:\n%s", out)
	}
}
