package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/routined/internal/model"
	"github.com/sandeepkv93/routined/internal/tracker"
	"github.com/sandeepkv93/routined/internal/views"
)

func (m Model) handleListKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case m.Keys.PrevDay:
		return m.shiftSelectedDay(-1)
	case m.Keys.NextDay:
		return m.shiftSelectedDay(1)
	case m.Keys.PrevWeek:
		return m.shiftWeek(-1)
	case m.Keys.NextWeek:
		return m.shiftWeek(1)
	case m.Keys.Today:
		return m.gotoToday()
	case "j", "down":
		if m.Cursor < len(m.visibleItems())-1 {
			m.Cursor++
		}
		return m
	case "k", "up":
		if m.Cursor > 0 {
			m.Cursor--
		}
		return m
	case " ":
		item, ok := m.cursorItem()
		if !ok {
			return m
		}
		done := !m.State.IsDone(m.State.Selected, item.ID)
		m.State.SetDone(m.State.Selected, item.ID, done)
		m.persist()
		return m
	case "o":
		item, ok := m.cursorItem()
		if !ok {
			return m
		}
		m.State.ToggleDesc(item.ID)
		m.persist()
		return m
	case m.Keys.Filter:
		m.Filter = nextFilter(m.Filter)
		m.clampCursor()
		m.Status = StatusBar{Text: "filter: " + m.Filter, IsError: false}
		return m
	case m.Keys.Add:
		return m.openAddForm()
	case m.Keys.Edit:
		item, ok := m.cursorItem()
		if !ok {
			return m
		}
		return m.openEditForm(item)
	case m.Keys.Delete:
		item, ok := m.cursorItem()
		if !ok {
			return m
		}
		m.Focus = FocusConfirm
		m.Confirm = ConfirmState{
			Kind:     ConfirmDelete,
			TargetID: item.ID,
			Prompt:   fmt.Sprintf("delete %q and its history?", item.Name),
		}
		return m
	case m.Keys.Reset:
		m.Focus = FocusConfirm
		m.Confirm = ConfirmState{
			Kind:   ConfirmReset,
			Prompt: "clear all check-offs for this week?",
		}
		return m
	}
	return m
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "y", "Y", "enter":
		switch m.Confirm.Kind {
		case ConfirmDelete:
			if err := m.State.DeleteItem(m.Confirm.TargetID); err != nil {
				m.Status = StatusBar{Text: "error: " + err.Error(), IsError: true}
			} else {
				m.Status = StatusBar{Text: "routine deleted", IsError: false}
				m.clampCursor()
				m.persist()
			}
		case ConfirmReset:
			m.State.ResetWeek()
			m.Status = StatusBar{Text: "week reset", IsError: false}
			m.persist()
		}
	case "n", "N", "esc":
		m.Status = StatusBar{Text: "cancelled", IsError: false}
	default:
		return m
	}
	m.Focus = FocusList
	m.Confirm = ConfirmState{}
	return m
}

func nextFilter(current string) string {
	order := []string{
		model.CategoryAll,
		string(model.CategoryHealth),
		string(model.CategoryStudy),
		string(model.CategoryWork),
	}
	for i, f := range order {
		if f == current {
			return order[(i+1)%len(order)]
		}
	}
	return model.CategoryAll
}

func (m Model) renderRoutinePanel() string {
	items := m.visibleItems()
	prog := m.State.DayProgress(m.State.Selected)
	progLabel := "–"
	if prog.HasData() {
		bar := m.dayProgress.ViewAs(float64(prog.Done) / float64(prog.Total))
		progLabel = fmt.Sprintf("%s %d/%d (%d%%)", bar, prog.Done, prog.Total, prog.Percent())
	}
	data := views.RoutinePanelData{
		DayLabel: m.State.Selected,
		Filter:   m.Filter,
		Progress: progLabel,
	}
	for i, item := range items {
		data.Rows = append(data.Rows, views.RoutineRowData{
			Name:     item.Name,
			Category: string(item.Category),
			Done:     m.State.IsDone(m.State.Selected, item.ID),
			Streak:   m.State.Streak(item.ID, m.State.Selected),
			DescOpen: m.State.UI.OpenDesc[item.ID],
			Selected: i == m.Cursor,
		})
	}
	return views.RenderRoutinePanel(data)
}

func (m Model) renderDetailPane() string {
	item, ok := m.cursorItem()
	if !ok {
		return views.RenderDetailPane(views.DetailPaneData{})
	}
	desc := ""
	if m.State.UI.OpenDesc[item.ID] {
		desc = views.RenderMarkdown(item.Desc, m.State.Theme == tracker.ThemeLight)
	}
	return views.RenderDetailPane(views.DetailPaneData{
		Name:         item.Name,
		Category:     string(item.Category),
		ScheduleText: item.Days.Text(),
		Streak:       m.State.Streak(item.ID, m.State.Selected),
		MarkdownDesc: desc,
	})
}
