package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/routined/internal/model"
	"github.com/sandeepkv93/routined/internal/scheduler"
	"github.com/sandeepkv93/routined/internal/tracker"
	"github.com/sandeepkv93/routined/internal/views"
)

func (m Model) Init() tea.Cmd {
	if m.Clock != nil {
		return waitForRolloverCmd(m.Clock.C())
	}
	return nil
}

func waitForRolloverCmd(ch <-chan scheduler.DayEvent) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return DayRolloverMsg{Event: ev}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		switch m.Focus {
		case FocusPalette:
			return m.handlePaletteKey(typed)
		case FocusAdd:
			return m.handleAddFormKey(typed), nil
		case FocusEdit:
			return m.handleEditFormKey(typed), nil
		case FocusConfirm:
			return m.handleConfirmKey(typed), nil
		}

		switch typed.String() {
		case "/":
			m.Focus = FocusPalette
			m.Palette.Active = true
			m.Palette.Input = ""
			m.commandInput.SetValue("")
			m.commandInput.Focus()
			m.Status = StatusBar{Text: "command palette active", IsError: false}
			return m, nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			return m, nil
		case m.Keys.Theme:
			m.State.ToggleTheme()
			m.persist()
			m.Status = StatusBar{Text: fmt.Sprintf("theme: %s", m.State.Theme), IsError: false}
			return m, nil
		case "ctrl+c", m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}
		return m.handleListKey(typed), nil

	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: "error: " + typed.Err.Error(), IsError: true}
		}
		return m, nil
	case ExportWrittenMsg:
		m.Status = StatusBar{Text: fmt.Sprintf("exported to %s", typed.Path), IsError: false}
		return m, nil
	case ImportLoadedMsg:
		return m.applyImport(typed), nil
	case DayRolloverMsg:
		m.Status = StatusBar{Text: "new day: " + typed.Event.Day, IsError: false}
		if m.Clock != nil {
			return m, waitForRolloverCmd(m.Clock.C())
		}
		return m, nil
	}

	return m, nil
}

// applyImport validates the raw document fully before touching the live
// state; on success the replacement is swapped in wholesale.
func (m Model) applyImport(msg ImportLoadedMsg) Model {
	next, err := tracker.Import(msg.Raw, m.now())
	if err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: "error: import failed: " + err.Error(), IsError: true}
		return m
	}
	m.State = next
	m.Cursor = 0
	m.Filter = model.CategoryAll
	m.persist()
	m.Status = StatusBar{Text: fmt.Sprintf("imported %s (%d routines)", msg.Path, len(next.Items)), IsError: false}
	return m
}

func (m Model) View() string {
	status := m.Status.Text
	if m.Status.IsError && !strings.Contains(strings.ToLower(status), "error") {
		status = "error: " + status
	}

	left := ""
	right := ""
	switch m.Focus {
	case FocusAdd:
		left = m.renderAddForm()
		right = m.renderHelpIfVisible()
	case FocusEdit:
		left = m.renderEditForm()
		right = m.renderHelpIfVisible()
	case FocusConfirm:
		left = m.renderRoutinePanel()
		right = views.RenderConfirmPrompt(views.ConfirmPromptData{Prompt: m.Confirm.Prompt})
	case FocusPalette:
		left = m.renderRoutinePanel()
		right = views.RenderCommandPalette(true, m.commandInput.Value())
	default:
		left = m.renderRoutinePanel()
		right = m.renderDetailPane() + m.renderHelpIfVisible()
	}

	return views.RenderApp(views.AppData{
		Header:     fmt.Sprintf("routined | week of %s | %s", m.weekRangeLabel(), m.State.Selected),
		WeekStrip:  m.renderWeekStrip(),
		LeftPane:   left,
		RightPane:  right,
		StatusLine: status,
		Footer: fmt.Sprintf("keys: %s/%s day | %s/%s week | %s today | %s add | / cmd | %s help | %s quit",
			m.Keys.PrevDay, m.Keys.NextDay, m.Keys.PrevWeek, m.Keys.NextWeek, m.Keys.Today, m.Keys.Add, m.Keys.Help, m.Keys.Quit),
		LightTheme: m.State.Theme == tracker.ThemeLight,
	})
}

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	return "\n" + views.RenderHelpPanel(views.HelpPanelData{
		Bindings: []string{
			"h/l select day, H/L change week, t today",
			"j/k move, space toggle done, o description",
			"a add, e edit, d delete, f filter, r reset week",
			"T theme, / command palette, q quit",
		},
		HelpView: m.helpModel.View(listKeyMap{}),
	})
}
