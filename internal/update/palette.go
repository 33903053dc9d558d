package update

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/routined/internal/commands"
	"github.com/sandeepkv93/routined/internal/model"
	"github.com/sandeepkv93/routined/internal/tracker"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closePalette()
		m.Status = StatusBar{Text: "command palette closed", IsError: false}
		return m, nil
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		return m.executePaletteCommand()
	default:
		if msg.Type == tea.KeyRunes {
			m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
			m.Palette.Input = m.commandInput.Value()
			return m, nil
		}
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		_ = cmd
		m.Palette.Input = m.commandInput.Value()
	}
	return m, nil
}

func (m *Model) closePalette() {
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()
	m.Focus = FocusList
}

func (m Model) executePaletteCommand() (tea.Model, tea.Cmd) {
	raw := strings.TrimSpace(m.Palette.Input)
	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.closePalette()
		return m, nil
	}

	var teaCmd tea.Cmd
	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			index, idxErr := model.DayIndex(m.State.Selected)
			if idxErr != nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: idxErr.Error()}
			}
			item, ok := m.State.AddItem(a.Name, model.CategoryHealth, "", model.SingleDay(index))
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "routine needs a name"}
			}
			m.Cursor = 0
			m.persist()
			return commands.Result{Message: fmt.Sprintf("added routine: %s", item.Name)}, nil
		},
		Filter: func(f commands.FilterArgs) (commands.Result, error) {
			if strings.EqualFold(f.Category, model.CategoryAll) {
				m.Filter = model.CategoryAll
			} else {
				lowered := strings.ToLower(f.Category)
				cat := model.Category(strings.ToUpper(lowered[:1]) + lowered[1:])
				if !cat.IsValid() {
					return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown category: %s", f.Category)}
				}
				m.Filter = string(cat)
			}
			m.clampCursor()
			return commands.Result{Message: "filter: " + m.Filter}, nil
		},
		Goto: func(g commands.GotoArgs) (commands.Result, error) {
			day := g.Day
			if day == "today" {
				day = model.DayKey(m.now())
				m.State.SetWeekStart(m.now())
			}
			if err := m.State.SetSelectedDay(day); err != nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: err.Error()}
			}
			m.clampCursor()
			m.persist()
			return commands.Result{Message: "selected " + day}, nil
		},
		Week: func(w commands.WeekArgs) (commands.Result, error) {
			switch w.Direction {
			case "prev":
				m.State.ShiftWeek(-1)
			case "next":
				m.State.ShiftWeek(1)
			case "reset":
				m.State.ResetWeek()
			}
			m.clampCursor()
			m.persist()
			return commands.Result{Message: "week " + w.Direction}, nil
		},
		Theme: func(t commands.ThemeArgs) (commands.Result, error) {
			switch t.Mode {
			case "dark":
				m.State.Theme = tracker.ThemeDark
			case "light":
				m.State.Theme = tracker.ThemeLight
			default:
				m.State.ToggleTheme()
			}
			m.persist()
			return commands.Result{Message: fmt.Sprintf("theme: %s", m.State.Theme)}, nil
		},
		Export: func(e commands.ExportArgs) (commands.Result, error) {
			raw, expErr := tracker.Export(m.State)
			if expErr != nil {
				return commands.Result{}, expErr
			}
			teaCmd = exportCmd(e.Path, raw)
			return commands.Result{Message: "exporting to " + e.Path}, nil
		},
		Import: func(i commands.ImportArgs) (commands.Result, error) {
			teaCmd = importCmd(i.Path)
			return commands.Result{Message: "importing " + i.Path}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
	} else {
		m.Status = StatusBar{Text: res.Message, IsError: false}
	}

	m.closePalette()
	return m, teaCmd
}

func exportCmd(path string, raw []byte) tea.Cmd {
	return func() tea.Msg {
		if err := os.WriteFile(path, raw, 0o644); err != nil {
			return AppErrorMsg{Err: fmt.Errorf("export %s: %w", path, err)}
		}
		return ExportWrittenMsg{Path: path}
	}
}

func importCmd(path string) tea.Cmd {
	return func() tea.Msg {
		raw, err := os.ReadFile(path)
		if err != nil {
			return AppErrorMsg{Err: fmt.Errorf("import %s: %w", path, err)}
		}
		return ImportLoadedMsg{Path: path, Raw: raw}
	}
}
