package update

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/routined/internal/model"
	"github.com/sandeepkv93/routined/internal/tracker"
	"github.com/sandeepkv93/routined/internal/views"
)

func (m Model) openAddForm() Model {
	index, err := model.DayIndex(m.State.Selected)
	if err != nil {
		m.Status = StatusBar{Text: "error: " + err.Error(), IsError: true}
		return m
	}
	picker, err := tracker.NewDayPicker(index)
	if err != nil {
		m.Status = StatusBar{Text: "error: " + err.Error(), IsError: true}
		return m
	}
	m.Picker = picker
	m.Add = AddFormState{Active: true, Field: FieldName, Category: model.CategoryHealth}
	m.Focus = FocusAdd
	m.nameInput.SetValue("")
	m.descInput.SetValue("")
	m.nameInput.Focus()
	m.descInput.Blur()
	m.Status = StatusBar{Text: "add routine", IsError: false}
	return m
}

func (m Model) openEditForm(item model.Item) Model {
	m.Edit = EditFormState{Active: true, ItemID: item.ID, Field: FieldName, Category: item.Category}
	m.Focus = FocusEdit
	m.nameInput.SetValue(item.Name)
	m.descInput.SetValue(item.Desc)
	m.scheduleInput.SetValue(item.Days.Text())
	m.nameInput.Focus()
	m.descInput.Blur()
	m.scheduleInput.Blur()
	m.Status = StatusBar{Text: "edit routine", IsError: false}
	return m
}

func (m Model) handleAddFormKey(msg tea.KeyMsg) Model {
	keyStr := msg.String()

	if m.Add.Field == FieldDays && m.Picker != nil && m.Picker.State() == tracker.PickerOpen {
		return m.handlePickerKey(keyStr)
	}

	switch keyStr {
	case "esc":
		return m.closeAddForm("add cancelled")
	case "ctrl+s":
		return m.submitAddForm()
	case "tab":
		m.Add.Field = nextField(m.Add.Field)
		m.syncFormFocus(m.Add.Field)
		return m
	case "shift+tab":
		m.Add.Field = prevField(m.Add.Field)
		m.syncFormFocus(m.Add.Field)
		return m
	}

	switch m.Add.Field {
	case FieldName:
		if keyStr == "enter" {
			m.Add.Field = FieldCategory
			m.syncFormFocus(m.Add.Field)
			return m
		}
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		_ = cmd
	case FieldCategory:
		switch keyStr {
		case "left", "right", " ":
			m.Add.Category = nextCategory(m.Add.Category)
		case "enter":
			m.Add.Field = FieldDesc
			m.syncFormFocus(m.Add.Field)
		}
	case FieldDesc:
		if keyStr == "enter" {
			m.Add.Field = FieldDays
			m.syncFormFocus(m.Add.Field)
			return m
		}
		var cmd tea.Cmd
		m.descInput, cmd = m.descInput.Update(msg)
		_ = cmd
	case FieldDays:
		switch keyStr {
		case " ", "p":
			m.Picker.Open()
		case "enter":
			return m.submitAddForm()
		}
	}
	return m
}

// handlePickerKey routes keys while the chip picker is open. The form
// cannot be submitted from here; the picker must be confirmed or
// cancelled first.
func (m Model) handlePickerKey(keyStr string) Model {
	switch keyStr {
	case "ctrl+s":
		return m.submitAddForm()
	case "1", "2", "3", "4", "5", "6", "7":
		m.Picker.ToggleDay(int(keyStr[0] - '1'))
	case "A", "a":
		m.Picker.ApplyPreset(model.EveryDay())
	case "W", "w":
		m.Picker.ApplyPreset(model.Weekdays())
	case "E", "e":
		m.Picker.ApplyPreset(model.Weekend())
	case "enter":
		if err := m.Picker.Confirm(); err != nil {
			m.Status = StatusBar{Text: "error: pick at least one day", IsError: true}
		}
	case "esc":
		m.Picker.Cancel()
	}
	return m
}

func (m Model) submitAddForm() Model {
	if m.Picker.State() == tracker.PickerOpen {
		m.Status = StatusBar{Text: "error: confirm or cancel the day picker first", IsError: true}
		return m
	}
	item, ok := m.State.AddItem(m.nameInput.Value(), m.Add.Category, m.descInput.Value(), m.Picker.Draft())
	if !ok {
		m.Status = StatusBar{Text: "error: routine needs a name and at least one day", IsError: true}
		return m
	}
	m.persist()
	m = m.closeAddForm("added " + item.Name)
	m.Cursor = 0
	return m
}

func (m Model) closeAddForm(status string) Model {
	m.Add = AddFormState{}
	m.Picker = nil
	m.Focus = FocusList
	m.nameInput.Blur()
	m.descInput.Blur()
	m.Status = StatusBar{Text: status, IsError: false}
	return m
}

func (m Model) handleEditFormKey(msg tea.KeyMsg) Model {
	keyStr := msg.String()

	switch keyStr {
	case "esc":
		return m.closeEditForm("edit cancelled")
	case "ctrl+s":
		return m.submitEditForm()
	case "tab":
		m.Edit.Field = nextField(m.Edit.Field)
		m.syncFormFocus(m.Edit.Field)
		return m
	case "shift+tab":
		m.Edit.Field = prevField(m.Edit.Field)
		m.syncFormFocus(m.Edit.Field)
		return m
	}

	switch m.Edit.Field {
	case FieldName:
		if keyStr == "enter" {
			m.Edit.Field = FieldCategory
			m.syncFormFocus(m.Edit.Field)
			return m
		}
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		_ = cmd
	case FieldCategory:
		switch keyStr {
		case "left", "right", " ":
			m.Edit.Category = nextCategory(m.Edit.Category)
		case "enter":
			m.Edit.Field = FieldDesc
			m.syncFormFocus(m.Edit.Field)
		}
	case FieldDesc:
		if keyStr == "enter" {
			m.Edit.Field = FieldDays
			m.syncFormFocus(m.Edit.Field)
			return m
		}
		var cmd tea.Cmd
		m.descInput, cmd = m.descInput.Update(msg)
		_ = cmd
	case FieldDays:
		if keyStr == "enter" {
			return m.submitEditForm()
		}
		var cmd tea.Cmd
		m.scheduleInput, cmd = m.scheduleInput.Update(msg)
		_ = cmd
	}
	return m
}

// submitEditForm applies all fields or none; a bad schedule text leaves
// the routine untouched.
func (m Model) submitEditForm() Model {
	err := m.State.EditItem(m.Edit.ItemID, m.nameInput.Value(), m.Edit.Category, m.descInput.Value(), m.scheduleInput.Value())
	if err != nil {
		m.Status = StatusBar{Text: "error: " + err.Error(), IsError: true}
		return m
	}
	m.persist()
	return m.closeEditForm("routine updated")
}

func (m Model) closeEditForm(status string) Model {
	m.Edit = EditFormState{}
	m.Focus = FocusList
	m.nameInput.Blur()
	m.descInput.Blur()
	m.scheduleInput.Blur()
	m.Status = StatusBar{Text: status, IsError: false}
	return m
}

func (m *Model) syncFormFocus(field FormField) {
	m.nameInput.Blur()
	m.descInput.Blur()
	m.scheduleInput.Blur()
	switch field {
	case FieldName:
		m.nameInput.Focus()
	case FieldDesc:
		m.descInput.Focus()
	case FieldDays:
		if m.Focus == FocusEdit {
			m.scheduleInput.Focus()
		}
	}
}

func nextField(f FormField) FormField {
	switch f {
	case FieldName:
		return FieldCategory
	case FieldCategory:
		return FieldDesc
	case FieldDesc:
		return FieldDays
	default:
		return FieldName
	}
}

func prevField(f FormField) FormField {
	switch f {
	case FieldCategory:
		return FieldName
	case FieldDesc:
		return FieldCategory
	case FieldDays:
		return FieldDesc
	default:
		return FieldDays
	}
}

func nextCategory(c model.Category) model.Category {
	cats := model.Categories()
	for i, cat := range cats {
		if cat == c {
			return cats[(i+1)%len(cats)]
		}
	}
	return model.CategoryHealth
}

func (m Model) renderAddForm() string {
	return views.RenderForm(views.FormData{
		Title:       "add routine",
		NameView:    m.nameInput.View(),
		Category:    string(m.Add.Category),
		DescView:    m.descInput.View(),
		ScheduleRow: m.renderPickerRow(),
		ActiveField: string(m.Add.Field),
	})
}

func (m Model) renderEditForm() string {
	return views.RenderForm(views.FormData{
		Title:       "edit routine",
		NameView:    m.nameInput.View(),
		Category:    string(m.Edit.Category),
		DescView:    m.descInput.View(),
		ScheduleRow: m.scheduleInput.View(),
		ActiveField: string(m.Edit.Field),
	})
}

func (m Model) renderPickerRow() string {
	if m.Picker == nil {
		return ""
	}
	return views.RenderDayPicker(views.DayPickerData{
		Open:      m.Picker.State() == tracker.PickerOpen,
		Confirmed: m.Picker.Confirmed(),
		Chips:     [7]bool(m.Picker.Draft()),
		Abbrevs:   model.DayAbbrevs,
	})
}
