package update

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/sandeepkv93/routined/internal/model"
	"github.com/sandeepkv93/routined/internal/scheduler"
	"github.com/sandeepkv93/routined/internal/storage"
	"github.com/sandeepkv93/routined/internal/tracker"
)

type Focus string

const (
	FocusList    Focus = "list"
	FocusAdd     Focus = "add"
	FocusEdit    Focus = "edit"
	FocusConfirm Focus = "confirm"
	FocusPalette Focus = "palette"
)

type FormField string

const (
	FieldName     FormField = "name"
	FieldCategory FormField = "category"
	FieldDesc     FormField = "desc"
	FieldDays     FormField = "days"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	PrevDay  string
	NextDay  string
	PrevWeek string
	NextWeek string
	Today    string
	Add      string
	Edit     string
	Delete   string
	Filter   string
	Theme    string
	Reset    string
	Help     string
	Quit     string
}

type AddFormState struct {
	Active   bool
	Field    FormField
	Category model.Category
}

type EditFormState struct {
	Active   bool
	ItemID   string
	Field    FormField
	Category model.Category
}

type ConfirmKind string

const (
	ConfirmDelete ConfirmKind = "delete"
	ConfirmReset  ConfirmKind = "reset"
)

type ConfirmState struct {
	Kind     ConfirmKind
	TargetID string
	Prompt   string
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Model struct {
	State       tracker.State
	Repo        storage.Repository
	Clock       *scheduler.Clock
	Focus       Focus
	Cursor      int
	Filter      string
	Picker      *tracker.DayPicker
	Add         AddFormState
	Edit        EditFormState
	Confirm     ConfirmState
	Palette     CommandPaletteState
	HelpVisible bool
	Status      StatusBar
	Keys        GlobalKeyMap
	Quitting    bool
	LastError   error
	// Bubble components used for rich TUI controls
	nameInput     textinput.Model
	descInput     textinput.Model
	scheduleInput textinput.Model
	commandInput  textinput.Model
	dayProgress   progress.Model
	helpModel     help.Model
	now           func() time.Time
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

type ExportWrittenMsg struct {
	Path string
}

type ImportLoadedMsg struct {
	Path string
	Raw  []byte
}

type DayRolloverMsg struct {
	Event scheduler.DayEvent
}

func NewModel(state tracker.State) Model {
	nameInput := textinput.New()
	nameInput.Placeholder = "routine name"
	nameInput.CharLimit = 80

	descInput := textinput.New()
	descInput.Placeholder = "description (markdown)"
	descInput.CharLimit = 400

	scheduleInput := textinput.New()
	scheduleInput.Placeholder = "All or Sat,Sun,..."
	scheduleInput.CharLimit = 40

	commandInput := textinput.New()
	commandInput.Placeholder = "add | filter | goto | week | theme | export | import"
	commandInput.CharLimit = 200

	return Model{
		State:  state,
		Focus:  FocusList,
		Filter: model.CategoryAll,
		Keys: GlobalKeyMap{
			PrevDay:  "h",
			NextDay:  "l",
			PrevWeek: "H",
			NextWeek: "L",
			Today:    "t",
			Add:      "a",
			Edit:     "e",
			Delete:   "d",
			Filter:   "f",
			Theme:    "T",
			Reset:    "r",
			Help:     "?",
			Quit:     "q",
		},
		nameInput:     nameInput,
		descInput:     descInput,
		scheduleInput: scheduleInput,
		commandInput:  commandInput,
		dayProgress:   progress.New(progress.WithDefaultGradient()),
		helpModel:     help.New(),
		now:           time.Now,
	}
}

func NewModelWithRepo(state tracker.State, repo storage.Repository) Model {
	m := NewModel(state)
	m.Repo = repo
	return m
}

func NewModelWithRuntime(state tracker.State, repo storage.Repository, clock *scheduler.Clock) Model {
	m := NewModelWithRepo(state, repo)
	m.Clock = clock
	return m
}

// visibleItems resolves the routine rows shown for the selected day under
// the active category filter.
func (m Model) visibleItems() []model.Item {
	return m.State.VisibleForDay(m.State.Selected, m.Filter)
}

func (m Model) cursorItem() (model.Item, bool) {
	items := m.visibleItems()
	if m.Cursor < 0 || m.Cursor >= len(items) {
		return model.Item{}, false
	}
	return items[m.Cursor], true
}

func (m *Model) clampCursor() {
	n := len(m.visibleItems())
	if n == 0 {
		m.Cursor = 0
		return
	}
	if m.Cursor >= n {
		m.Cursor = n - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}
