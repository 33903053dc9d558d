package views

import (
	"fmt"
	"strings"
)

type DayCardData struct {
	Abbrev     string
	DayOfMonth int
	Selected   bool
	Today      bool
	Progress   string
}

type WeekStripData struct {
	RangeLabel string
	Cards      []DayCardData
}

type RoutineRowData struct {
	Name     string
	Category string
	Done     bool
	Streak   int
	DescOpen bool
	Selected bool
}

type RoutinePanelData struct {
	DayLabel string
	Filter   string
	Progress string
	Rows     []RoutineRowData
}

type DayPickerData struct {
	Open      bool
	Confirmed bool
	Chips     [7]bool
	Abbrevs   [7]string
}

type FormData struct {
	Title       string
	NameView    string
	Category    string
	DescView    string
	ScheduleRow string
	ActiveField string
}

type DetailPaneData struct {
	Name         string
	Category     string
	ScheduleText string
	Streak       int
	MarkdownDesc string
}

type ConfirmPromptData struct {
	Prompt string
}

type HelpPanelData struct {
	Bindings []string
	HelpView string
}

func RenderWeekStrip(data WeekStripData) string {
	var b strings.Builder
	b.WriteString(data.RangeLabel + "\n")
	for _, card := range data.Cards {
		marker := " "
		if card.Selected {
			marker = ">"
		}
		today := "  "
		if card.Today {
			today = " *"
		}
		b.WriteString(fmt.Sprintf("%s%s %2d%s %s  ", marker, card.Abbrev, card.DayOfMonth, today, card.Progress))
	}
	return strings.TrimRight(b.String(), " ")
}

func RenderRoutinePanel(data RoutinePanelData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s | filter: %s | done: %s\n", data.DayLabel, data.Filter, data.Progress))
	b.WriteString("actions: [j/k]move [space]done [o]desc [a]add [e]edit [d]delete [f]filter\n")
	if len(data.Rows) == 0 {
		b.WriteString("(nothing scheduled)")
		return b.String()
	}
	for _, row := range data.Rows {
		cursor := " "
		if row.Selected {
			cursor = ">"
		}
		check := "[ ]"
		if row.Done {
			check = "[x]"
		}
		streak := ""
		if row.Streak > 0 {
			streak = fmt.Sprintf(" ~%d", row.Streak)
		}
		open := ""
		if row.DescOpen {
			open = " +"
		}
		b.WriteString(fmt.Sprintf("%s %s %s (%s)%s%s\n", cursor, check, row.Name, row.Category, streak, open))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderDayPicker(data DayPickerData) string {
	var b strings.Builder
	switch {
	case data.Open:
		b.WriteString("days (open): ")
	case data.Confirmed:
		b.WriteString("days (confirmed): ")
	default:
		b.WriteString("days: ")
	}
	for i, abbrev := range data.Abbrevs {
		if data.Chips[i] {
			b.WriteString(fmt.Sprintf("[%s] ", abbrev))
		} else {
			b.WriteString(fmt.Sprintf(" %s  ", abbrev))
		}
	}
	if data.Open {
		b.WriteString("\nkeys: [1-7]toggle [A]all [W]weekdays [E]weekend [enter]confirm [esc]cancel")
	}
	return strings.TrimRight(b.String(), " ")
}

func RenderForm(data FormData) string {
	var b strings.Builder
	b.WriteString(data.Title + "\n")
	b.WriteString(fieldLine("name", data.NameView, data.ActiveField == "name"))
	b.WriteString(fieldLine("category", data.Category, data.ActiveField == "category"))
	b.WriteString(fieldLine("desc", data.DescView, data.ActiveField == "desc"))
	b.WriteString(fieldLine("days", data.ScheduleRow, data.ActiveField == "days"))
	b.WriteString("keys: [tab]field [enter]advance [ctrl+s]save [esc]cancel")
	return b.String()
}

func RenderDetailPane(data DetailPaneData) string {
	if data.Name == "" {
		return "detail:\n(no selection)"
	}
	var b strings.Builder
	b.WriteString("detail:\n")
	b.WriteString(fmt.Sprintf("name: %s\n", data.Name))
	b.WriteString(fmt.Sprintf("category: %s\n", data.Category))
	b.WriteString(fmt.Sprintf("days: %s\n", data.ScheduleText))
	b.WriteString(fmt.Sprintf("streak: %d\n", data.Streak))
	if data.MarkdownDesc != "" {
		b.WriteString("\n" + data.MarkdownDesc)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderConfirmPrompt(data ConfirmPromptData) string {
	return fmt.Sprintf("confirm: %s [y/n]", data.Prompt)
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\n%s\n%s", strings.Join(data.Bindings, "\n"), data.HelpView)
}

func fieldLine(label, value string, active bool) string {
	marker := "  "
	if active {
		marker = "> "
	}
	return fmt.Sprintf("%s%s: %s\n", marker, label, value)
}
