package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type AppData struct {
	Header     string
	WeekStrip  string
	LeftPane   string
	RightPane  string
	StatusLine string
	Footer     string
	LightTheme bool
}

type palette struct {
	header lipgloss.Style
	status lipgloss.Style
	errorS lipgloss.Style
	panel  lipgloss.Style
	footer lipgloss.Style
}

var darkPalette = palette{
	header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
	status: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	errorS: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	panel:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	footer: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
}

var lightPalette = palette{
	header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4")),
	status: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	errorS: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	panel:  lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1),
	footer: lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
}

func RenderApp(data AppData) string {
	p := darkPalette
	if data.LightTheme {
		p = lightPalette
	}

	left := p.panel.Width(58).Render(data.LeftPane)
	right := p.panel.Width(58).Render(data.RightPane)
	row := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	status := p.status.Render(data.StatusLine)
	if strings.Contains(strings.ToLower(data.StatusLine), "error") {
		status = p.errorS.Render(data.StatusLine)
	}

	lines := []string{
		p.header.Render(data.Header),
		data.WeekStrip,
		row,
		status,
	}
	if data.Footer != "" {
		lines = append(lines, p.footer.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

// RenderMarkdown renders a routine description for the detail pane. On
// renderer failure the raw text is shown instead.
func RenderMarkdown(md string, light bool) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	style := "dark"
	if light {
		style = "light"
	}
	out, err := glamour.Render(md, style)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
