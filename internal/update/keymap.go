package update

import "github.com/charmbracelet/bubbles/key"

// listKeyMap feeds the bubbles help component; the full cheat sheet lives
// in renderHelpIfVisible.
type listKeyMap struct{}

var (
	keyDay    = key.NewBinding(key.WithKeys("h", "l"), key.WithHelp("h/l", "day"))
	keyWeek   = key.NewBinding(key.WithKeys("H", "L"), key.WithHelp("H/L", "week"))
	keyMove   = key.NewBinding(key.WithKeys("j", "k"), key.WithHelp("j/k", "move"))
	keyToggle = key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "done"))
	keyQuit   = key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit"))
)

func (listKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{keyDay, keyWeek, keyMove, keyToggle, keyQuit}
}

func (listKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{keyDay, keyWeek, keyMove},
		{keyToggle, keyQuit},
	}
}
