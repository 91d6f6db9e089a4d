package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/linguist/internal/ui/theme"
)

// MenuItem is one entry of a Menu. Action runs on enter.
type MenuItem struct {
	Label  string
	Action func() tea.Cmd
}

// Menu is a vertical list of arcade buttons with a wrapping cursor.
type Menu struct {
	Items    []MenuItem
	Selected int
}

func NewMenu(items []MenuItem) Menu {
	return Menu{Items: items}
}

func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	n := len(m.Items)
	switch key.String() {
	case "up", "k":
		m.Selected = (m.Selected + n - 1) % n
	case "down", "j", "tab":
		m.Selected = (m.Selected + 1) % n
	case "enter":
		if a := m.Items[m.Selected].Action; a != nil {
			return m, a()
		}
	}
	return m, nil
}

// menuButtonWidth keeps every button the same size.
const menuButtonWidth = 22

// View centres the menu in width. Compact menus drop the button borders
// so they fit short terminals.
func (m Menu) View(width int, compact bool) string {
	lines := make([]string, len(m.Items))
	for i, item := range m.Items {
		selected := i == m.Selected
		switch {
		case !compact:
			lines[i] = ArcadeButton(item.Label, selected, menuButtonWidth)
		case selected:
			lines[i] = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.ArcadeYellow).
				Bold(true).
				Render(" ▸ " + item.Label + " ")
		default:
			lines[i] = theme.Unselected.Render("   " + item.Label)
		}
	}
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(strings.Join(lines, "\n"))
}
