package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/linguist/internal/ui/theme"
)

// Screens draw their cards at a common width so stacked boxes line up.
const (
	maxContentWidth = 60
	minContentWidth = 20
	// border (2) plus padding (4) of the cabinet frame
	cabinetInset = 6
)

// ContentWidth is the card width for a frame of frameWidth columns.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-cabinetInset, minContentWidth), maxContentWidth)
}

var cabinet = lipgloss.NewStyle().
	Border(lipgloss.DoubleBorder()).
	BorderForeground(theme.Primary).
	Align(lipgloss.Center, lipgloss.Center)

// CabinetFrame centres content inside a double border filling the frame.
func CabinetFrame(content string, width, height int) string {
	return cabinet.Width(width - 2).Height(height - 2).Render(content)
}

var card = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(theme.Border).
	Align(lipgloss.Center).
	Padding(1, 2)

// ArcadeCard boxes content at content width cw.
func ArcadeCard(content string, cw int) string {
	return card.Width(cw - 2).Render(content)
}

var (
	buttonIdle = lipgloss.NewStyle().
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1)
	buttonLit = buttonIdle.
			Bold(true).
			Foreground(theme.BgDark).
			Background(theme.ArcadeYellow).
			BorderForeground(theme.ArcadeYellow)
)

// ArcadeButton is a bordered menu entry; the selected one is lit.
func ArcadeButton(label string, selected bool, width int) string {
	if selected {
		return buttonLit.Width(width).Render("▸ " + label)
	}
	return buttonIdle.Width(width).Render(label)
}
