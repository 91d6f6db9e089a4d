// Package layout draws the frame every screen is rendered into: a header
// bar, the screen body and a footer with key hints.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/linguist/internal/ui/theme"
)

// Terminal size limits. Below the minimum only a resize notice is drawn;
// below the compact thresholds screens switch to denser variants.
const (
	MinWidth  = 80
	MinHeight = 24

	compactWidth  = 100
	compactHeight = 30
)

// KeyHint is one "key description" pair in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// HeaderStats are the profile figures shown on the right of the header.
// A nil *HeaderStats hides them.
type HeaderStats struct {
	Points int
	Streak int
}

func IsCompactWidth(width int) bool   { return width < compactWidth }
func IsCompactHeight(height int) bool { return height < compactHeight }

func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage asks the learner to enlarge the terminal.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Align(lipgloss.Center).Render(fmt.Sprintf(
			"Terminal te klein!\n\nMaak het venster minstens\n%d x %d\n\nNu: %d x %d",
			MinWidth, MinHeight, width, height,
		)))
}

func bar(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)
}

// RenderHeader draws the app name on the left, title centred and the
// profile stats on the right.
func RenderHeader(title string, stats *HeaderStats, width int) string {
	brand := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  Linguist")
	center := lipgloss.NewStyle().Foreground(theme.Text).Render(title)

	var right string
	if stats != nil {
		accent := lipgloss.NewStyle().Foreground(theme.Accent)
		right = accent.Render(fmt.Sprintf("◆ %d XP", stats.Points)) + "   " +
			accent.Render(fmt.Sprintf("★ %d reeks", stats.Streak))
	}

	inner := max(width-4, 0)
	bw, cw, rw := lipgloss.Width(brand), lipgloss.Width(center), lipgloss.Width(right)
	gapL := max((inner-cw)/2-bw, 1)
	gapR := max(inner-bw-gapL-cw-rw, 1)

	return bar(width).Render(brand + strings.Repeat(" ", gapL) + center + strings.Repeat(" ", gapR) + right)
}

// RenderFooter draws the key hints.
func RenderFooter(hints []KeyHint, width int) string {
	key := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	desc := lipgloss.NewStyle().Foreground(theme.TextDim)

	var b strings.Builder
	b.WriteString("  ")
	for i, h := range hints {
		if i > 0 {
			b.WriteString("   ")
		}
		b.WriteString(key.Render(h.Key) + " " + desc.Render(h.Description))
	}
	return bar(width).Render(b.String())
}

// BodyHeight is the height left for the screen between header and footer.
func BodyHeight(header, footer string, height int) int {
	return max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
}

// RenderFrame stacks header, body and footer.
func RenderFrame(header, content, footer string, width, height int) string {
	body := lipgloss.NewStyle().Width(width).Height(BodyHeight(header, footer, height)).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
