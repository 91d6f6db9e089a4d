package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/linguist/internal/ui/theme"
)

// ProgressBar is a labelled horizontal bar. Fraction is clamped to [0, 1].
type ProgressBar struct {
	Label    string
	Fraction float64
	Width    int
	// Urgent paints the filled part red.
	Urgent bool
}

const minBarWidth = 4

func (p ProgressBar) View() string {
	var b strings.Builder
	if p.Label != "" {
		b.WriteString(theme.Body.Render(p.Label))
		b.WriteString("  ")
	}

	track := max(p.Width-lipgloss.Width(b.String()), minBarWidth)
	filled := int(float64(track) * min(max(p.Fraction, 0), 1))

	fill := theme.ProgressFilled
	if p.Urgent {
		fill = theme.ProgressUrgent
	}
	b.WriteString(fill.Render(strings.Repeat(" ", filled)))
	b.WriteString(theme.ProgressEmpty.Render(strings.Repeat(" ", track-filled)))
	return b.String()
}
