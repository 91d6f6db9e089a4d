package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/linguist/internal/profiles"
	"github.com/abhisek/linguist/internal/ui/components"
	"github.com/abhisek/linguist/internal/ui/theme"
)

var (
	bannerStyle = lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	xpStyle     = lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	streakStyle = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	lessonStyle = lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)
)

func centered(cw int) lipgloss.Style {
	return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center)
}

func renderBanner(cw int, compact bool) string {
	return centered(cw).Render(bannerStyle.Render(components.Banner(compact)))
}

// renderStats draws points, streak and lesson count in a double box.
func renderStats(st profiles.Stats, cw int, compact bool) string {
	format, sep := "%s %d %s", "  "
	labels := [3]string{"XP", "REEKS", "LESSEN"}
	if compact {
		format, sep = "%s%d%s", " "
		labels = [3]string{}
	}
	cell := func(style lipgloss.Style, icon string, n int, label string) string {
		return style.Render(strings.TrimSpace(fmt.Sprintf(format, icon, n, label)))
	}
	line := strings.Join([]string{
		cell(xpStyle, "◆", st.TotalPoints, labels[0]),
		cell(streakStyle, "★", st.StreakCount, labels[1]),
		cell(lessonStyle, "✎", st.CompletedLessons, labels[2]),
	}, sep)

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw-2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(line)
}

func renderGreeting(p profiles.Profile, cw int) string {
	return centered(cw).Render(
		theme.Body.Bold(true).Render("Hoi "+p.DisplayName+"!") + "\n" +
			theme.Hint.Italic(false).Render(p.GradeLevel))
}

// renderKeyWarning is shown while no LLM provider could be configured.
func renderKeyWarning(cw int) string {
	return centered(cw).Foreground(theme.Accent).
		Render("⚠ Voeg je API_KEY toe aan je omgeving of .env bestand!")
}
