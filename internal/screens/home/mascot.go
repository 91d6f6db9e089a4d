package home

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/linguist/internal/profiles"
	"github.com/abhisek/linguist/internal/ui/theme"
)

// mood selects the mascot drawing.
type mood int

const (
	moodIdle mood = iota
	// moodCheering is shown from a three-lesson streak.
	moodCheering
	// moodAlert is shown while no LLM key is configured.
	moodAlert
)

const cheeringStreak = 3

var mascots = map[mood]struct {
	art string
	fg  color.Color
}{
	moodIdle: {fg: theme.Primary, art: "" +
		"┌─────┐\n" +
		"│ ◉ ◉ │\n" +
		"│  ▽  │\n" +
		"│ A?Z │\n" +
		"└─────┘"},
	moodCheering: {fg: theme.ArcadeYellow, art: "" +
		"┌─────┐\n" +
		"│ ★ ★ │\n" +
		"│  ▿  │\n" +
		"│ A?Z │\n" +
		"└─╥═╥─┘\n" +
		"  ╚═╝"},
	moodAlert: {fg: theme.Accent, art: "" +
		"┌─────┐\n" +
		"│ ◉ ◉ │ !\n" +
		"│  ▽  │\n" +
		"│ A?Z │\n" +
		"└─────┘"},
}

func moodFor(st profiles.Stats, configured bool) mood {
	switch {
	case !configured:
		return moodAlert
	case st.StreakCount >= cheeringStreak:
		return moodCheering
	}
	return moodIdle
}

func renderMascot(m mood, cw int) string {
	art := mascots[m]
	return centered(cw).Render(lipgloss.NewStyle().Foreground(art.fg).Render(art.art))
}
