// Package results shows the outcome of a finished lesson.
package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/linguist/internal/lessons"
	"github.com/abhisek/linguist/internal/profiles"
	"github.com/abhisek/linguist/internal/quiz"
	"github.com/abhisek/linguist/internal/router"
	"github.com/abhisek/linguist/internal/screen"
	"github.com/abhisek/linguist/internal/ui/components"
	"github.com/abhisek/linguist/internal/ui/layout"
	"github.com/abhisek/linguist/internal/ui/theme"
)

// ResultsScreen displays the lesson outcome and the profile's new totals.
type ResultsScreen struct {
	profile profiles.Profile
	cfg     lessons.LessonConfig
	outcome *quiz.Outcome
	saveErr error
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)
var _ screen.StatsProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen. saveErr is non-nil when the profile could
// not be credited.
func New(p profiles.Profile, cfg lessons.LessonConfig, outcome *quiz.Outcome, saveErr error) *ResultsScreen {
	return &ResultsScreen{profile: p, cfg: cfg, outcome: outcome, saveErr: saveErr}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Resultaat"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Naar home"},
	}
}

func (s *ResultsScreen) HeaderStats() *layout.HeaderStats {
	return &layout.HeaderStats{Points: s.profile.Stats.TotalPoints, Streak: s.profile.Stats.StreakCount}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

// EarnedPoints is the number of profile points the lesson was worth.
func (s *ResultsScreen) EarnedPoints() int {
	if s.outcome == nil {
		return 0
	}
	return s.outcome.Score * profiles.PointsPerCorrectAnswer
}

func (s *ResultsScreen) View(width, height int) string {
	o := s.outcome
	if o == nil {
		return ""
	}
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(theme.Title.Width(cw).Render(headline(o)))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(cw).Render(fmt.Sprintf("%s · %s · %s", s.cfg.Topic, o.Mode.Label(), s.cfg.Difficulty.Label())))
	b.WriteString("\n\n")

	points := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).
		Render(fmt.Sprintf("+%d XP", s.EarnedPoints()))
	b.WriteString(lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(points))
	b.WriteString("\n\n")

	rows := []string{
		fmt.Sprintf("Goed beantwoord   %d/%d", o.Correct, o.Total),
		fmt.Sprintf("Score             %d", o.Score),
	}
	if o.Mode == lessons.ModePlay {
		rows = append(rows, fmt.Sprintf("Beste combo       %d", o.BestCombo))
	}
	rows = append(rows,
		fmt.Sprintf("Totaal            %d XP", s.profile.Stats.TotalPoints),
		fmt.Sprintf("Reeks             %d", s.profile.Stats.StreakCount),
	)
	b.WriteString(theme.Body.Render(strings.Join(rows, "\n")))

	if s.saveErr != nil {
		b.WriteString("\n\n")
		b.WriteString(theme.Warning.Render("⚠ Je punten konden niet worden opgeslagen."))
	}

	card := components.ArcadeCard(b.String(), cw)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func headline(o *quiz.Outcome) string {
	switch {
	case o.Correct == o.Total:
		return "Perfect! Alles goed!"
	case o.Correct*2 >= o.Total:
		return "Les voltooid, goed gedaan!"
	default:
		return "Les voltooid. Blijf oefenen!"
	}
}
