package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/linguist/internal/lessons"
	engine "github.com/abhisek/linguist/internal/quiz"
	"github.com/abhisek/linguist/internal/ui/components"
	"github.com/abhisek/linguist/internal/ui/theme"
)

// urgentSeconds is when the countdown bar turns red.
const urgentSeconds = 5

func (s *QuizScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(s.renderInfoLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n")

	if s.session.Mode() == lessons.ModePlay {
		b.WriteString(s.renderCountdown(width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	cw := min(width-8, 70)
	question := lipgloss.NewStyle().Width(cw).Render(s.mc.View())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, question))
	b.WriteString("\n")

	if s.session.Checked() {
		b.WriteString(s.renderFeedback(width, cw))
	}

	return b.String()
}

// renderInfoLine renders topic, progress, score and combo.
func (s *QuizScreen) renderInfoLine(width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s · %s", s.session.Mode().Label(), s.cfg.Topic))

	parts := []string{
		s.progressLabel(),
		lipgloss.NewStyle().Foreground(theme.Success).Render(fmt.Sprintf("★ %d", s.session.Score())),
	}
	if s.session.Mode() == lessons.ModePlay {
		parts = append(parts, lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("🔥 x%d", s.session.Combo())))
	}
	right := lipgloss.NewStyle().Foreground(theme.TextDim).Render(strings.Join(parts, "  "))

	line := left
	if pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4; pad > 0 {
		line += strings.Repeat(" ", pad) + right
	}
	return line
}

// renderCountdown renders the seconds left as a shrinking bar.
func (s *QuizScreen) renderCountdown(width int) string {
	secs := s.session.SecondsRemaining()
	bar := components.ProgressBar{
		Label:    fmt.Sprintf("  ⏱ %2ds", secs),
		Fraction: float64(secs) / float64(engine.QuestionSeconds),
		Width:    min(width-4, 60),
		Urgent:   secs <= urgentSeconds,
	}
	return bar.View()
}

// renderFeedback renders the verdict and, in study mode, the explanation.
func (s *QuizScreen) renderFeedback(width, cw int) string {
	a, ok := s.session.LastAnswer()
	if !ok {
		return ""
	}
	q := s.session.Current()
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	switch {
	case a.TimedOut:
		b.WriteString(center.Inherit(theme.Incorrect).Render("Tijd is om!"))
	case a.Correct:
		verdict := "Goed zo!"
		if a.Points > 1 {
			verdict = fmt.Sprintf("Goed zo! +%d (combo)", a.Points)
		}
		b.WriteString(center.Inherit(theme.Correct).Render(verdict))
	default:
		b.WriteString(center.Inherit(theme.Incorrect).Render("Helaas!"))
	}
	b.WriteString("\n")

	if !a.Correct {
		b.WriteString(center.Foreground(theme.TextDim).Render("Het juiste antwoord is: " + q.CorrectAnswer))
		b.WriteString("\n")
	}

	if s.session.Mode() == lessons.ModeStudy && q.Explanation != "" {
		b.WriteString("\n")
		exp := lipgloss.NewStyle().Width(cw).Foreground(theme.Text).Render(q.Explanation)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, exp))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	hint := "Druk op Enter voor de volgende vraag"
	if s.session.IsLast() {
		hint = "Druk op Enter om de les af te ronden"
	}
	b.WriteString(center.Inherit(theme.Hint).Render(hint))
	return b.String()
}
