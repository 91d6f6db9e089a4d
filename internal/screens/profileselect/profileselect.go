// Package profileselect is the first real screen: pick who is learning.
package profileselect

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/linguist/internal/profiles"
	"github.com/abhisek/linguist/internal/router"
	"github.com/abhisek/linguist/internal/screen"
	"github.com/abhisek/linguist/internal/screens/home"
	"github.com/abhisek/linguist/internal/screens/login"
	"github.com/abhisek/linguist/internal/ui/components"
	"github.com/abhisek/linguist/internal/ui/layout"
	"github.com/abhisek/linguist/internal/ui/theme"
)

// ProfileSelectScreen lists the stored profiles.
type ProfileSelectScreen struct {
	svc      screen.Services
	selected int
	errMsg   string
}

var _ screen.Screen = (*ProfileSelectScreen)(nil)
var _ screen.KeyHintProvider = (*ProfileSelectScreen)(nil)

// New creates a ProfileSelectScreen.
func New(svc screen.Services) *ProfileSelectScreen {
	return &ProfileSelectScreen{svc: svc}
}

func (s *ProfileSelectScreen) Init() tea.Cmd {
	return nil
}

func (s *ProfileSelectScreen) Title() string {
	return "Wie ben jij?"
}

func (s *ProfileSelectScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Kies"},
		{Key: "Enter", Description: "Start"},
		{Key: "Ctrl+C", Description: "Stoppen"},
	}
}

func (s *ProfileSelectScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	list := s.svc.Profiles.List()
	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(list)-1 {
			s.selected++
		}
	case "enter":
		if s.selected < len(list) {
			return s, s.choose(list[s.selected].ID)
		}
	}
	return s, nil
}

func (s *ProfileSelectScreen) choose(id string) tea.Cmd {
	gated, err := s.svc.Profiles.Select(id)
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}
	s.errMsg = ""

	var next screen.Screen
	if gated {
		next = login.New(s.svc, id)
	} else {
		next = home.New(s.svc, id)
	}
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func (s *ProfileSelectScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	list := s.svc.Profiles.List()

	var cards []string
	for i, p := range list {
		cards = append(cards, renderProfileCard(p, i == s.selected, cw))
	}
	if len(cards) == 0 {
		cards = append(cards, lipgloss.NewStyle().Foreground(theme.TextDim).Render("Geen profielen gevonden."))
	}

	sections := []string{
		theme.Title.Width(cw).Render("Kies je profiel"),
		strings.Join(cards, "\n"),
	}
	if s.errMsg != "" {
		sections = append(sections, theme.Incorrect.Render(s.errMsg))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		strings.Join(sections, "\n\n"))
}

func renderProfileCard(p profiles.Profile, selected bool, cw int) string {
	name := p.DisplayName
	if p.HasPassword() {
		name += "  🔒"
	}

	nameStyle := theme.Unselected
	border := theme.Border
	if selected {
		nameStyle = theme.Selected
		border = theme.ArcadeYellow
		name = "▸ " + name
	}

	body := nameStyle.Render(name) + "\n" +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(
			fmt.Sprintf("%s · %d XP · %d lessen", p.GradeLevel, p.Stats.TotalPoints, p.Stats.CompletedLessons))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(cw - 2).
		Padding(0, 2).
		Render(body)
}
