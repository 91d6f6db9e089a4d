// Package login asks for the password of a gated profile.
package login

import (
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/linguist/internal/profiles"
	"github.com/abhisek/linguist/internal/router"
	"github.com/abhisek/linguist/internal/screen"
	"github.com/abhisek/linguist/internal/screens/home"
	"github.com/abhisek/linguist/internal/ui/components"
	"github.com/abhisek/linguist/internal/ui/layout"
	"github.com/abhisek/linguist/internal/ui/theme"
)

// LoginScreen prompts for a profile password. A wrong password keeps the
// learner here with an error; there is no lockout.
type LoginScreen struct {
	svc       screen.Services
	profileID string
	input     components.TextInput
	errMsg    string
}

var _ screen.Screen = (*LoginScreen)(nil)
var _ screen.KeyHintProvider = (*LoginScreen)(nil)

// New creates a LoginScreen for profileID.
func New(svc screen.Services, profileID string) *LoginScreen {
	return &LoginScreen{
		svc:       svc,
		profileID: profileID,
		input:     components.NewPasswordInput("Wachtwoord", 32),
	}
}

func (s *LoginScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *LoginScreen) Title() string {
	return "Inloggen"
}

func (s *LoginScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Inloggen"},
		{Key: "Esc", Description: "Terug"},
	}
}

func (s *LoginScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		return s, s.submit()
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *LoginScreen) submit() tea.Cmd {
	_, err := s.svc.Profiles.Authenticate(s.profileID, s.input.Value())
	var authErr *profiles.AuthenticationError
	switch {
	case errors.As(err, &authErr):
		s.errMsg = profiles.MsgWrongPassword
		s.input.Reset()
		s.input.Reject()
		return nil
	case err != nil:
		s.errMsg = err.Error()
		return nil
	}

	next := home.New(s.svc, s.profileID)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (s *LoginScreen) View(width, height int) string {
	name := s.profileID
	if p, err := s.svc.Profiles.Get(s.profileID); err == nil {
		name = p.DisplayName
	}

	sections := []string{
		theme.Title.Render("Hoi " + name + "!"),
		theme.Subtitle.Render("Vul je wachtwoord in om verder te gaan."),
		s.input.View(),
	}
	if s.errMsg != "" {
		sections = append(sections, theme.Incorrect.Render(s.errMsg))
	}

	card := components.ArcadeCard(strings.Join(sections, "\n\n"), components.ContentWidth(width))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
