package setup

import (
	"context"
	"fmt"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/abhisek/linguist/internal/lessons"
	"github.com/abhisek/linguist/internal/profiles"
	"github.com/abhisek/linguist/internal/router"
	"github.com/abhisek/linguist/internal/screen"
	quizscreen "github.com/abhisek/linguist/internal/screens/quiz"
	"github.com/abhisek/linguist/internal/ui/layout"
	"github.com/abhisek/linguist/internal/ui/theme"
)

// questionsReadyMsg carries the result of a lesson request.
type questionsReadyMsg struct {
	RequestID string
	Questions []lessons.Question
	Err       error
}

// LoadingScreen waits for the lesson questions. Leaving it cancels the
// request, and a result that arrives afterwards is dropped.
type LoadingScreen struct {
	svc       screen.Services
	profile   profiles.Profile
	cfg       lessons.LessonConfig
	requestID string
	cancel    context.CancelFunc
	spinner   spinner.Model
	left      bool
}

var _ screen.Screen = (*LoadingScreen)(nil)
var _ screen.EscapeCapturer = (*LoadingScreen)(nil)
var _ screen.KeyHintProvider = (*LoadingScreen)(nil)
var _ screen.Leaver = (*LoadingScreen)(nil)

// NewLoading creates a LoadingScreen that requests a lesson for cfg.
func NewLoading(svc screen.Services, p profiles.Profile, cfg lessons.LessonConfig) *LoadingScreen {
	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Primary)),
	)
	return &LoadingScreen{
		svc:       svc,
		profile:   p,
		cfg:       cfg,
		requestID: uuid.NewString(),
		spinner:   sp,
	}
}

func (s *LoadingScreen) Init() tea.Cmd {
	return tea.Batch(s.spinner.Tick, s.fetch())
}

func (s *LoadingScreen) Title() string {
	return "Les wordt gemaakt"
}

func (s *LoadingScreen) CapturesEscape() bool {
	return true
}

func (s *LoadingScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Annuleren"},
	}
}

// fetch starts the lesson request in the background.
func (s *LoadingScreen) fetch() tea.Cmd {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	provider := s.svc.Lessons
	cfg := s.cfg
	id := s.requestID
	return func() tea.Msg {
		qs, err := provider.FetchQuestions(ctx, cfg)
		return questionsReadyMsg{RequestID: id, Questions: qs, Err: err}
	}
}

func (s *LoadingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionsReadyMsg:
		return s, s.handleQuestions(msg)

	case tea.KeyMsg:
		if msg.String() == "esc" {
			s.Leave()
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil

	case spinner.TickMsg:
		if s.left {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd
	}
	return s, nil
}

// Leave cancels the pending request. Its result is dropped when it arrives.
func (s *LoadingScreen) Leave() {
	s.left = true
	if s.cancel != nil {
		s.cancel()
	}
}

func (s *LoadingScreen) handleQuestions(msg questionsReadyMsg) tea.Cmd {
	if s.left || msg.RequestID != s.requestID {
		return nil
	}
	s.left = true
	s.cancel()

	// Provider failure details are kept in the LLM event log.
	if msg.Err != nil {
		return s.backToSetup(lessons.LearnerMessage(msg.Err))
	}

	next, err := quizscreen.New(s.svc, s.profile, s.cfg, msg.Questions)
	if err != nil {
		return s.backToSetup(lessons.MsgGenerationFailed)
	}
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (s *LoadingScreen) backToSetup(errMsg string) tea.Cmd {
	next := New(s.svc, s.profile, s.cfg).WithError(errMsg)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (s *LoadingScreen) View(width, height int) string {
	lines := []string{
		s.spinner.View() + " " + theme.Body.Render("AI maakt je les over "+lipgloss.NewStyle().Bold(true).Render(s.cfg.Topic)+"..."),
		"",
		theme.Hint.Render(fmt.Sprintf("%s · %s · %s", s.cfg.GradeLevel, s.cfg.Mode.Label(), s.cfg.Difficulty.Label())),
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, lipgloss.JoinVertical(lipgloss.Center, lines...))
}
