// Package quiz is the screen that plays a lesson: it feeds key presses and
// timer messages into a quiz session and renders its state.
package quiz

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/abhisek/linguist/internal/lessons"
	"github.com/abhisek/linguist/internal/profiles"
	engine "github.com/abhisek/linguist/internal/quiz"
	"github.com/abhisek/linguist/internal/router"
	"github.com/abhisek/linguist/internal/screen"
	"github.com/abhisek/linguist/internal/screens/results"
	"github.com/abhisek/linguist/internal/store"
	"github.com/abhisek/linguist/internal/ui/components"
	"github.com/abhisek/linguist/internal/ui/layout"
)

// QuizScreen implements screen.Screen for a running lesson.
type QuizScreen struct {
	svc       screen.Services
	profile   profiles.Profile
	cfg       lessons.LessonConfig
	session   *engine.Session
	mc        components.MultiChoice
	sessionID string
	startedAt time.Time
	saving    bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.EscapeCapturer = (*QuizScreen)(nil)
var _ screen.Leaver = (*QuizScreen)(nil)

// New creates a QuizScreen over questions.
func New(svc screen.Services, p profiles.Profile, cfg lessons.LessonConfig, questions []lessons.Question) (*QuizScreen, error) {
	sess, err := engine.New(questions, cfg.Mode)
	if err != nil {
		return nil, err
	}
	s := &QuizScreen{
		svc:       svc,
		profile:   p,
		cfg:       cfg,
		session:   sess,
		sessionID: uuid.NewString(),
		startedAt: time.Now(),
	}
	s.resetChoices()
	return s, nil
}

func (s *QuizScreen) Init() tea.Cmd {
	return tea.Batch(
		s.recordEvent(store.SessionActionStart, nil),
		s.countdown(),
	)
}

func (s *QuizScreen) Title() string {
	return "Les: " + s.cfg.Topic
}

func (s *QuizScreen) CapturesEscape() bool {
	return true
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.session.Checked() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Volgende"},
			{Key: "Esc", Description: "Stoppen"},
		}
	}
	return []layout.KeyHint{
		{Key: "A-D", Description: "Kies"},
		{Key: "↑↓", Description: "Navigeer"},
		{Key: "Enter", Description: "Controleer"},
		{Key: "Esc", Description: "Stoppen"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case countdownTickMsg:
		return s, s.handleTick(msg.Token)

	case autoAdvanceMsg:
		outcome, ok := s.session.AutoAdvance(msg.Token)
		if !ok {
			return s, nil
		}
		return s, s.afterAdvance(outcome)

	case lessonSavedMsg:
		next := results.New(msg.Profile, s.cfg, msg.Outcome, msg.Err)
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: next}
		}

	case tea.KeyMsg:
		return s, s.handleKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	if key == "esc" {
		return s.quit()
	}

	switch s.session.Phase() {
	case engine.PhaseAnswered:
		switch key {
		case "enter", "space", " ", "n":
			outcome, err := s.session.Advance()
			if err != nil {
				return nil
			}
			return s.afterAdvance(outcome)
		}
		return nil

	case engine.PhaseUnanswered:
		if i, ok := s.mc.IndexForKey(key); ok {
			s.mc.Selected = i
			s.selectHighlighted()
			if s.session.Mode() == lessons.ModePlay {
				return s.submit()
			}
			return nil
		}
		switch key {
		case "up", "down", "k", "j":
			s.mc, _ = s.mc.Update(msg)
			s.selectHighlighted()
		case "enter":
			s.selectHighlighted()
			return s.submit()
		}
	}
	return nil
}

// selectHighlighted mirrors the highlighted option into the session.
func (s *QuizScreen) selectHighlighted() {
	if opt, ok := s.mc.Highlighted(); ok {
		_ = s.session.Select(opt)
	}
}

func (s *QuizScreen) submit() tea.Cmd {
	if _, err := s.session.Submit(); err != nil {
		return nil
	}
	s.reveal()
	return s.pause()
}

func (s *QuizScreen) handleTick(token engine.Token) tea.Cmd {
	switch s.session.Tick(token) {
	case engine.TickCounted:
		return tickAfter(token)
	case engine.TickTimedOut:
		s.reveal()
		return s.pause()
	}
	return nil
}

// afterAdvance sets up the next question or finishes the lesson.
func (s *QuizScreen) afterAdvance(outcome *engine.Outcome) tea.Cmd {
	if outcome != nil {
		return s.finish(outcome)
	}
	s.resetChoices()
	return s.countdown()
}

func (s *QuizScreen) resetChoices() {
	q := s.session.Current()
	s.mc = components.NewMultiChoice(q.Prompt, q.Options)
}

// reveal shows the graded answer. A timed-out question only marks the
// correct option.
func (s *QuizScreen) reveal() {
	a, ok := s.session.LastAnswer()
	if !ok {
		return
	}
	q := s.session.Current()
	chosen := -1
	if !a.TimedOut {
		chosen = indexOf(q.Options, a.Selected)
	}
	s.mc.Reveal(chosen, indexOf(q.Options, q.CorrectAnswer))
}

// countdown schedules the first tick of the current question's countdown.
func (s *QuizScreen) countdown() tea.Cmd {
	if s.session.Mode() != lessons.ModePlay || s.session.Phase() != engine.PhaseUnanswered {
		return nil
	}
	return tickAfter(s.session.Lease())
}

// pause schedules the play-mode auto-advance.
func (s *QuizScreen) pause() tea.Cmd {
	if s.session.Mode() != lessons.ModePlay {
		return nil
	}
	token := s.session.Lease()
	return tea.Tick(engine.FeedbackPause, func(time.Time) tea.Msg {
		return autoAdvanceMsg{Token: token}
	})
}

func tickAfter(token engine.Token) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return countdownTickMsg{Token: token}
	})
}

// quit cancels the lesson without crediting the profile.
func (s *QuizScreen) quit() tea.Cmd {
	if s.saving {
		return nil
	}
	s.session.Cancel()
	s.recordEvent(store.SessionActionCancel, nil)()
	return func() tea.Msg { return router.PopScreenMsg{} }
}

// Leave stops any pending countdown or auto-advance once the screen is off
// the stack. A finished session is left alone.
func (s *QuizScreen) Leave() {
	s.session.Cancel()
}

// finish credits the profile and records the completed session.
func (s *QuizScreen) finish(outcome *engine.Outcome) tea.Cmd {
	s.saving = true
	profilesStore := s.svc.Profiles
	profileID := s.profile.ID
	fallback := s.profile
	record := s.recordEvent(store.SessionActionComplete, outcome)

	return func() tea.Msg {
		record()
		p, err := profilesStore.RecordCompletion(context.Background(), profileID, outcome.Score)
		if err != nil {
			return lessonSavedMsg{Outcome: outcome, Profile: fallback, Err: err}
		}
		return lessonSavedMsg{Outcome: outcome, Profile: p}
	}
}

// recordEvent returns a command that appends a session event. Event
// logging is best effort.
func (s *QuizScreen) recordEvent(action string, outcome *engine.Outcome) tea.Cmd {
	events := s.svc.Events
	if events == nil {
		return func() tea.Msg { return nil }
	}

	data := store.SessionEventData{
		SessionID:      s.sessionID,
		Action:         action,
		ProfileID:      s.profile.ID,
		Topic:          s.cfg.Topic,
		Mode:           string(s.cfg.Mode),
		Difficulty:     string(s.cfg.Difficulty),
		QuestionsTotal: s.session.Total(),
		DurationSecs:   int(time.Since(s.startedAt).Seconds()),
	}
	if outcome != nil {
		data.CorrectAnswers = outcome.Correct
		data.Score = outcome.Score
		data.Points = outcome.Score * profiles.PointsPerCorrectAnswer
		data.BestCombo = outcome.BestCombo
	}

	return func() tea.Msg {
		_ = events.AppendSessionEvent(context.Background(), data)
		return nil
	}
}

func indexOf(options []string, option string) int {
	for i, o := range options {
		if o == option {
			return i
		}
	}
	return -1
}

// progressLabel renders "Vraag 2/5".
func (s *QuizScreen) progressLabel() string {
	return fmt.Sprintf("Vraag %d/%d", s.session.Index()+1, s.session.Total())
}
