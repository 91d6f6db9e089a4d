// Package setup lets the learner describe the next lesson and waits for
// its questions to be generated.
package setup

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/linguist/internal/lessons"
	"github.com/abhisek/linguist/internal/profiles"
	"github.com/abhisek/linguist/internal/router"
	"github.com/abhisek/linguist/internal/screen"
	"github.com/abhisek/linguist/internal/ui/components"
	"github.com/abhisek/linguist/internal/ui/layout"
	"github.com/abhisek/linguist/internal/ui/theme"
)

type field int

const (
	fieldTopic field = iota
	fieldMode
	fieldDifficulty
	fieldStart
	fieldCount
)

// SetupScreen collects the lesson topic, mode and difficulty.
type SetupScreen struct {
	svc     screen.Services
	profile profiles.Profile
	cfg     lessons.LessonConfig
	input   components.TextInput
	focus   field
	errMsg  string
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)
var _ screen.StatsProvider = (*SetupScreen)(nil)

// Defaults returns the lesson settings offered to p before any changes.
func Defaults(p profiles.Profile) lessons.LessonConfig {
	return lessons.LessonConfig{
		GradeLevel: p.GradeLevel,
		Mode:       lessons.ModeStudy,
		Difficulty: lessons.DifficultyMedium,
	}
}

// New creates a SetupScreen prefilled with cfg.
func New(svc screen.Services, p profiles.Profile, cfg lessons.LessonConfig) *SetupScreen {
	cfg = cfg.Normalize()
	if cfg.GradeLevel == "" {
		cfg.GradeLevel = p.GradeLevel
	}

	input := components.NewTextInput("bijv. Engelse onregelmatige werkwoorden", 60)
	input.SetValue(cfg.Topic)

	return &SetupScreen{
		svc:     svc,
		profile: p,
		cfg:     cfg,
		input:   input,
	}
}

// WithError shows msg above the form, e.g. after a failed lesson request.
func (s *SetupScreen) WithError(msg string) *SetupScreen {
	s.errMsg = msg
	return s
}

func (s *SetupScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *SetupScreen) Title() string {
	return "Nieuwe les"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab/↑↓", Description: "Veld"},
		{Key: "←→", Description: "Wijzig"},
		{Key: "Enter", Description: "Start les"},
		{Key: "Esc", Description: "Terug"},
	}
}

func (s *SetupScreen) HeaderStats() *layout.HeaderStats {
	return &layout.HeaderStats{Points: s.profile.Stats.TotalPoints, Streak: s.profile.Stats.StreakCount}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	switch kmsg.String() {
	case "tab", "down":
		return s, s.moveFocus(1)
	case "shift+tab", "up":
		return s, s.moveFocus(-1)
	case "enter":
		return s, s.start()
	case "left", "right":
		step := 1
		if kmsg.String() == "left" {
			step = -1
		}
		switch s.focus {
		case fieldMode:
			s.toggleMode()
			return s, nil
		case fieldDifficulty:
			s.cycleDifficulty(step)
			return s, nil
		}
	}

	if s.focus != fieldTopic {
		return s, nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	if strings.TrimSpace(s.input.Value()) != "" && s.errMsg == lessons.MsgEmptyTopic {
		s.errMsg = ""
	}
	return s, cmd
}

func (s *SetupScreen) moveFocus(step int) tea.Cmd {
	s.focus = (s.focus + field(step) + fieldCount) % fieldCount
	if s.focus == fieldTopic {
		return s.input.Focus()
	}
	s.input.Blur()
	return nil
}

func (s *SetupScreen) toggleMode() {
	if s.cfg.Mode == lessons.ModePlay {
		s.cfg.Mode = lessons.ModeStudy
	} else {
		s.cfg.Mode = lessons.ModePlay
	}
}

func (s *SetupScreen) cycleDifficulty(step int) {
	n := len(lessons.Difficulties)
	i := 0
	for j, d := range lessons.Difficulties {
		if d == s.cfg.Difficulty {
			i = j
		}
	}
	s.cfg.Difficulty = lessons.Difficulties[(i+step+n)%n]
}

// start validates the form and hands over to the loading screen.
func (s *SetupScreen) start() tea.Cmd {
	s.cfg.Topic = strings.TrimSpace(s.input.Value())
	if s.cfg.Topic == "" {
		s.errMsg = lessons.MsgEmptyTopic
		s.input.Reject()
		s.focus = fieldTopic
		return s.input.Focus()
	}

	next := NewLoading(s.svc, s.profile, s.cfg)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

// Config returns the lesson settings as currently entered.
func (s *SetupScreen) Config() lessons.LessonConfig {
	cfg := s.cfg
	cfg.Topic = strings.TrimSpace(s.input.Value())
	return cfg
}

func (s *SetupScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	label := func(f field, text string) string {
		if s.focus == f {
			return theme.Selected.Render("▸ " + text)
		}
		return theme.Unselected.Render("  " + text)
	}

	var b strings.Builder
	b.WriteString(theme.Title.Width(cw).Render("Waar wil je vandaag over leren?"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(cw).Render(s.profile.DisplayName + " · " + s.cfg.GradeLevel))
	b.WriteString("\n\n")

	if s.errMsg != "" {
		b.WriteString(theme.Warning.Width(cw).Render("⚠ " + s.errMsg))
		b.WriteString("\n\n")
	}

	b.WriteString(label(fieldTopic, "Onderwerp"))
	b.WriteString("\n  ")
	b.WriteString(s.input.View())
	b.WriteString("\n\n")

	b.WriteString(label(fieldMode, "Modus"))
	b.WriteString("\n  ")
	b.WriteString(renderToggle([]string{lessons.ModeStudy.Label(), lessons.ModePlay.Label()},
		modeIndex(s.cfg.Mode), s.focus == fieldMode))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("  " + modeHint(s.cfg.Mode)))
	b.WriteString("\n\n")

	b.WriteString(label(fieldDifficulty, "Moeilijkheid"))
	b.WriteString("\n  ")
	var diffLabels []string
	diffIndex := 0
	for i, d := range lessons.Difficulties {
		diffLabels = append(diffLabels, d.Label())
		if d == s.cfg.Difficulty {
			diffIndex = i
		}
	}
	b.WriteString(renderToggle(diffLabels, diffIndex, s.focus == fieldDifficulty))
	b.WriteString("\n\n")

	b.WriteString(components.Button("Start les", s.focus == fieldStart))

	card := components.ArcadeCard(b.String(), cw)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func modeIndex(m lessons.Mode) int {
	if m == lessons.ModePlay {
		return 1
	}
	return 0
}

func modeHint(m lessons.Mode) string {
	if m == lessons.ModePlay {
		return "15 seconden per vraag, combo's leveren extra punten op."
	}
	return "Neem je tijd en lees de uitleg na elke vraag."
}

// renderToggle renders options side by side with the chosen one highlighted.
func renderToggle(options []string, chosen int, focused bool) string {
	parts := make([]string, len(options))
	for i, opt := range options {
		style := lipgloss.NewStyle().Foreground(theme.TextDim).Padding(0, 1)
		if i == chosen {
			style = lipgloss.NewStyle().Foreground(theme.BgDark).Background(theme.Secondary).Bold(true).Padding(0, 1)
			if focused {
				style = style.Background(theme.ArcadeYellow)
			}
		}
		parts[i] = style.Render(opt)
	}
	return strings.Join(parts, " ")
}
