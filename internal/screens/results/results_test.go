package results

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/linguist/internal/lessons"
	"github.com/abhisek/linguist/internal/profiles"
	"github.com/abhisek/linguist/internal/quiz"
	"github.com/abhisek/linguist/internal/router"
)

func playOutcome() *quiz.Outcome {
	return &quiz.Outcome{Mode: lessons.ModePlay, Score: 7, Correct: 5, Total: 5, BestCombo: 5}
}

func TestEarnedPointsUseScore(t *testing.T) {
	s := New(profiles.Profile{}, lessons.LessonConfig{Topic: "Planeten"}, playOutcome(), nil)
	if got := s.EarnedPoints(); got != 7*profiles.PointsPerCorrectAnswer {
		t.Errorf("EarnedPoints = %d", got)
	}

	view := s.View(100, 40)
	for _, want := range []string{"+350 XP", "5/5", "Beste combo", "Perfect!"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSaveErrorShown(t *testing.T) {
	out := &quiz.Outcome{Mode: lessons.ModeStudy, Score: 1, Correct: 1, Total: 5}
	view := New(profiles.Profile{}, lessons.LessonConfig{}, out, errors.New("disk full")).View(100, 40)

	if !strings.Contains(view, "niet worden opgeslagen") {
		t.Error("expected save warning")
	}
	if strings.Contains(view, "Beste combo") {
		t.Error("study mode has no combo row")
	}
}

func TestEnterReturnsHome(t *testing.T) {
	s := New(profiles.Profile{}, lessons.LessonConfig{}, playOutcome(), nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
}
