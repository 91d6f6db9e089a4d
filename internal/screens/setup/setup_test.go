package setup

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/linguist/internal/lessons"
	"github.com/abhisek/linguist/internal/llm"
	"github.com/abhisek/linguist/internal/profiles"
	"github.com/abhisek/linguist/internal/router"
	"github.com/abhisek/linguist/internal/screen"
	"github.com/abhisek/linguist/internal/screen/screentest"
	quizscreen "github.com/abhisek/linguist/internal/screens/quiz"
)

func newTestSetup(t *testing.T, provider lessons.Provider) (*SetupScreen, screen.Services) {
	t.Helper()
	svc, _ := screentest.Services(t, provider)
	p, err := svc.Profiles.Get("prive-1")
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	return New(svc, p, Defaults(p)), svc
}

func TestDefaults(t *testing.T) {
	cfg := Defaults(profiles.Profile{GradeLevel: "Klas 4"})
	if cfg.GradeLevel != "Klas 4" || cfg.Mode != lessons.ModeStudy || cfg.Difficulty != lessons.DifficultyMedium {
		t.Errorf("Defaults = %+v", cfg)
	}
}

func TestEmptyTopicRejected(t *testing.T) {
	s, _ := newTestSetup(t, &screentest.Lessons{})

	screentest.Type(s, "   ")
	next, _ := s.Update(screentest.SpecialKey(tea.KeyEnter))
	if next != s {
		t.Fatal("empty topic must not leave the setup screen")
	}
	if s.errMsg != lessons.MsgEmptyTopic {
		t.Errorf("errMsg = %q", s.errMsg)
	}
	if !strings.Contains(s.View(100, 40), lessons.MsgEmptyTopic) {
		t.Error("expected empty-topic message in view")
	}
}

func TestToggles(t *testing.T) {
	s, _ := newTestSetup(t, &screentest.Lessons{})

	s.Update(screentest.SpecialKey(tea.KeyTab))
	s.Update(screentest.SpecialKey(tea.KeyRight))
	if s.Config().Mode != lessons.ModePlay {
		t.Errorf("mode = %q, want play", s.Config().Mode)
	}
	s.Update(screentest.SpecialKey(tea.KeyLeft))
	if s.Config().Mode != lessons.ModeStudy {
		t.Errorf("mode = %q, want study", s.Config().Mode)
	}

	s.Update(screentest.SpecialKey(tea.KeyDown))
	s.Update(screentest.SpecialKey(tea.KeyRight))
	if s.Config().Difficulty != lessons.DifficultyHard {
		t.Errorf("difficulty = %q, want hard", s.Config().Difficulty)
	}
	s.Update(screentest.SpecialKey(tea.KeyRight))
	if s.Config().Difficulty != lessons.DifficultyEasy {
		t.Errorf("difficulty = %q, want wrap to easy", s.Config().Difficulty)
	}
}

func TestTypingOnlyReachesTopicField(t *testing.T) {
	s, _ := newTestSetup(t, &screentest.Lessons{})

	screentest.Type(s, "Rome")
	s.Update(screentest.SpecialKey(tea.KeyTab))
	screentest.Type(s, "xyz")

	if got := s.Config().Topic; got != "Rome" {
		t.Errorf("topic = %q, want Rome", got)
	}
}

func TestStartOpensLoading(t *testing.T) {
	s, _ := newTestSetup(t, &screentest.Lessons{})

	screentest.Type(s, "Romeinen")
	_, cmd := s.Update(screentest.SpecialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	replace, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	ls, ok := replace.Screen.(*LoadingScreen)
	if !ok {
		t.Fatalf("expected loading screen, got %T", replace.Screen)
	}
	if ls.cfg.Topic != "Romeinen" || ls.cfg.GradeLevel != "Klas 2" {
		t.Errorf("loading cfg = %+v", ls.cfg)
	}
}

func TestWithErrorShown(t *testing.T) {
	s, _ := newTestSetup(t, &screentest.Lessons{})
	s.WithError(lessons.MsgNotConfigured)
	if !strings.Contains(s.View(100, 40), "API_KEY") {
		t.Error("expected configuration message in view")
	}
}

func loadingFor(t *testing.T, provider lessons.Provider) *LoadingScreen {
	t.Helper()
	svc, _ := screentest.Services(t, provider)
	p, _ := svc.Profiles.Get("openbaar")
	cfg := Defaults(p)
	cfg.Topic = "Vulkanen"
	return NewLoading(svc, p, cfg)
}

func TestLoading_SuccessStartsQuiz(t *testing.T) {
	provider := &screentest.Lessons{Questions: screentest.Questions(5)}
	ls := loadingFor(t, provider)

	msg := ls.fetch()()
	_, cmd := ls.Update(msg)
	if cmd == nil {
		t.Fatal("expected a command")
	}
	replace, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if _, ok := replace.Screen.(*quizscreen.QuizScreen); !ok {
		t.Fatalf("expected quiz screen, got %T", replace.Screen)
	}
	if len(provider.Requests) != 1 || provider.Requests[0].Topic != "Vulkanen" {
		t.Errorf("requests = %+v", provider.Requests)
	}
}

func TestLoading_FailureReturnsToSetup(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"not configured", &lessons.ConfigurationError{Err: llm.ErrNoCredentials}, lessons.MsgNotConfigured},
		{"generation failed", &lessons.ContentGenerationError{Topic: "Vulkanen", Err: errors.New("boom")}, lessons.MsgGenerationFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ls := loadingFor(t, &screentest.Lessons{Err: tt.err})

			_, cmd := ls.Update(ls.fetch()())
			replace, ok := cmd().(router.ReplaceScreenMsg)
			if !ok {
				t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
			}
			setup, ok := replace.Screen.(*SetupScreen)
			if !ok {
				t.Fatalf("expected setup screen, got %T", replace.Screen)
			}
			if setup.errMsg != tt.want {
				t.Errorf("errMsg = %q, want %q", setup.errMsg, tt.want)
			}
			if setup.Config().Topic != "Vulkanen" {
				t.Error("topic should be kept for another try")
			}
		})
	}
}

func TestLoading_InvalidBatchReturnsToSetup(t *testing.T) {
	bad := screentest.Questions(1)
	bad[0].CorrectAnswer = "Z"
	ls := loadingFor(t, &screentest.Lessons{Questions: bad})

	_, cmd := ls.Update(ls.fetch()())
	replace := cmd().(router.ReplaceScreenMsg)
	if s, ok := replace.Screen.(*SetupScreen); !ok || s.errMsg != lessons.MsgGenerationFailed {
		t.Fatalf("expected setup with generation error, got %T", replace.Screen)
	}
}

func TestLoading_ResultDiscardedAfterLeaving(t *testing.T) {
	ls := loadingFor(t, &screentest.Lessons{Questions: screentest.Questions(5)})
	fetch := ls.fetch()

	_, cmd := ls.Update(screentest.SpecialKey(tea.KeyEscape))
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatalf("expected PopScreenMsg, got %T", cmd())
	}

	msg := fetch()
	if r, ok := msg.(questionsReadyMsg); !ok || !errors.Is(r.Err, context.Canceled) {
		t.Errorf("request should be cancelled, got %+v", msg)
	}
	if _, cmd := ls.Update(msg); cmd != nil {
		t.Error("late result must be discarded")
	}
}

func TestLoading_IgnoresForeignRequest(t *testing.T) {
	ls := loadingFor(t, &screentest.Lessons{Questions: screentest.Questions(5)})
	ls.fetch()

	_, cmd := ls.Update(questionsReadyMsg{RequestID: "other", Questions: screentest.Questions(5)})
	if cmd != nil {
		t.Error("result of another request must be ignored")
	}
}
