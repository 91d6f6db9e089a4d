package home

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/linguist/internal/profiles"
	"github.com/abhisek/linguist/internal/router"
	"github.com/abhisek/linguist/internal/screen/screentest"
	"github.com/abhisek/linguist/internal/screens/setup"
)

type unconfigured struct{ screentest.Lessons }

func (*unconfigured) Configured() bool { return false }

func TestNewLessonOpensSetup(t *testing.T) {
	svc, _ := screentest.Services(t, &screentest.Lessons{})
	h := New(svc, "openbaar")

	_, cmd := h.Update(screentest.SpecialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	s, ok := msg.Screen.(*setup.SetupScreen)
	if !ok {
		t.Fatalf("expected setup screen, got %T", msg.Screen)
	}
	if s.Config().GradeLevel != "Groep 8" {
		t.Errorf("grade = %q, want profile grade", s.Config().GradeLevel)
	}
}

func TestSwitchProfilePops(t *testing.T) {
	svc, _ := screentest.Services(t, &screentest.Lessons{})
	h := New(svc, "openbaar")

	h.Update(screentest.SpecialKey(tea.KeyDown))
	_, cmd := h.Update(screentest.SpecialKey(tea.KeyEnter))
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatalf("expected PopScreenMsg, got %T", cmd())
	}
}

func TestHeaderStatsFollowStore(t *testing.T) {
	svc, _ := screentest.Services(t, &screentest.Lessons{})
	h := New(svc, "openbaar")

	if _, err := svc.Profiles.RecordCompletion(context.Background(), "openbaar", 3); err != nil {
		t.Fatal(err)
	}
	st := h.HeaderStats()
	if st.Points != 3*profiles.PointsPerCorrectAnswer || st.Streak != 1 {
		t.Errorf("HeaderStats = %+v", st)
	}
}

func TestMoodFor(t *testing.T) {
	if got := moodFor(profiles.Stats{StreakCount: 5}, false); got != moodAlert {
		t.Errorf("unconfigured = %v, want alert", got)
	}
	if got := moodFor(profiles.Stats{StreakCount: 3}, true); got != moodCheering {
		t.Errorf("streak 3 = %v, want cheering", got)
	}
	if got := moodFor(profiles.Stats{StreakCount: 2}, true); got != moodIdle {
		t.Errorf("streak 2 = %v, want idle", got)
	}
}

func TestStatsCompactDropsLabels(t *testing.T) {
	st := profiles.Stats{TotalPoints: 40, StreakCount: 2, CompletedLessons: 4}
	if full := renderStats(st, 60, false); !strings.Contains(full, "40 XP") || !strings.Contains(full, "4 LESSEN") {
		t.Errorf("full stats:\n%s", full)
	}
	if compact := renderStats(st, 60, true); strings.Contains(compact, "XP") || !strings.Contains(compact, "◆40") {
		t.Errorf("compact stats:\n%s", compact)
	}
}

func TestViewShowsBannerWhenUnconfigured(t *testing.T) {
	svc, _ := screentest.Services(t, &unconfigured{})
	view := New(svc, "openbaar").View(120, 40)
	if !strings.Contains(view, "API_KEY") {
		t.Error("expected API key banner")
	}

	svc, _ = screentest.Services(t, &screentest.Lessons{})
	view = New(svc, "openbaar").View(120, 40)
	if strings.Contains(view, "API_KEY") {
		t.Error("banner shown although lessons are configured")
	}
	if !strings.Contains(view, "Gast Gebruiker") {
		t.Error("expected greeting with profile name")
	}
}
