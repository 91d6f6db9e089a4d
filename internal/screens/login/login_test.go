package login

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/linguist/internal/profiles"
	"github.com/abhisek/linguist/internal/router"
	"github.com/abhisek/linguist/internal/screen/screentest"
	"github.com/abhisek/linguist/internal/screens/home"
)

func TestWrongPasswordStays(t *testing.T) {
	svc, _ := screentest.Services(t, &screentest.Lessons{})
	s := New(svc, "prive-1")

	screentest.Type(s, "999")
	_, cmd := s.Update(screentest.SpecialKey(tea.KeyEnter))
	if cmd != nil {
		t.Fatal("wrong password must not navigate")
	}
	if s.errMsg != profiles.MsgWrongPassword {
		t.Errorf("errMsg = %q", s.errMsg)
	}
	if s.input.Value() != "" {
		t.Error("input should be cleared for another try")
	}
	if !strings.Contains(s.View(100, 40), profiles.MsgWrongPassword) {
		t.Error("view should show the error")
	}
}

func TestCorrectPasswordGoesHome(t *testing.T) {
	svc, _ := screentest.Services(t, &screentest.Lessons{})
	s := New(svc, "prive-1")

	screentest.Type(s, "000")
	s.Update(screentest.SpecialKey(tea.KeyEnter))

	screentest.Type(s, "123")
	_, cmd := s.Update(screentest.SpecialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if _, ok := msg.Screen.(*home.HomeScreen); !ok {
		t.Errorf("expected home screen, got %T", msg.Screen)
	}
}

func TestPasswordMasked(t *testing.T) {
	svc, _ := screentest.Services(t, &screentest.Lessons{})
	s := New(svc, "prive-2")

	screentest.Type(s, "456")
	if strings.Contains(s.View(100, 40), "456") {
		t.Error("password must not be shown")
	}
}
