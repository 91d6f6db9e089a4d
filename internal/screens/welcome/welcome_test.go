package welcome

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/linguist/internal/router"
	"github.com/abhisek/linguist/internal/screen"
)

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "profielen" }
func (s *stubScreen) Title() string                           { return "Profielen" }

func newWelcome() (*WelcomeScreen, *int) {
	built := 0
	return New(func() screen.Screen {
		built++
		return &stubScreen{}
	}), &built
}

func advance(w *WelcomeScreen, frames int) {
	for range frames {
		w.Update(frameMsg{})
	}
}

func TestStages(t *testing.T) {
	w, _ := newWelcome()
	assert.Equal(t, stageMascot, w.stage())
	assert.NotContains(t, w.View(80, 24), "Leer slim")
	assert.False(t, strings.ContainsAny(w.View(80, 24), "★✦"))

	advance(w, 5)
	assert.Equal(t, stageSparkles, w.stage())
	assert.True(t, strings.ContainsAny(w.View(80, 24), "★✦"))

	advance(w, 10)
	assert.Equal(t, stageTitle, w.stage())
	assert.Contains(t, w.View(80, 24), "Leer slim met AI!")
}

func TestClockStopsAtEnd(t *testing.T) {
	w, built := newWelcome()
	advance(w, 60)
	assert.Equal(t, animationEnd, w.elapsed)
	assert.Zero(t, *built, "the splash waits for a key")
}

func TestKeyReplacesOnce(t *testing.T) {
	w, built := newWelcome()
	advance(w, 2)

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' '})
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok)
	assert.NotNil(t, msg.Screen)

	_, cmd = w.Update(tea.KeyPressMsg{Code: 'x'})
	assert.Nil(t, cmd)
	_, cmd = w.Update(frameMsg{})
	assert.Nil(t, cmd, "frames stop after the hand-over")
	assert.Equal(t, 1, *built)
}

func TestNarrowTerminalGetsCompactBanner(t *testing.T) {
	w, _ := newWelcome()
	advance(w, 20)
	assert.True(t, strings.Contains(w.View(50, 30), "L · I · N"))
	assert.False(t, strings.Contains(w.View(100, 30), "L · I · N"))
}
