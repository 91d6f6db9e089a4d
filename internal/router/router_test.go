package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/linguist/internal/screen"
)

type fakeScreen struct {
	name   string
	inits  int
	left   int
	seen   []tea.Msg
	leaver bool
}

func (s *fakeScreen) Init() tea.Cmd { s.inits++; return nil }
func (s *fakeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.seen = append(s.seen, msg)
	return s, nil
}
func (s *fakeScreen) View(int, int) string { return s.name }
func (s *fakeScreen) Title() string        { return s.name }

// leavingScreen also implements screen.Leaver.
type leavingScreen struct{ *fakeScreen }

func (s leavingScreen) Leave() { s.left++ }

func TestNavigation(t *testing.T) {
	profiles := &fakeScreen{name: "profielen"}
	home := &fakeScreen{name: "home"}
	setup := &fakeScreen{name: "setup"}
	loading := leavingScreen{&fakeScreen{name: "laden"}}
	quiz := leavingScreen{&fakeScreen{name: "quiz"}}

	r := New(profiles)
	r.Update(PushScreenMsg{Screen: home})
	r.Update(PushScreenMsg{Screen: setup})
	assert.Equal(t, 3, r.Depth())
	assert.Equal(t, 1, setup.inits)

	r.Update(ReplaceScreenMsg{Screen: loading})
	r.Update(ReplaceScreenMsg{Screen: quiz})
	assert.Equal(t, 3, r.Depth(), "replace keeps the depth")
	assert.Equal(t, 1, loading.left, "replaced screen is told to leave")
	assert.Equal(t, 1, quiz.inits)
	assert.Equal(t, "quiz", r.View(80, 24))

	r.Update(PopScreenMsg{})
	assert.Equal(t, 1, quiz.left, "popped screen is told to leave")
	assert.Same(t, home, r.Active())
}

func TestPopKeepsRoot(t *testing.T) {
	root := &fakeScreen{name: "welkom"}
	r := New(root)
	r.Pop()
	r.Update(PopScreenMsg{})
	require.Equal(t, 1, r.Depth())
	assert.Same(t, root, r.Active())
}

func TestUpdateForwardsToTop(t *testing.T) {
	bottom := &fakeScreen{name: "home"}
	top := &fakeScreen{name: "setup"}
	r := New(bottom)
	r.Push(top)

	r.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})
	assert.Len(t, top.seen, 1)
	assert.Empty(t, bottom.seen)
}

func TestCloseLeavesEveryScreen(t *testing.T) {
	a := leavingScreen{&fakeScreen{name: "home"}}
	b := leavingScreen{&fakeScreen{name: "laden"}}
	r := New(a)
	r.Push(b)
	r.Close()
	assert.Equal(t, 1, a.left)
	assert.Equal(t, 1, b.left)
}
