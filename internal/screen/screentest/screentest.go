// Package screentest provides in-memory services and key helpers for
// screen tests.
package screentest

import (
	"context"
	"fmt"
	"sync"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/linguist/internal/lessons"
	"github.com/abhisek/linguist/internal/profiles"
	"github.com/abhisek/linguist/internal/screen"
	"github.com/abhisek/linguist/internal/store"
)

// KeyPress returns a printable key press.
func KeyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// SpecialKey returns a non-printable key press such as tea.KeyEnter.
func SpecialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// Type sends each rune of text to s.
func Type(s screen.Screen, text string) screen.Screen {
	for _, r := range text {
		s, _ = s.Update(KeyPress(r))
	}
	return s
}

// MemBackend is a profiles.Backend backed by a map.
type MemBackend struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemBackend() *MemBackend {
	return &MemBackend{data: map[string][]byte{}}
}

func (m *MemBackend) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *MemBackend) Put(_ context.Context, key string, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), payload...)
	return nil
}

func (m *MemBackend) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// Lessons is a lessons.Provider that returns canned questions.
type Lessons struct {
	Questions []lessons.Question
	Err       error

	mu       sync.Mutex
	Requests []lessons.LessonConfig
}

func (l *Lessons) FetchQuestions(ctx context.Context, cfg lessons.LessonConfig) ([]lessons.Question, error) {
	l.mu.Lock()
	l.Requests = append(l.Requests, cfg)
	l.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if l.Err != nil {
		return nil, l.Err
	}
	return l.Questions, nil
}

// Events records session events in memory.
type Events struct {
	store.EventRepo

	mu       sync.Mutex
	Sessions []store.SessionEventData
}

func (e *Events) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.Sessions = append(e.Sessions, data)
	return nil
}

// Actions returns the recorded session actions in order.
func (e *Events) Actions() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]string, len(e.Sessions))
	for i, s := range e.Sessions {
		out[i] = s.Action
	}
	return out
}

// Questions returns n valid questions whose correct answer is "B".
func Questions(n int) []lessons.Question {
	qs := make([]lessons.Question, n)
	for i := range qs {
		qs[i] = lessons.Question{
			ID:            fmt.Sprintf("q%d", i+1),
			Prompt:        fmt.Sprintf("Vraag %d?", i+1),
			Options:       []string{"A", "B", "C", "D"},
			CorrectAnswer: "B",
			Explanation:   "Uitleg bij vraag.",
			Category:      "test",
		}
	}
	return qs
}

// Services returns services over a loaded seed profile set.
func Services(t *testing.T, provider lessons.Provider) (screen.Services, *Events) {
	t.Helper()
	ps := profiles.NewStore(NewMemBackend())
	if _, err := ps.Load(context.Background()); err != nil {
		t.Fatalf("load profiles: %v", err)
	}
	events := &Events{}
	return screen.Services{Profiles: ps, Lessons: provider, Events: events}, events
}
