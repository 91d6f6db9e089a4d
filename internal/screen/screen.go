package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/linguist/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// EscapeCapturer is implemented by screens that handle Esc themselves
// instead of letting the app pop them.
type EscapeCapturer interface {
	CapturesEscape() bool
}

// StatsProvider is implemented by screens that belong to a signed-in
// profile; its figures are shown in the header.
type StatsProvider interface {
	HeaderStats() *layout.HeaderStats
}

// Leaver is implemented by screens that hold background work. The router
// calls Leave when the screen is popped or replaced.
type Leaver interface {
	Leave()
}
