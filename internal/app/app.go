// Package app wires the router into a Bubble Tea program and draws the
// shared header and footer around the active screen.
package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/linguist/internal/router"
	"github.com/abhisek/linguist/internal/screen"
	"github.com/abhisek/linguist/internal/screens/profileselect"
	"github.com/abhisek/linguist/internal/screens/welcome"
	"github.com/abhisek/linguist/internal/ui/layout"
)

type Options struct {
	Services screen.Services
	// SkipSplash opens the profile picker straight away.
	SkipSplash bool
}

var (
	rootHints = []layout.KeyHint{
		{Key: "↑↓", Description: "Navigeer"},
		{Key: "Enter", Description: "Kies"},
		{Key: "Ctrl+C", Description: "Stoppen"},
	}
	nestedHints = []layout.KeyHint{
		{Key: "Esc", Description: "Terug"},
		{Key: "Ctrl+C", Description: "Stoppen"},
	}
)

// AppModel is the root tea.Model.
type AppModel struct {
	router        *router.Router
	width, height int
}

func newAppModel(opts Options) AppModel {
	profilesScreen := func() screen.Screen { return profileselect.New(opts.Services) }
	first := screen.Screen(welcome.New(profilesScreen))
	if opts.SkipSplash {
		first = profilesScreen()
	}
	return AppModel{router: router.New(first)}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.router.Close()
			return m, tea.Quit
		case "esc":
			if c, ok := m.router.Active().(screen.EscapeCapturer); ok && c.CapturesEscape() {
				break
			}
			if m.router.Depth() == 1 {
				return m, nil
			}
			return m, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return m, m.router.Update(msg)
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	switch {
	case m.width == 0 || m.height == 0:
		return v
	case layout.IsTooSmall(m.width, m.height):
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	var stats *layout.HeaderStats
	if sp, ok := active.(screen.StatsProvider); ok {
		stats = sp.HeaderStats()
	}
	header := layout.RenderHeader(active.Title(), stats, m.width)
	footer := layout.RenderFooter(m.hints(active), m.width)

	body := layout.BodyHeight(header, footer, m.height)
	v.SetContent(layout.RenderFrame(header, m.router.View(m.width, body), footer, m.width, m.height))
	return v
}

// hints prefers the screen's own key hints over the defaults.
func (m AppModel) hints(active screen.Screen) []layout.KeyHint {
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if h := hp.KeyHints(); len(h) > 0 {
			return h
		}
	}
	if m.router.Depth() > 1 {
		return nestedHints
	}
	return rootHints
}

// Run blocks until the learner quits.
func Run(opts Options) error {
	if _, err := tea.NewProgram(newAppModel(opts)).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
