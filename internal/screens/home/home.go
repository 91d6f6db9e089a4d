package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/linguist/internal/profiles"
	"github.com/abhisek/linguist/internal/router"
	"github.com/abhisek/linguist/internal/screen"
	"github.com/abhisek/linguist/internal/screens/setup"
	"github.com/abhisek/linguist/internal/ui/components"
	"github.com/abhisek/linguist/internal/ui/layout"
)

// HomeScreen is the dashboard of a signed-in profile.
type HomeScreen struct {
	svc        screen.Services
	profileID  string
	menu       components.Menu
	configured bool
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.StatsProvider = (*HomeScreen)(nil)

// New creates a HomeScreen for profileID.
func New(svc screen.Services, profileID string) *HomeScreen {
	h := &HomeScreen{
		svc:        svc,
		profileID:  profileID,
		configured: lessonsConfigured(svc),
	}

	h.menu = components.NewMenu([]components.MenuItem{
		{Label: "NIEUWE LES", Action: func() tea.Cmd {
			p := h.profile()
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: setup.New(svc, p, setup.Defaults(p))}
			}
		}},
		{Label: "WISSEL PROFIEL", Action: func() tea.Cmd {
			return func() tea.Msg { return router.PopScreenMsg{} }
		}},
		{Label: "AFSLUITEN", Action: func() tea.Cmd {
			return tea.Quit
		}},
	})
	return h
}

// lessonsConfigured reports whether the lesson source has a credential.
// Sources that cannot tell are assumed configured.
func lessonsConfigured(svc screen.Services) bool {
	c, ok := svc.Lessons.(interface{ Configured() bool })
	return !ok || c.Configured()
}

// profile re-reads the profile so stats are current after a lesson.
func (h *HomeScreen) profile() profiles.Profile {
	p, err := h.svc.Profiles.Get(h.profileID)
	if err != nil {
		return profiles.Profile{ID: h.profileID, DisplayName: h.profileID}
	}
	return p
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height excludes the header and footer bars.
	compact := layout.IsCompactHeight(height+8) || layout.IsCompactWidth(width)

	cw := components.ContentWidth(width)
	p := h.profile()

	var sections []string
	sections = append(sections, renderBanner(cw, compact))
	if !compact {
		sections = append(sections, renderMascot(moodFor(p.Stats, h.configured), cw))
	}
	sections = append(sections, renderGreeting(p, cw))
	sections = append(sections, renderStats(p.Stats, cw, compact))

	sections = append(sections, h.menu.View(cw, compact))

	if !h.configured {
		sections = append(sections, renderKeyWarning(cw))
	}

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) HeaderStats() *layout.HeaderStats {
	st := h.profile().Stats
	return &layout.HeaderStats{Points: st.TotalPoints, Streak: st.StreakCount}
}
