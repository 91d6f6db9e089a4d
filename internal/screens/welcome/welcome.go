// Package welcome is the splash screen shown at start-up.
package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/linguist/internal/router"
	"github.com/abhisek/linguist/internal/screen"
	"github.com/abhisek/linguist/internal/ui/components"
	"github.com/abhisek/linguist/internal/ui/theme"
)

const frameInterval = 100 * time.Millisecond

// stage is how far the splash animation has got.
type stage int

const (
	stageMascot   stage = iota // mascot only
	stageSparkles              // sparkles start blinking
	stageTitle                 // banner, tagline and key hint
)

// Elapsed time at which each stage begins. The clock stops at animationEnd.
var stageStarts = [...]time.Duration{
	stageSparkles: 500 * time.Millisecond,
	stageTitle:    1500 * time.Millisecond,
}

const animationEnd = 2500 * time.Millisecond

var mascotRows = []string{
	"╭───────────╮",
	"│  ┌─────┐  │",
	"│  │ ◉ ◉ │  │",
	"│  │  ▽  │  │",
	"│  ├─────┤  │",
	"│  │ A?Z │  │",
	"│  └─────┘  │",
	"╰───────────╯",
}

var (
	mascotStyle  = lipgloss.NewStyle().Foreground(theme.Primary)
	bannerStyle  = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	taglineStyle = lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	sparkleA     = lipgloss.NewStyle().Foreground(theme.Accent)
	sparkleB     = lipgloss.NewStyle().Foreground(theme.Secondary)
)

type frameMsg struct{}

// WelcomeScreen animates the mascot and banner until a key is pressed,
// then replaces itself with the screen built by next.
type WelcomeScreen struct {
	next    func() screen.Screen
	elapsed time.Duration
	frames  int
	done    bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

func New(next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{next: next}
}

func (w *WelcomeScreen) Title() string { return "" }

func (w *WelcomeScreen) Init() tea.Cmd { return nextFrame() }

func nextFrame() tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg { return frameMsg{} })
}

func (w *WelcomeScreen) stage() stage {
	for s := stageTitle; s > stageMascot; s-- {
		if w.elapsed >= stageStarts[s] {
			return s
		}
	}
	return stageMascot
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case frameMsg:
		if w.done {
			return w, nil
		}
		w.elapsed = min(w.elapsed+frameInterval, animationEnd)
		w.frames++
		return w, nextFrame()

	case tea.KeyPressMsg:
		if w.done {
			return w, nil
		}
		w.done = true
		next := w.next()
		return w, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
	}
	return w, nil
}

func (w *WelcomeScreen) View(width, height int) string {
	st := w.stage()
	rows := make([]string, len(mascotRows))
	for i, row := range mascotRows {
		rows[i] = "   " + mascotStyle.Render(row) + "   "
	}
	if st >= stageSparkles {
		// Sparkles blink on the frame edge and swap colours each frame.
		glyph := [2]string{"★", "✦"}[w.frames%2]
		left, right := sparkleA, sparkleB
		for _, i := range []int{0, 3, 7} {
			rows[i] = left.Render(glyph) + "  " + mascotStyle.Render(mascotRows[i]) + "  " + right.Render(glyph)
			left, right = right, left
		}
	}

	parts := []string{strings.Join(rows, "\n")}
	if st >= stageTitle {
		parts = append(parts,
			"",
			bannerStyle.Render(components.Banner(width < components.BannerMinWidth)),
			"",
			taglineStyle.Render("Leer slim met AI!"),
			"",
			theme.Hint.Render("druk op een toets om verder te gaan"),
		)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, parts...))
}
