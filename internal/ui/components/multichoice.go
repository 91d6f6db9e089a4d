package components

import (
	"fmt"
	"strings"
	"unicode"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/linguist/internal/ui/theme"
)

// MultiChoice shows a question with lettered options. It tracks the
// highlight only; the caller grades and then calls Reveal.
type MultiChoice struct {
	Question string
	Options  []string
	// Selected is the highlighted option, -1 for none.
	Selected int

	Revealed     bool
	ChosenIndex  int
	CorrectIndex int
}

func NewMultiChoice(question string, options []string) MultiChoice {
	return MultiChoice{
		Question:     question,
		Options:      options,
		Selected:     -1,
		ChosenIndex:  -1,
		CorrectIndex: -1,
	}
}

// Update moves the highlight with the arrow keys. The first press from
// nothing highlighted lands on the first option.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || m.Revealed || len(m.Options) == 0 {
		return m, nil
	}
	switch key.String() {
	case "up", "k":
		m.Selected = max(m.Selected-1, 0)
	case "down", "j":
		m.Selected = min(m.Selected+1, len(m.Options)-1)
	}
	return m, nil
}

func (m MultiChoice) Highlighted() (string, bool) {
	if m.Selected < 0 || m.Selected >= len(m.Options) {
		return "", false
	}
	return m.Options[m.Selected], true
}

// IndexForKey maps "a".."z", "A".."Z" or "1".."9" to an option index.
func (m MultiChoice) IndexForKey(key string) (int, bool) {
	r := []rune(key)
	if len(r) != 1 {
		return 0, false
	}
	var i int
	switch c := unicode.ToLower(r[0]); {
	case c >= '1' && c <= '9':
		i = int(c - '1')
	case c >= 'a' && c <= 'z':
		i = int(c - 'a')
	default:
		return 0, false
	}
	return i, i < len(m.Options)
}

// Reveal freezes the component and marks chosen (-1 for none) and correct.
func (m *MultiChoice) Reveal(chosen, correct int) {
	m.Revealed = true
	m.ChosenIndex = chosen
	m.CorrectIndex = correct
}

var dimmed = lipgloss.NewStyle().Foreground(theme.TextDim)

func (m MultiChoice) View() string {
	var b strings.Builder
	b.WriteString(theme.Body.Bold(true).Render(m.Question))
	b.WriteString("\n\n")

	for i, opt := range m.Options {
		cursor := "  "
		if !m.Revealed && i == m.Selected {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%c)  %s", cursor, 'A'+rune(i), opt)

		style := theme.Unselected
		switch {
		case m.Revealed && i == m.CorrectIndex:
			style, line = theme.Correct, line+"  ✓"
		case m.Revealed && i == m.ChosenIndex:
			style, line = theme.Incorrect, line+"  ✗"
		case m.Revealed:
			style = dimmed
		case i == m.Selected:
			style = theme.Selected
		}
		b.WriteString(style.Render(line))
		b.WriteByte('\n')
	}
	return b.String()
}
