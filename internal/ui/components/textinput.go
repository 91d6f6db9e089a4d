package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/linguist/internal/ui/theme"
)

// TextInput is a styled bubbles textinput that can flag its value as
// rejected until the learner edits it.
type TextInput struct {
	Model    textinput.Model
	rejected bool
}

// NewTextInput returns a focused input limited to limit characters.
func NewTextInput(placeholder string, limit int) TextInput {
	m := textinput.New()
	m.Placeholder = placeholder
	if limit > 0 {
		m.CharLimit = limit
		m.SetWidth(limit)
	}
	m.Focus()
	return TextInput{Model: m}
}

// NewPasswordInput is NewTextInput with the typed characters masked.
func NewPasswordInput(placeholder string, limit int) TextInput {
	t := NewTextInput(placeholder, limit)
	t.Model.EchoMode = textinput.EchoPassword
	t.Model.EchoCharacter = '•'
	return t
}

func (t TextInput) Init() tea.Cmd { return t.Model.Focus() }

func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	prev := t.Model.Value()
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	if t.Model.Value() != prev {
		t.rejected = false
	}
	return t, cmd
}

func (t TextInput) View() string {
	if t.rejected {
		return t.Model.View() + " " + theme.Incorrect.Render("✗")
	}
	return t.Model.View()
}

func (t TextInput) Value() string      { return t.Model.Value() }
func (t *TextInput) SetValue(v string) { t.Model.SetValue(v) }
func (t *TextInput) Focus() tea.Cmd    { return t.Model.Focus() }
func (t *TextInput) Blur()             { t.Model.Blur() }

// Reject marks the current value as refused.
func (t *TextInput) Reject() { t.rejected = true }

// Reset empties the input and clears the rejection.
func (t *TextInput) Reset() {
	t.Model.Reset()
	t.rejected = false
}
