package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/peekaboo/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with Peekaboo styling. It is used as
// a search box, so it starts blurred.
type TextInput struct {
	Model    textinput.Model
	MaxWidth int
}

// NewTextInput creates a new styled text input.
func NewTextInput(placeholder string, maxWidth int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "🔍 "

	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}

	return TextInput{
		Model:    ti,
		MaxWidth: maxWidth,
	}
}

// Focus starts accepting keystrokes.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur stops accepting keystrokes and keeps the text.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// Focused reports whether the input takes keystrokes.
func (t TextInput) Focused() bool {
	return t.Model.Focused()
}

// Clear empties the input.
func (t *TextInput) Clear() {
	t.Model.SetValue("")
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the text input.
func (t TextInput) View() string {
	view := t.Model.View()
	if !t.Focused() && t.Value() == "" {
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render("🔍 press / to search")
	}
	return view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// Matches reports whether s contains the input, ignoring case. An empty
// input matches everything.
func (t TextInput) Matches(s string) bool {
	q := strings.TrimSpace(t.Value())
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(q))
}
