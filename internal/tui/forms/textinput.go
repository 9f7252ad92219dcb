package forms

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// TextInput is a single-line text input field
type TextInput struct {
	key     string
	title   string
	invalid bool
	set     pristine
	input   textinput.Model
}

// NewTextInput creates a new text input field
func NewTextInput(key, title, placeholder string) *TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 0

	return &TextInput{
		key:   key,
		title: title,
		input: ti,
	}
}

// Update handles messages
func (t *TextInput) Update(msg tea.Msg) (Field, tea.Cmd) {
	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return t, cmd
}

// View renders the text input
func (t *TextInput) View() string {
	return renderTitle(t.title, t.invalid) + "\n" + t.input.View()
}

// Focus focuses the text input
func (t *TextInput) Focus() tea.Cmd {
	return t.input.Focus()
}

// Blur removes focus
func (t *TextInput) Blur() {
	t.input.Blur()
}

// Focused returns whether the input is focused
func (t *TextInput) Focused() bool {
	return t.input.Focused()
}

// Key returns the field key
func (t *TextInput) Key() string {
	return t.key
}

// Value returns the current value
func (t *TextInput) Value() string {
	return t.set.value(t.input.Value())
}

// SetValue replaces the current value
func (t *TextInput) SetValue(v string) {
	t.input.SetValue(v)
	t.set.remember(v, t.input.Value())
}

// SetInvalid toggles the validation error marker
func (t *TextInput) SetInvalid(invalid bool) {
	t.invalid = invalid
}

// Invalid reports whether the field carries an error marker
func (t *TextInput) Invalid() bool {
	return t.invalid
}

// SetWidth sets the visible input width
func (t *TextInput) SetWidth(w int) {
	t.input.SetWidth(w)
}
