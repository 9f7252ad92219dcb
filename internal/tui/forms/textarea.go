package forms

import (
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
)

// TextArea is a multi-line text input field
type TextArea struct {
	key      string
	title    string
	invalid  bool
	set      pristine
	textarea textarea.Model
}

// NewTextArea creates a new text area field. A charLimit of 0 means no limit
// on characters or lines.
func NewTextArea(key, title, placeholder string, charLimit int) *TextArea {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.CharLimit = charLimit
	if charLimit == 0 {
		ta.MaxHeight = 0
	}
	ta.ShowLineNumbers = false
	ta.SetHeight(5)

	return &TextArea{
		key:      key,
		title:    title,
		textarea: ta,
	}
}

// Update handles messages
func (t *TextArea) Update(msg tea.Msg) (Field, tea.Cmd) {
	var cmd tea.Cmd
	t.textarea, cmd = t.textarea.Update(msg)
	return t, cmd
}

// View renders the text area
func (t *TextArea) View() string {
	return renderTitle(t.title, t.invalid) + "\n" + t.textarea.View()
}

// Focus focuses the text area
func (t *TextArea) Focus() tea.Cmd {
	return t.textarea.Focus()
}

// Blur removes focus
func (t *TextArea) Blur() {
	t.textarea.Blur()
}

// Focused returns whether the text area is focused
func (t *TextArea) Focused() bool {
	return t.textarea.Focused()
}

// Key returns the field key
func (t *TextArea) Key() string {
	return t.key
}

// Value returns the current value
func (t *TextArea) Value() string {
	return t.set.value(t.textarea.Value())
}

// SetValue replaces the current value
func (t *TextArea) SetValue(v string) {
	t.textarea.SetValue(v)
	t.set.remember(v, t.textarea.Value())
}

// SetInvalid toggles the validation error marker
func (t *TextArea) SetInvalid(invalid bool) {
	t.invalid = invalid
}

// Invalid reports whether the field carries an error marker
func (t *TextArea) Invalid() bool {
	return t.invalid
}

// SetWidth sets the visible text area width
func (t *TextArea) SetWidth(w int) {
	t.textarea.SetWidth(w)
}
