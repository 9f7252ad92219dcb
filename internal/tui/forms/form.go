package forms

import (
	"strings"

	tea "charm.land/bubbletea/v2"
)

// Field is the interface that all form fields must implement
type Field interface {
	// Update handles messages and updates the field
	Update(tea.Msg) (Field, tea.Cmd)

	// View renders the field
	View() string

	// Focus focuses the field
	Focus() tea.Cmd

	// Blur removes focus from the field
	Blur()

	// Focused returns whether the field is focused
	Focused() bool

	// Key returns the field's key (used to retrieve values)
	Key() string
}

// Form manages focus across a collection of fields.
// Submitting and cancelling are left to the owner.
type Form struct {
	fields       []Field
	focusedIndex int
}

// NewForm creates a new form with the given fields
func NewForm(fields ...Field) *Form {
	return &Form{
		fields:       fields,
		focusedIndex: 0,
	}
}

// Init focuses the first field
func (f *Form) Init() tea.Cmd {
	if len(f.fields) > 0 {
		return f.fields[0].Focus()
	}
	return nil
}

// Update forwards msg to the focused field
func (f *Form) Update(msg tea.Msg) (*Form, tea.Cmd) {
	if f.focusedIndex < 0 || f.focusedIndex >= len(f.fields) {
		return f, nil
	}

	var cmd tea.Cmd
	f.fields[f.focusedIndex], cmd = f.fields[f.focusedIndex].Update(msg)
	return f, cmd
}

// Next moves focus to the following field, wrapping around.
// Passing reverse moves backwards.
func (f *Form) Next(reverse bool) tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}

	// Blur current field
	if f.focusedIndex >= 0 {
		f.fields[f.focusedIndex].Blur()
	}

	// Move focus
	if reverse {
		f.focusedIndex--
		if f.focusedIndex < 0 {
			f.focusedIndex = len(f.fields) - 1
		}
	} else {
		f.focusedIndex++
		if f.focusedIndex >= len(f.fields) {
			f.focusedIndex = 0
		}
	}

	// Focus new field
	return f.fields[f.focusedIndex].Focus()
}

// FocusKey focuses the field with the given key
func (f *Form) FocusKey(key string) tea.Cmd {
	for i, field := range f.fields {
		if field.Key() != key {
			continue
		}
		if f.focusedIndex >= 0 && f.focusedIndex < len(f.fields) {
			f.fields[f.focusedIndex].Blur()
		}
		f.focusedIndex = i
		return field.Focus()
	}
	return nil
}

// BlurAll removes focus from every field
func (f *Form) BlurAll() {
	for _, field := range f.fields {
		field.Blur()
	}
	f.focusedIndex = -1
}

// FocusedKey returns the key of the focused field, or "" if none is focused
func (f *Form) FocusedKey() string {
	if f.focusedIndex < 0 || f.focusedIndex >= len(f.fields) {
		return ""
	}
	return f.fields[f.focusedIndex].Key()
}

// View renders all fields separated by blank lines
func (f *Form) View() string {
	views := make([]string, 0, len(f.fields))
	for _, field := range f.fields {
		views = append(views, field.View())
	}
	return strings.Join(views, "\n\n")
}

// Get retrieves a field by key
func (f *Form) Get(key string) Field {
	for _, field := range f.fields {
		if field.Key() == key {
			return field
		}
	}
	return nil
}
