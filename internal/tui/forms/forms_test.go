package forms

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
)

func press(code rune, text string) tea.KeyPressMsg {
	return tea.KeyPressMsg(tea.Key{Code: code, Text: text})
}

func TestForm_NextCyclesFocus(t *testing.T) {
	author := NewTextInput("author", "Author", "")
	text := NewTextArea("text", "Text", "", 0)
	f := NewForm(author, text)
	f.Init()

	assert.Equal(t, "author", f.FocusedKey())

	f.Next(false)
	assert.Equal(t, "text", f.FocusedKey())
	assert.False(t, author.Focused())
	assert.True(t, text.Focused())

	f.Next(false)
	assert.Equal(t, "author", f.FocusedKey())

	f.Next(true)
	assert.Equal(t, "text", f.FocusedKey())
}

func TestForm_FocusKeyAndBlurAll(t *testing.T) {
	author := NewTextInput("author", "Author", "")
	text := NewTextArea("text", "Text", "", 0)
	f := NewForm(author, text)

	f.FocusKey("text")
	assert.Equal(t, "text", f.FocusedKey())

	f.BlurAll()
	assert.Equal(t, "", f.FocusedKey())
	assert.False(t, text.Focused())

	assert.Same(t, Field(author), f.Get("author"))
	assert.Nil(t, f.Get("missing"))
}

func TestForm_UpdateGoesToFocusedField(t *testing.T) {
	author := NewTextInput("author", "Author", "")
	text := NewTextArea("text", "Text", "", 0)
	f := NewForm(author, text)
	f.Init()

	f.Update(press('a', "a"))
	f.Update(press('b', "b"))

	assert.Equal(t, "ab", author.Value())
	assert.Equal(t, "", text.Value())
}

func TestTextInput_InvalidMarkerInView(t *testing.T) {
	ti := NewTextInput("author", "Author", "")
	assert.NotContains(t, ti.View(), "Author !")

	ti.SetInvalid(true)
	assert.True(t, ti.Invalid())
	assert.Contains(t, ti.View(), "Author !")
}

func TestConfirm_Keys(t *testing.T) {
	tests := []struct {
		name     string
		keys     []tea.KeyPressMsg
		want     bool
		answered bool
	}{
		{name: "defaults to no", keys: nil, want: false, answered: false},
		{name: "y answers yes", keys: []tea.KeyPressMsg{press('y', "y")}, want: true, answered: true},
		{name: "n answers no", keys: []tea.KeyPressMsg{press('n', "n")}, want: false, answered: true},
		{name: "esc answers no", keys: []tea.KeyPressMsg{press(tea.KeyEscape, "")}, want: false, answered: true},
		{
			name:     "left then enter answers yes",
			keys:     []tea.KeyPressMsg{press(tea.KeyLeft, ""), press(tea.KeyEnter, "")},
			want:     true,
			answered: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewConfirm("discard", "Discard?", "Yes", "No")
			c.Focus()
			for _, k := range tt.keys {
				c.Update(k)
			}
			assert.Equal(t, tt.want, c.Value())
			assert.Equal(t, tt.answered, c.Answered())
		})
	}
}

func TestConfirm_IgnoresKeysWhenBlurred(t *testing.T) {
	c := NewConfirm("discard", "Discard?", "Yes", "No")
	c.Update(press('y', "y"))

	assert.False(t, c.Answered())
}

func TestSetValue_ReadsBackExactly(t *testing.T) {
	long := strings.Repeat("x", 1500)
	tests := []struct {
		name  string
		value string
	}{
		{"tab", "a\tb"},
		{"crlf", "one\r\ntwo"},
		{"long", long},
		{"many lines", strings.Repeat("line\n", 150)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := NewTextArea("text", "Text", "", 0)
			text.SetValue(tt.value)
			assert.Equal(t, tt.value, text.Value())

			author := NewTextInput("author", "Author", "")
			author.SetValue(tt.value)
			assert.Equal(t, tt.value, author.Value())
		})
	}
}

func TestSetValue_TypingReplacesRememberedValue(t *testing.T) {
	text := NewTextArea("text", "Text", "", 0)
	text.SetValue("a\tb")
	text.Focus()

	text.Update(press('!', "!"))

	assert.NotEqual(t, "a\tb", text.Value())
	assert.True(t, strings.HasSuffix(text.Value(), "!"))
}
