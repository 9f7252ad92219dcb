package editform

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/remark/internal/tui/forms"
	"github.com/thenoetrevino/remark/internal/tui/theme"
)

const (
	submitKey = "submit"
	cancelKey = "cancel"
)

// button is a focusable control; pressing it is handled by the Form
type button struct {
	key     string
	label   string
	focused bool
}

var _ forms.Field = (*button)(nil)

func (b *button) Update(tea.Msg) (forms.Field, tea.Cmd) { return b, nil }

func (b *button) View() string {
	style := lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color(theme.Subtle))
	if b.focused {
		style = style.Bold(true).
			Foreground(lipgloss.Color(theme.Normal)).
			Background(lipgloss.Color(theme.Highlight))
	}
	return style.Render(b.label)
}

func (b *button) Focus() tea.Cmd {
	b.focused = true
	return nil
}

func (b *button) Blur()         { b.focused = false }
func (b *button) Focused() bool { return b.focused }
func (b *button) Key() string   { return b.key }
