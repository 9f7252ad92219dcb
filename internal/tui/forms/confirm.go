package forms

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/remark/internal/tui/theme"
)

// Confirm is a yes/no question answered with the keyboard
type Confirm struct {
	key         string
	title       string
	affirmative string
	negative    string
	focused     bool
	selection   bool // true = yes, false = no
	answered    bool
}

// NewConfirm creates a new confirm field. The initial selection is "no".
func NewConfirm(key, title, affirmative, negative string) *Confirm {
	return &Confirm{
		key:         key,
		title:       title,
		affirmative: affirmative,
		negative:    negative,
	}
}

// Update handles messages
func (c *Confirm) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !c.focused || c.answered {
		return c, nil
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "left", "h":
			c.selection = true
		case "right", "l":
			c.selection = false
		case "tab":
			c.selection = !c.selection
		case "y", "Y":
			c.selection = true
			c.answered = true
		case "n", "N", "esc":
			c.selection = false
			c.answered = true
		case "enter", "space":
			c.answered = true
		}
	}

	return c, nil
}

// View renders the confirm field
func (c *Confirm) View() string {
	selectedStyle := lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.Color(theme.Normal)).
		Background(lipgloss.Color(theme.Highlight))
	unselectedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))

	title := titleStyle(false).Render(c.title) + "\n\n"

	yesStyle, noStyle := unselectedStyle, selectedStyle
	if c.selection {
		yesStyle, noStyle = selectedStyle, unselectedStyle
	}

	yesOption := yesStyle.Render(" " + c.affirmative + " ")
	noOption := noStyle.Render(" " + c.negative + " ")

	return title + yesOption + "  " + noOption
}

// Focus focuses the confirm field
func (c *Confirm) Focus() tea.Cmd {
	c.focused = true
	return nil
}

// Blur removes focus
func (c *Confirm) Blur() {
	c.focused = false
}

// Focused returns whether the field is focused
func (c *Confirm) Focused() bool {
	return c.focused
}

// Key returns the field key
func (c *Confirm) Key() string {
	return c.key
}

// Value returns the current selection
func (c *Confirm) Value() bool {
	return c.selection
}

// Answered reports whether the user has committed to a selection
func (c *Confirm) Answered() bool {
	return c.answered
}
