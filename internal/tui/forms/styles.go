package forms

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/remark/internal/tui/theme"
)

func titleStyle(invalid bool) lipgloss.Style {
	if invalid {
		return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.ErrorFg))
	}
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Title))
}

// renderTitle renders a field label, marked when the field failed validation
func renderTitle(title string, invalid bool) string {
	if invalid {
		return titleStyle(true).Render(title + " !")
	}
	return titleStyle(false).Render(title)
}
