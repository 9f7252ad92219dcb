// Package components provides reusable UI components and styles.
// Call InitStyles() after the theme changes to refresh the style variables.
package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/remark/internal/tui/theme"
)

// These are cached to avoid recomputing on every redraw.
var (
	// TitleStyle is the app header
	TitleStyle lipgloss.Style

	// CardStyle frames a committed comment
	CardStyle lipgloss.Style

	// SubtleStyle is used for metadata and hints
	SubtleStyle lipgloss.Style

	// PromptBoxStyle frames the discard confirmation
	PromptBoxStyle lipgloss.Style
)

func init() {
	InitStyles()
}

// InitStyles rebuilds the styles from the current theme colors
func InitStyles() {
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Title))

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Subtle)).
		Padding(0, 1)

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle))

	PromptBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Delete)).
		Padding(1, 2)
}
