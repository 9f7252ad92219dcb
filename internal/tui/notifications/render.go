// Package notifications renders the one-line status messages shown after
// a form closes.
package notifications

import "charm.land/lipgloss/v2"

// RenderInline renders a compact single-line notification
func RenderInline(n Notification) string {
	if n.Empty() {
		return ""
	}
	style := n.Severity.style()

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Background(lipgloss.Color(style.background)).
		Padding(0, 1).
		Render(style.icon + " " + n.Message)
}
