package tui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/remark/internal/tui/components"
	"github.com/thenoetrevino/remark/internal/tui/layers"
	"github.com/thenoetrevino/remark/internal/tui/notifications"
	"github.com/thenoetrevino/remark/internal/tui/overlay"
	"github.com/thenoetrevino/remark/internal/tui/theme"
)

// View renders the comment list with any open overlay and prompt on top
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.MouseMode = tea.MouseModeCellMotion
	view.BackgroundColor = lipgloss.Color(theme.Background)

	// Wait for terminal size to be initialized
	if m.width == 0 {
		view.Content = "Loading..."
		return view
	}

	stack := []*lipgloss.Layer{
		lipgloss.NewLayer(m.renderBase()),
	}
	for _, el := range m.page.Elements() {
		if ov, ok := el.(*overlay.Overlay); ok {
			stack = append(stack, ov.Render(m.width, m.height)...)
		}
	}
	if m.prompt != nil {
		box := components.PromptBoxStyle.Render(m.prompt.View())
		if l := layers.CreateCenteredLayer(box, m.width, m.height); l != nil {
			stack = append(stack, l)
		}
	}

	view.Content = lipgloss.NewCanvas(stack...).Render()
	return view
}

// renderBase renders the page underneath any overlay
func (m Model) renderBase() string {
	title := components.TitleStyle.Render("remark")

	left := notifications.RenderInline(*m.status)
	if left == "" {
		left = components.SubtleStyle.Render(pluralize(m.comments.Len(), "comment"))
	}
	status := components.RenderStatusBar(components.StatusBarProps{
		Width: m.width,
		Left:  left,
		Right: m.keys.NewComment.Help().Key + " new · " + m.keys.Quit.Help().Key + " quit",
	})

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		m.button.View(),
		m.list.View(),
		"",
		status,
	)
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
