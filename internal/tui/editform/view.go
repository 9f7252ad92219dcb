package editform

import (
	"log/slog"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/remark/internal/tui/theme"
)

const dismissHint = "esc cancel · ctrl+s save · click outside to dismiss"

// Title returns the heading for the bound record
func (f *Form) Title() string {
	if f.record.IsNew() {
		return "New Comment"
	}
	return "Edit Comment"
}

// View renders the form through its template. A removed form renders nothing.
func (f *Form) View() string {
	if f.closed {
		return ""
	}

	out, err := f.renderer.Render(TemplateName, f.templateVars())
	if err != nil {
		slog.Error("failed to render comment form", "error", err)
		return err.Error()
	}
	return out
}

func (f *Form) templateVars() map[string]string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Title)).
		Render(f.Title())

	hint := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Italic(true).
		Render(dismissHint)

	return map[string]string{
		"title":   title,
		"author":  f.author.View(),
		"text":    f.text.View(),
		"errors":  f.errorList(),
		"submit":  f.submitBtn.View(),
		"cancel":  f.cancelBtn.View(),
		"dismiss": hint,
	}
}

func (f *Form) errorList() string {
	if len(f.errors) == 0 {
		return ""
	}

	style := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ErrorFg))
	lines := make([]string, 0, len(f.errors))
	for _, msg := range f.errors {
		lines = append(lines, style.Render("• "+msg))
	}
	return strings.Join(lines, "\n")
}
