package notifications

import "github.com/thenoetrevino/remark/internal/tui/theme"

type style struct {
	icon       string
	foreground string
	background string
}

func (s Severity) style() style {
	switch s {
	case Warning:
		return style{
			icon:       "!",
			foreground: theme.Background,
			background: theme.Highlight,
		}
	case Error:
		return style{
			icon:       "✗",
			foreground: theme.ErrorFg,
			background: theme.ErrorBg,
		}
	default:
		return style{
			icon:       "✓",
			foreground: theme.Background,
			background: theme.Create,
		}
	}
}
