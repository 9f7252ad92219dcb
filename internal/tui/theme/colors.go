// Package theme holds the active colors shared by every view.
package theme

import "github.com/thenoetrevino/remark/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight  string
	Create     string
	Delete     string
	Background string
	Scrim      string
	Border     string
	Title      string
	Subtle     string
	Normal     string
	ErrorFg    string
	ErrorBg    string
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	colors.ApplyDefaults()

	Highlight = colors.Accent
	Create = colors.Create
	Delete = colors.Delete
	Background = colors.Background
	Scrim = colors.Scrim
	Border = colors.Border
	Title = colors.Title
	Subtle = colors.Subtle
	Normal = colors.Normal
	ErrorFg = colors.ErrorFg
	ErrorBg = colors.ErrorBg
}
