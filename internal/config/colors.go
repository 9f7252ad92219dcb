package config

import (
	"os"

	"github.com/thenoetrevino/remark/internal/config/colors"
)

// ColorScheme is the theme section of the config file
type ColorScheme = colors.ColorScheme

// DefaultColorScheme returns the default color scheme (purple theme)
func DefaultColorScheme() colors.ColorScheme {
	return *colors.Default()
}

// MonochromeColorScheme returns a black and white color scheme
func MonochromeColorScheme() colors.ColorScheme {
	return *colors.Monochrome()
}

// applyNoColor switches to the monochrome scheme when NO_COLOR is set,
// overriding both the config file and REMARK_THEME_FILE
func applyNoColor(config *Config) {
	if os.Getenv("NO_COLOR") != "" {
		config.ColorScheme = MonochromeColorScheme()
	}
}
