package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent: "#874BFD",

		// Semantic
		Create: "#5FD75F",
		Edit:   "#5F87D7",
		Delete: "#FF0000",

		// Surfaces
		Background: "#1C1C1C",
		Scrim:      "#121212",
		Border:     "#5F87D7",

		// Text
		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		// Errors
		ErrorFg: "#FF5F5F",
		ErrorBg: "#5F0000",
	}
}
