package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent: "#874BFD",

		// Priority
		High:   "#FF5F5F",
		Normal: "#5F87D7",
		Low:    "#87AF87",

		// Task state
		Done:    "#585858",
		Overdue: "#FFAF00",

		// Text
		Title:  "#D75FD7",
		Subtle: "#585858",
		Text:   "#D0D0D0",

		// Messages
		Success: "#5FD75F",
		Warning: "#FFD700",
		Error:   "#FF0000",
	}
}
