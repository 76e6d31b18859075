package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent: "#FFFFFF",

		High:   "#FFFFFF",
		Normal: "#D0D0D0",
		Low:    "#8A8A8A",

		Done:    "#585858",
		Overdue: "#FFFFFF",

		Title:  "#FFFFFF",
		Subtle: "#585858",
		Text:   "#D0D0D0",

		Success: "#FFFFFF",
		Warning: "#FFFFFF",
		Error:   "#FFFFFF",
	}
}
