package config

import "github.com/Oshri-Halevi/TaskManagerApp/internal/config/colors"

// ColorScheme is the palette of CLI and watch-screen output
type ColorScheme = colors.ColorScheme

// DefaultColorScheme returns the default color scheme (purple theme)
func DefaultColorScheme() colors.ColorScheme {
	return *colors.Default()
}

// MonochromeColorScheme returns a black and white color scheme
func MonochromeColorScheme() colors.ColorScheme {
	return *colors.Monochrome()
}
