// Package ui provides terminal color themes for the E-series finder.
// Themes are plain ANSI escape sequences; the "none" theme carries empty
// strings so rendering code can interpolate colors unconditionally.
package ui

import (
	"os"
	"sync"
)

// Theme is a named set of ANSI color codes.
type Theme struct {
	Name      string
	Reset     string
	Bold      string
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Error     string
}

// DarkTheme is the default theme, tuned for dark terminal backgrounds.
var DarkTheme = Theme{
	Name:      "dark",
	Reset:     "\033[0m",
	Bold:      "\033[1m",
	Primary:   "\033[36m", // cyan
	Secondary: "\033[90m", // bright black
	Success:   "\033[32m", // green
	Warning:   "\033[33m", // yellow
	Error:     "\033[31m", // red
}

// LightTheme uses darker accents readable on light backgrounds.
var LightTheme = Theme{
	Name:      "light",
	Reset:     "\033[0m",
	Bold:      "\033[1m",
	Primary:   "\033[34m", // blue
	Secondary: "\033[37m", // light gray
	Success:   "\033[32m",
	Warning:   "\033[33m",
	Error:     "\033[31m",
}

// NoColorTheme disables all styling.
var NoColorTheme = Theme{Name: "none"}

var (
	themeMu      sync.RWMutex
	currentTheme = DarkTheme
)

// GetCurrentTheme returns the active theme.
func GetCurrentTheme() Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return currentTheme
}

// SetCurrentTheme replaces the active theme.
func SetCurrentTheme(t Theme) {
	themeMu.Lock()
	defer themeMu.Unlock()
	currentTheme = t
}

// SetTheme selects a theme by name. Unknown names fall back to the dark
// theme.
func SetTheme(name string) {
	switch name {
	case "light":
		SetCurrentTheme(LightTheme)
	case "none":
		SetCurrentTheme(NoColorTheme)
	default:
		SetCurrentTheme(DarkTheme)
	}
}

// InitTheme selects the startup theme. Colors are disabled when the caller
// asks for it or when the NO_COLOR environment variable is present (any
// value, including empty, per the no-color.org convention).
func InitTheme(noColor bool) {
	if _, ok := os.LookupEnv("NO_COLOR"); ok || noColor {
		SetTheme("none")
		return
	}
	SetTheme("dark")
}

// ColorReset returns the reset code of the active theme.
func ColorReset() string { return GetCurrentTheme().Reset }

// ColorBold returns the bold code of the active theme.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorGreen returns the success color of the active theme.
func ColorGreen() string { return GetCurrentTheme().Success }

// ColorRed returns the error color of the active theme.
func ColorRed() string { return GetCurrentTheme().Error }

// ColorYellow returns the warning color of the active theme.
func ColorYellow() string { return GetCurrentTheme().Warning }

// ColorCyan returns the primary color of the active theme.
func ColorCyan() string { return GetCurrentTheme().Primary }
