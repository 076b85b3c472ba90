package viz

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var ErrUnknownTheme = errors.New("viz: unknown theme")

// Theme defines the colors of the reader.
type Theme struct {
	Name    string
	Pivot   lipgloss.Color // fixation character
	Word    lipgloss.Color // text before the fixation
	Tail    lipgloss.Color // text after the fixation
	Title   lipgloss.Color
	Accent  lipgloss.Color
	Muted   lipgloss.Color
	Border  lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
}

var (
	ThemeCyberpunk = Theme{
		Name:    "cyberpunk",
		Pivot:   lipgloss.Color("#ff00ff"), // Magenta
		Word:    lipgloss.Color("#ffffff"),
		Tail:    lipgloss.Color("#cccccc"),
		Title:   lipgloss.Color("#00ffff"), // Cyan
		Accent:  lipgloss.Color("#ffff00"),
		Muted:   lipgloss.Color("#666666"),
		Border:  lipgloss.Color("#444466"),
		Success: lipgloss.Color("#00ff88"),
		Warning: lipgloss.Color("#ffaa00"),
	}

	ThemeRetroGreen = Theme{
		Name:    "retro",
		Pivot:   lipgloss.Color("#88ff88"),
		Word:    lipgloss.Color("#00ff00"), // Green phosphor
		Tail:    lipgloss.Color("#00cc00"),
		Title:   lipgloss.Color("#00ff00"),
		Accent:  lipgloss.Color("#ffff00"),
		Muted:   lipgloss.Color("#005500"),
		Border:  lipgloss.Color("#003300"),
		Success: lipgloss.Color("#88ff88"),
		Warning: lipgloss.Color("#ffff00"),
	}

	ThemeMinimal = Theme{
		Name:    "minimal",
		Pivot:   lipgloss.Color("#ff0000"),
		Word:    lipgloss.Color("#ffffff"),
		Tail:    lipgloss.Color("#cccccc"),
		Title:   lipgloss.Color("#ffffff"),
		Accent:  lipgloss.Color("#0088ff"),
		Muted:   lipgloss.Color("#888888"),
		Border:  lipgloss.Color("#444444"),
		Success: lipgloss.Color("#00ff00"),
		Warning: lipgloss.Color("#ffaa00"),
	}

	ThemeOcean = Theme{
		Name:    "ocean",
		Pivot:   lipgloss.Color("#ffd700"),
		Word:    lipgloss.Color("#e0f0ff"),
		Tail:    lipgloss.Color("#a8cce0"),
		Title:   lipgloss.Color("#00a8cc"), // Ocean blue
		Accent:  lipgloss.Color("#0077be"),
		Muted:   lipgloss.Color("#4488aa"),
		Border:  lipgloss.Color("#224466"),
		Success: lipgloss.Color("#00ff88"),
		Warning: lipgloss.Color("#ffcc00"),
	}

	ThemeSunset = Theme{
		Name:    "sunset",
		Pivot:   lipgloss.Color("#ff6b6b"), // Coral
		Word:    lipgloss.Color("#fff5f5"),
		Tail:    lipgloss.Color("#e8d0d0"),
		Title:   lipgloss.Color("#feca57"),
		Accent:  lipgloss.Color("#ff9ff3"),
		Muted:   lipgloss.Color("#8b6b8c"),
		Border:  lipgloss.Color("#4d3b4e"),
		Success: lipgloss.Color("#5fd068"),
		Warning: lipgloss.Color("#ffc048"),
	}

	Themes = []Theme{
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name.
func GetTheme(name string) (Theme, error) {
	for _, t := range Themes {
		if t.Name == name {
			return t, nil
		}
	}
	return ThemeCyberpunk, fmt.Errorf("%w: %s (available: %v)", ErrUnknownTheme, name, ThemeNames())
}

// NextTheme returns the theme after name, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
