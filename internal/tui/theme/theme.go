// Package theme defines the light and dark color palettes shared by the CLI
// and the TUI dashboard.
package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/fintrack/internal/model"
)

// Theme defines the color roles used throughout the UI.
type Theme struct {
	Name          model.Theme
	Background    lipgloss.Color // Main app background
	Surface       lipgloss.Color // Card/panel backgrounds
	SurfaceHover  lipgloss.Color // Highlighted surface (active tab, selected row)
	Border        lipgloss.Color // Subtle borders
	BorderAccent  lipgloss.Color // Accent-colored borders for focus states
	TextDim       lipgloss.Color // Lowest contrast text (hints, disabled)
	TextMuted     lipgloss.Color // Secondary text (labels, metadata)
	TextPrimary   lipgloss.Color // Primary content text
	Accent        lipgloss.Color // Primary accent (links, active states)
	AccentBright  lipgloss.Color
	Income        lipgloss.Color
	Expense       lipgloss.Color
	Warning       lipgloss.Color
	Critical      lipgloss.Color
	Blue          lipgloss.Color
	Yellow        lipgloss.Color
	Magenta       lipgloss.Color
}

// Active is the currently selected theme.
var Active = Light

// Light is the default theme, Flexoki on paper.
var Light = Theme{
	Name:         model.ThemeLight,
	Background:   lipgloss.Color("#FFFCF0"),
	Surface:      lipgloss.Color("#F2F0E5"),
	SurfaceHover: lipgloss.Color("#E6E4D9"),
	Border:       lipgloss.Color("#CECDC3"),
	BorderAccent: lipgloss.Color("#24837B"),
	TextDim:      lipgloss.Color("#B7B5AC"),
	TextMuted:    lipgloss.Color("#6F6E69"),
	TextPrimary:  lipgloss.Color("#100F0F"),
	Accent:       lipgloss.Color("#24837B"),
	AccentBright: lipgloss.Color("#3AA99F"),
	Income:       lipgloss.Color("#66800B"),
	Expense:      lipgloss.Color("#AF3029"),
	Warning:      lipgloss.Color("#BC5215"),
	Critical:     lipgloss.Color("#AF3029"),
	Blue:         lipgloss.Color("#205EA6"),
	Yellow:       lipgloss.Color("#AD8301"),
	Magenta:      lipgloss.Color("#A02F6F"),
}

// Dark is the warm, paper-inspired dark theme.
var Dark = Theme{
	Name:         model.ThemeDark,
	Background:   lipgloss.Color("#100F0F"),
	Surface:      lipgloss.Color("#1C1B1A"),
	SurfaceHover: lipgloss.Color("#282726"),
	Border:       lipgloss.Color("#403E3C"),
	BorderAccent: lipgloss.Color("#3AA99F"),
	TextDim:      lipgloss.Color("#575653"),
	TextMuted:    lipgloss.Color("#878580"),
	TextPrimary:  lipgloss.Color("#FFFCF0"),
	Accent:       lipgloss.Color("#3AA99F"),
	AccentBright: lipgloss.Color("#5BC8BE"),
	Income:       lipgloss.Color("#879A39"),
	Expense:      lipgloss.Color("#D14D41"),
	Warning:      lipgloss.Color("#DA702C"),
	Critical:     lipgloss.Color("#D14D41"),
	Blue:         lipgloss.Color("#4385BE"),
	Yellow:       lipgloss.Color("#D0A215"),
	Magenta:      lipgloss.Color("#CE5D97"),
}

// ByName returns the palette for a stored theme preference, defaulting to
// Light.
func ByName(name model.Theme) Theme {
	if name == model.ThemeDark {
		return Dark
	}
	return Light
}

// SetActive sets the active theme.
func SetActive(name model.Theme) {
	Active = ByName(name)
}

// ForLevel returns the color for a budget status level.
func (t Theme) ForLevel(level model.BudgetLevel) lipgloss.Color {
	switch level {
	case model.BudgetCritical:
		return t.Critical
	case model.BudgetWarning:
		return t.Warning
	default:
		return t.Income
	}
}
