// Package ui provides the visual styling for the Is it Cinema? terminal client.
// Uses the Letterboxd brand palette with light/dark mode support.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Brand colors (same in both modes)
var (
	BrandOrange = lipgloss.Color("#ff8000")
	BrandGreen  = lipgloss.Color("#00e054")
	BrandBlue   = lipgloss.Color("#40bcf4")

	LikeColor    = BrandGreen
	DislikeColor = BrandOrange

	Destructive = lipgloss.Color("#e53935")
)

// Theme holds the current color scheme
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme
func LightTheme() Theme {
	return Theme{
		Background: lipgloss.Color("#f4f5f6"),
		Foreground: lipgloss.Color("#14181c"),
		Primary:    lipgloss.Color("#14181c"),
		Accent:     BrandOrange,
		Muted:      lipgloss.Color("#6b7785"),
		Border:     lipgloss.Color("#c8ced6"),
		IsDark:     false,
	}
}

// DarkTheme returns the dark mode theme
func DarkTheme() Theme {
	return Theme{
		Background: lipgloss.Color("#14181c"),
		Foreground: lipgloss.Color("#d8e0e8"),
		Primary:    lipgloss.Color("#ffffff"),
		Accent:     BrandGreen,
		Muted:      lipgloss.Color("#99aabb"),
		Border:     lipgloss.Color("#2c3440"),
		IsDark:     true,
	}
}

// ThemeFor resolves a ui.theme setting ("light", "dark", "auto").
func ThemeFor(pref string) Theme {
	switch strings.ToLower(strings.TrimSpace(pref)) {
	case "dark":
		return DarkTheme()
	case "light":
		return LightTheme()
	default:
		return DetectTheme()
	}
}

// DetectTheme auto-detects based on terminal or returns light mode
func DetectTheme() Theme {
	if os.Getenv("CINEMA_DARK_MODE") == "1" {
		return DarkTheme()
	}

	// Format is usually "foreground;background"; ANSI 0-6 and 8 are dark.
	if parts := strings.Split(os.Getenv("COLORFGBG"), ";"); len(parts) == 2 {
		if bg, err := strconv.Atoi(parts[1]); err == nil && ((bg >= 0 && bg <= 6) || bg == 8) {
			return DarkTheme()
		}
	}

	return LightTheme()
}

// Styles holds all the styled components
type Styles struct {
	Theme Theme

	// Layout
	App     lipgloss.Style
	Content lipgloss.Style
	Footer  lipgloss.Style

	// Text
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Heading  lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style

	// Interactive
	Input         lipgloss.Style
	InputFocused  lipgloss.Style
	Placeholder   lipgloss.Style
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style

	// Status
	Error lipgloss.Style

	// Components
	Spinner lipgloss.Style
	Divider lipgloss.Style
	Roast   lipgloss.Style
	Cursor  lipgloss.Style
}

// NewStyles creates a new Styles instance with the given theme
func NewStyles(theme Theme) Styles {
	button := lipgloss.NewStyle().
		Padding(0, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Foreground(theme.Foreground)

	input := lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)

	return Styles{
		Theme: theme,

		App: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Content: lipgloss.NewStyle().
			Padding(1, 2),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 2),

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Subtitle: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Italic(true),

		Heading: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true).
			MarginTop(1),

		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Bold: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		Input:        input,
		InputFocused: input.BorderForeground(theme.Accent),

		Placeholder: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Button:        button,
		ButtonFocused: button.BorderForeground(theme.Accent).Foreground(theme.Accent).Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(Destructive).
			Bold(true),

		Spinner: lipgloss.NewStyle().
			Foreground(theme.Accent),

		Divider: lipgloss.NewStyle().
			Foreground(theme.Border),

		Roast: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			PaddingLeft(2).
			BorderLeft(true).
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(BrandOrange),

		Cursor: lipgloss.NewStyle().
			Foreground(theme.Accent),
	}
}

// DefaultStyles returns styles with the detected theme
func DefaultStyles() Styles {
	return NewStyles(DetectTheme())
}

// Logo renders the three brand circles and the title.
func Logo(s Styles) string {
	dots := lipgloss.NewStyle().Foreground(BrandOrange).Render("●") +
		lipgloss.NewStyle().Foreground(BrandGreen).Render("●") +
		lipgloss.NewStyle().Foreground(BrandBlue).Render("●")
	return dots + "  " + s.Title.Render("Is it Cinema?")
}

// RenderDivider returns a horizontal divider
func (s Styles) RenderDivider(width int) string {
	if width < 1 {
		width = 1
	}
	return s.Divider.Render(strings.Repeat("─", width))
}

// RenderButton draws a button, highlighted when focused.
func (s Styles) RenderButton(label string, focused bool) string {
	if focused {
		return s.ButtonFocused.Render(label)
	}
	return s.Button.Render(label)
}
