package config

// Theme names accepted by ui.theme.
const (
	ThemeAuto  = "auto"
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// ValidThemes lists the accepted ui.theme values.
var ValidThemes = []string{ThemeAuto, ThemeLight, ThemeDark}

// UIConfig holds terminal UI configuration.
type UIConfig struct {
	// Theme selects the color scheme; auto inspects the terminal.
	Theme string `yaml:"theme"`

	// MaxWidth caps the content column width (0 = terminal width).
	MaxWidth int `yaml:"max_width,omitempty"`
}

// DefaultUIConfig returns sensible UI defaults.
func DefaultUIConfig() *UIConfig {
	return &UIConfig{
		Theme:    ThemeAuto,
		MaxWidth: 100,
	}
}

func validTheme(t string) bool {
	for _, v := range ValidThemes {
		if t == v {
			return true
		}
	}
	return false
}
